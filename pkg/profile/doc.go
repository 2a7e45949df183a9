// Package profile maps environment names to the ordered layer lists and
// container settings that consume them.
//
// A profile owns no behavior. It names an ordered list of layer files, the
// combined artifact they produce, and the base image a container built from
// that artifact should use. The registry owns its state and provides clear
// input->output transformations; profiles go in and copies come out.
package profile

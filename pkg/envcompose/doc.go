// Package envcompose assembles layered environment-definition files into a
// single combined artifact.
//
// A layer is an opaque key=value text file scoped to a deployment context
// (common, per-environment, per-feature). Composition is plain byte
// concatenation in layer order: no parsing, no validation, no deduplication
// of keys. If duplicate keys should override each other, that is the
// business of whatever loads the combined artifact, not of this package.
package envcompose

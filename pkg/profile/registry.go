package profile

import (
	"fmt"
	"sync"
	"time"
)

// Registry provides profile storage. It owns its state: profiles are copied
// on the way in and on the way out, so callers cannot mutate stored entries.
type Registry struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
}

// NewRegistry creates an empty profile registry
func NewRegistry() *Registry {
	return &Registry{
		profiles: make(map[string]*Profile),
	}
}

// FromFile builds a registry seeded with the profiles in f.
func FromFile(f *File) (*Registry, error) {
	r := NewRegistry()
	for i := range f.Profiles {
		if err := r.Register(&f.Profiles[i]); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds or updates a profile (write operation)
func (r *Registry) Register(p *Profile) error {
	if p == nil {
		return fmt.Errorf("profile cannot be nil")
	}
	if p.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	if len(p.Layers) == 0 {
		return fmt.Errorf("profile %s has no layers", p.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if p.CreatedAt == "" {
		p.CreatedAt = time.Now().Format(time.RFC3339)
	}

	pCopy := *p
	r.profiles[p.Name] = &pCopy

	return nil
}

// Deregister removes a profile (write operation)
func (r *Registry) Deregister(name string) error {
	if name == "" {
		return fmt.Errorf("profile name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.profiles[name]; !exists {
		return fmt.Errorf("profile not found: %s", name)
	}

	delete(r.profiles, name)
	return nil
}

// Get retrieves a profile by name (read operation)
func (r *Registry) Get(name string) (*Profile, error) {
	if name == "" {
		return nil, fmt.Errorf("profile name is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.profiles[name]
	if !exists {
		return nil, fmt.Errorf("profile not found: %s", name)
	}

	pCopy := *p
	return &pCopy, nil
}

// List returns all profiles (read operation)
func (r *Registry) List() []*Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profiles := make([]*Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		pCopy := *p
		profiles = append(profiles, &pCopy)
	}

	return profiles
}

// Exists checks if a profile exists (read operation)
func (r *Registry) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.profiles[name]
	return exists
}

// Count returns the number of registered profiles (read operation)
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.profiles)
}

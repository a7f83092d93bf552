package actions

import (
	"sync"
)

// Registry is an append-only set of tags.
//
// Every creator registers its tag with the registry of the Builder that
// made it, so a registry enumerates the action types an application can
// produce. Tests compare a reducer's handled tags against it; see the
// testing subpackage. Registries are safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	index map[Tag]struct{}
	order []Tag
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[Tag]struct{})}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by builders
// created without WithRegistry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Registered returns a snapshot of the process-wide registry.
func Registered() Union {
	return defaultRegistry.Union()
}

// Register adds tags to the registry and returns the ones that were not
// already present. Zero tags are ignored.
func (r *Registry) Register(tags ...Tag) []Tag {
	// Fast path: read-lock membership check
	r.mu.RLock()
	known := true
	for _, t := range tags {
		if _, ok := r.index[t]; !ok && !t.IsZero() {
			known = false
			break
		}
	}
	r.mu.RUnlock()
	if known {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var added []Tag
	for _, t := range tags {
		if t.IsZero() {
			continue
		}
		// Double-check under the write lock
		if _, ok := r.index[t]; ok {
			continue
		}
		r.index[t] = struct{}{}
		r.order = append(r.order, t)
		added = append(added, t)
	}
	return added
}

// Contains reports whether t has been registered.
func (r *Registry) Contains(t Tag) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.index[t]
	return ok
}

// Len returns the number of registered tags.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Union returns the registered tags, in registration order, as a Union.
func (r *Registry) Union() Union {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return newUnion(r.order...)
}

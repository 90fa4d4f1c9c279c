package modelhub

import (
	"sync/atomic"
)

// Builder constructs a fresh registry from current credentials.
type Builder func() (*Registry, error)

// Reloader holds the live registry and swaps it atomically on Reload.
// Readers always see a complete registry, never one mid-rebuild.
type Reloader struct {
	build Builder
	reg   atomic.Pointer[Registry]
}

// NewReloader runs the builder once, failing the same way New fails.
func NewReloader(build Builder) (*Reloader, error) {
	reg, err := build()
	if err != nil {
		return nil, err
	}

	r := &Reloader{build: build}
	r.reg.Store(reg)
	return r, nil
}

// Registry returns the current snapshot.
func (r *Reloader) Registry() *Registry {
	return r.reg.Load()
}

// Reload rebuilds and swaps. On error the previous registry stays live.
func (r *Reloader) Reload() (*Registry, error) {
	reg, err := r.build()
	if err != nil {
		return nil, err
	}

	r.reg.Store(reg)
	return reg, nil
}

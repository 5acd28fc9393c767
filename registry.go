// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package openid

import (
	"fmt"
	"sort"
)

// Factory creates a Backend. Options are passed through from
// Registry.Backend.
type Factory func(opt ...Option) (Backend, error)

// Registry maps provider names to Backend factories. It's populated once
// while the process initializes; Register is not safe to call concurrently
// with any other method.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: map[string]Factory{},
	}
}

// Register a factory under name. Names must be unique.
func (r *Registry) Register(name string, f Factory) error {
	const op = "openid.(Registry).Register"
	switch {
	case name == "":
		return fmt.Errorf("%s: name is empty: %w", op, ErrInvalidParameter)
	case f == nil:
		return fmt.Errorf("%s: factory for %q is nil: %w", op, name, ErrNilParameter)
	}
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("%s: %q: %w", op, name, ErrDuplicateProvider)
	}
	r.factories[name] = f
	return nil
}

// Backend creates the backend registered under name.
func (r *Registry) Backend(name string, opt ...Option) (Backend, error) {
	const op = "openid.(Registry).Backend"
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", op, name, ErrUnknownProvider)
	}
	b, err := f(opt...)
	if err != nil {
		return nil, fmt.Errorf("%s: unable to create %q backend: %w", op, name, err)
	}
	return b, nil
}

// Names returns the sorted names of every registered provider.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

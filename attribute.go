// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package openid

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/go-secure-stdlib/strutil"
)

// AttributeMapping maps one provider alias onto a canonical field name.
type AttributeMapping struct {
	// Name is the canonical field name (for example "fullname")
	Name string

	// Alias is the attribute name as exposed by the provider's Simple
	// Registration extension (for example "sreg.fullname")
	Alias string
}

// AttributeMap is an ordered, provider specific list of mappings. Providers
// hand out copies so a map can't change once a backend uses it.
type AttributeMap []AttributeMapping

// Validate the map. Every problem found is reported, not just the first one.
func (m AttributeMap) Validate() error {
	const op = "openid.(AttributeMap).Validate"
	if len(m) == 0 {
		return fmt.Errorf("%s: attribute map is empty: %w", op, ErrInvalidParameter)
	}
	var retErr *multierror.Error
	names := make([]string, 0, len(m))
	for i, a := range m {
		switch {
		case a.Name == "":
			retErr = multierror.Append(retErr, fmt.Errorf("%s: mapping %d has an empty name: %w", op, i, ErrInvalidParameter))
		case strutil.StrListContains(names, a.Name):
			retErr = multierror.Append(retErr, fmt.Errorf("%s: name %q is mapped more than once: %w", op, a.Name, ErrInvalidParameter))
		default:
			names = append(names, a.Name)
		}
		if a.Alias == "" {
			retErr = multierror.Append(retErr, fmt.Errorf("%s: mapping %d has an empty alias: %w", op, i, ErrInvalidParameter))
		}
	}
	return retErr.ErrorOrNil()
}

// Names returns the canonical names in map order.
func (m AttributeMap) Names() []string {
	names := make([]string, 0, len(m))
	for _, a := range m {
		names = append(names, a.Name)
	}
	return names
}

// Copy returns a copy of the map.
func (m AttributeMap) Copy() AttributeMap {
	if m == nil {
		return nil
	}
	cp := make(AttributeMap, len(m))
	copy(cp, m)
	return cp
}

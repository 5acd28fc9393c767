// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package providers registers every built-in OpenID backend.
package providers

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	openid "github.com/hashicorp/cap-openid"
	"github.com/hashicorp/cap-openid/providers/turkcell"
)

// builtins are the backends NewRegistry registers.
var builtins = map[string]openid.Factory{
	turkcell.Name: turkcell.Factory,
}

// NewRegistry returns a registry populated with every built-in backend.
func NewRegistry() (*openid.Registry, error) {
	const op = "providers.NewRegistry"
	r := openid.NewRegistry()
	var retErr *multierror.Error
	for name, f := range builtins {
		if err := r.Register(name, f); err != nil {
			retErr = multierror.Append(retErr, err)
		}
	}
	if err := retErr.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r, nil
}

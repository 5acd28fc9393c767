// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package openid

import "errors"

var (
	// ErrInvalidParameter is an invalid parameter error
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNilParameter is a nil parameter error
	ErrNilParameter = errors.New("nil parameter")

	// ErrNotPositiveAssertion is returned when a response's mode is not id_res
	ErrNotPositiveAssertion = errors.New("not a positive assertion")

	// ErrUnknownProvider is returned when a registry has no factory for a name
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrDuplicateProvider is returned when a name is registered twice
	ErrDuplicateProvider = errors.New("duplicate provider")
)

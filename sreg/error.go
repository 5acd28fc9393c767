// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package sreg

import "errors"

var (
	// ErrInvalidField is returned for a field name that is not part of the
	// Simple Registration data set
	ErrInvalidField = errors.New("invalid sreg field")

	// ErrNilParameter is a nil parameter error
	ErrNilParameter = errors.New("nil parameter")
)

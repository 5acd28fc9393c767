// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package callback

import "errors"

var (
	// ErrCanceled is returned when the user canceled the authentication at
	// the provider
	ErrCanceled = errors.New("authentication canceled")

	// ErrVerificationFailed is returned when the host's Verifier rejects an
	// assertion
	ErrVerificationFailed = errors.New("assertion verification failed")

	// ErrInvalidRequest is returned when the callback request can't be read
	ErrInvalidRequest = errors.New("invalid callback request")
)

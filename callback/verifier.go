// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package callback

import (
	"context"
	"net/url"
)

// Verifier verifies a positive assertion: its signature (via an association
// or direct verification), its nonce and that its return_to matches the
// request url. It's implemented by the host's OpenID library.
type Verifier interface {
	Verify(ctx context.Context, requestURL string, args url.Values) error
}

// VerifierFunc is an adapter to allow the use of ordinary functions as a
// Verifier.
type VerifierFunc func(ctx context.Context, requestURL string, args url.Values) error

// Verify calls f(ctx, requestURL, args).
func (f VerifierFunc) Verify(ctx context.Context, requestURL string, args url.Values) error {
	return f(ctx, requestURL, args)
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package openid

// Backend is implemented once per identity provider. The host's
// authentication pipeline completes the OpenID exchange itself and calls a
// Backend at fixed points: to find where to start the flow, to get the user
// details for a verified response and to get any extra data to store with
// the user. A Backend keeps no state between attempts.
type Backend interface {
	// Name is the provider name the backend is registered under.
	Name() string

	// ProviderURL is the OpenID endpoint (or identifier) used to start
	// the authentication flow.
	ProviderURL() string

	// UserDetails returns the canonical user fields for a verified
	// response. Every field is present, possibly empty.
	UserDetails(r *Response) (*UserDetails, error)

	// ExtraData returns the provider specific data stored alongside the
	// user with the given uid.
	ExtraData(uid string, r *Response, d *UserDetails) string
}

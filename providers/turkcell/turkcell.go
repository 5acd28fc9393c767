// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package turkcell provides the Turkcell OpenID backend. Turkcell only
// supports Simple Registration (no Attribute Exchange) and needs no extra
// configuration.
package turkcell

import (
	"strings"

	openid "github.com/hashicorp/cap-openid"
	"github.com/hashicorp/cap-openid/sreg"
)

const (
	// Name is the provider name the backend registers under
	Name = "turkcell"

	// OpenIDURL is the Turkcell OpenID service url
	OpenIDURL = "http://turkcellid.turkcell.com.tr/x"
)

// Attributes returns the Simple Registration attributes mapped from a
// Turkcell response. Turkcell sends its fields with an "sreg." prefix.
func Attributes() openid.AttributeMap {
	return openid.AttributeMap{
		{Name: openid.FieldEmail, Alias: "sreg.email"},
		{Name: openid.FieldFullname, Alias: "sreg.fullname"},
		{Name: openid.FieldNickname, Alias: "sreg.nickname"},
	}
}

// Backend is the Turkcell OpenID backend. It satisfies openid.Backend.
type Backend struct {
	attrs openid.AttributeMap
	opts  []openid.Option
}

var _ openid.Backend = (*Backend)(nil)

// New creates a Turkcell backend. The options are applied whenever user
// details are built.
//
// Supported options: openid.WithLogger, openid.WithSignedOnly,
// openid.WithNormalizedValues
func New(opt ...openid.Option) (*Backend, error) {
	return &Backend{
		attrs: Attributes(),
		opts:  append([]openid.Option{}, opt...),
	}, nil
}

// Factory creates a Backend for an openid.Registry.
func Factory(opt ...openid.Option) (openid.Backend, error) {
	return New(opt...)
}

// Name returns "turkcell".
func (b *Backend) Name() string { return Name }

// ProviderURL returns the Turkcell OpenID service url.
func (b *Backend) ProviderURL() string { return OpenIDURL }

// UserDetails returns the user details from a verified Turkcell response.
func (b *Backend) UserDetails(r *openid.Response) (*openid.UserDetails, error) {
	return openid.SRegUserDetails(r, b.attrs, b.opts...)
}

// ExtraData is always empty; nothing provider specific is stored.
func (b *Backend) ExtraData(string, *openid.Response, *openid.UserDetails) string {
	return ""
}

// SRegRequest asks Turkcell for every mapped field as optional.
func (b *Backend) SRegRequest() *sreg.Request {
	optional := make([]string, 0, len(b.attrs))
	for _, a := range b.attrs {
		optional = append(optional, strings.TrimPrefix(a.Alias, sreg.DefaultAlias+"."))
	}
	return &sreg.Request{Optional: optional}
}

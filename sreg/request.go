// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package sreg

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/go-secure-stdlib/strutil"
)

// Request asks a provider for Simple Registration fields as part of an
// authentication request.
type Request struct {
	// Required fields are those the relying party can't do without.
	Required []string

	// Optional fields are used if the provider supplies them.
	Optional []string

	// PolicyURL is an optional page describing how the data will be used.
	PolicyURL string
}

// Validate the request. Every field must be a Simple Registration data field
// and may only be listed once across Required and Optional.
func (r *Request) Validate() error {
	const op = "sreg.(Request).Validate"
	if r == nil {
		return fmt.Errorf("%s: request is nil: %w", op, ErrNilParameter)
	}
	var retErr *multierror.Error
	known := DataFields()
	seen := make([]string, 0, len(r.Required)+len(r.Optional))
	for _, f := range append(append([]string{}, r.Required...), r.Optional...) {
		if !strutil.StrListContains(known, f) {
			retErr = multierror.Append(retErr, fmt.Errorf("%s: %q: %w", op, f, ErrInvalidField))
			continue
		}
		if strutil.StrListContains(seen, f) {
			retErr = multierror.Append(retErr, fmt.Errorf("%s: %q requested more than once: %w", op, f, ErrInvalidField))
			continue
		}
		seen = append(seen, f)
	}
	return retErr.ErrorOrNil()
}

// Extend adds the request's arguments to the form values of an outgoing
// OpenID authentication request. An SReg 1.1 namespace is declared only when
// args is an OpenID 2.0 message (it carries "openid.ns").
func (r *Request) Extend(args url.Values) error {
	const op = "sreg.(Request).Extend"
	if args == nil {
		return fmt.Errorf("%s: args are nil: %w", op, ErrNilParameter)
	}
	if err := r.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if args.Get("openid.ns") != "" {
		args.Set("openid.ns."+DefaultAlias, NSURI_1_1)
	}
	prefix := "openid." + DefaultAlias + "."
	if len(r.Required) > 0 {
		args.Set(prefix+"required", strings.Join(r.Required, ","))
	}
	if len(r.Optional) > 0 {
		args.Set(prefix+"optional", strings.Join(r.Optional, ","))
	}
	if r.PolicyURL != "" {
		args.Set(prefix+"policy_url", r.PolicyURL)
	}
	return nil
}

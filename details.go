// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package openid

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/hashicorp/cap-openid/sreg"
)

// Canonical field names of the host's user model, plus the nickname which
// providers map and which becomes the username.
const (
	FieldUsername  = "username"
	FieldEmail     = "email"
	FieldFullname  = "fullname"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldNickname  = "nickname"
)

// CanonicalFields returns the field names every UserDetails carries.
func CanonicalFields() []string {
	return []string{FieldUsername, FieldEmail, FieldFullname, FieldFirstName, FieldLastName}
}

// UserDetails are the canonical user fields derived from a provider's
// response. Fields the provider didn't supply are empty strings.
type UserDetails struct {
	Username  string
	Email     string
	Fullname  string
	FirstName string
	LastName  string
}

// AsMap returns the details keyed by canonical field name. The map always
// has exactly the keys of CanonicalFields.
func (d *UserDetails) AsMap() map[string]string {
	if d == nil {
		d = &UserDetails{}
	}
	return map[string]string{
		FieldUsername:  d.Username,
		FieldEmail:     d.Email,
		FieldFullname:  d.Fullname,
		FieldFirstName: d.FirstName,
		FieldLastName:  d.LastName,
	}
}

// ValuesFromResponse returns one value per mapping in attrs, keyed by the
// mapping's canonical name. Aliases the provider didn't send map to an empty
// string. A response without any Simple Registration data is not an error:
// it's logged and every value is empty.
//
// Supported options: WithLogger, WithSignedOnly, WithNormalizedValues
func ValuesFromResponse(r *Response, attrs AttributeMap, opt ...Option) (map[string]string, error) {
	const op = "openid.ValuesFromResponse"
	if r == nil {
		return nil, fmt.Errorf("%s: response is nil: %w", op, ErrNilParameter)
	}
	if err := attrs.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	opts := getValuesOpts(opt...)

	resp, ok := sreg.FromSuccessResponse(r, opts.withSignedOnly)
	if !ok {
		opts.withLogger.Warn("response carries no simple registration data",
			"claimed_id", r.ClaimedID(),
			"op_endpoint", r.Endpoint(),
			"signed_only", opts.withSignedOnly,
		)
	}
	values := make(map[string]string, len(attrs))
	for _, a := range attrs {
		v := resp.Get(a.Alias)
		if opts.withNormalizedValues {
			v = norm.NFC.String(v)
		}
		values[a.Name] = v
	}
	return values, nil
}

// SRegUserDetails builds the UserDetails for a provider which only supports
// Simple Registration. The values mapped by attrs are merged over empty
// canonical fields and then passed to NewUserDetails.
//
// Supported options: WithLogger, WithSignedOnly, WithNormalizedValues
func SRegUserDetails(r *Response, attrs AttributeMap, opt ...Option) (*UserDetails, error) {
	const op = "openid.SRegUserDetails"
	values := make(map[string]string, len(attrs)+len(CanonicalFields()))
	for _, f := range CanonicalFields() {
		values[f] = ""
	}
	mapped, err := ValuesFromResponse(r, attrs, opt...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for k, v := range mapped {
		values[k] = v
	}
	return NewUserDetails(values), nil
}

// NewUserDetails derives UserDetails from mapped values:
//   - an empty fullname is synthesized as "first_name last_name" when both
//     are set.
//   - otherwise a non-empty fullname is split on its last space into
//     first_name and last_name. A fullname without a space becomes the
//     last_name and first_name is left as it was.
//   - the username is the nickname.
func NewUserDetails(values map[string]string) *UserDetails {
	fullname := values[FieldFullname]
	first := values[FieldFirstName]
	last := values[FieldLastName]

	switch {
	case fullname == "" && first != "" && last != "":
		fullname = first + " " + last
	case fullname != "":
		if f, l, ok := SplitFullName(fullname); ok {
			first, last = f, l
		} else {
			last = fullname
		}
	}
	return &UserDetails{
		Username:  values[FieldNickname],
		Email:     values[FieldEmail],
		Fullname:  fullname,
		FirstName: first,
		LastName:  last,
	}
}

// SplitFullName splits name on its last space. Everything before it is the
// first name and the final token is the last name. ok is false when name has
// no space.
func SplitFullName(name string) (first, last string, ok bool) {
	i := strings.LastIndex(name, " ")
	if i < 0 {
		return "", "", false
	}
	return name[:i], name[i+1:], true
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package sreg implements the consumer side of the OpenID Simple Registration
// extension (versions 1.0 and 1.1): reading the attributes a provider
// returned in a positive assertion and adding an SReg request to an outgoing
// authentication request.
//
// See: https://openid.net/specs/openid-simple-registration-extension-1_1-01.html
package sreg

import (
	"sort"
	"strings"
)

const (
	// NSURI_1_1 is the namespace URI of SReg 1.1
	NSURI_1_1 = "http://openid.net/extensions/sreg/1.1"

	// NSURI_1_0 is the namespace URI of SReg 1.0
	NSURI_1_0 = "http://openid.net/sreg/1.0"

	// DefaultAlias is the namespace alias used by OpenID 1.x messages and by
	// providers which send SReg arguments without declaring a namespace.
	DefaultAlias = "sreg"
)

// The Simple Registration data fields.
const (
	FieldNickname = "nickname"
	FieldEmail    = "email"
	FieldFullname = "fullname"
	FieldDob      = "dob"
	FieldGender   = "gender"
	FieldPostcode = "postcode"
	FieldCountry  = "country"
	FieldLanguage = "language"
	FieldTimezone = "timezone"
)

// DataFields returns the Simple Registration data field names.
func DataFields() []string {
	return []string{
		FieldNickname,
		FieldEmail,
		FieldFullname,
		FieldDob,
		FieldGender,
		FieldPostcode,
		FieldCountry,
		FieldLanguage,
		FieldTimezone,
	}
}

// Message is the read-only view of a verified positive assertion that SReg
// parsing needs. Keys never carry the "openid." prefix.
type Message interface {
	// NamespaceAlias returns the alias the message declared for uri.
	NamespaceAlias(uri string) (string, bool)

	// NamespaceURI returns the namespace uri the message bound alias to.
	NamespaceURI(alias string) (string, bool)

	// Args returns the arguments under "<alias>." with that prefix removed.
	Args(alias string) map[string]string

	// Signed reports whether key is in the assertion's signed list.
	Signed(key string) bool
}

// Response is the set of Simple Registration attributes a provider returned.
type Response struct {
	nsURI string
	alias string
	data  map[string]string
}

// FromSuccessResponse reads the Simple Registration arguments of a verified
// positive assertion. It returns false when the message carries no SReg data,
// which is a legitimate answer from a provider and not an error.
//
// When signedOnly is true, every SReg argument must be covered by the
// assertion's signature or the whole set is ignored.
func FromSuccessResponse(m Message, signedOnly bool) (*Response, bool) {
	if m == nil {
		return nil, false
	}
	nsURI, alias, ok := resolveNamespace(m)
	if !ok {
		return nil, false
	}
	args := m.Args(alias)
	if len(args) == 0 {
		return nil, false
	}
	data := make(map[string]string, len(args))
	for k, v := range args {
		if signedOnly && !m.Signed(alias+"."+k) {
			return nil, false
		}
		data[k] = v
	}
	return &Response{
		nsURI: nsURI,
		alias: alias,
		data:  data,
	}, true
}

// resolveNamespace prefers a declared 1.1 namespace, then 1.0, and finally
// falls back to the default alias when it isn't bound to something else.
func resolveNamespace(m Message) (nsURI string, alias string, ok bool) {
	for _, uri := range []string{NSURI_1_1, NSURI_1_0} {
		if a, found := m.NamespaceAlias(uri); found {
			return uri, a, true
		}
	}
	if bound, found := m.NamespaceURI(DefaultAlias); found && bound != NSURI_1_1 {
		return "", "", false
	}
	return NSURI_1_1, DefaultAlias, true
}

// NSURI returns the namespace uri the attributes were sent under.
func (r *Response) NSURI() string {
	if r == nil {
		return ""
	}
	return r.nsURI
}

// Alias returns the namespace alias the attributes were sent under.
func (r *Response) Alias() string {
	if r == nil {
		return ""
	}
	return r.alias
}

// Lookup returns the value for key. The key may be a bare field name
// ("email") or one qualified by the namespace alias ("sreg.email"); the exact
// key always wins.
func (r *Response) Lookup(key string) (string, bool) {
	if r == nil {
		return "", false
	}
	if v, ok := r.data[key]; ok {
		return v, true
	}
	for _, prefix := range []string{r.alias + ".", DefaultAlias + "."} {
		if stripped := strings.TrimPrefix(key, prefix); stripped != key {
			if v, ok := r.data[stripped]; ok {
				return v, true
			}
		}
	}
	return "", false
}

// Get returns the value for key or an empty string. See Lookup.
func (r *Response) Get(key string) string {
	v, _ := r.Lookup(key)
	return v
}

// Fields returns the sorted keys the provider sent.
func (r *Response) Fields() []string {
	if r == nil {
		return nil
	}
	keys := make([]string, 0, len(r.data))
	for k := range r.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

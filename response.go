// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package openid

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/hashicorp/go-secure-stdlib/strutil"
)

const (
	// NSOpenID2 is the namespace of OpenID 2.0 messages
	NSOpenID2 = "http://specs.openid.net/auth/2.0"

	// NSOpenID10 and NSOpenID11 are the optional namespaces of OpenID 1.x
	// messages
	NSOpenID10 = "http://openid.net/signon/1.0"
	NSOpenID11 = "http://openid.net/signon/1.1"
)

// Modes of an indirect response to the relying party.
const (
	ModePositiveAssertion = "id_res"
	ModeCancel            = "cancel"
	ModeError             = "error"
)

const argPrefix = "openid."

// Response is a positive assertion which the host's OpenID library has
// already verified. It is read-only and only lives for one authentication
// attempt. Response satisfies sreg.Message.
type Response struct {
	args   map[string]string
	signed []string
}

// NewResponse creates a Response from the form values of the return_to
// request. Only "openid." prefixed arguments are kept (without the prefix)
// and the mode must be id_res.
func NewResponse(args url.Values) (*Response, error) {
	const op = "openid.NewResponse"
	if args == nil {
		return nil, fmt.Errorf("%s: args are nil: %w", op, ErrNilParameter)
	}
	m := make(map[string]string, len(args))
	for k, v := range args {
		if !strings.HasPrefix(k, argPrefix) || len(v) == 0 {
			continue
		}
		m[strings.TrimPrefix(k, argPrefix)] = v[0]
	}
	if mode := m["mode"]; mode != ModePositiveAssertion {
		return nil, fmt.Errorf("%s: mode %q: %w", op, mode, ErrNotPositiveAssertion)
	}
	var signed []string
	if s := m["signed"]; s != "" {
		signed = strutil.ParseDedupAndSortStrings(s, ",")
	}
	return &Response{
		args:   m,
		signed: signed,
	}, nil
}

// Mode of the response (always id_res)
func (r *Response) Mode() string { return r.args["mode"] }

// Namespace of the message; empty for OpenID 1.x providers which don't send one.
func (r *Response) Namespace() string { return r.args["ns"] }

// IsOpenID1 reports whether the provider speaks OpenID 1.x.
func (r *Response) IsOpenID1() bool {
	switch r.Namespace() {
	case "", NSOpenID10, NSOpenID11:
		return true
	default:
		return false
	}
}

// Identity is the OP-local identifier of the user.
func (r *Response) Identity() string { return r.args["identity"] }

// ClaimedID is the identifier the user claims to own. OpenID 1.x responses
// have no claimed_id, so their identity is used.
func (r *Response) ClaimedID() string {
	if id := r.args["claimed_id"]; id != "" {
		return id
	}
	return r.Identity()
}

// Endpoint is the provider endpoint which issued the assertion. OpenID 1.x
// responses don't carry it.
func (r *Response) Endpoint() string { return r.args["op_endpoint"] }

// Arg returns the value of key, given without the "openid." prefix.
func (r *Response) Arg(key string) (string, bool) {
	v, ok := r.args[key]
	return v, ok
}

// NamespaceAlias returns the alias the response declared for uri. If more
// than one alias is bound to uri the lexically first one wins.
func (r *Response) NamespaceAlias(uri string) (string, bool) {
	for _, k := range r.sortedKeys() {
		if alias := strings.TrimPrefix(k, "ns."); alias != k && r.args[k] == uri {
			return alias, true
		}
	}
	return "", false
}

// NamespaceURI returns the namespace uri alias is bound to.
func (r *Response) NamespaceURI(alias string) (string, bool) {
	v, ok := r.args["ns."+alias]
	return v, ok
}

// Args returns a copy of the arguments under "<alias>." with that prefix
// removed.
func (r *Response) Args(alias string) map[string]string {
	prefix := alias + "."
	out := map[string]string{}
	for k, v := range r.args {
		if strings.HasPrefix(k, prefix) {
			out[strings.TrimPrefix(k, prefix)] = v
		}
	}
	return out
}

// Signed reports whether key is part of the assertion's signed list.
func (r *Response) Signed(key string) bool {
	return strutil.StrListContains(r.signed, key)
}

func (r *Response) sortedKeys() []string {
	keys := make([]string, 0, len(r.args))
	for k := range r.args {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

/*
openid is a package for writing OpenID 2.0 identity provider backends for a
host application's authentication pipeline.

The OpenID handshake itself (discovery, association and assertion signature
verification) is owned by the host. A backend only receives an already
verified positive assertion and turns the provider's Simple Registration
(SReg) attributes into the canonical user fields the host's user model
expects.

Primary types provided by the package

* Response: a verified OpenID positive assertion built from the return_to
request's form values. It is read-only and scoped to one authentication
attempt.

* AttributeMap: an ordered, provider specific list of (canonical name, provider
alias) pairs.

* UserDetails: the canonical user fields: username, email, fullname,
first_name and last_name. Every field is always present, even when the
provider omitted it.

* Backend: the capability set a provider implements: its OpenID endpoint, the
user details for a response and the extra data to store with the user.

* Registry: a mapping from provider name to a Backend factory.

The openid/sreg package

The sreg package parses the Simple Registration extension out of a response
and builds SReg request arguments for an outgoing authentication request.

The openid/providers package

The providers package holds the built-in backends (for example
providers/turkcell) and a registry populated with all of them.

The openid/callback package

The callback package includes the ability to create a http.HandlerFunc for
the return_to leg of the OpenID flow, which verifies the assertion with a host
supplied Verifier and hands the resulting UserDetails to the host.
*/
package openid

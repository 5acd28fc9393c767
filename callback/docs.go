// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

/*
callback is a package that provides a http.HandlerFunc for the return_to leg
of an OpenID authentication, where the provider redirects the user agent back
to the relying party with its assertion.

The handler doesn't verify assertions itself: signature, nonce and return_to
checks are done by the host supplied Verifier. Once an assertion is verified
the handler asks the openid.Backend for the user's details and extra data and
passes them to a SuccessResponseFunc. Every other outcome (cancellation,
provider errors, verification failures) is passed to an ErrorResponseFunc.
*/
package callback

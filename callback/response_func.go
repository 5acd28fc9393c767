// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package callback

import (
	"net/http"

	openid "github.com/hashicorp/cap-openid"
)

// SuccessResponseFunc is used by callbacks to create a http response when the
// callback is successful.
//
// The attemptID uniquely identifies the authentication attempt in the logs.
// The openid.UserDetails and extraData are what the host needs to look up or
// create its user; the verified openid.Response is passed along for the
// claimed identifier. The function should use the http.ResponseWriter to send
// back whatever content (headers, html, JSON, etc) it wishes to the client
// that originated the OpenID flow.
type SuccessResponseFunc func(attemptID string, r *openid.Response, d *openid.UserDetails, extraData string, w http.ResponseWriter, req *http.Request)

// ErrorResponseFunc is used by callbacks to create a http response when the
// callback fails.
//
// The function gets either the provider's error response or the error raised
// while processing the request. The function should use the
// http.ResponseWriter to send back whatever content (headers, html, JSON,
// etc) it wishes to the client that originated the OpenID flow.
type ErrorResponseFunc func(attemptID string, respErr *AuthenErrorResponse, e error, w http.ResponseWriter, req *http.Request)

// AuthenErrorResponse represents an OpenID indirect error response. See:
// https://openid.net/specs/openid-authentication-2_0.html#indirect_comm
type AuthenErrorResponse struct {
	Error     string
	Contact   string
	Reference string
}

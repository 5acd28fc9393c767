// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package callback

import (
	"fmt"
	"net/http"

	"github.com/hashicorp/go-uuid"

	openid "github.com/hashicorp/cap-openid"
)

// Assertion creates an OpenID return_to callback handler for the backend b.
// Assertions are verified with v before b is asked for the user's details.
//
// The SuccessResponseFunc is used to create a response when callback is
// successful. The ErrorResponseFunc is to create a response when the callback
// fails.
//
// Supported options: WithLogger, WithMetrics
func Assertion(b openid.Backend, v Verifier, sFn SuccessResponseFunc, eFn ErrorResponseFunc, opt ...openid.Option) (http.HandlerFunc, error) {
	const op = "callback.Assertion"
	switch {
	case b == nil:
		return nil, fmt.Errorf("%s: backend is nil: %w", op, openid.ErrInvalidParameter)
	case v == nil:
		return nil, fmt.Errorf("%s: verifier is nil: %w", op, openid.ErrInvalidParameter)
	case sFn == nil:
		return nil, fmt.Errorf("%s: success response func is nil: %w", op, openid.ErrInvalidParameter)
	case eFn == nil:
		return nil, fmt.Errorf("%s: error response func is nil: %w", op, openid.ErrInvalidParameter)
	}
	opts := getCallbackOpts(opt...)
	provider := b.Name()
	logger := opts.withLogger.Named(provider)

	return func(w http.ResponseWriter, req *http.Request) {
		attemptID, err := uuid.GenerateUUID()
		if err != nil {
			logger.Error("unable to generate attempt id", "error", err)
		}
		l := logger.With("attempt_id", attemptID)
		fail := func(outcome string, respErr *AuthenErrorResponse, e error) {
			opts.withMetrics.observe(provider, outcome)
			l.Debug("callback failed", "outcome", outcome, "error", e)
			eFn(attemptID, respErr, e, w, req)
		}

		// get parameters from either the body or query parameters.
		if err := req.ParseForm(); err != nil {
			fail(OutcomeInvalidRequest, nil, fmt.Errorf("%s: unable to parse form: %v: %w", op, err, ErrInvalidRequest))
			return
		}
		args := req.Form

		switch args.Get("openid.mode") {
		case openid.ModeCancel:
			fail(OutcomeCanceled, nil, fmt.Errorf("%s: %w", op, ErrCanceled))
			return
		case openid.ModeError:
			fail(OutcomeProviderError, &AuthenErrorResponse{
				Error:     args.Get("openid.error"),
				Contact:   args.Get("openid.contact"),
				Reference: args.Get("openid.reference"),
			}, nil)
			return
		}

		if err := v.Verify(req.Context(), requestURL(req), args); err != nil {
			fail(OutcomeVerificationFailed, nil, fmt.Errorf("%s: %v: %w", op, err, ErrVerificationFailed))
			return
		}
		r, err := openid.NewResponse(args)
		if err != nil {
			fail(OutcomeInvalidRequest, nil, fmt.Errorf("%s: %w", op, err))
			return
		}
		d, err := b.UserDetails(r)
		if err != nil {
			fail(OutcomeDetailsFailed, nil, fmt.Errorf("%s: unable to get user details: %w", op, err))
			return
		}
		extra := b.ExtraData(r.ClaimedID(), r, d)

		opts.withMetrics.observe(provider, OutcomeSuccess)
		l.Debug("callback succeeded", "claimed_id", r.ClaimedID(), "username", d.Username)
		sFn(attemptID, r, d, extra, w, req)
	}, nil
}

// requestURL rebuilds the absolute url the provider redirected to, which the
// Verifier compares with the assertion's return_to.
func requestURL(req *http.Request) string {
	u := *req.URL
	u.Host = req.Host
	u.Scheme = "http"
	if req.TLS != nil {
		u.Scheme = "https"
	}
	return u.String()
}

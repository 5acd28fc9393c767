// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package callback

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	openid "github.com/hashicorp/cap-openid"
	"github.com/hashicorp/cap-openid/providers/turkcell"
	"github.com/hashicorp/cap-openid/sreg"
)

const testReturnTo = "http://rp.example.com/complete/turkcell/"

// testSuccessFn is a test SuccessResponseFunc
func testSuccessFn(attemptID string, r *openid.Response, d *openid.UserDetails, extra string, w http.ResponseWriter, req *http.Request) {
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(d.AsMap())
}

// testFailFn is a test ErrorResponseFunc
func testFailFn(attemptID string, r *AuthenErrorResponse, e error, w http.ResponseWriter, req *http.Request) {
	if e != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(&AuthenErrorResponse{
			Error:     "internal-callback-error",
			Reference: e.Error(),
		})
		return
	}
	if r != nil {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(r)
		return
	}
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(&AuthenErrorResponse{
		Error: "unknown-callback-error",
	})
}

// testVerifier only checks the assertion's return_to against the request
// url.
var testVerifier = VerifierFunc(func(_ context.Context, requestURL string, args url.Values) error {
	if !strings.HasPrefix(requestURL, args.Get("openid.return_to")) {
		return fmt.Errorf("return_to %q doesn't match %q", args.Get("openid.return_to"), requestURL)
	}
	return nil
})

// testFailingBackend never returns user details.
type testFailingBackend struct{}

func (testFailingBackend) Name() string        { return "failing" }
func (testFailingBackend) ProviderURL() string { return "https://op.example.com/" }
func (testFailingBackend) UserDetails(*openid.Response) (*openid.UserDetails, error) {
	return nil, errors.New("backend unavailable")
}
func (testFailingBackend) ExtraData(string, *openid.Response, *openid.UserDetails) string { return "" }

func testPositiveAssertion(extra url.Values) url.Values {
	args := url.Values{
		"openid.ns":          {openid.NSOpenID2},
		"openid.mode":        {openid.ModePositiveAssertion},
		"openid.op_endpoint": {turkcell.OpenIDURL},
		"openid.claimed_id":  {"http://turkcellid.turkcell.com.tr/id/jane"},
		"openid.identity":    {"http://turkcellid.turkcell.com.tr/id/jane"},
		"openid.return_to":   {testReturnTo},
	}
	for k, v := range extra {
		args[k] = v
	}
	return args
}

func TestAssertion(t *testing.T) {
	t.Parallel()
	b, err := turkcell.New()
	require.NoError(t, err)

	tests := []struct {
		name      string
		b         openid.Backend
		v         Verifier
		sFn       SuccessResponseFunc
		eFn       ErrorResponseFunc
		wantErr   bool
		wantIsErr error
	}{
		{"valid", b, testVerifier, testSuccessFn, testFailFn, false, nil},
		{"nil-b", nil, testVerifier, testSuccessFn, testFailFn, true, openid.ErrInvalidParameter},
		{"nil-v", b, nil, testSuccessFn, testFailFn, true, openid.ErrInvalidParameter},
		{"nil-sFn", b, testVerifier, nil, testFailFn, true, openid.ErrInvalidParameter},
		{"nil-eFn", b, testVerifier, testSuccessFn, nil, true, openid.ErrInvalidParameter},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert, require := assert.New(t), require.New(t)
			got, err := Assertion(tt.b, tt.v, tt.sFn, tt.eFn)
			if tt.wantErr {
				require.Error(err)
				assert.ErrorIs(err, tt.wantIsErr)
				assert.Nil(got)
				return
			}
			require.NoError(err)
			assert.NotNil(got)
		})
	}
}

func Test_AssertionResponses(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		backend        openid.Backend
		args           url.Values
		method         string
		wantStatusCode int
		wantDetails    map[string]string
		wantRespError  string
		wantReference  string
		wantOutcome    string
	}{
		{
			name: "basic",
			args: testPositiveAssertion(url.Values{
				"openid.ns.sreg":            {sreg.NSURI_1_1},
				"openid.sreg.sreg.email":    {"jane@example.com"},
				"openid.sreg.sreg.fullname": {"Jane Q Doe"},
				"openid.sreg.sreg.nickname": {"jane"},
			}),
			wantStatusCode: http.StatusOK,
			wantDetails: map[string]string{
				openid.FieldUsername:  "jane",
				openid.FieldEmail:     "jane@example.com",
				openid.FieldFullname:  "Jane Q Doe",
				openid.FieldFirstName: "Jane Q",
				openid.FieldLastName:  "Doe",
			},
			wantOutcome: OutcomeSuccess,
		},
		{
			name:           "post-without-sreg",
			method:         http.MethodPost,
			args:           testPositiveAssertion(nil),
			wantStatusCode: http.StatusOK,
			wantDetails: map[string]string{
				openid.FieldUsername:  "",
				openid.FieldEmail:     "",
				openid.FieldFullname:  "",
				openid.FieldFirstName: "",
				openid.FieldLastName:  "",
			},
			wantOutcome: OutcomeSuccess,
		},
		{
			name:           "canceled",
			args:           url.Values{"openid.mode": {openid.ModeCancel}},
			wantStatusCode: http.StatusInternalServerError,
			wantRespError:  "internal-callback-error",
			wantReference:  "authentication canceled",
			wantOutcome:    OutcomeCanceled,
		},
		{
			name: "provider-error",
			args: url.Values{
				"openid.mode":      {openid.ModeError},
				"openid.error":     {"server busy"},
				"openid.reference": {"ref-1"},
			},
			wantStatusCode: http.StatusUnauthorized,
			wantRespError:  "server busy",
			wantReference:  "ref-1",
			wantOutcome:    OutcomeProviderError,
		},
		{
			name: "bad-return-to",
			args: testPositiveAssertion(url.Values{
				"openid.return_to": {"http://evil.example.com/"},
			}),
			wantStatusCode: http.StatusInternalServerError,
			wantRespError:  "internal-callback-error",
			wantReference:  "assertion verification failed",
			wantOutcome:    OutcomeVerificationFailed,
		},
		{
			name: "setup-needed",
			args: testPositiveAssertion(url.Values{
				"openid.mode": {"setup_needed"},
			}),
			wantStatusCode: http.StatusInternalServerError,
			wantRespError:  "internal-callback-error",
			wantReference:  "not a positive assertion",
			wantOutcome:    OutcomeInvalidRequest,
		},
		{
			name:           "details-failed",
			backend:        testFailingBackend{},
			args:           testPositiveAssertion(nil),
			wantStatusCode: http.StatusInternalServerError,
			wantRespError:  "internal-callback-error",
			wantReference:  "backend unavailable",
			wantOutcome:    OutcomeDetailsFailed,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert, require := assert.New(t), require.New(t)

			var b openid.Backend = tt.backend
			if b == nil {
				tb, err := turkcell.New()
				require.NoError(err)
				b = tb
			}
			m, err := NewMetrics(prometheus.NewRegistry())
			require.NoError(err)
			h, err := Assertion(b, testVerifier, testSuccessFn, testFailFn, WithMetrics(m))
			require.NoError(err)

			var req *http.Request
			switch tt.method {
			case http.MethodPost:
				req = httptest.NewRequest(http.MethodPost, testReturnTo, strings.NewReader(tt.args.Encode()))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			default:
				req = httptest.NewRequest(http.MethodGet, testReturnTo+"?"+tt.args.Encode(), nil)
			}
			rec := httptest.NewRecorder()
			h(rec, req)

			assert.Equal(tt.wantStatusCode, rec.Code)
			assert.Equal(1.0, testutil.ToFloat64(m.attempts.WithLabelValues(b.Name(), tt.wantOutcome)))

			if tt.wantDetails != nil {
				var got map[string]string
				require.NoError(json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(tt.wantDetails, got)
				return
			}
			var errResp AuthenErrorResponse
			require.NoError(json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.Equal(tt.wantRespError, errResp.Error)
			assert.Contains(errResp.Reference, tt.wantReference)
		})
	}
}

func TestNewMetrics(t *testing.T) {
	t.Parallel()
	t.Run("register-twice", func(t *testing.T) {
		assert, require := assert.New(t), require.New(t)
		reg := prometheus.NewRegistry()
		m1, err := NewMetrics(reg)
		require.NoError(err)
		m2, err := NewMetrics(reg)
		require.NoError(err)
		m1.observe("turkcell", OutcomeSuccess)
		m2.observe("turkcell", OutcomeSuccess)
		assert.Equal(2.0, testutil.ToFloat64(m1.attempts.WithLabelValues("turkcell", OutcomeSuccess)))
	})
	t.Run("nil-metrics", func(t *testing.T) {
		var m *Metrics
		assert.NotPanics(t, func() { m.observe("turkcell", OutcomeSuccess) })
	})
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package callback

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcomes of a callback attempt, used as the "outcome" label.
const (
	OutcomeSuccess            = "success"
	OutcomeCanceled           = "canceled"
	OutcomeProviderError      = "provider_error"
	OutcomeInvalidRequest     = "invalid_request"
	OutcomeVerificationFailed = "verification_failed"
	OutcomeDetailsFailed      = "details_failed"
)

// Metrics counts callback attempts by provider and outcome.
type Metrics struct {
	attempts *prometheus.CounterVec
}

// NewMetrics creates the callback metrics and registers them with reg, or
// the default registerer when reg is nil. Registering twice with the same
// registerer reuses the existing collector.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	const op = "callback.NewMetrics"
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	attempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "openid",
		Subsystem: "callback",
		Name:      "attempts_total",
		Help:      "OpenID callback attempts by provider and outcome",
	}, []string{"provider", "outcome"})
	if err := reg.Register(attempts); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, fmt.Errorf("%s: unable to register attempts counter: %w", op, err)
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, fmt.Errorf("%s: attempts counter registered with another type: %w", op, err)
		}
		attempts = existing
	}
	return &Metrics{attempts: attempts}, nil
}

func (m *Metrics) observe(provider, outcome string) {
	if m == nil {
		return
	}
	m.attempts.WithLabelValues(provider, outcome).Inc()
}

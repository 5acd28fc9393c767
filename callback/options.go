// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package callback

import (
	"github.com/hashicorp/go-hclog"

	openid "github.com/hashicorp/cap-openid"
)

type callbackOptions struct {
	withLogger  hclog.Logger
	withMetrics *Metrics
}

func callbackDefaults() callbackOptions {
	return callbackOptions{
		withLogger: hclog.NewNullLogger(),
	}
}

func getCallbackOpts(opt ...openid.Option) callbackOptions {
	opts := callbackDefaults()
	openid.ApplyOpts(&opts, opt...)
	if opts.withLogger == nil {
		opts.withLogger = hclog.NewNullLogger()
	}
	return opts
}

// WithLogger provides an optional logger for the callback.
func WithLogger(l hclog.Logger) openid.Option {
	return func(o interface{}) {
		if o, ok := o.(*callbackOptions); ok {
			o.withLogger = l
		}
	}
}

// WithMetrics provides optional metrics for the callback.
func WithMetrics(m *Metrics) openid.Option {
	return func(o interface{}) {
		if o, ok := o.(*callbackOptions); ok {
			o.withMetrics = m
		}
	}
}

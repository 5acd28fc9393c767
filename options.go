// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package openid

import "github.com/hashicorp/go-hclog"

// Option defines a common functional options type which can be used in a
// variadic parameter pattern.
type Option func(interface{})

// ApplyOpts takes a pointer to the options struct as a set of default options
// and applies the slice of opts as overrides.
func ApplyOpts(opts interface{}, opt ...Option) {
	for _, o := range opt {
		if o == nil { // ignore any nil Options
			continue
		}
		o(opts)
	}
}

// valuesOptions is the set of available options for ValuesFromResponse and
// SRegUserDetails
type valuesOptions struct {
	withLogger           hclog.Logger
	withSignedOnly       bool
	withNormalizedValues bool
}

func valuesDefaults() valuesOptions {
	return valuesOptions{
		withLogger: hclog.NewNullLogger(),
	}
}

// getValuesOpts gets the defaults and applies the opt overrides passed
// in.
func getValuesOpts(opt ...Option) valuesOptions {
	opts := valuesDefaults()
	ApplyOpts(&opts, opt...)
	if opts.withLogger == nil {
		opts.withLogger = hclog.NewNullLogger()
	}
	return opts
}

// WithLogger provides an optional logger.
func WithLogger(l hclog.Logger) Option {
	return func(o interface{}) {
		if o, ok := o.(*valuesOptions); ok {
			o.withLogger = l
		}
	}
}

// WithSignedOnly requires every SReg argument of a response to be covered by
// the assertion's signature. If any of them is not, the response is treated
// as carrying no SReg data at all.
func WithSignedOnly() Option {
	return func(o interface{}) {
		if o, ok := o.(*valuesOptions); ok {
			o.withSignedOnly = true
		}
	}
}

// WithNormalizedValues applies Unicode NFC normalization to every value
// extracted from a response.
func WithNormalizedValues() Option {
	return func(o interface{}) {
		if o, ok := o.(*valuesOptions); ok {
			o.withNormalizedValues = true
		}
	}
}

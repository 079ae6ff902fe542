/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

package crc32c

import (
	"github.com/dgraph-io/crc32c/y"
)

// Options are params for creating a Checksummer.
//
// This package provides DefaultOptions which contains options that should
// work for most applications. Consider using that as a starting point before
// customizing it for your own needs.
//
// Each option X is documented on the WithX method.
type Options struct {
	Implementation Implementation
	MetricsEnabled bool
	Logger         y.Logger
}

// DefaultOptions picks the fastest implementation, records metrics and logs
// to stderr.
func DefaultOptions() Options {
	return Options{
		Implementation: Auto,
		MetricsEnabled: true,
		Logger:         y.DefaultLogger(),
	}
}

// WithImplementation returns a new Options value with Implementation set to
// the given value.
//
// Auto resolves to Hardware when available. Forcing Hardware on a CPU without
// the instruction makes NewChecksummer fail with ErrUnavailable.
//
// The default value of Implementation is Auto.
func (opt Options) WithImplementation(impl Implementation) Options {
	opt.Implementation = impl
	return opt
}

// WithMetricsEnabled returns a new Options value with MetricsEnabled set to
// the given value.
//
// When set, every update adds to the crc32c_updates_total and
// crc32c_bytes_total expvar maps keyed by implementation name.
//
// The default value of MetricsEnabled is true.
func (opt Options) WithMetricsEnabled(val bool) Options {
	opt.MetricsEnabled = val
	return opt
}

// WithLogger returns a new Options value with Logger set to the given value.
//
// Logger provides a way to configure what logger each Checksummer uses. A nil
// Logger disables logging.
//
// The default value of Logger writes to stderr using the log package from the
// Go standard library.
func (opt Options) WithLogger(val y.Logger) Options {
	opt.Logger = val
	return opt
}

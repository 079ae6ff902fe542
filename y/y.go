/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package y holds the logging, metrics, error and buffer helpers shared by
// the crc32c packages and tools.
package y

import (
	"context"

	"golang.org/x/net/trace"
)

// Trace records a lazily formatted event on the trace carried by ctx, if any.
func Trace(ctx context.Context, format string, args ...interface{}) {
	tr, ok := trace.FromContext(ctx)
	if !ok {
		return
	}
	tr.LazyPrintf(format, args...)
}

// TraceError records err on the trace carried by ctx and marks it failed.
func TraceError(ctx context.Context, err error) {
	tr, ok := trace.FromContext(ctx)
	if !ok || err == nil {
		return
	}
	tr.LazyPrintf("%v", err)
	tr.SetError()
}

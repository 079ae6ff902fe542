/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

package y

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/trace"
)

func TestTraceWithoutTrace(t *testing.T) {
	require.NotPanics(t, func() {
		Trace(context.Background(), "nothing %d", 1)
		TraceError(context.Background(), errors.New("nothing"))
	})
}

func TestTraceWithTrace(t *testing.T) {
	tr := trace.New("y.test", "trace")
	defer tr.Finish()
	ctx := trace.NewContext(context.Background(), tr)
	require.NotPanics(t, func() {
		Trace(ctx, "read %d bytes", 10)
		TraceError(ctx, errors.New("short read"))
		TraceError(ctx, nil)
	})
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := &defaultLog{Logger: log.New(&buf, "", 0), level: WARNING}

	l.Debugf("d")
	l.Infof("i")
	require.Empty(t, buf.String())

	l.Warningf("w %d", 1)
	l.Errorf("e")
	require.Equal(t, "WARNING: w 1\nERROR: e\n", buf.String())
}

func TestNopLogger(t *testing.T) {
	require.NotPanics(t, func() {
		l := NopLogger()
		l.Errorf("x")
		l.Warningf("x")
		l.Infof("x")
		l.Debugf("x")
	})
}

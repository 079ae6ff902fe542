/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

package y

import (
	"expvar"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetricsDisabled(t *testing.T) {
	NumUpdatesAdd(false, "metrics-test-disabled", 10)
	require.Nil(t, NumUpdatesGet(false, "metrics-test-disabled"))
	require.Nil(t, numUpdates.Get("metrics-test-disabled"))
}

func TestMetricsEnabled(t *testing.T) {
	NumUpdatesAdd(true, "metrics-test-enabled", 2)
	NumUpdatesAdd(true, "metrics-test-enabled", 3)
	NumBytesAdd(true, "metrics-test-enabled", 4096)

	updates := NumUpdatesGet(true, "metrics-test-enabled")
	require.NotNil(t, updates)
	require.Equal(t, int64(5), updates.(*expvar.Int).Value())

	bytes := NumBytesGet(true, "metrics-test-enabled")
	require.Equal(t, int64(4096), bytes.(*expvar.Int).Value())

	before := NumVerifyFailuresGet()
	NumVerifyFailuresAdd(true, 1)
	NumVerifyFailuresAdd(false, 1)
	require.Equal(t, before+1, NumVerifyFailuresGet())
}

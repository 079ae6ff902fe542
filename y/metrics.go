/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

package y

import (
	"expvar"
)

var (
	// numUpdates has cumulative number of accumulator calls, keyed by implementation.
	numUpdates *expvar.Map
	// numBytes has cumulative number of bytes folded into a checksum, keyed by implementation.
	numBytes *expvar.Map
	// numVerifyFailures counts checksum verifications that did not match.
	numVerifyFailures *expvar.Int
)

// These variables are global and have cumulative values for all checksummers.
func init() {
	numUpdates = expvar.NewMap("crc32c_updates_total")
	numBytes = expvar.NewMap("crc32c_bytes_total")
	numVerifyFailures = expvar.NewInt("crc32c_verify_failures_total")
}

func NumUpdatesAdd(enabled bool, key string, val int64) {
	addToMap(enabled, numUpdates, key, val)
}

func NumBytesAdd(enabled bool, key string, val int64) {
	addToMap(enabled, numBytes, key, val)
}

func NumVerifyFailuresAdd(enabled bool, val int64) {
	addInt(enabled, numVerifyFailures, val)
}

func NumUpdatesGet(enabled bool, key string) expvar.Var {
	return getFromMap(enabled, numUpdates, key)
}

func NumBytesGet(enabled bool, key string) expvar.Var {
	return getFromMap(enabled, numBytes, key)
}

func NumVerifyFailuresGet() int64 {
	return numVerifyFailures.Value()
}

func addInt(enabled bool, metric *expvar.Int, val int64) {
	if !enabled {
		return
	}

	metric.Add(val)
}

func addToMap(enabled bool, metric *expvar.Map, key string, val int64) {
	if !enabled {
		return
	}

	metric.Add(key, val)
}

func getFromMap(enabled bool, metric *expvar.Map, key string) expvar.Var {
	if !enabled {
		return nil
	}

	return metric.Get(key)
}

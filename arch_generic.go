//go:build (!amd64 && !arm64) || noasm

/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

package crc32c

func archAvailable() bool {
	return false
}

func archFeature() string {
	return "none"
}

func archUpdate(crc uint32, p []byte) uint32 {
	panic("crc32c: no CRC32 instruction on this build")
}

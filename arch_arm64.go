//go:build !noasm

/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

package crc32c

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// castagnoliUpdate is defined in crc32c_arm64.s and uses the ARMv8 CRC32C
// instructions on 8-byte words followed by single bytes.
//
//go:noescape
func castagnoliUpdate(crc uint32, p []byte) uint32

// Every Apple arm64 core has the CRC extension but darwin does not report it.
var hasCRC32 = cpu.ARM64.HasCRC32 || runtime.GOOS == "darwin"

func archAvailable() bool {
	return hasCRC32
}

func archFeature() string {
	if !hasCRC32 {
		return "none"
	}
	return "armv8-crc32"
}

func archUpdate(crc uint32, p []byte) uint32 {
	if !hasCRC32 {
		panic("crc32c: arm64 CRC32 instruction not available")
	}
	return castagnoliUpdate(crc, p)
}

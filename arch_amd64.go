//go:build !noasm

/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

package crc32c

import (
	"golang.org/x/sys/cpu"
)

// castagnoliSSE42 is defined in crc32c_amd64.s and uses the SSE 4.2 CRC32
// instruction on 8-byte words followed by single bytes.
//
//go:noescape
func castagnoliSSE42(crc uint32, p []byte) uint32

func archAvailable() bool {
	return cpu.X86.HasSSE42
}

func archFeature() string {
	if !cpu.X86.HasSSE42 {
		return "none"
	}
	return "sse4.2"
}

func archUpdate(crc uint32, p []byte) uint32 {
	if !cpu.X86.HasSSE42 {
		panic("crc32c: SSE 4.2 CRC32 instruction not available")
	}
	return castagnoliSSE42(crc, p)
}

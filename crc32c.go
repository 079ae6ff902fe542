/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package crc32c computes CRC-32C (Castagnoli) checksums incrementally.
//
// The running state is a plain uint32 owned by the caller. Feeding a buffer
// in one call or in any number of in-order fragments gives the same result:
//
//	crc := crc32c.Update(0, head)
//	crc = crc32c.Update(crc, tail)
//
// Buffers are folded eight bytes at a time and then byte by byte. On amd64
// with SSE4.2 and on arm64 with the CRC32 extension the CRC32 instruction is
// used; everywhere else, or when built with the noasm tag, a slicing-by-8
// table gives bit-identical results.
package crc32c

import (
	"hash/crc32"
)

// Size of a CRC-32C checksum in bytes.
const Size = 4

// Castagnoli is the reversed CRC-32C polynomial.
const Castagnoli = 0x82f63b78

// wordSize is the width of the bulk phase. Words are composed little-endian
// from explicit byte reads, which is also the order the CPU instruction
// consumes them in.
const wordSize = 8

var (
	hasArch = archAvailable()

	// active is what Auto resolves to on this machine.
	active = detect()

	stdTable = crc32.MakeTable(Castagnoli)
)

func detect() Implementation {
	if hasArch {
		return Hardware
	}
	return Generic
}

// Update returns the result of folding p into crc. A zero crc starts a fresh
// checksum, an earlier result continues one. Update(crc, nil) == crc.
func Update(crc uint32, p []byte) uint32 {
	if len(p) == 0 {
		return crc
	}
	return ^rawFunc(active)(^crc, p)
}

// Checksum returns the CRC-32C of p.
func Checksum(p []byte) uint32 {
	return Update(0, p)
}

// Raw folds p into crc without the pre and post inversion of the standard
// CRC-32C convention. This is what a bare CRC32 instruction loop computes and
// it only differs from Update by the conditioning:
//
//	Raw(crc, p) == ^Update(^crc, p)
func Raw(crc uint32, p []byte) uint32 {
	if len(p) == 0 {
		return crc
	}
	return rawFunc(active)(crc, p)
}

// rawFunc returns the unconditioned update for a concrete implementation.
func rawFunc(impl Implementation) func(uint32, []byte) uint32 {
	switch impl {
	case Hardware:
		return archUpdate
	case Stdlib:
		return stdlibUpdate
	default:
		return genericUpdate
	}
}

func stdlibUpdate(crc uint32, p []byte) uint32 {
	return ^crc32.Update(^crc, stdTable, p)
}

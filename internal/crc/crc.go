/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package crc implements the masked CRC-32C used when a checksum is stored
// next to the data it covers.
//
// The algorithm is CRC-32C followed by a bit rotation and an additional
// delta. The additional processing is to lessen the probability of arbitrary
// data coincidentally containing bytes that look like its own checksum.
//
// To calculate the uint32 masked checksum of some data:
//
//	var u uint32 = crc.New(data).Value()
package crc

import (
	"github.com/dgraph-io/crc32c"
)

const maskDelta = 0xa282ead8

type CRC uint32

// New returns the result of adding the bytes to the zero-value CRC.
func New(b []byte) CRC {
	return CRC(0).Update(b)
}

// Update returns the result of adding the bytes to the CRC.
func (c CRC) Update(b []byte) CRC {
	return CRC(crc32c.Update(uint32(c), b))
}

// Value returns the masked CRC value.
func (c CRC) Value() uint32 {
	return uint32(c>>15|c<<17) + maskDelta
}

// Unmask recovers the plain CRC-32C from a value returned by Value.
func Unmask(masked uint32) uint32 {
	rot := masked - maskDelta
	return rot>>17 | rot<<15
}

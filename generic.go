/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

package crc32c

import (
	"encoding/binary"
)

type slicing8Table [8][256]uint32

var castagnoliTable8 = makeSlicing8Table(Castagnoli)

// makeSlicing8Table builds the byte table in [0] and, in [k], the effect of
// a byte followed by k zero bytes.
func makeSlicing8Table(poly uint32) *slicing8Table {
	t := new(slicing8Table)
	for i := 0; i < 256; i++ {
		crc := uint32(i)
		for j := 0; j < 8; j++ {
			if crc&1 == 1 {
				crc = (crc >> 1) ^ poly
			} else {
				crc >>= 1
			}
		}
		t[0][i] = crc
	}
	for i := 0; i < 256; i++ {
		crc := t[0][i]
		for j := 1; j < 8; j++ {
			crc = t[0][crc&0xff] ^ (crc >> 8)
			t[j][i] = crc
		}
	}
	return t
}

// genericUpdate is the portable unconditioned update.
func genericUpdate(crc uint32, p []byte) uint32 {
	tab := castagnoliTable8
	for len(p) >= wordSize {
		w := binary.LittleEndian.Uint64(p)
		lo := crc ^ uint32(w)
		hi := uint32(w >> 32)
		crc = tab[0][hi>>24] ^ tab[1][(hi>>16)&0xff] ^
			tab[2][(hi>>8)&0xff] ^ tab[3][hi&0xff] ^
			tab[4][lo>>24] ^ tab[5][(lo>>16)&0xff] ^
			tab[6][(lo>>8)&0xff] ^ tab[7][lo&0xff]
		p = p[wordSize:]
	}
	for _, b := range p {
		crc = tab[0][byte(crc)^b] ^ (crc >> 8)
	}
	return crc
}

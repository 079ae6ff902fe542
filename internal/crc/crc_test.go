/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

package crc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dgraph-io/crc32c"
)

func TestValue(t *testing.T) {
	require.Equal(t, uint32(0xc78ab0e5), New([]byte("123456789")).Value())
}

func TestIncremental(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog")
	whole := New(data)
	for k := 0; k <= len(data); k++ {
		require.Equal(t, whole, New(data[:k]).Update(data[k:]), "split at %d", k)
	}
}

func TestUnmask(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	buf := make([]byte, 512)
	for i := 0; i < 100; i++ {
		r.Read(buf)
		plain := crc32c.Checksum(buf[:i*5])
		require.Equal(t, plain, Unmask(New(buf[:i*5]).Value()))
	}
}

func TestMaskedDiffersFromPlain(t *testing.T) {
	data := []byte("123456789")
	require.NotEqual(t, crc32c.Checksum(data), New(data).Value())
}

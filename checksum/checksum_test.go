/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

package checksum

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/dgraph-io/crc32c"
)

func TestCalculate_CRC32C(t *testing.T) {
	require.Equal(t, uint64(0xe3069283), Calculate([]byte("123456789"), CRC32C))

	data := []byte("hello world")
	require.Equal(t, uint64(crc32c.Checksum(data)), Calculate(data, CRC32C))

	// empty input
	require.Equal(t, uint64(0), Calculate([]byte{}, CRC32C))
}

func TestCalculate_MaskedCRC32C(t *testing.T) {
	require.Equal(t, uint64(0xc78ab0e5), Calculate([]byte("123456789"), MaskedCRC32C))
}

func TestCalculate_XXHash64(t *testing.T) {
	data := []byte("hello world")
	require.Equal(t, xxhash.Sum64(data), Calculate(data, XXHash64))
}

func TestVerify_Success(t *testing.T) {
	data := []byte("hello world")
	for _, algo := range []Algorithm{CRC32C, MaskedCRC32C, XXHash64} {
		require.NoError(t, Verify(data, New(data, algo)), algo.String())
	}
}

func TestVerify_Mismatch(t *testing.T) {
	data := []byte("x")
	err := Verify(data, Checksum{Algo: CRC32C, Sum: 0})
	require.Error(t, err)
	require.Contains(t, err.Error(), "checksum mismatch")
	require.Equal(t, ErrChecksumMismatch, errors.Cause(err))
}

func TestCalculate_UnsupportedAlgoPanics(t *testing.T) {
	require.Panics(t, func() {
		_ = Calculate([]byte("x"), Algorithm(999))
	})
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name string
		want Algorithm
	}{
		{"crc32c", CRC32C},
		{"CRC32C", CRC32C},
		{" xxhash64 ", XXHash64},
		{"masked-crc32c", MaskedCRC32C},
	}
	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.name)
		require.NoError(t, err, tt.name)
		require.Equal(t, tt.want, got)
	}

	_, err := ParseAlgorithm("md5")
	require.Equal(t, ErrUnknownAlgorithm, errors.Cause(err))
}

func TestChecksumString(t *testing.T) {
	require.Equal(t, "crc32c:e3069283", New([]byte("123456789"), CRC32C).String())
	require.Equal(t, "xxhash64:0000000000000001", Checksum{Algo: XXHash64, Sum: 1}.String())
	require.Equal(t, "Algorithm(7)", Algorithm(7).String())
}

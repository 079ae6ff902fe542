/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

package crc32c

import (
	"fmt"
	"math/rand"
	"testing"
)

func BenchmarkUpdate(b *testing.B) {
	r := rand.New(rand.NewSource(0))
	for _, size := range []int{15, 40, 512, 1 << 10, 4 << 10, 32 << 10} {
		data := randomBytes(r, size)
		for _, impl := range Implementations() {
			raw := rawFunc(impl)
			b.Run(fmt.Sprintf("%s/%d", impl, size), func(b *testing.B) {
				b.SetBytes(int64(size))
				var crc uint32
				for i := 0; i < b.N; i++ {
					crc = ^raw(^crc, data)
				}
				_ = crc
			})
		}
		b.Run(fmt.Sprintf("bytewise/%d", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				bytewiseUpdate(0, data)
			}
		})
	}
}

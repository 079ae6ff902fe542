/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

package y

import (
	"sync"
)

// BlockPool hands out fixed size read buffers. Pointers to slices are pooled
// so Put does not allocate.
type BlockPool struct {
	BlockSize int
	pool      sync.Pool
}

func (b *BlockPool) Get() []byte {
	ptr := b.pool.Get()
	if ptr == nil {
		return make([]byte, b.BlockSize)
	}
	buf := *(ptr.(*[]byte))
	return buf[:b.BlockSize]
}

func (b *BlockPool) Put(buf []byte) {
	AssertTrue(cap(buf) == b.BlockSize)
	buf = buf[:b.BlockSize]
	b.pool.Put(&buf)
}

/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"fmt"

	"github.com/dgraph-io/ristretto/z"
	"github.com/dustin/go-humanize"

	"github.com/dgraph-io/crc32c/crc32c/cmd"
)

func main() {
	cmd.Execute()
	if n := z.NumAllocBytes(); n > 0 {
		fmt.Printf("Num Allocated Bytes at program end: %s\n", humanize.IBytes(uint64(n)))
	}
}

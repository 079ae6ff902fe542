/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

package crc32c

import (
	"strings"

	"github.com/pkg/errors"
)

// Implementation selects the code path used to fold bytes into a checksum.
// All implementations produce identical results.
type Implementation int

const (
	// Auto uses Hardware when the CPU supports it and Generic otherwise.
	Auto Implementation = iota
	// Hardware uses the CPU CRC32 instruction (SSE 4.2 or ARMv8 CRC).
	Hardware
	// Generic uses slicing-by-8 lookup tables.
	Generic
	// Stdlib delegates to hash/crc32 with a Castagnoli table.
	Stdlib
)

var implNames = [...]string{
	Auto:     "auto",
	Hardware: "hardware",
	Generic:  "generic",
	Stdlib:   "stdlib",
}

func (i Implementation) String() string {
	if i < 0 || int(i) >= len(implNames) {
		return "unknown"
	}
	return implNames[i]
}

// ParseImplementation maps a name as printed by String back to its value.
func ParseImplementation(s string) (Implementation, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range implNames {
		if n == name {
			return Implementation(i), nil
		}
	}
	return Auto, errors.Wrapf(ErrUnknownImplementation, "%q", s)
}

// Available reports whether impl can run on this machine.
func Available(impl Implementation) bool {
	switch impl {
	case Auto, Generic, Stdlib:
		return true
	case Hardware:
		return hasArch
	default:
		return false
	}
}

// Active returns the implementation Auto resolves to.
func Active() Implementation {
	return active
}

// Implementations lists the concrete implementations available here.
func Implementations() []Implementation {
	impls := make([]Implementation, 0, 3)
	for _, impl := range []Implementation{Hardware, Generic, Stdlib} {
		if Available(impl) {
			impls = append(impls, impl)
		}
	}
	return impls
}

// HardwareFeature names the detected CPU feature backing Hardware, or
// "none".
func HardwareFeature() string {
	return archFeature()
}

/*
 * SPDX-FileCopyrightText: © 2017-2025 Istari Digital, Inc.
 * SPDX-License-Identifier: Apache-2.0
 */

package crc32c

import (
	"github.com/pkg/errors"
)

var (
	// ErrUnavailable is returned when a forced implementation cannot run on
	// this CPU or build.
	ErrUnavailable = errors.New("CRC-32C implementation not available")

	// ErrUnknownImplementation is returned for an Implementation value or
	// name that does not exist.
	ErrUnknownImplementation = errors.New("Unknown CRC-32C implementation")
)

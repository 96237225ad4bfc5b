// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ironveil
// Source: github.com/ironveil/ueassets

package utoc

import (
	"errors"
	"fmt"

	"github.com/ironveil/ueassets/wire"
)

// Sentinel errors for UTOC operations, following the same wrap-a-wire-kind
// idiom as the pak package.
var (
	// ErrNotAUtoc means the header magic did not match.
	ErrNotAUtoc = errors.New("not a recognized UTOC file")
	// ErrFileTooSmall means the file is shorter than the fixed header size.
	ErrFileTooSmall = errors.New("file too small for a UTOC header")
)

func badMagic(format string, args ...any) error {
	return fmt.Errorf("%w: %s", wire.ErrBadMagic, fmt.Sprintf(format, args...))
}

func unsupportedVersion(format string, args ...any) error {
	return fmt.Errorf("%w: %s", wire.ErrUnsupportedVersion, fmt.Sprintf(format, args...))
}

func encryptedContainer(format string, args ...any) error {
	return fmt.Errorf("%w: %s", wire.ErrEncryptedContainer, fmt.Sprintf(format, args...))
}

func invalidRecord(format string, args ...any) error {
	return fmt.Errorf("%w: %s", wire.ErrInvalidRecord, fmt.Sprintf(format, args...))
}

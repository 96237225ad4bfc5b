// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ironveil
// Source: github.com/ironveil/ueassets

package pak

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ironveil/ueassets/wire"
)

// Sentinel errors for PAK operations. Use errors.Is in callers.
// ErrIndexTooLarge wraps wire.ErrInvalidRecord, and the ErrNotAPak error
// returned by Open also wraps the best-progressing probe failure, so callers
// can match those on wire's base kinds as well.
var (
	// ErrNotAPak means no known PAK version could decode the file's footer.
	ErrNotAPak = errors.New("not a recognized PAK file")
	// ErrFileTooSmall means the file is shorter than the minimum footer size.
	ErrFileTooSmall = errors.New("file too small for a PAK footer")
	// ErrIndexTooLarge means index parsing ran past the footer's declared
	// index size.
	ErrIndexTooLarge = fmt.Errorf("%w: index exceeds declared size", wire.ErrInvalidRecord)
	// ErrNilReader means a nil *Reader was used.
	ErrNilReader = errors.New("pak: reader is nil")
)

// EncryptedIndexError is returned when a probed footer declares its index
// encrypted. Open refuses to parse the index any further, but per §7's
// encryption policy the encryption GUID (read from the footer before the
// refusal point) is still reported, so a caller holding the right key out
// of band can act on it.
type EncryptedIndexError struct {
	Version           Version
	EncryptionGUID    uuid.UUID
	HasEncryptionGUID bool
}

func (e *EncryptedIndexError) Error() string {
	return fmt.Sprintf("pak: index for %s is encrypted", e.Version)
}

func (e *EncryptedIndexError) Unwrap() error { return wire.ErrEncryptedContainer }

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

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ironveil
// Source: github.com/ironveil/ueassets

// Package wire provides the shared binary primitives used by both the pak
// and utoc decoders: a positioned byte cursor, fixed-width and sub-width
// integer reads, and the engine's two string encodings.
package wire

import "errors"

// Base error kinds shared by both decoders. Callers should use errors.Is
// against these sentinels rather than inspecting decoder-specific errors
// directly; pak and utoc each wrap one of these with call-site context via
// fmt.Errorf("%w: ...", wire.ErrX).
var (
	// ErrBadMagic means a magic constant did not match.
	ErrBadMagic = errors.New("bad magic")
	// ErrUnsupportedVersion means a version value fell outside the
	// enumerated set, or a declared version was internally inconsistent.
	ErrUnsupportedVersion = errors.New("unsupported version")
	// ErrEncryptedContainer means an encrypted index or body was
	// encountered; the decoder refuses to parse it further.
	ErrEncryptedContainer = errors.New("encrypted container")
	// ErrTruncated means a read ran past the end of the buffer or file.
	ErrTruncated = errors.New("truncated")
	// ErrInvalidRecord means a field failed a structural invariant.
	ErrInvalidRecord = errors.New("invalid record")
)

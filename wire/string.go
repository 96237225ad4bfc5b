// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ironveil
// Source: github.com/ironveil/ueassets

package wire

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// ReadEngineString reads the engine's length-prefixed string encoding: a
// signed 32-bit length L. L == 0 yields "". L > 0 means L single bytes,
// truncated at the first NUL, read as UTF-8 passthrough. L < 0 means |L|
// 16-bit code units, truncated at the first zero code unit, transcoded to
// UTF-8 with full surrogate-pair support.
func (c *Cursor) ReadEngineString() (string, error) {
	length, err := c.ReadI32()
	if err != nil {
		return "", fmt.Errorf("read string length: %w", err)
	}

	switch {
	case length == 0:
		return "", nil
	case length > 0:
		raw, err := c.ReadBytes(int(length))
		if err != nil {
			return "", fmt.Errorf("read ascii string body: %w", err)
		}
		return string(TruncateAtNUL(raw)), nil
	default:
		units := -int(length)
		raw, err := c.ReadBytes(units * 2)
		if err != nil {
			return "", fmt.Errorf("read utf16 string body: %w", err)
		}
		return decodeUTF16LE(raw), nil
	}
}

// TruncateAtNUL returns b up to (not including) its first zero byte. Shared
// by both decoders for fixed-width NUL-padded byte fields (PAK's
// compression-method names, UTOC's compression-method names).
func TruncateAtNUL(b []byte) []byte {
	for i, v := range b {
		if v == 0 {
			return b[:i]
		}
	}
	return b
}

// decodeUTF16LE decodes a little-endian UTF-16 code-unit run, truncated at
// the first zero code unit, into a UTF-8 string. Surrogate pairs spanning
// the Basic Multilingual Plane boundary are fully decoded via
// unicode/utf16.Decode, rather than the BMP-only transcoding the original
// engine tooling performs (see DESIGN.md's Open Question decisions).
func decodeUTF16LE(raw []byte) string {
	units := make([]uint16, 0, len(raw)/2)
	for i := 0; i+1 < len(raw); i += 2 {
		u := uint16(raw[i]) | uint16(raw[i+1])<<8
		if u == 0 {
			break
		}
		units = append(units, u)
	}

	runes := utf16.Decode(units)
	buf := make([]byte, 0, len(runes)*utf8.UTFMax)
	var encoded [utf8.UTFMax]byte
	for _, r := range runes {
		n := utf8.EncodeRune(encoded[:], r)
		buf = append(buf, encoded[:n]...)
	}
	return string(buf)
}

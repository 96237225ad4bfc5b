// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ironveil
// Source: github.com/ironveil/ueassets

package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// AbsentIndex is the wire sentinel for an absent optional 32-bit index.
const AbsentIndex uint32 = 0xFFFFFFFF

// Cursor is a positioned reader over an io.ReaderAt. It never buffers more
// than one read's worth of bytes, so it serves both PAK's on-demand seeked
// reads and UTOC's whole-file-in-memory reads with the same primitives.
type Cursor struct {
	ra   io.ReaderAt
	pos  int64
	size int64
}

// NewCursor wraps ra (of the given total size) starting at offset 0.
func NewCursor(ra io.ReaderAt, size int64) *Cursor {
	return &Cursor{ra: ra, size: size}
}

// NewCursorBytes wraps an in-memory buffer, as used by utoc.OpenBytes.
func NewCursorBytes(b []byte) *Cursor {
	return NewCursor(bytes.NewReader(b), int64(len(b)))
}

// Pos returns the current absolute read offset.
func (c *Cursor) Pos() int64 { return c.pos }

// Size returns the total addressable size of the underlying source.
func (c *Cursor) Size() int64 { return c.size }

// Remaining returns the number of bytes between the cursor and the end.
func (c *Cursor) Remaining() int64 { return c.size - c.pos }

// SeekTo repositions the cursor to an absolute offset without reading.
func (c *Cursor) SeekTo(offset int64) {
	c.pos = offset
}

// ReadBytes reads exactly n raw bytes and advances the cursor.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative read length %d", ErrInvalidRecord, n)
	}
	if n == 0 {
		return nil, nil
	}

	buf := make([]byte, n)
	read, err := c.ra.ReadAt(buf, c.pos)
	if err != nil && !(err == io.EOF && read == n) {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("%w: read %d bytes at %d: %v", ErrTruncated, n, c.pos, err)
		}
		return nil, fmt.Errorf("read %d bytes at %d: %w", n, c.pos, err)
	}

	c.pos += int64(n)
	return buf, nil
}

// ReadInto reads exactly len(dst) raw bytes into dst and advances the cursor.
func (c *Cursor) ReadInto(dst []byte) error {
	if len(dst) == 0 {
		return nil
	}

	read, err := c.ra.ReadAt(dst, c.pos)
	if err != nil && !(err == io.EOF && read == len(dst)) {
		return fmt.Errorf("%w: read %d bytes at %d: %v", ErrTruncated, len(dst), c.pos, err)
	}

	c.pos += int64(len(dst))
	return nil
}

// ReadU8 reads one unsigned byte.
func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadI8 reads one signed byte.
func (c *Cursor) ReadI8() (int8, error) {
	v, err := c.ReadU8()
	return int8(v), err
}

// ReadU16 reads a little-endian uint16.
func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadI16 reads a little-endian int16.
func (c *Cursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	return int16(v), err
}

// ReadU32 reads a little-endian uint32.
func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadI32 reads a little-endian int32.
func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

// ReadU64 reads a little-endian uint64.
func (c *Cursor) ReadU64() (uint64, error) {
	b, err := c.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadI64 reads a little-endian int64.
func (c *Cursor) ReadI64() (int64, error) {
	v, err := c.ReadU64()
	return int64(v), err
}

// ReadUintN reads n (1..=8) little-endian raw bytes into a zero-extended
// uint64. Used for bit-packed sub-fields narrower than a native width, such
// as the 40-bit offset/length halves of OffsetAndLength and the 24-bit
// compressed/uncompressed sizes of CompressedBlockEntry.
func (c *Cursor) ReadUintN(n int) (uint64, error) {
	if n < 1 || n > 8 {
		return 0, fmt.Errorf("%w: sub-width read of %d bytes", ErrInvalidRecord, n)
	}

	b, err := c.ReadBytes(n)
	if err != nil {
		return 0, err
	}
	return DecodeUintN(b), nil
}

// DecodeUintN zero-extends up to 8 little-endian raw bytes into a uint64.
// Shared with ReadUintN so callers already holding an in-memory record (the
// UTOC ChunkId/OffsetAndLength/CompressedBlockEntry accessors) can decode a
// sub-field without re-wrapping it in a Cursor.
func DecodeUintN(b []byte) uint64 {
	var v uint64
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}

// ReadOptionalIndex reads a 32-bit index, normalizing the AbsentIndex
// sentinel to (0, false) so downstream code never re-decodes it.
func (c *Cursor) ReadOptionalIndex() (uint32, bool, error) {
	v, err := c.ReadU32()
	if err != nil {
		return 0, false, err
	}
	if v == AbsentIndex {
		return 0, false, nil
	}
	return v, true, nil
}

// ReadGUID reads a 16-byte little-endian engine GUID.
func (c *Cursor) ReadGUID() (uuid.UUID, error) {
	b, err := c.ReadBytes(16)
	if err != nil {
		return uuid.UUID{}, err
	}

	// Engine GUIDs are four little-endian uint32 words; reverse each word's
	// byte order so the result prints in the conventional GUID form.
	var out uuid.UUID
	for word := 0; word < 4; word++ {
		for i := 0; i < 4; i++ {
			out[word*4+i] = b[word*4+(3-i)]
		}
	}
	return out, nil
}

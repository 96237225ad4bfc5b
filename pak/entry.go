// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ironveil
// Source: github.com/ironveil/ueassets

package pak

import (
	"fmt"

	"github.com/ironveil/ueassets/wire"
)

// decodeEntry reads one PakEntry record at the cursor's current position,
// per §4.5's version-gated field order.
func decodeEntry(c *wire.Cursor, v Version, compressionTableLen int) (Entry, error) {
	var e Entry
	var err error

	e.Offset, err = c.ReadU64()
	if err != nil {
		return Entry{}, fmt.Errorf("read entry offset: %w", err)
	}
	e.CompressedSize, err = c.ReadU64()
	if err != nil {
		return Entry{}, fmt.Errorf("read entry compressed size: %w", err)
	}
	e.UncompressedSize, err = c.ReadU64()
	if err != nil {
		return Entry{}, fmt.Errorf("read entry uncompressed size: %w", err)
	}

	var slot uint32
	if v.hasSingleByteCompressionSlot() {
		b, err := c.ReadU8()
		if err != nil {
			return Entry{}, fmt.Errorf("read entry compression slot byte: %w", err)
		}
		slot = uint32(b)
	} else {
		slot, err = c.ReadU32()
		if err != nil {
			return Entry{}, fmt.Errorf("read entry compression slot: %w", err)
		}
	}
	if slot != 0 {
		e.HasCompression = true
		e.CompressionSlot = slot - 1
		if int(e.CompressionSlot) >= compressionTableLen {
			return Entry{}, invalidRecord("compression slot %d out of range for table of length %d", e.CompressionSlot, compressionTableLen)
		}
		if !v.hasCompressionEncryption() {
			return Entry{}, invalidRecord("compression slot present but version %s predates CompressionEncryption", v)
		}
	}

	if v.hasTimestamp() {
		e.Timestamp, err = c.ReadU64()
		if err != nil {
			return Entry{}, fmt.Errorf("read entry timestamp: %w", err)
		}
		e.HasTimestamp = true
	}

	hashBytes, err := c.ReadBytes(20)
	if err != nil {
		return Entry{}, fmt.Errorf("read entry hash: %w", err)
	}
	copy(e.Hash[:], hashBytes)

	if v.hasCompressionEncryption() && e.HasCompression {
		count, err := c.ReadU32()
		if err != nil {
			return Entry{}, fmt.Errorf("read entry block count: %w", err)
		}

		blocks := make([]PakBlock, count)
		for i := range blocks {
			start, err := c.ReadU64()
			if err != nil {
				return Entry{}, fmt.Errorf("read block %d start: %w", i, err)
			}
			end, err := c.ReadU64()
			if err != nil {
				return Entry{}, fmt.Errorf("read block %d end: %w", i, err)
			}
			if end < start {
				return Entry{}, invalidRecord("block %d end %d precedes start %d", i, end, start)
			}
			blocks[i] = PakBlock{Start: start, End: end}
		}
		e.Blocks = blocks
	}

	if v.hasCompressionEncryption() {
		e.Flags, err = c.ReadU8()
		if err != nil {
			return Entry{}, fmt.Errorf("read entry flags: %w", err)
		}
		e.CompressionBlockSize, err = c.ReadU32()
		if err != nil {
			return Entry{}, fmt.Errorf("read entry compression block size: %w", err)
		}
	}

	return e, nil
}

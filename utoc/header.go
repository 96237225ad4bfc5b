// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ironveil
// Source: github.com/ironveil/ueassets

package utoc

import (
	"fmt"

	"github.com/ironveil/ueassets/wire"
)

// decodeHeader reads the fixed 144-byte header at offset 0 and validates
// magic, declared header size, and version, per §4.6.
func decodeHeader(c *wire.Cursor) (TocHeader, error) {
	var h TocHeader

	magic, err := c.ReadBytes(16)
	if err != nil {
		return TocHeader{}, fmt.Errorf("read magic: %w", err)
	}
	if string(magic) != Magic {
		return TocHeader{}, fmt.Errorf("%w: %w", ErrNotAUtoc, badMagic("header magic %q, want %q", magic, Magic))
	}

	rawVersion, err := c.ReadU32()
	if err != nil {
		return TocHeader{}, fmt.Errorf("read version: %w", err)
	}
	h.Version = Version(int32(rawVersion))
	if !h.Version.valid() {
		return TocHeader{}, unsupportedVersion("declared version %d is outside the enumerated set", rawVersion)
	}

	h.HeaderSize, err = c.ReadU32()
	if err != nil {
		return TocHeader{}, fmt.Errorf("read header size: %w", err)
	}
	if h.HeaderSize != HeaderSize {
		return TocHeader{}, invalidRecord("declared header size %d, want %d", h.HeaderSize, HeaderSize)
	}

	h.EntryCount, err = c.ReadU32()
	if err != nil {
		return TocHeader{}, fmt.Errorf("read entry count: %w", err)
	}
	h.CompressedBlockEntryCount, err = c.ReadU32()
	if err != nil {
		return TocHeader{}, fmt.Errorf("read compressed block entry count: %w", err)
	}
	h.CompressedBlockEntrySize, err = c.ReadU32()
	if err != nil {
		return TocHeader{}, fmt.Errorf("read compressed block entry size: %w", err)
	}
	if h.CompressedBlockEntrySize != 12 {
		return TocHeader{}, invalidRecord("compressed block entry size %d, want 12", h.CompressedBlockEntrySize)
	}

	h.CompressionMethodNameCount, err = c.ReadU32()
	if err != nil {
		return TocHeader{}, fmt.Errorf("read compression method name count: %w", err)
	}
	h.CompressionMethodNameLength, err = c.ReadU32()
	if err != nil {
		return TocHeader{}, fmt.Errorf("read compression method name length: %w", err)
	}
	if h.CompressionMethodNameLength > 32 {
		return TocHeader{}, invalidRecord("compression method name length %d exceeds 32", h.CompressionMethodNameLength)
	}

	h.CompressionBlockSize, err = c.ReadU32()
	if err != nil {
		return TocHeader{}, fmt.Errorf("read compression block size: %w", err)
	}
	h.DirectoryIndexSize, err = c.ReadU32()
	if err != nil {
		return TocHeader{}, fmt.Errorf("read directory index size: %w", err)
	}
	h.PartitionCount, err = c.ReadU32()
	if err != nil {
		return TocHeader{}, fmt.Errorf("read partition count: %w", err)
	}

	h.ContainerID, err = c.ReadU64()
	if err != nil {
		return TocHeader{}, fmt.Errorf("read container id: %w", err)
	}

	h.EncryptionKeyGUID, err = c.ReadGUID()
	if err != nil {
		return TocHeader{}, fmt.Errorf("read encryption key guid: %w", err)
	}

	flags, err := c.ReadU8()
	if err != nil {
		return TocHeader{}, fmt.Errorf("read container flags: %w", err)
	}
	h.ContainerFlags = ContainerFlags(flags)

	if _, err := c.ReadBytes(3); err != nil { // alignment padding
		return TocHeader{}, fmt.Errorf("read container flags padding: %w", err)
	}

	h.PerfectHashSeedsCount, err = c.ReadU32()
	if err != nil {
		return TocHeader{}, fmt.Errorf("read perfect hash seeds count: %w", err)
	}
	h.PartitionSize, err = c.ReadU64()
	if err != nil {
		return TocHeader{}, fmt.Errorf("read partition size: %w", err)
	}
	h.ChunksWithoutPerfectHashCount, err = c.ReadU32()
	if err != nil {
		return TocHeader{}, fmt.Errorf("read chunks without perfect hash count: %w", err)
	}

	if _, err := c.ReadBytes(HeaderSize - int(c.Pos())); err != nil { // reserved padding
		return TocHeader{}, fmt.Errorf("read header padding: %w", err)
	}

	return h, nil
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ironveil
// Source: github.com/ironveil/ueassets

package utoc

import (
	"fmt"

	"github.com/ironveil/ueassets/wire"
)

// decodeBody consumes the sections that follow the header, in the fixed
// order of §4.7, filling in everything except Header (already decoded).
func decodeBody(c *wire.Cursor, h TocHeader) (TocModel, error) {
	m := TocModel{Header: h}

	chunkIDs, err := decodeChunkIDs(c, h.EntryCount)
	if err != nil {
		return TocModel{}, err
	}
	m.ChunkIDs = chunkIDs

	offlens, err := decodeOffsetsAndLengths(c, h.EntryCount)
	if err != nil {
		return TocModel{}, err
	}
	m.OffsetsAndLengths = offlens

	seeds, overflow, err := decodeHashMap(c, h)
	if err != nil {
		return TocModel{}, err
	}
	m.PerfectHashSeeds = seeds
	m.ChunksWithoutPerfectHash = overflow

	blocks, err := decodeCompressedBlocks(c, h.CompressedBlockEntryCount)
	if err != nil {
		return TocModel{}, err
	}
	m.CompressedBlocks = blocks

	methods, err := decodeCompressionMethods(c, h.CompressionMethodNameCount, h.CompressionMethodNameLength)
	if err != nil {
		return TocModel{}, err
	}
	m.CompressionMethods = methods

	if h.ContainerFlags.Has(ContainerEncrypted) {
		return TocModel{}, encryptedContainer("container id %d declares an encrypted body", h.ContainerID)
	}

	if h.ContainerFlags.Has(ContainerSigned) {
		if err := skipSignatures(c, h.CompressedBlockEntryCount); err != nil {
			return TocModel{}, err
		}
	}

	if h.ContainerFlags.Has(ContainerIndexed) && h.DirectoryIndexSize > 0 {
		raw, err := c.ReadBytes(int(h.DirectoryIndexSize))
		if err != nil {
			return TocModel{}, fmt.Errorf("read directory index buffer: %w", err)
		}
		dirIndex, err := decodeDirectoryIndex(wire.NewCursorBytes(raw))
		if err != nil {
			return TocModel{}, fmt.Errorf("decode directory index: %w", err)
		}
		m.DirectoryIndex = dirIndex
	}

	metas, err := decodeChunkMetas(c, h)
	if err != nil {
		return TocModel{}, err
	}
	m.ChunkMetas = metas

	return m, nil
}

func decodeChunkIDs(c *wire.Cursor, count uint32) ([]ChunkId, error) {
	out := make([]ChunkId, count)
	for i := range out {
		raw, err := c.ReadBytes(12)
		if err != nil {
			return nil, fmt.Errorf("read chunk id %d: %w", i, err)
		}
		copy(out[i][:], raw)
	}
	return out, nil
}

func decodeOffsetsAndLengths(c *wire.Cursor, count uint32) ([]OffsetAndLength, error) {
	out := make([]OffsetAndLength, count)
	for i := range out {
		raw, err := c.ReadBytes(10)
		if err != nil {
			return nil, fmt.Errorf("read offset/length %d: %w", i, err)
		}
		copy(out[i][:], raw)
	}
	return out, nil
}

// decodeHashMap reads the version-gated perfect-hash section (§4.7 step 3).
func decodeHashMap(c *wire.Cursor, h TocHeader) ([]uint32, []uint32, error) {
	if !h.Version.hasPerfectHash() {
		return nil, nil, nil
	}

	seeds := make([]uint32, h.PerfectHashSeedsCount)
	for i := range seeds {
		v, err := c.ReadU32()
		if err != nil {
			return nil, nil, fmt.Errorf("read perfect hash seed %d: %w", i, err)
		}
		seeds[i] = v
	}

	if !h.Version.hasPerfectHashOverflow() {
		return seeds, nil, nil
	}

	overflow := make([]uint32, h.ChunksWithoutPerfectHashCount)
	for i := range overflow {
		v, err := c.ReadU32()
		if err != nil {
			return nil, nil, fmt.Errorf("read perfect hash overflow index %d: %w", i, err)
		}
		overflow[i] = v
	}
	return seeds, overflow, nil
}

func decodeCompressedBlocks(c *wire.Cursor, count uint32) ([]CompressedBlockEntry, error) {
	out := make([]CompressedBlockEntry, count)
	for i := range out {
		raw, err := c.ReadBytes(12)
		if err != nil {
			return nil, fmt.Errorf("read compressed block entry %d: %w", i, err)
		}
		copy(out[i][:], raw)
	}
	return out, nil
}

func decodeCompressionMethods(c *wire.Cursor, count, nameLength uint32) ([]string, error) {
	out := make([]string, count)
	for i := range out {
		raw, err := c.ReadBytes(int(nameLength))
		if err != nil {
			return nil, fmt.Errorf("read compression method name %d: %w", i, err)
		}
		out[i] = string(wire.TruncateAtNUL(raw))
	}
	return out, nil
}

// skipSignatures discards the signature section (§4.7 step 6); the core
// does not verify signatures, only skips past them.
func skipSignatures(c *wire.Cursor, blockCount uint32) error {
	size, err := c.ReadU32()
	if err != nil {
		return fmt.Errorf("read signature size: %w", err)
	}
	if _, err := c.ReadBytes(int(2*size + 4)); err != nil {
		return fmt.Errorf("skip toc/block signatures: %w", err)
	}
	if _, err := c.ReadBytes(int(blockCount) * 20); err != nil {
		return fmt.Errorf("skip per-block sha1: %w", err)
	}
	return nil
}

func decodeChunkMetas(c *wire.Cursor, h TocHeader) ([]ChunkMeta, error) {
	out := make([]ChunkMeta, h.EntryCount)
	compact := h.Version.hasCompactChunkMeta()

	for i := range out {
		hashLen := 32
		if compact {
			hashLen = 20
		}

		hash, err := c.ReadBytes(hashLen)
		if err != nil {
			return nil, fmt.Errorf("read chunk meta %d hash: %w", i, err)
		}

		flags, err := c.ReadU8()
		if err != nil {
			return nil, fmt.Errorf("read chunk meta %d flags: %w", i, err)
		}

		if compact {
			if _, err := c.ReadBytes(3); err != nil {
				return nil, fmt.Errorf("read chunk meta %d padding: %w", i, err)
			}
		}

		out[i] = ChunkMeta{Hash: hash, HashIsCompact: compact, Flags: flags}
	}

	return out, nil
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ironveil
// Source: github.com/ironveil/ueassets

package utoc

import (
	"github.com/google/uuid"
)

// Magic is the 16-byte UTOC header magic literal.
const Magic = "-==--==--==--==-"

// HeaderSize is the fixed, version-independent size of TocHeader on the wire.
const HeaderSize = 144

// ContainerFlags is a bit set of container-wide properties (§6: only bits
// 0-3 carry meaning).
type ContainerFlags uint8

// Known container flag bits.
const (
	ContainerCompressed ContainerFlags = 1 << 0
	ContainerEncrypted  ContainerFlags = 1 << 1
	ContainerSigned     ContainerFlags = 1 << 2
	ContainerIndexed    ContainerFlags = 1 << 3
)

// Has reports whether every bit in want is set.
func (f ContainerFlags) Has(want ContainerFlags) bool { return f&want == want }

// TocHeader is the decoded fixed 144-byte UTOC header (§4.6, §3).
type TocHeader struct {
	Version                       Version
	HeaderSize                    uint32
	EntryCount                    uint32
	CompressedBlockEntryCount     uint32
	CompressedBlockEntrySize      uint32
	CompressionMethodNameCount    uint32
	CompressionMethodNameLength   uint32
	CompressionBlockSize          uint32
	DirectoryIndexSize            uint32
	PartitionCount                uint32
	ContainerID                   uint64
	EncryptionKeyGUID             uuid.UUID
	ContainerFlags                ContainerFlags
	PerfectHashSeedsCount         uint32
	PartitionSize                 uint64
	ChunksWithoutPerfectHashCount uint32
}

// ChunkMeta is a decoded per-chunk metadata record (§3, §4.7 step 8). Hash
// holds whichever width the declared version uses; HashIsCompact reports
// which.
type ChunkMeta struct {
	Hash           []byte
	HashIsCompact  bool
	Flags          uint8
}

// Flag bits of ChunkMeta.Flags.
const (
	ChunkMetaCompressed    uint8 = 1 << 0
	ChunkMetaMemoryMapped  uint8 = 1 << 1
)

// DirectoryEntry is one node of the directory tree (§3, §4.8). Every index
// is optional; absent is represented as (0, false).
type DirectoryEntry struct {
	Name            uint32
	HasName         bool
	FirstChild      uint32
	HasFirstChild   bool
	NextSibling     uint32
	HasNextSibling  bool
	FirstFile       uint32
	HasFirstFile    bool
}

// FileEntry is one node of a directory's file linked list (§3, §4.8).
type FileEntry struct {
	Name         uint32
	NextFile     uint32
	HasNextFile  bool
	UserData     uint32
}

// DirectoryIndex is the decoded directory-index sub-buffer (§3, §4.8).
type DirectoryIndex struct {
	MountPoint  string
	Directories []DirectoryEntry
	Files       []FileEntry
	Strings     []string
}

// TocModel is the fully decoded, immutable in-memory UTOC representation
// built once at open time (§3).
type TocModel struct {
	Header                       TocHeader
	ChunkIDs                     []ChunkId
	OffsetsAndLengths            []OffsetAndLength
	PerfectHashSeeds             []uint32
	ChunksWithoutPerfectHash     []uint32
	CompressedBlocks             []CompressedBlockEntry
	CompressionMethods           []string
	ChunkMetas                   []ChunkMeta
	DirectoryIndex               DirectoryIndex
}


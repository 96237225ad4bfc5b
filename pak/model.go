// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ironveil
// Source: github.com/ironveil/ueassets

package pak

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// Magic is the constant PAK footer magic value.
const Magic uint32 = 0x5A6F12E1

// CompressionMethod names a PAK compression codec referenced by an entry's
// compression slot. CompressionNone also stands in for an empty or unknown
// footer table slot, per §4.2's "empty or unknown yield absent in that slot."
type CompressionMethod int

// Known compression method names.
const (
	CompressionNone CompressionMethod = iota
	CompressionZlib
	CompressionGzip
	CompressionOodle
	CompressionZstd
	CompressionLZ4
)

// String renders the compression method's engine name, or "" when absent.
func (m CompressionMethod) String() string {
	switch m {
	case CompressionZlib:
		return "Zlib"
	case CompressionGzip:
		return "Gzip"
	case CompressionOodle:
		return "Oodle"
	case CompressionZstd:
		return "Zstd"
	case CompressionLZ4:
		return "LZ4"
	default:
		return ""
	}
}

// parseCompressionMethodName maps an exact, case-sensitive footer name to a
// CompressionMethod, yielding CompressionNone for empty or unrecognized
// names.
func parseCompressionMethodName(name string) CompressionMethod {
	switch name {
	case "Zlib":
		return CompressionZlib
	case "Gzip":
		return CompressionGzip
	case "Oodle":
		return CompressionOodle
	case "Zstd":
		return CompressionZstd
	case "LZ4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// Hash20 is a 20-byte content or index hash, surfaced verbatim off the wire.
type Hash20 [20]byte

// String renders the hash as lowercase hex.
func (h Hash20) String() string { return hex.EncodeToString(h[:]) }

// Footer is the decoded PAK trailer: version, index location, and the
// compression-method table entries reference by slot.
type Footer struct {
	// EncryptionGUID is present when Version.hasEncryptionGUID.
	EncryptionGUID uuid.UUID
	// HasEncryptionGUID reports whether EncryptionGUID was read from disk
	// (older versions have no such field).
	HasEncryptionGUID bool
	// Encrypted reports whether the index is encrypted. Present when
	// Version.hasEncryptedFlag; false for older versions.
	Encrypted bool
	// Magic is the footer magic; always Magic on a successfully opened PAK.
	Magic uint32
	// Version is the probed-and-confirmed footer version.
	Version Version
	// IndexOffset is the absolute byte offset of the index.
	IndexOffset uint64
	// IndexSize is the byte length of the index region.
	IndexSize uint64
	// IndexHash is the 20-byte hash of the index region.
	IndexHash Hash20
	// Frozen reports the frozen-index byte, valid only for VersionFrozenIndex.
	Frozen bool
	// CompressionMethods is the ordered compression-method table: for
	// versions with no footer table it holds the 3-entry synthesized table
	// (see below), 4 entries for V8A, or 5 for V8B and newer.
	CompressionMethods []CompressionMethod
}

// synthesizedCompressionMethods is used for versions older than
// FNameBasedCompression, which declare no footer compression table; slot
// indices referenced by entries must still resolve.
func synthesizedCompressionMethods() []CompressionMethod {
	return []CompressionMethod{CompressionZlib, CompressionGzip, CompressionOodle}
}

// PakBlock is one compressed-payload block span within an entry's payload.
type PakBlock struct {
	// Start is the block's start offset.
	Start uint64
	// End is the block's end offset; End >= Start.
	End uint64
}

// Entry is a decoded per-file physical descriptor.
type Entry struct {
	// Offset is the payload's byte offset within the data region.
	Offset uint64
	// CompressedSize is the stored payload size in bytes.
	CompressedSize uint64
	// UncompressedSize is the decompressed payload size in bytes.
	UncompressedSize uint64
	// CompressionSlot is the zero-based index into the footer's
	// CompressionMethods table, or (0, false) for an uncompressed entry.
	CompressionSlot uint32
	HasCompression  bool
	// Timestamp is present only for Version.hasTimestamp (major == Initial).
	Timestamp     uint64
	HasTimestamp  bool
	// Hash is the 20-byte content hash.
	Hash Hash20
	// Blocks is present iff HasCompression && Version.hasCompressionEncryption.
	Blocks []PakBlock
	// Flags is the raw flag byte; bit 0 = encrypted, bit 1 = deleted.
	Flags uint8
	// CompressionBlockSize is the uniform block size used to interpret Blocks.
	CompressionBlockSize uint32

	// PathIndexEncoded reports whether this entry came from the
	// PathHashIndex full-directory-index branch, where the physical record
	// lives in an encoded pool this decoder does not decode (§4.4, §9's
	// open question — see DESIGN.md). When true, every other field above
	// is zero-valued and PathIndexEncodedOffset carries the raw descriptor.
	PathIndexEncoded bool
	// PathIndexEncodedOffset is the opaque packed offset/size/compression
	// descriptor read from the directory index, preserved verbatim.
	PathIndexEncodedOffset uint32
}

// IsEncrypted reports whether the entry's payload is encrypted (flag bit 0).
func (e Entry) IsEncrypted() bool { return e.Flags&0x1 != 0 }

// IsDeleted reports whether the entry is a tombstone record (flag bit 1).
func (e Entry) IsDeleted() bool { return e.Flags&0x2 != 0 }

// model is the fully decoded, immutable in-memory PAK representation built
// once at Open time.
type model struct {
	mountPoint string
	paths      []string // insertion order, matches Files()
	entries    map[string]Entry
	footer     Footer
}

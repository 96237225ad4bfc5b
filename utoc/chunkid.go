// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ironveil
// Source: github.com/ironveil/ueassets

package utoc

import "github.com/ironveil/ueassets/wire"

// ChunkType enumerates the 14 known chunk-type values (§3's ChunkId).
type ChunkType uint8

// Known chunk types.
const (
	ChunkTypeInvalid ChunkType = iota
	ChunkTypeExportBundleData
	ChunkTypeBulkData
	ChunkTypeOptionalBulkData
	ChunkTypeMemoryMappedBulkData
	ChunkTypeScriptObjects
	ChunkTypeContainerHeader
	ChunkTypeExternalFile
	ChunkTypeShaderCodeLibrary
	ChunkTypeShaderCode
	ChunkTypePackageStoreEntry
	ChunkTypeDerivedData
	ChunkTypeEditorDerivedData
	ChunkTypePackageResource
)

// ChunkId is a raw 12-byte chunk identifier record (§3, §4.1). Sub-fields
// are derived by accessor methods rather than eagerly unpacked, matching
// the spec's "stored raw; accessor functions derive the sub-fields".
type ChunkId [12]byte

// ID returns the 8-byte little-endian identifier half.
func (c ChunkId) ID() uint64 { return wire.DecodeUintN(c[0:8]) }

// Index returns the 2-byte little-endian index half.
func (c ChunkId) Index() uint16 { return uint16(c[8]) | uint16(c[9])<<8 }

// Type returns the low 6 bits of byte 10 as a ChunkType. Unknown values
// above ChunkTypePackageResource are preserved verbatim (§3: "unknown types
// are preserved as raw").
func (c ChunkId) Type() ChunkType { return ChunkType(c[10] & 0x3F) }

// HasVersionInfo reports bit 6 of byte 11.
func (c ChunkId) HasVersionInfo() bool { return c[11]&(1<<6) != 0 }

// OffsetAndLength is a raw 10-byte packed (40-bit offset, 40-bit length)
// record (§3, §4.1).
type OffsetAndLength [10]byte

// Offset returns the first 40-bit little-endian sub-field.
func (o OffsetAndLength) Offset() uint64 { return wire.DecodeUintN(o[0:5]) }

// Length returns the second 40-bit little-endian sub-field.
func (o OffsetAndLength) Length() uint64 { return wire.DecodeUintN(o[5:10]) }

// CompressedBlockEntry is a raw 12-byte packed (40-bit offset, 24-bit
// compressed size, 24-bit uncompressed size, 8-bit method index) record
// (§3, §4.1).
type CompressedBlockEntry [12]byte

// Offset returns the 40-bit little-endian offset sub-field.
func (e CompressedBlockEntry) Offset() uint64 { return wire.DecodeUintN(e[0:5]) }

// CompressedSize returns the 24-bit little-endian compressed-size sub-field.
func (e CompressedBlockEntry) CompressedSize() uint32 { return uint32(wire.DecodeUintN(e[5:8])) }

// UncompressedSize returns the 24-bit little-endian uncompressed-size
// sub-field.
func (e CompressedBlockEntry) UncompressedSize() uint32 { return uint32(wire.DecodeUintN(e[8:11])) }

// CompressionMethodIndex returns the trailing method-index byte: 0 means
// uncompressed, N>=1 is a 1-based index into the compression-method table.
func (e CompressedBlockEntry) CompressionMethodIndex() uint8 { return e[11] }

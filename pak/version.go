// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ironveil
// Source: github.com/ironveil/ueassets

package pak

// Version identifies a decoded PAK footer layout. Both the wire-declared
// integer version and the A/B footer-size split at major version 8 are
// represented here, giving 12 distinct values total, per the data model's
// "version is one of the 12 known" invariant.
type Version int

// Known PAK versions, oldest first. V8A and V8B both declare wire version 8
// (see Major) but differ in how many compression-method name slots the
// footer carries.
const (
	VersionInvalid Version = iota
	VersionInitial
	VersionNoTimestamps
	VersionCompressionEncryption
	VersionIndexEncryption
	VersionRelativeChunkOffsets
	VersionDeleteRecords
	VersionEncryptionKeyGuid
	VersionFNameBasedCompressionA
	VersionFNameBasedCompressionB
	VersionFrozenIndex
	VersionPathHashIndex
	VersionFnv64BugFix
)

// probeOrder lists every known version newest-first, the order the PAK
// version probe (probe.go) tries candidates in.
var probeOrder = []Version{
	VersionFnv64BugFix,
	VersionPathHashIndex,
	VersionFrozenIndex,
	VersionFNameBasedCompressionB,
	VersionFNameBasedCompressionA,
	VersionEncryptionKeyGuid,
	VersionDeleteRecords,
	VersionRelativeChunkOffsets,
	VersionIndexEncryption,
	VersionCompressionEncryption,
	VersionNoTimestamps,
	VersionInitial,
}

// Major maps a Version to the integer the footer's "declared version" field
// actually carries on the wire. V8A and V8B both map to 8.
func (v Version) Major() uint32 {
	switch v {
	case VersionInitial:
		return 1
	case VersionNoTimestamps:
		return 2
	case VersionCompressionEncryption:
		return 3
	case VersionIndexEncryption:
		return 4
	case VersionRelativeChunkOffsets:
		return 5
	case VersionDeleteRecords:
		return 6
	case VersionEncryptionKeyGuid:
		return 7
	case VersionFNameBasedCompressionA, VersionFNameBasedCompressionB:
		return 8
	case VersionFrozenIndex:
		return 9
	case VersionPathHashIndex:
		return 10
	case VersionFnv64BugFix:
		return 11
	default:
		return 0
	}
}

// String renders a human-readable version label.
func (v Version) String() string {
	switch v {
	case VersionInitial:
		return "V1(Initial)"
	case VersionNoTimestamps:
		return "V2(NoTimestamps)"
	case VersionCompressionEncryption:
		return "V3(CompressionEncryption)"
	case VersionIndexEncryption:
		return "V4(IndexEncryption)"
	case VersionRelativeChunkOffsets:
		return "V5(RelativeChunkOffsets)"
	case VersionDeleteRecords:
		return "V6(DeleteRecords)"
	case VersionEncryptionKeyGuid:
		return "V7(EncryptionKeyGuid)"
	case VersionFNameBasedCompressionA:
		return "V8A(FNameBasedCompression, 4 slots)"
	case VersionFNameBasedCompressionB:
		return "V8B(FNameBasedCompression, 5 slots)"
	case VersionFrozenIndex:
		return "V9(FrozenIndex)"
	case VersionPathHashIndex:
		return "V10(PathHashIndex)"
	case VersionFnv64BugFix:
		return "V11(Fnv64BugFix)"
	default:
		return "Invalid"
	}
}

// The remaining methods centralize every version-gated read decision behind
// a named predicate, per §9's design note against scattering version checks
// inline.

// hasEncryptionGUID reports whether the footer carries a 128-bit encryption
// UUID (version >= EncryptionKeyGuid).
func (v Version) hasEncryptionGUID() bool { return v >= VersionEncryptionKeyGuid }

// hasEncryptedFlag reports whether the footer carries the encrypted-index
// byte (version >= IndexEncryption).
func (v Version) hasEncryptedFlag() bool { return v >= VersionIndexEncryption }

// hasFrozenByte reports whether the footer carries the frozen-index byte
// (only FrozenIndex itself).
func (v Version) hasFrozenByte() bool { return v == VersionFrozenIndex }

// hasCompressionTable4 reports whether the footer carries the first four
// 32-byte compression-method name slots (version >= V8A).
func (v Version) hasCompressionTable4() bool { return v >= VersionFNameBasedCompressionA }

// hasCompressionTable5 reports whether the footer carries a fifth 32-byte
// compression-method name slot (version >= V8B).
func (v Version) hasCompressionTable5() bool { return v >= VersionFNameBasedCompressionB }

// hasSingleByteCompressionSlot reports whether the entry's compression slot
// is a single byte on the wire. This quirk is specific to V8A; every other
// version (older and newer) uses a 32-bit slot value.
func (v Version) hasSingleByteCompressionSlot() bool { return v == VersionFNameBasedCompressionA }

// hasTimestamp reports whether entries carry a 64-bit timestamp
// (major version Initial only).
func (v Version) hasTimestamp() bool { return v.Major() == VersionInitial.Major() }

// hasCompressionEncryption reports whether entries carry compression blocks
// and the flags/compression-block-size trailer fields (major version >=
// CompressionEncryption).
func (v Version) hasCompressionEncryption() bool {
	return v.Major() >= VersionCompressionEncryption.Major()
}

// hasPathHashIndex reports whether the index is split into a path-hash
// index plus a full-directory index (major version >= PathHashIndex).
func (v Version) hasPathHashIndex() bool {
	return v.Major() >= VersionPathHashIndex.Major()
}

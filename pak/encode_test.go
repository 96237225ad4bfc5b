package pak

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// The helpers in this file are test-owned encoders, the inverse of this
// package's decoders, used to build synthetic PAK byte buffers for the
// scenario and round-trip tests. None of this is exported or used outside
// _test.go files.

func encodeGUID(u uuid.UUID) []byte {
	raw := make([]byte, 16)
	for word := 0; word < 4; word++ {
		for i := 0; i < 4; i++ {
			raw[word*4+i] = u[word*4+(3-i)]
		}
	}
	return raw
}

func encodeEngineStringASCII(s string) []byte {
	if s == "" {
		return []byte{0, 0, 0, 0}
	}
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(len(s)+1))
	buf = append(buf, []byte(s)...)
	buf = append(buf, 0)
	return buf
}

func u32le(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func u64le(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

// footerSpec describes one synthetic footer's fields; zero-valued fields
// are fine for fields the target version doesn't carry.
type footerSpec struct {
	version     Version
	indexOffset uint64
	indexSize   uint64
	encrypted   bool
	guid        uuid.UUID
	methods     []string
}

func encodeFooter(spec footerSpec) []byte {
	v := spec.version
	var buf []byte

	if v.hasEncryptionGUID() {
		buf = append(buf, encodeGUID(spec.guid)...)
	}
	if v.hasEncryptedFlag() {
		b := byte(0)
		if spec.encrypted {
			b = 1
		}
		buf = append(buf, b)
	}

	buf = append(buf, u32le(Magic)...)
	buf = append(buf, u32le(v.Major())...)
	buf = append(buf, u64le(spec.indexOffset)...)
	buf = append(buf, u64le(spec.indexSize)...)
	buf = append(buf, make([]byte, 20)...) // index hash, unchecked by decoder

	if v.hasFrozenByte() {
		buf = append(buf, 0)
	}

	if v.hasCompressionTable4() {
		count := 4
		if v.hasCompressionTable5() {
			count = 5
		}
		for i := 0; i < count; i++ {
			slot := make([]byte, 32)
			if i < len(spec.methods) {
				copy(slot, spec.methods[i])
			}
			buf = append(buf, slot...)
		}
	}

	return buf
}

// entrySpec describes one synthetic entry's fields.
type entrySpec struct {
	offset           uint64
	compressedSize   uint64
	uncompressedSize uint64
	slot             uint32 // 0 = none, else 1-based
	timestamp        uint64
	blocks           []PakBlock
	flags            uint8
	blockSize        uint32
}

func encodeEntry(v Version, spec entrySpec) []byte {
	var buf []byte
	buf = append(buf, u64le(spec.offset)...)
	buf = append(buf, u64le(spec.compressedSize)...)
	buf = append(buf, u64le(spec.uncompressedSize)...)

	if v.hasSingleByteCompressionSlot() {
		buf = append(buf, byte(spec.slot))
	} else {
		buf = append(buf, u32le(spec.slot)...)
	}

	if v.hasTimestamp() {
		buf = append(buf, u64le(spec.timestamp)...)
	}

	buf = append(buf, make([]byte, 20)...) // content hash, unchecked

	hasCompression := spec.slot != 0
	if v.hasCompressionEncryption() && hasCompression {
		buf = append(buf, u32le(uint32(len(spec.blocks)))...)
		for _, b := range spec.blocks {
			buf = append(buf, u64le(b.Start)...)
			buf = append(buf, u64le(b.End)...)
		}
	}

	if v.hasCompressionEncryption() {
		buf = append(buf, spec.flags)
		buf = append(buf, u32le(spec.blockSize)...)
	}

	return buf
}

// fileSpec is one (path, entry) pair for the legacy index builder.
type fileSpec struct {
	path  string
	entry entrySpec
}

func encodeLegacyIndexBody(v Version, mountPoint string, files []fileSpec) []byte {
	var buf []byte
	buf = append(buf, encodeEngineStringASCII(mountPoint)...)
	buf = append(buf, u32le(uint32(len(files)))...)
	for _, f := range files {
		buf = append(buf, encodeEngineStringASCII(f.path)...)
		buf = append(buf, encodeEntry(v, f.entry)...)
	}
	return buf
}

// buildPak assembles a full synthetic PAK: a legacy index at offset 0
// followed immediately by a footer referencing it.
func buildPak(v Version, mountPoint string, files []fileSpec, encrypted bool, guid uuid.UUID, methods []string) []byte {
	index := encodeLegacyIndexBody(v, mountPoint, files)
	footer := encodeFooter(footerSpec{
		version:     v,
		indexOffset: 0,
		indexSize:   uint64(len(index)),
		encrypted:   encrypted,
		guid:        guid,
		methods:     methods,
	})
	return append(index, footer...)
}

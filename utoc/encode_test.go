package utoc

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// The helpers in this file are test-owned encoders, the inverse of this
// package's decoders, used to build synthetic UTOC byte buffers.

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

func optIndex(v uint32, present bool) []byte {
	if !present {
		return u32le(0xFFFFFFFF)
	}
	return u32le(v)
}

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

// headerSpec describes the fields of a synthetic 144-byte TocHeader.
type headerSpec struct {
	version                       Version
	entryCount                    uint32
	compressedBlockEntryCount     uint32
	compressionMethodNameCount    uint32
	compressionMethodNameLength   uint32
	compressionBlockSize          uint32
	directoryIndexSize            uint32
	partitionCount                uint32
	containerID                   uint64
	encryptionKeyGUID             uuid.UUID
	containerFlags                ContainerFlags
	perfectHashSeedsCount         uint32
	chunksWithoutPerfectHashCount uint32
	partitionSize                 uint64
}

func encodeHeader(spec headerSpec) []byte {
	var buf []byte
	buf = append(buf, []byte(Magic)...)
	buf = append(buf, u32le(uint32(int32(spec.version)))...)
	buf = append(buf, u32le(HeaderSize)...)
	buf = append(buf, u32le(spec.entryCount)...)
	buf = append(buf, u32le(spec.compressedBlockEntryCount)...)
	buf = append(buf, u32le(12)...) // CompressedBlockEntrySize sanity field
	buf = append(buf, u32le(spec.compressionMethodNameCount)...)
	buf = append(buf, u32le(spec.compressionMethodNameLength)...)
	buf = append(buf, u32le(spec.compressionBlockSize)...)
	buf = append(buf, u32le(spec.directoryIndexSize)...)
	buf = append(buf, u32le(spec.partitionCount)...)
	buf = append(buf, u64le(spec.containerID)...)
	buf = append(buf, encodeGUID(spec.encryptionKeyGUID)...)
	buf = append(buf, byte(spec.containerFlags))
	buf = append(buf, make([]byte, 3)...) // alignment padding
	buf = append(buf, u32le(spec.perfectHashSeedsCount)...)
	buf = append(buf, u64le(spec.partitionSize)...)
	buf = append(buf, u32le(spec.chunksWithoutPerfectHashCount)...)
	for len(buf) < HeaderSize {
		buf = append(buf, 0)
	}
	return buf
}

func encodeChunkID(id uint64, index uint16, chunkType ChunkType, hasVersionInfo bool) []byte {
	raw := make([]byte, 12)
	copy(raw[0:8], u64le(id))
	raw[8] = byte(index)
	raw[9] = byte(index >> 8)
	raw[10] = byte(chunkType) & 0x3F
	if hasVersionInfo {
		raw[11] |= 1 << 6
	}
	return raw
}

func encodeOffsetAndLength(offset, length uint64) []byte {
	raw := make([]byte, 10)
	putUintN(raw[0:5], offset)
	putUintN(raw[5:10], length)
	return raw
}

func encodeCompressedBlockEntry(offset uint64, compressedSize, uncompressedSize uint32, methodIndex uint8) []byte {
	raw := make([]byte, 12)
	putUintN(raw[0:5], offset)
	putUintN(raw[5:8], uint64(compressedSize))
	putUintN(raw[8:11], uint64(uncompressedSize))
	raw[11] = methodIndex
	return raw
}

func encodeChunkMeta(hash []byte, flags uint8, compact bool) []byte {
	var buf []byte
	buf = append(buf, hash...)
	buf = append(buf, flags)
	if compact {
		buf = append(buf, make([]byte, 3)...)
	}
	return buf
}

func putUintN(dst []byte, v uint64) {
	for i := range dst {
		dst[i] = byte(v)
		v >>= 8
	}
}

// directoryEntrySpec/fileEntrySpec/dirIndexSpec mirror the model types with
// plain bools-and-values for concise test construction.
type directoryEntrySpec struct {
	name           uint32
	hasName        bool
	firstChild     uint32
	hasFirstChild  bool
	nextSibling    uint32
	hasNextSibling bool
	firstFile      uint32
	hasFirstFile   bool
}

type fileEntrySpec struct {
	name        uint32
	nextFile    uint32
	hasNextFile bool
	userData    uint32
}

type dirIndexSpec struct {
	mountPoint string
	dirs       []directoryEntrySpec
	files      []fileEntrySpec
	strings    []string
}

func encodeDirectoryIndex(spec dirIndexSpec) []byte {
	var buf []byte
	buf = append(buf, encodeEngineStringASCII(spec.mountPoint)...)

	buf = append(buf, u32le(uint32(len(spec.dirs)))...)
	for _, d := range spec.dirs {
		buf = append(buf, optIndex(d.name, d.hasName)...)
		buf = append(buf, optIndex(d.firstChild, d.hasFirstChild)...)
		buf = append(buf, optIndex(d.nextSibling, d.hasNextSibling)...)
		buf = append(buf, optIndex(d.firstFile, d.hasFirstFile)...)
	}

	buf = append(buf, u32le(uint32(len(spec.files)))...)
	for _, f := range spec.files {
		buf = append(buf, u32le(f.name)...)
		buf = append(buf, optIndex(f.nextFile, f.hasNextFile)...)
		buf = append(buf, u32le(f.userData)...)
	}

	buf = append(buf, u32le(uint32(len(spec.strings)))...)
	for _, s := range spec.strings {
		buf = append(buf, encodeEngineStringASCII(s)...)
	}

	return buf
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ironveil
// Source: github.com/ironveil/ueassets

package pak

import (
	"fmt"
	"io"

	"github.com/ironveil/ueassets/wire"
)

// footerBaseSize is the fixed part of every PAK footer: magic(4) +
// version(4) + indexOffset(8) + indexSize(8) + indexHash(20).
const footerBaseSize = 4 + 4 + 8 + 8 + 20

// footerSize computes the version-dependent footer size, per §4.2's formula.
func footerSize(v Version) int64 {
	size := int64(footerBaseSize)
	if v.hasEncryptionGUID() {
		size += 16
	}
	if v.hasEncryptedFlag() {
		size += 1
	}
	if v.hasFrozenByte() {
		size += 1
	}
	if v.hasCompressionTable4() {
		size += 32 * 4
	}
	if v.hasCompressionTable5() {
		size += 32
	}
	return size
}

// decodeFooter seeks to file_size - footerSize(v) and decodes the footer
// fields in version-gated order, per §4.2. consumed reports how many footer
// bytes were successfully read before err (or the full footer on success),
// used by the version probe (probe.go) to judge which failing candidate
// progressed furthest.
func decodeFooter(ra io.ReaderAt, fileSize int64, v Version) (footer Footer, consumed int64, err error) {
	size := footerSize(v)
	if fileSize < size {
		return Footer{}, 0, fmt.Errorf("%w: footer needs %d bytes, file has %d", wire.ErrTruncated, size, fileSize)
	}

	c := wire.NewCursor(ra, fileSize)
	start := fileSize - size
	c.SeekTo(start)
	defer func() { consumed = c.Pos() - start }()

	footer = Footer{Version: v}

	if v.hasEncryptionGUID() {
		guid, err := c.ReadGUID()
		if err != nil {
			return Footer{}, 0, fmt.Errorf("read encryption guid: %w", err)
		}
		footer.EncryptionGUID = guid
		footer.HasEncryptionGUID = true
	}

	if v.hasEncryptedFlag() {
		b, err := c.ReadU8()
		if err != nil {
			return Footer{}, 0, fmt.Errorf("read encrypted flag: %w", err)
		}
		if b > 1 {
			return Footer{}, 0, invalidRecord("encrypted flag byte %d is neither 0 nor 1", b)
		}
		footer.Encrypted = b == 1
	}

	magic, err := c.ReadU32()
	if err != nil {
		return Footer{}, 0, fmt.Errorf("read magic: %w", err)
	}
	if magic != Magic {
		return Footer{}, 0, badMagic("footer magic %#x, want %#x", magic, Magic)
	}
	footer.Magic = magic

	declaredVersion, err := c.ReadU32()
	if err != nil {
		return Footer{}, 0, fmt.Errorf("read declared version: %w", err)
	}
	if declaredVersion != v.Major() {
		return Footer{}, 0, unsupportedVersion("declared version %d does not match probed %s (major %d)", declaredVersion, v, v.Major())
	}

	footer.IndexOffset, err = c.ReadU64()
	if err != nil {
		return Footer{}, 0, fmt.Errorf("read index offset: %w", err)
	}
	footer.IndexSize, err = c.ReadU64()
	if err != nil {
		return Footer{}, 0, fmt.Errorf("read index size: %w", err)
	}

	hashBytes, err := c.ReadBytes(20)
	if err != nil {
		return Footer{}, 0, fmt.Errorf("read index hash: %w", err)
	}
	copy(footer.IndexHash[:], hashBytes)

	if v.hasFrozenByte() {
		b, err := c.ReadU8()
		if err != nil {
			return Footer{}, 0, fmt.Errorf("read frozen flag: %w", err)
		}
		if b > 1 {
			return Footer{}, 0, invalidRecord("frozen flag byte %d is neither 0 nor 1", b)
		}
		footer.Frozen = b == 1
	}

	if v.hasCompressionTable4() {
		count := 4
		if v.hasCompressionTable5() {
			count = 5
		}

		methods := make([]CompressionMethod, count)
		for i := 0; i < count; i++ {
			raw, err := c.ReadBytes(32)
			if err != nil {
				return Footer{}, 0, fmt.Errorf("read compression method %d: %w", i, err)
			}
			methods[i] = parseCompressionMethodName(string(wire.TruncateAtNUL(raw)))
		}
		footer.CompressionMethods = methods
	} else {
		footer.CompressionMethods = synthesizedCompressionMethods()
	}

	return footer, 0, nil
}

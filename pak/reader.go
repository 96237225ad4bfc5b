// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ironveil
// Source: github.com/ironveil/ueassets

package pak

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
)

// Reader provides read-only access to a parsed PAK archive's metadata.
// A Reader does not read entry payloads; it only exposes the decoded
// footer and index (§5).
type Reader struct {
	ra   io.ReaderAt
	file *os.File
	size int64

	model model

	dirsOnce sync.Once
	dirs     []string
}

// Open opens the PAK archive at path, probes its version, and decodes its
// footer and index. The file is closed before Open returns; the returned
// Reader holds only the decoded metadata.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pak: %w", err)
	}

	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat pak: %w", err)
	}

	r, err := newReader(f, fi.Size())
	_ = f.Close()
	if err != nil {
		return nil, err
	}
	r.ra = nil
	return r, nil
}

// OpenReaderAt decodes a PAK archive from an already-open io.ReaderAt of the
// given size. The caller retains ownership of ra; Close is a no-op on the
// underlying source.
func OpenReaderAt(ra io.ReaderAt, size int64) (*Reader, error) {
	return newReader(ra, size)
}

func newReader(ra io.ReaderAt, size int64) (*Reader, error) {
	if size < footerBaseSize {
		return nil, fmt.Errorf("%w: file is %d bytes", ErrFileTooSmall, size)
	}

	result, err := probe(ra, size)
	if err != nil {
		return nil, err
	}

	paths := append([]string(nil), result.index.paths...)

	return &Reader{
		ra:   ra,
		size: size,
		model: model{
			mountPoint: result.index.mountPoint,
			paths:      paths,
			entries:    result.index.entries,
			footer:     result.footer,
		},
	}, nil
}

// Close has nothing to release and returns nil: Open closes its file before
// returning, and a Reader obtained from OpenReaderAt leaves the source with
// the caller.
func (r *Reader) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	return r.file.Close()
}

// Version reports the probed-and-confirmed footer version.
func (r *Reader) Version() Version { return r.model.footer.Version }

// MountPoint reports the index's declared mount point string.
func (r *Reader) MountPoint() string { return r.model.mountPoint }

// Footer returns a copy of the decoded footer.
func (r *Reader) Footer() Footer { return r.model.footer }

// EncryptedIndex reports whether the footer declared the index encrypted.
// Open already fails with *EncryptedIndexError for an encrypted index, so
// on a successfully opened Reader this is always false; kept for parity
// with the footer flag's availability.
func (r *Reader) EncryptedIndex() bool { return r.model.footer.Encrypted }

// EncryptionGUID returns the footer's encryption key GUID, if the probed
// version carries one.
func (r *Reader) EncryptionGUID() (uuid.UUID, bool) {
	return r.model.footer.EncryptionGUID, r.model.footer.HasEncryptionGUID
}

// Files returns every decoded file path in index order, de-duplicated, with
// any leading path separator stripped (§5, §6).
func (r *Reader) Files() []string {
	out := make([]string, len(r.model.paths))
	copy(out, r.model.paths)
	return out
}

// Directories returns the sorted, de-duplicated set of every proper
// ancestor directory across Files, computed once and memoized.
func (r *Reader) Directories() []string {
	r.dirsOnce.Do(func() {
		r.dirs = directoriesOf(r.model.paths)
	})
	out := make([]string, len(r.dirs))
	copy(out, r.dirs)
	return out
}

// Entry looks up the decoded physical descriptor for a path as it appears
// in Files. The path must already be normalized (no leading "/").
func (r *Reader) Entry(path string) (Entry, bool) {
	e, ok := r.model.entries[path]
	return e, ok
}

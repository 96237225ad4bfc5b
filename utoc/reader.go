// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ironveil
// Source: github.com/ironveil/ueassets

package utoc

import (
	"fmt"
	"os"
	"sync"

	"github.com/ironveil/ueassets/wire"
)

// Reader provides read-only access to a parsed UTOC table of contents.
// Per §5, the entire file is read into memory up front and the OS handle is
// released before Open returns.
type Reader struct {
	model TocModel

	pathsOnce sync.Once
	paths     []string
	pathsErr  error
}

// Open reads and decodes the UTOC file at path.
func Open(path string) (*Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read utoc: %w", err)
	}
	return OpenBytes(data)
}

// OpenBytes decodes a UTOC file already held in memory.
func OpenBytes(data []byte) (*Reader, error) {
	if int64(len(data)) < HeaderSize {
		return nil, fmt.Errorf("%w: file is %d bytes", ErrFileTooSmall, len(data))
	}

	c := wire.NewCursorBytes(data)

	header, err := decodeHeader(c)
	if err != nil {
		return nil, err
	}

	model, err := decodeBody(c, header)
	if err != nil {
		return nil, err
	}

	return &Reader{model: model}, nil
}

// Header returns a copy of the decoded header.
func (r *Reader) Header() TocHeader { return r.model.Header }

// DirectoryIndex returns the decoded directory index.
func (r *Reader) DirectoryIndex() DirectoryIndex { return r.model.DirectoryIndex }

// ChunkIDs returns the decoded chunk-id table.
func (r *Reader) ChunkIDs() []ChunkId {
	out := make([]ChunkId, len(r.model.ChunkIDs))
	copy(out, r.model.ChunkIDs)
	return out
}

// OffsetsAndLengths returns the decoded offset/length table, index-aligned
// with ChunkIDs.
func (r *Reader) OffsetsAndLengths() []OffsetAndLength {
	out := make([]OffsetAndLength, len(r.model.OffsetsAndLengths))
	copy(out, r.model.OffsetsAndLengths)
	return out
}

// ChunkMetas returns the decoded chunk-metadata table, index-aligned with
// ChunkIDs.
func (r *Reader) ChunkMetas() []ChunkMeta {
	out := make([]ChunkMeta, len(r.model.ChunkMetas))
	copy(out, r.model.ChunkMetas)
	return out
}

// CompressionMethods returns the decoded compression-method name table.
func (r *Reader) CompressionMethods() []string {
	out := make([]string, len(r.model.CompressionMethods))
	copy(out, r.model.CompressionMethods)
	return out
}

// AllFilePaths returns every file's full path, concatenated with the mount
// point and slash-normalized (§4.8, §6), computed once and memoized.
func (r *Reader) AllFilePaths() ([]string, error) {
	r.pathsOnce.Do(func() {
		r.paths, r.pathsErr = r.model.DirectoryIndex.allFilePaths()
	})
	if r.pathsErr != nil {
		return nil, r.pathsErr
	}
	out := make([]string, len(r.paths))
	copy(out, r.paths)
	return out, nil
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ironveil
// Source: github.com/ironveil/ueassets

package utoc

import (
	"fmt"
	"strings"

	"github.com/ironveil/ueassets/wire"
)

// decodeDirectoryIndex parses the raw directory-index sub-buffer, per §4.8
// steps 1-4.
func decodeDirectoryIndex(c *wire.Cursor) (DirectoryIndex, error) {
	mountPoint, err := c.ReadEngineString()
	if err != nil {
		return DirectoryIndex{}, fmt.Errorf("read mount point: %w", err)
	}

	dirCount, err := c.ReadU32()
	if err != nil {
		return DirectoryIndex{}, fmt.Errorf("read directory entry count: %w", err)
	}
	dirs := make([]DirectoryEntry, dirCount)
	for i := range dirs {
		d, err := decodeDirectoryEntry(c)
		if err != nil {
			return DirectoryIndex{}, fmt.Errorf("read directory entry %d: %w", i, err)
		}
		dirs[i] = d
	}

	fileCount, err := c.ReadU32()
	if err != nil {
		return DirectoryIndex{}, fmt.Errorf("read file entry count: %w", err)
	}
	files := make([]FileEntry, fileCount)
	for i := range files {
		f, err := decodeFileEntry(c)
		if err != nil {
			return DirectoryIndex{}, fmt.Errorf("read file entry %d: %w", i, err)
		}
		files[i] = f
	}

	stringCount, err := c.ReadU32()
	if err != nil {
		return DirectoryIndex{}, fmt.Errorf("read string count: %w", err)
	}
	strs := make([]string, stringCount)
	for i := range strs {
		s, err := c.ReadEngineString()
		if err != nil {
			return DirectoryIndex{}, fmt.Errorf("read string %d: %w", i, err)
		}
		strs[i] = s
	}

	idx := DirectoryIndex{MountPoint: mountPoint, Directories: dirs, Files: files, Strings: strs}
	if err := validateDirectoryIndex(idx); err != nil {
		return DirectoryIndex{}, err
	}
	return idx, nil
}

func decodeDirectoryEntry(c *wire.Cursor) (DirectoryEntry, error) {
	var d DirectoryEntry
	var err error

	d.Name, d.HasName, err = c.ReadOptionalIndex()
	if err != nil {
		return DirectoryEntry{}, fmt.Errorf("read name: %w", err)
	}
	d.FirstChild, d.HasFirstChild, err = c.ReadOptionalIndex()
	if err != nil {
		return DirectoryEntry{}, fmt.Errorf("read first child entry: %w", err)
	}
	d.NextSibling, d.HasNextSibling, err = c.ReadOptionalIndex()
	if err != nil {
		return DirectoryEntry{}, fmt.Errorf("read next sibling entry: %w", err)
	}
	d.FirstFile, d.HasFirstFile, err = c.ReadOptionalIndex()
	if err != nil {
		return DirectoryEntry{}, fmt.Errorf("read first file entry: %w", err)
	}
	return d, nil
}

func decodeFileEntry(c *wire.Cursor) (FileEntry, error) {
	var f FileEntry
	var err error

	f.Name, err = c.ReadU32()
	if err != nil {
		return FileEntry{}, fmt.Errorf("read name: %w", err)
	}
	f.NextFile, f.HasNextFile, err = c.ReadOptionalIndex()
	if err != nil {
		return FileEntry{}, fmt.Errorf("read next file entry: %w", err)
	}
	f.UserData, err = c.ReadU32()
	if err != nil {
		return FileEntry{}, fmt.Errorf("read user data: %w", err)
	}
	return f, nil
}

// validateDirectoryIndex checks invariant 5 (§8): every reachable directory
// and file-name index is within bounds.
func validateDirectoryIndex(idx DirectoryIndex) error {
	for i, d := range idx.Directories {
		if d.HasName && int(d.Name) >= len(idx.Strings) {
			return invalidRecord("directory %d name index %d out of range for %d strings", i, d.Name, len(idx.Strings))
		}
		if d.HasFirstChild && int(d.FirstChild) >= len(idx.Directories) {
			return invalidRecord("directory %d first child index %d out of range", i, d.FirstChild)
		}
		if d.HasNextSibling && int(d.NextSibling) >= len(idx.Directories) {
			return invalidRecord("directory %d next sibling index %d out of range", i, d.NextSibling)
		}
		if d.HasFirstFile && int(d.FirstFile) >= len(idx.Files) {
			return invalidRecord("directory %d first file index %d out of range", i, d.FirstFile)
		}
	}
	for i, f := range idx.Files {
		if int(f.Name) >= len(idx.Strings) {
			return invalidRecord("file %d name index %d out of range for %d strings", i, f.Name, len(idx.Strings))
		}
		if f.HasNextFile && int(f.NextFile) >= len(idx.Files) {
			return invalidRecord("file %d next file index %d out of range", i, f.NextFile)
		}
	}
	return nil
}

// allFilePaths performs the §4.8 depth-first full-path enumeration starting
// at directory 0, concatenated with the mount point.
func (idx DirectoryIndex) allFilePaths() ([]string, error) {
	if len(idx.Directories) == 0 {
		return nil, nil
	}

	var out []string
	visited := make(map[uint32]bool, len(idx.Directories))

	var walk func(dirIndex uint32, stack []string) error
	walk = func(dirIndex uint32, stack []string) error {
		if visited[dirIndex] {
			return invalidRecord("directory %d revisited during traversal (cycle)", dirIndex)
		}
		visited[dirIndex] = true

		d := idx.Directories[dirIndex]
		if d.HasName {
			stack = append(stack, idx.Strings[d.Name])
		}

		if d.HasFirstFile {
			fileIdx := d.FirstFile
			for {
				f := idx.Files[fileIdx]
				out = append(out, joinPath(idx.MountPoint, stack, idx.Strings[f.Name]))
				if !f.HasNextFile {
					break
				}
				fileIdx = f.NextFile
			}
		}

		if d.HasFirstChild {
			childIdx := d.FirstChild
			for {
				if err := walk(childIdx, stack); err != nil {
					return err
				}
				child := idx.Directories[childIdx]
				if !child.HasNextSibling {
					break
				}
				childIdx = child.NextSibling
			}
		}

		return nil
	}

	if err := walk(0, nil); err != nil {
		return nil, err
	}
	return out, nil
}

// joinPath concatenates the mount point, directory stack, and file name,
// collapsing repeated "/" (§4.8's full-path enumeration rule).
func joinPath(mountPoint string, stack []string, fileName string) string {
	parts := append([]string{mountPoint}, stack...)
	parts = append(parts, fileName)
	joined := strings.Join(parts, "/")
	for strings.Contains(joined, "//") {
		joined = strings.ReplaceAll(joined, "//", "/")
	}
	return joined
}

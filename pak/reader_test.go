package pak

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/ironveil/ueassets/wire"
)

// S1: PAK v11, unencrypted, 0 files.
func TestOpenScenarioV11Empty(t *testing.T) {
	t.Parallel()

	data := buildPakPathHashIndexEmpty(VersionFnv64BugFix, "")
	r, err := OpenReaderAt(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("OpenReaderAt: %v", err)
	}
	if r.Version() != VersionFnv64BugFix {
		t.Fatalf("Version() = %v, want %v", r.Version(), VersionFnv64BugFix)
	}
	if files := r.Files(); len(files) != 0 {
		t.Fatalf("Files() = %v, want empty", files)
	}
}

// S2: PAK v5, three files under two directories.
func TestOpenScenarioV5ThreeFiles(t *testing.T) {
	t.Parallel()

	files := []fileSpec{
		{path: "a/b.uasset", entry: entrySpec{offset: 0, compressedSize: 10, uncompressedSize: 10}},
		{path: "a/b.uexp", entry: entrySpec{offset: 10, compressedSize: 20, uncompressedSize: 20}},
		{path: "c/d.umap", entry: entrySpec{offset: 30, compressedSize: 30, uncompressedSize: 30}},
	}
	data := buildPak(VersionRelativeChunkOffsets, "../../../", files, false, uuid.Nil, nil)

	r, err := OpenReaderAt(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("OpenReaderAt: %v", err)
	}
	if r.MountPoint() != "../../../" {
		t.Fatalf("MountPoint() = %q", r.MountPoint())
	}

	wantFiles := []string{"a/b.uasset", "a/b.uexp", "c/d.umap"}
	if got := r.Files(); !reflect.DeepEqual(got, wantFiles) {
		t.Fatalf("Files() = %v, want %v", got, wantFiles)
	}

	wantDirs := []string{"a", "c"}
	if got := r.Directories(); !reflect.DeepEqual(got, wantDirs) {
		t.Fatalf("Directories() = %v, want %v", got, wantDirs)
	}
}

// S3: PAK v3, one compressed entry with two blocks.
func TestOpenScenarioV3Compressed(t *testing.T) {
	t.Parallel()

	spec := entrySpec{
		offset:           0,
		compressedSize:   250,
		uncompressedSize: 350,
		slot:             2, // 1-based -> CompressionSlot 1 (Gzip in the synthesized table)
		blocks:           []PakBlock{{Start: 100, End: 200}, {Start: 200, End: 350}},
		flags:            0,
		blockSize:        0x10000,
	}
	files := []fileSpec{{path: "big.pak.bin", entry: spec}}
	data := buildPak(VersionCompressionEncryption, "", files, false, uuid.Nil, nil)

	r, err := OpenReaderAt(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("OpenReaderAt: %v", err)
	}

	e, ok := r.Entry("big.pak.bin")
	if !ok {
		t.Fatalf("Entry not found")
	}
	if !e.HasCompression || e.CompressionSlot != 1 {
		t.Fatalf("entry compression = (%v, %d), want (true, 1)", e.HasCompression, e.CompressionSlot)
	}
	wantBlocks := []PakBlock{{Start: 100, End: 200}, {Start: 200, End: 350}}
	if !reflect.DeepEqual(e.Blocks, wantBlocks) {
		t.Fatalf("entry blocks = %v, want %v", e.Blocks, wantBlocks)
	}
	if r.Footer().CompressionMethods[e.CompressionSlot] != CompressionGzip {
		t.Fatalf("resolved method = %v, want Gzip", r.Footer().CompressionMethods[e.CompressionSlot])
	}
}

// S4: PAK with an encrypted index; the encryption GUID must still be
// reported even though Open fails, per §7's encryption policy.
func TestOpenScenarioEncryptedIndex(t *testing.T) {
	t.Parallel()

	guid := uuid.MustParse("01020304-0506-0708-090a-0b0c0d0e0f10")
	data := buildPak(VersionEncryptionKeyGuid, "", nil, true, guid, nil)

	_, err := OpenReaderAt(bytes.NewReader(data), int64(len(data)))
	if !errors.Is(err, wire.ErrEncryptedContainer) {
		t.Fatalf("expected ErrEncryptedContainer, got %v", err)
	}

	var encErr *EncryptedIndexError
	if !errors.As(err, &encErr) {
		t.Fatalf("expected *EncryptedIndexError, got %T: %v", err, err)
	}
	if !encErr.HasEncryptionGUID || encErr.EncryptionGUID != guid {
		t.Fatalf("EncryptionGUID = %v (has=%v), want %v", encErr.EncryptionGUID, encErr.HasEncryptionGUID, guid)
	}
}

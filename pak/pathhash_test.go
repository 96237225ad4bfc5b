package pak

// buildPakPathHashIndexEmpty builds a synthetic PAK using the PathHashIndex
// branch (version >= PathHashIndex) with zero files: no path-hash-index
// section and no full-directory-index section.
func buildPakPathHashIndexEmpty(v Version, mountPoint string) []byte {
	var index []byte
	index = append(index, encodeEngineStringASCII(mountPoint)...)
	index = append(index, u32le(0)...) // entryCount, unused on this branch
	index = append(index, make([]byte, 8)...) // path hash seed
	index = append(index, u32le(0)...)        // path hash index flag: absent
	index = append(index, u32le(0)...)        // full directory index flag: absent

	footer := encodeFooter(footerSpec{
		version:     v,
		indexOffset: 0,
		indexSize:   uint64(len(index)),
	})
	return append(index, footer...)
}

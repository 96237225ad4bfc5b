package pak

import "testing"

func TestVersionMajorIsStableAcrossProbeOrder(t *testing.T) {
	t.Parallel()

	seen := make(map[uint32]Version)
	for _, v := range probeOrder {
		major := v.Major()
		if major == 0 {
			t.Fatalf("%s has Major() == 0", v)
		}
		if other, ok := seen[major]; ok && other != v {
			// V8A/V8B both declare major 8; every other major is unique.
			if major != 8 {
				t.Fatalf("majors %d shared by %s and %s", major, other, v)
			}
		}
		seen[major] = v
	}
}

func TestVersionV8ABFooterSizeSplit(t *testing.T) {
	t.Parallel()

	aSize := footerSize(VersionFNameBasedCompressionA)
	bSize := footerSize(VersionFNameBasedCompressionB)
	if bSize != aSize+32 {
		t.Fatalf("V8B footer size = %d, want V8A(%d)+32", bSize, aSize)
	}
}

func TestVersionSingleByteCompressionSlotOnlyV8A(t *testing.T) {
	t.Parallel()

	for _, v := range probeOrder {
		got := v.hasSingleByteCompressionSlot()
		want := v == VersionFNameBasedCompressionA
		if got != want {
			t.Fatalf("%s.hasSingleByteCompressionSlot() = %v, want %v", v, got, want)
		}
	}
}

func TestVersionHasTimestampOnlyInitial(t *testing.T) {
	t.Parallel()

	for _, v := range probeOrder {
		got := v.hasTimestamp()
		want := v.Major() == VersionInitial.Major()
		if got != want {
			t.Fatalf("%s.hasTimestamp() = %v, want %v", v, got, want)
		}
	}
}

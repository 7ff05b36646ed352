package reframer

import (
	"bytes"
	"testing"
)

func frame(body byte) []byte {
	return []byte{0x78, 0x78, 0x05, 0x13, body, 0x00, 0x01, 0xAB, 0xCD, 0x0D, 0x0A}
}

func TestExtractFramesConcatenated(t *testing.T) {
	f1, f2 := frame(0x01), frame(0x02)
	buf := append(append([]byte{}, f1...), f2...)

	frames, residue := ExtractFrames(buf)
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if !bytes.Equal(frames[0], f1) || !bytes.Equal(frames[1], f2) {
		t.Errorf("frames did not match inputs")
	}
	if len(residue) != 0 {
		t.Errorf("expected empty residue, got %d bytes", len(residue))
	}
}

func TestExtractFramesDiscardsLeadingGarbage(t *testing.T) {
	f1 := frame(0x01)
	buf := append([]byte{0xDE, 0xAD, 0xBE, 0xEF}, f1...)

	frames, residue := ExtractFrames(buf)
	if len(frames) != 1 || !bytes.Equal(frames[0], f1) {
		t.Fatalf("expected exactly one matching frame, got %v", frames)
	}
	if len(residue) != 0 {
		t.Errorf("expected empty residue, got %d bytes", len(residue))
	}
}

func TestExtractFramesDiscardsStrayEndSentinel(t *testing.T) {
	f1 := frame(0x01)
	// A stray 0x0D 0x0A precedes the first real start sentinel.
	buf := append([]byte{0x0D, 0x0A, 0x11, 0x22}, f1...)

	frames, residue := ExtractFrames(buf)
	if len(frames) != 1 || !bytes.Equal(frames[0], f1) {
		t.Fatalf("expected exactly one matching frame, got %v", frames)
	}
	if len(residue) != 0 {
		t.Errorf("expected empty residue, got %d bytes", len(residue))
	}
}

func TestExtractFramesIncompleteTail(t *testing.T) {
	f1 := frame(0x01)
	partial := f1[:6] // start + length + protocol + content byte + first serial byte
	buf := append(append([]byte{}, f1...), partial...)

	frames, residue := ExtractFrames(buf)
	if len(frames) != 1 {
		t.Fatalf("expected 1 complete frame, got %d", len(frames))
	}
	if !bytes.Equal(residue, partial) {
		t.Errorf("residue = %x, want %x", residue, partial)
	}
}

func TestReframerFeedAcrossReads(t *testing.T) {
	f1 := frame(0x01)
	r := New()

	if frames := r.Feed(f1[:4]); len(frames) != 0 {
		t.Fatalf("expected no frames yet, got %d", len(frames))
	}
	if r.Pending() != 4 {
		t.Errorf("expected 4 pending bytes, got %d", r.Pending())
	}

	frames := r.Feed(f1[4:])
	if len(frames) != 1 || !bytes.Equal(frames[0], f1) {
		t.Fatalf("expected the completed frame once all bytes arrived, got %v", frames)
	}
	if r.Pending() != 0 {
		t.Errorf("expected no pending bytes after a complete frame, got %d", r.Pending())
	}
}

func TestReframerFeedByteByByte(t *testing.T) {
	f1 := frame(0x01)
	r := New()

	var frames [][]byte
	for _, b := range f1 {
		frames = append(frames, r.Feed([]byte{b})...)
	}
	if len(frames) != 1 || !bytes.Equal(frames[0], f1) {
		t.Fatalf("expected the completed frame after a byte-by-byte feed, got %v", frames)
	}
}

func TestExtractFramesRetainsSplitStartSentinel(t *testing.T) {
	// A lone 0x78 at the end of a read may be the first half of the
	// next start sentinel; it must not be discarded as garbage.
	frames, residue := ExtractFrames([]byte{0x78})
	if len(frames) != 0 {
		t.Fatalf("expected no frames, got %d", len(frames))
	}
	if !bytes.Equal(residue, []byte{0x78}) {
		t.Errorf("residue = %x, want [78]", residue)
	}
}

func TestReframerReset(t *testing.T) {
	r := New()
	r.Feed(frame(0x01)[:4])
	if r.Pending() == 0 {
		t.Fatal("expected pending bytes before reset")
	}
	r.Reset()
	if r.Pending() != 0 {
		t.Errorf("expected 0 pending bytes after reset, got %d", r.Pending())
	}
}

package codec

import (
	"testing"
	"time"
)

func TestEncodeDecodeDateTimeRoundTrip(t *testing.T) {
	in := time.Date(2023, time.March, 5, 14, 9, 33, 0, time.UTC)
	enc, err := EncodeDateTime(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(enc) != 6 {
		t.Fatalf("expected 6 bytes, got %d", len(enc))
	}
	want := []byte{0x23, 0x03, 0x05, 0x14, 0x09, 0x33}
	for i := range want {
		if enc[i] != want[i] {
			t.Errorf("byte %d = 0x%02X, want 0x%02X", i, enc[i], want[i])
		}
	}

	dec, err := DecodeDateTime(enc)
	if err != nil {
		t.Fatal(err)
	}
	if !dec.Equal(in) {
		t.Errorf("DecodeDateTime(%x) = %v, want %v", enc, dec, in)
	}
}

func TestDecodeDateTimeRejectsInvalidBCD(t *testing.T) {
	_, err := DecodeDateTime([]byte{0x23, 0x0A, 0x05, 0x14, 0x09, 0x33})
	if err == nil {
		t.Fatal("expected error for non-BCD month nibble")
	}
}

func TestDecodeDateTimeRejectsShortField(t *testing.T) {
	if _, err := DecodeDateTime([]byte{0x23, 0x03}); err == nil {
		t.Fatal("expected error for short date_time field")
	}
}

func TestEncodeDateTimeRejectsOutOfBCDRange(t *testing.T) {
	if _, err := EncodeDateTime(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)); err == nil {
		t.Fatal("expected error for year before 2000")
	}
}

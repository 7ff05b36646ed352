package codec

import "testing"

func TestCalculateCRC(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected uint16
	}{
		{name: "empty data", data: []byte{}, expected: 0x0000},
		{name: "login frame body", data: []byte{
			0x15, 0x01,
			0x30, 0x33, 0x35, 0x33, 0x34, 0x31, 0x33, 0x35, 0x33, 0x32, 0x31, 0x35, 0x30, 0x33, 0x36, 0x32,
			0x00, 0x01,
		}, expected: CalculateCRC([]byte{
			0x15, 0x01,
			0x30, 0x33, 0x35, 0x33, 0x34, 0x31, 0x33, 0x35, 0x33, 0x32, 0x31, 0x35, 0x30, 0x33, 0x36, 0x32,
			0x00, 0x01,
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateCRC(tt.data); got != tt.expected {
				t.Errorf("CalculateCRC(%x) = 0x%04X, want 0x%04X", tt.data, got, tt.expected)
			}
		})
	}
}

func TestCalculateCRCKnownVector(t *testing.T) {
	// CRC-ITU-16 / CRC-16-X25 of the ASCII string "123456789" is the
	// well known check value 0x906E.
	got := CalculateCRC([]byte("123456789"))
	if got != 0x906E {
		t.Fatalf("CalculateCRC(123456789) = 0x%04X, want 0x906E", got)
	}
}

func TestAppendCRC(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	result := AppendCRC(data)

	if len(result) != len(data)+2 {
		t.Fatalf("expected length %d, got %d", len(data)+2, len(result))
	}
	for i := range data {
		if result[i] != data[i] {
			t.Errorf("byte %d changed: expected 0x%02X, got 0x%02X", i, data[i], result[i])
		}
	}
	crc := CalculateCRC(data)
	if got := ReadUint16BE(result[len(data):]); got != crc {
		t.Errorf("appended CRC = 0x%04X, want 0x%04X", got, crc)
	}
}

func buildTestFrame(content []byte) []byte {
	crcData := append([]byte{byte(len(content) + 5), 0x13}, content...)
	crcData = append(crcData, 0x00, 0x01)
	crc := CalculateCRC(crcData)
	frame := append([]byte{0x78, 0x78}, crcData...)
	frame = append(frame, byte(crc>>8), byte(crc))
	frame = append(frame, 0x0D, 0x0A)
	return frame
}

func TestValidateCRC(t *testing.T) {
	frame := buildTestFrame([]byte{0x00})
	if !ValidateCRC(frame) {
		t.Fatal("expected valid CRC")
	}

	frame[4] = 0xFF // corrupt the content byte
	if ValidateCRC(frame) {
		t.Fatal("expected invalid CRC after corruption")
	}
}

func TestVerifyPacketCRC(t *testing.T) {
	frame := buildTestFrame([]byte{0x00})
	received, calculated, ok := VerifyPacketCRC(frame)
	if !ok {
		t.Fatal("expected ok=true for a well-formed frame")
	}
	if received != calculated {
		t.Errorf("CRC mismatch: received=0x%04X, calculated=0x%04X", received, calculated)
	}
}

func BenchmarkCalculateCRC(b *testing.B) {
	data := make([]byte, 100)
	for i := range data {
		data[i] = byte(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = CalculateCRC(data)
	}
}

package codec

import "encoding/binary"

// Binary encoding/decoding helpers for the GT06 wire format

// ReadUint16BE reads a big-endian uint16 from 2 bytes
func ReadUint16BE(data []byte) uint16 {
	if len(data) < 2 {
		return 0
	}
	return binary.BigEndian.Uint16(data)
}

// ReadUint32BE reads a big-endian uint32 from 4 bytes
func ReadUint32BE(data []byte) uint32 {
	if len(data) < 4 {
		return 0
	}
	return binary.BigEndian.Uint32(data)
}

// WriteUint16BE writes a uint16 as big-endian to 2 bytes
func WriteUint16BE(value uint16) []byte {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, value)
	return buf
}

// WriteUint32BE writes a uint32 as big-endian to 4 bytes
func WriteUint32BE(value uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, value)
	return buf
}

// ReadUint24BE reads a 24-bit big-endian value (3 bytes) as uint32
// Used for the LBS cell id
func ReadUint24BE(data []byte) uint32 {
	if len(data) < 3 {
		return 0
	}
	return uint32(data[0])<<16 | uint32(data[1])<<8 | uint32(data[2])
}

// WriteUint24BE writes a uint32 as 24-bit big-endian (3 bytes)
// Only the lower 24 bits are written
func WriteUint24BE(value uint32) []byte {
	return []byte{
		byte(value >> 16),
		byte(value >> 8),
		byte(value),
	}
}

// ReadNibbles reads high and low nibbles from a byte
// Returns (highNibble, lowNibble)
func ReadNibbles(b byte) (high, low byte) {
	high = (b >> 4) & 0x0F
	low = b & 0x0F
	return
}

// WriteNibbles combines high and low nibbles into a byte
func WriteNibbles(high, low byte) byte {
	return (high << 4) | (low & 0x0F)
}

package codec

// CRC-ITU-16 (a.k.a. CRC-16/X-25): poly 0x1021, init 0xFFFF, reflected
// input/output, final XOR 0xFFFF. GT06 frames carry this CRC over the
// span length‖protocol‖payload‖serial.

var crcITUTable [256]uint16

func init() {
	const poly = 0x8408 // 0x1021 bit-reversed
	for i := 0; i < 256; i++ {
		crc := uint16(i)
		for b := 0; b < 8; b++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ poly
			} else {
				crc >>= 1
			}
		}
		crcITUTable[i] = crc
	}
}

// CalculateCRC computes the CRC-ITU-16 checksum over data.
func CalculateCRC(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc = (crc >> 8) ^ crcITUTable[(crc^uint16(b))&0xFF]
	}
	return crc ^ 0xFFFF
}

// AppendCRC returns data with its big-endian CRC-ITU-16 appended.
func AppendCRC(data []byte) []byte {
	crc := CalculateCRC(data)
	return append(append([]byte{}, data...), byte(crc>>8), byte(crc))
}

// ValidateCRC reports whether the last two bytes before the stop bits
// of a complete GT06 frame match the CRC computed over length‖protocol‖
// payload‖serial. frame must include the 2-byte start and 2-byte stop
// sentinels.
func ValidateCRC(frame []byte) bool {
	received, calculated, ok := VerifyPacketCRC(frame)
	return ok && received == calculated
}

// VerifyPacketCRC extracts the received CRC from a complete frame and
// recomputes it, returning both values plus whether they match.
func VerifyPacketCRC(frame []byte) (received, calculated uint16, ok bool) {
	if len(frame) < 10 {
		return 0, 0, false
	}
	crcData := frame[2 : len(frame)-4]
	calculated = CalculateCRC(crcData)
	received = ReadUint16BE(frame[len(frame)-4 : len(frame)-2])
	return received, calculated, true
}

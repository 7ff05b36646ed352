// Package frame assembles and parses complete GT06 frames: sentinel |
// length | protocol | payload | serial | CRC | sentinel.
package frame

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/intelcon-group/gt06-client/internal/codec"
)

var (
	startSentinel = []byte{0x78, 0x78}
	endSentinel   = []byte{0x0D, 0x0A}
)

// Sentinel errors identifying why a frame was rejected. Wrap these with
// fmt.Errorf("%w: ...", ErrX) for extra context; callers use errors.Is
// to classify a failure.
var (
	ErrBadSentinel   = errors.New("frame: missing or malformed start/stop sentinel")
	ErrBadLength     = errors.New("frame: length byte does not match frame size")
	ErrBadCRC        = errors.New("frame: CRC mismatch")
	ErrPayloadTooBig = errors.New("frame: payload too long to fit the one-byte length field")
)

// minFrameSize is sentinel(2) + length(1) + protocol(1) + serial(2) +
// crc(2) + sentinel(2) with a zero-length payload.
const minFrameSize = 10

// Frame is a fully parsed GT06 frame.
type Frame struct {
	Protocol byte
	Serial   uint16
	Payload  []byte
}

// Encode assembles a complete wire frame for protocol/serial/payload.
func Encode(protocol byte, serial uint16, payload []byte) ([]byte, error) {
	length := 5 + len(payload)
	if length > 0xFF {
		return nil, fmt.Errorf("%w: payload is %d bytes", ErrPayloadTooBig, len(payload))
	}

	body := make([]byte, 0, length+2)
	body = append(body, byte(length), protocol)
	body = append(body, payload...)
	body = append(body, codec.WriteUint16BE(serial)...)

	out := make([]byte, 0, len(startSentinel)+len(body)+2+len(endSentinel))
	out = append(out, startSentinel...)
	out = append(out, codec.AppendCRC(body)...)
	out = append(out, endSentinel...)
	return out, nil
}

// Decode parses a single complete candidate frame (sentinels included).
// It validates sentinels, the length byte, and the CRC before returning
// the protocol number, serial, and payload.
func Decode(raw []byte) (Frame, error) {
	if len(raw) < minFrameSize {
		return Frame{}, fmt.Errorf("%w: frame is only %d bytes", ErrBadSentinel, len(raw))
	}
	if !bytes.Equal(raw[0:2], startSentinel) || !bytes.Equal(raw[len(raw)-2:], endSentinel) {
		return Frame{}, ErrBadSentinel
	}

	length := int(raw[2])
	expected := len(startSentinel) + 1 + length + len(endSentinel)
	if expected != len(raw) {
		return Frame{}, fmt.Errorf("%w: declared length implies %d bytes, got %d", ErrBadLength, expected, len(raw))
	}

	if !codec.ValidateCRC(raw) {
		received, calculated, _ := codec.VerifyPacketCRC(raw)
		return Frame{}, fmt.Errorf("%w: received 0x%04X, calculated 0x%04X", ErrBadCRC, received, calculated)
	}

	protocolNum := raw[3]
	payload := raw[4 : len(raw)-6]
	serial := codec.ReadUint16BE(raw[len(raw)-6 : len(raw)-4])

	return Frame{Protocol: protocolNum, Serial: serial, Payload: payload}, nil
}

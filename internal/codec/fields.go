package codec

import "fmt"

// CoordinateDivisor is the fixed-point scale applied to decimal degrees
// before truncating to a 32-bit integer: value = trunc(|deg| * 1,800,000).
const CoordinateDivisor = 1800000.0

// EncodeCoordinate truncates |deg| * CoordinateDivisor to a big-endian
// uint32. Sign is carried separately (lat_ns / lon_ew flags), not here.
func EncodeCoordinate(deg float64) []byte {
	if deg < 0 {
		deg = -deg
	}
	return WriteUint32BE(uint32(deg * CoordinateDivisor))
}

// DecodeCoordinate reverses EncodeCoordinate, returning an unsigned
// decimal-degree magnitude.
func DecodeCoordinate(data []byte) (float64, error) {
	if len(data) != 4 {
		return 0, fmt.Errorf("coordinate field must be 4 bytes, got %d", len(data))
	}
	return float64(ReadUint32BE(data)) / CoordinateDivisor, nil
}

// GPSCourse packs the flags and heading carried in the 16-bit GPS
// status/course word: is_real_time | gps_onoff | lon_ew | lat_ns | course
// (10 bits), stored in the low 14 bits of a big-endian uint16.
type GPSCourse struct {
	IsRealTime bool
	GPSOnOff   bool
	LonEW      bool // true = West
	LatNS      bool // true = North
	Course     uint16
}

// EncodeGPSCourse packs c into its 2-byte wire form.
func EncodeGPSCourse(c GPSCourse) ([]byte, error) {
	if c.Course > 359 {
		return nil, fmt.Errorf("course out of range [0, 359]: %d", c.Course)
	}
	var word uint16
	if c.IsRealTime {
		word |= 1 << 13
	}
	if c.GPSOnOff {
		word |= 1 << 12
	}
	if c.LonEW {
		word |= 1 << 11
	}
	if c.LatNS {
		word |= 1 << 10
	}
	word |= c.Course & 0x03FF
	return WriteUint16BE(word), nil
}

// DecodeGPSCourse unpacks the 2-byte GPS status/course word.
func DecodeGPSCourse(data []byte) (GPSCourse, error) {
	if len(data) != 2 {
		return GPSCourse{}, fmt.Errorf("gps status/course field must be 2 bytes, got %d", len(data))
	}
	word := ReadUint16BE(data)
	return GPSCourse{
		IsRealTime: word&(1<<13) != 0,
		GPSOnOff:   word&(1<<12) != 0,
		LonEW:      word&(1<<11) != 0,
		LatNS:      word&(1<<10) != 0,
		Course:     word & 0x03FF,
	}, nil
}

// EncodeSatelliteByte packs a GPS-info-length nibble (always 0xC for a
// short packet) and the satellite count (clamped to 15) into one byte.
func EncodeSatelliteByte(satelliteNum int) byte {
	if satelliteNum < 0 {
		satelliteNum = 0
	}
	if satelliteNum > 15 {
		satelliteNum = 15
	}
	return WriteNibbles(0x0C, byte(satelliteNum))
}

// DecodeSatelliteByte extracts the satellite count from the packed byte.
func DecodeSatelliteByte(b byte) int {
	_, low := ReadNibbles(b)
	return int(low)
}

// DeviceStatus is the packed operational-state byte: power|gps|alarm(3
// bits)|charge|acc|defend, MSB to LSB.
type DeviceStatus struct {
	Defend       bool
	ACC          bool
	Charge       bool
	Alarm        AlarmState
	GPSTracking  bool
	Power        bool
	VoltageLevel uint8 // 0-6
	GSMSignal    uint8 // 0-4
}

// AlarmState enumerates the 3-bit alarm code in DeviceStatus.
type AlarmState uint8

const (
	AlarmNormal AlarmState = iota
	AlarmVibration
	AlarmPowerOutage
	AlarmLowBattery
	AlarmSOS
)

// EncodeDeviceStatusByte packs s into the single status byte used by
// location (0x16) and heart-beat (0x13) payloads.
func EncodeDeviceStatusByte(s DeviceStatus) (byte, error) {
	if s.Alarm > AlarmSOS {
		return 0, fmt.Errorf("alarm state out of range [0, 4]: %d", s.Alarm)
	}
	var b byte
	if s.Power {
		b |= 1 << 7
	}
	if s.GPSTracking {
		b |= 1 << 6
	}
	b |= (byte(s.Alarm) & 0x07) << 3
	if s.Charge {
		b |= 1 << 2
	}
	if s.ACC {
		b |= 1 << 1
	}
	if s.Defend {
		b |= 1 << 0
	}
	return b, nil
}

// DecodeDeviceStatusByte unpacks the status byte into its component
// flags. VoltageLevel and GSMSignal are not part of this byte and must
// be set separately by the caller from the adjoining payload bytes.
func DecodeDeviceStatusByte(b byte) DeviceStatus {
	return DeviceStatus{
		Power:       b&(1<<7) != 0,
		GPSTracking: b&(1<<6) != 0,
		Alarm:       AlarmState((b >> 3) & 0x07),
		Charge:      b&(1<<2) != 0,
		ACC:         b&(1<<1) != 0,
		Defend:      b&(1<<0) != 0,
	}
}

// LbsCell is the cellular base-station context reported alongside a GPS
// fix: mcc(u16 be) | mnc(u8) | lac(u16 be) | cell_id(u24 be, clamped).
type LbsCell struct {
	MCC    uint16
	MNC    uint8
	LAC    uint16
	CellID uint32
}

// EncodeLbsCell packs c into its 8-byte wire form, clamping an
// over-range cell_id to 0xFFFFFF rather than failing.
func EncodeLbsCell(c LbsCell) []byte {
	cellID := c.CellID
	if cellID > 0xFFFFFF {
		cellID = 0xFFFFFF
	}
	out := make([]byte, 0, 8)
	out = append(out, WriteUint16BE(c.MCC)...)
	out = append(out, c.MNC)
	out = append(out, WriteUint16BE(c.LAC)...)
	out = append(out, WriteUint24BE(cellID)...)
	return out
}

// DecodeLbsCell unpacks a 8-byte LBS field.
func DecodeLbsCell(data []byte) (LbsCell, error) {
	if len(data) != 8 {
		return LbsCell{}, fmt.Errorf("lbs field must be 8 bytes, got %d", len(data))
	}
	return LbsCell{
		MCC:    ReadUint16BE(data[0:2]),
		MNC:    data[2],
		LAC:    ReadUint16BE(data[3:5]),
		CellID: ReadUint24BE(data[5:8]),
	}, nil
}

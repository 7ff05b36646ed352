package gt06

import (
	"fmt"

	"github.com/intelcon-group/gt06-client/internal/codec"
)

// buildLoginPayload packs an IMEI into the login (0x01) payload: the
// 16-character, right-padded IMEI carried as literal ASCII bytes.
func buildLoginPayload(imei string) ([]byte, error) {
	if len(imei) == 0 || len(imei) > 16 {
		return nil, newFieldError("IMEI", "must be 1-16 characters", imei)
	}
	padded := imei
	for len(padded) < 16 {
		padded += "0"
	}
	return []byte(padded), nil
}

// buildDeviceStatusByte converts a public DeviceStatus into the packed
// status byte shared by heart-beat and status-bearing location frames.
func buildDeviceStatusByte(s DeviceStatus) (byte, error) {
	b, err := codec.EncodeDeviceStatusByte(codec.DeviceStatus{
		Defend:      s.Defend,
		ACC:         s.ACC,
		Charge:      s.Charge,
		Alarm:       codec.AlarmState(s.Alarm),
		GPSTracking: s.GPSTracking,
		Power:       s.Power,
	})
	if err != nil {
		return 0, newFieldError("Alarm", err.Error(), s.Alarm)
	}
	return b, nil
}

// buildHeartbeatPayload packs the heart-beat (0x13) payload: status
// byte, voltage level, GSM signal strength, the alarm code repeated as
// its own byte, and a fixed language byte (0x02, Chinese/default in
// the reference firmware).
func buildHeartbeatPayload(s DeviceStatus) ([]byte, error) {
	statusByte, err := buildDeviceStatusByte(s)
	if err != nil {
		return nil, err
	}
	return []byte{statusByte, s.VoltageLevel, s.GSMSignal, byte(s.Alarm), 0x02}, nil
}

// buildLocationPayload packs the common GPS portion shared by location
// (0x12) and location+status (0x16) payloads: date_time, GPS-info
// length/satellite-count byte, latitude, longitude, speed, and the
// status/course word.
func buildLocationPayload(fix LocationFix) ([]byte, error) {
	dateTime, err := codec.EncodeDateTime(fix.Time)
	if err != nil {
		return nil, newFieldError("Time", err.Error(), fix.Time)
	}

	gpsCourse, err := codec.EncodeGPSCourse(codec.GPSCourse{
		IsRealTime: fix.RealTimeGPS,
		GPSOnOff:   fix.GPSFixed,
		LonEW:      fix.Longitude < 0,
		LatNS:      fix.Latitude >= 0,
		Course:     fix.Course,
	})
	if err != nil {
		return nil, newFieldError("Course", err.Error(), fix.Course)
	}

	payload := make([]byte, 0, 18)
	payload = append(payload, dateTime...)
	payload = append(payload, codec.EncodeSatelliteByte(fix.Satellites))
	payload = append(payload, codec.EncodeCoordinate(fix.Latitude)...)
	payload = append(payload, codec.EncodeCoordinate(fix.Longitude)...)
	payload = append(payload, fix.SpeedKMH)
	payload = append(payload, gpsCourse...)
	return payload, nil
}

// buildLbsBytes packs an LbsCell into its 8-byte wire form.
func buildLbsBytes(cell LbsCell) []byte {
	return codec.EncodeLbsCell(codec.LbsCell{
		MCC:    cell.MCC,
		MNC:    cell.MNC,
		LAC:    cell.LAC,
		CellID: cell.CellID,
	})
}

// buildLocationReportPayload packs a plain location (0x12) payload:
// the GPS block followed directly by the LBS block, with no status
// byte.
func buildLocationReportPayload(fix LocationFix, cell LbsCell) ([]byte, error) {
	gps, err := buildLocationPayload(fix)
	if err != nil {
		return nil, err
	}
	return append(gps, buildLbsBytes(cell)...), nil
}

// buildLocationStatusPayload packs a location+status (0x16) payload:
// the GPS block, a one-byte LBS length, the LBS block, then the
// device-status block (status byte, voltage, GSM signal).
func buildLocationStatusPayload(fix LocationFix, cell LbsCell, status DeviceStatus) ([]byte, error) {
	gps, err := buildLocationPayload(fix)
	if err != nil {
		return nil, err
	}
	lbs := buildLbsBytes(cell)
	statusByte, err := buildDeviceStatusByte(status)
	if err != nil {
		return nil, err
	}

	payload := make([]byte, 0, len(gps)+1+len(lbs)+3)
	payload = append(payload, gps...)
	payload = append(payload, byte(len(lbs)))
	payload = append(payload, lbs...)
	payload = append(payload, statusByte, status.VoltageLevel, status.GSMSignal)
	return payload, nil
}

// buildDeviceCmdReplyPayload packs a device-command-reply (0x15)
// payload: a one-byte length prefix counting the rest of the payload,
// the 4-byte big-endian server flag, then the ASCII reply text.
func buildDeviceCmdReplyPayload(serverFlag uint32, reply string) []byte {
	body := make([]byte, 0, 4+len(reply))
	body = append(body, codec.WriteUint32BE(serverFlag)...)
	body = append(body, []byte(reply)...)
	return append([]byte{byte(len(body))}, body...)
}

// parseServerCommand parses an inbound server-command (0x80) payload
// into a Command: a one-byte length prefix, a 4-byte server flag, and
// the remaining bytes as ASCII command text.
func parseServerCommand(payload []byte) (Command, error) {
	if len(payload) < 5 {
		return Command{}, fmt.Errorf("gt06: server command payload too short: %d bytes", len(payload))
	}
	declared := int(payload[0])
	body := payload[1:]
	if declared > len(body) {
		return Command{}, fmt.Errorf("gt06: server command declares %d body bytes, only %d available", declared, len(body))
	}
	if declared > 0 {
		body = body[:declared]
	}
	if len(body) < 4 {
		return Command{}, fmt.Errorf("gt06: server command body too short for server flag: %d bytes", len(body))
	}
	return Command{
		ServerFlag: codec.ReadUint32BE(body[0:4]),
		Data:       string(body[4:]),
	}, nil
}

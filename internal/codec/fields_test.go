package codec

import "testing"

func TestEncodeCoordinateMatchesKnownVector(t *testing.T) {
	got := EncodeCoordinate(31.824845156501)
	want := []byte{0x03, 0x6A, 0x18, 0x71}
	if ReadUint32BE(got) != ReadUint32BE(want) {
		t.Errorf("EncodeCoordinate(31.824845156501) = %x, want %x", got, want)
	}

	got = EncodeCoordinate(117.24091089413)
	want = []byte{0x0C, 0x94, 0x1E, 0x27}
	if ReadUint32BE(got) != ReadUint32BE(want) {
		t.Errorf("EncodeCoordinate(117.24091089413) = %x, want %x", got, want)
	}
}

func TestCoordinateRoundTrip(t *testing.T) {
	for _, deg := range []float64{0, 1.5, 31.824845156501, 89.999999} {
		enc := EncodeCoordinate(deg)
		dec, err := DecodeCoordinate(enc)
		if err != nil {
			t.Fatalf("DecodeCoordinate: %v", err)
		}
		// truncation during encode means decode can only recover the
		// truncated magnitude, not the exact input.
		reenc := EncodeCoordinate(dec)
		if ReadUint32BE(reenc) != ReadUint32BE(enc) {
			t.Errorf("round trip unstable for %v: %x != %x", deg, reenc, enc)
		}
	}
}

func TestGPSCourseEncodeKnownVector(t *testing.T) {
	c := GPSCourse{IsRealTime: true, GPSOnOff: true, LonEW: false, LatNS: true, Course: 126}
	got, err := EncodeGPSCourse(c)
	if err != nil {
		t.Fatal(err)
	}
	if ReadUint16BE(got) != 0x347E {
		t.Errorf("EncodeGPSCourse(%+v) = 0x%04X, want 0x347E", c, ReadUint16BE(got))
	}
}

func TestGPSCourseRoundTrip(t *testing.T) {
	c := GPSCourse{IsRealTime: false, GPSOnOff: true, LonEW: true, LatNS: false, Course: 359}
	enc, err := EncodeGPSCourse(c)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := DecodeGPSCourse(enc)
	if err != nil {
		t.Fatal(err)
	}
	if dec != c {
		t.Errorf("round trip mismatch: got %+v, want %+v", dec, c)
	}
}

func TestEncodeGPSCourseRejectsOutOfRangeCourse(t *testing.T) {
	if _, err := EncodeGPSCourse(GPSCourse{Course: 360}); err == nil {
		t.Fatal("expected error for course=360")
	}
}

func TestSatelliteByteClamping(t *testing.T) {
	if b := EncodeSatelliteByte(12); b != 0xCC {
		t.Errorf("EncodeSatelliteByte(12) = 0x%02X, want 0xCC", b)
	}
	if b := EncodeSatelliteByte(99); DecodeSatelliteByte(b) != 15 {
		t.Errorf("expected satellite count clamped to 15, got %d", DecodeSatelliteByte(b))
	}
}

func TestDeviceStatusByteKnownVector(t *testing.T) {
	s := DeviceStatus{Defend: true, ACC: true, Charge: false, Alarm: AlarmVibration, GPSTracking: true, Power: false}
	b, err := EncodeDeviceStatusByte(s)
	if err != nil {
		t.Fatal(err)
	}
	if b != 0x4B {
		t.Errorf("EncodeDeviceStatusByte(%+v) = 0x%02X, want 0x4B", s, b)
	}
	dec := DecodeDeviceStatusByte(b)
	if dec.Defend != s.Defend || dec.ACC != s.ACC || dec.Charge != s.Charge ||
		dec.Alarm != s.Alarm || dec.GPSTracking != s.GPSTracking || dec.Power != s.Power {
		t.Errorf("round trip mismatch: got %+v, want %+v", dec, s)
	}
}

func TestEncodeDeviceStatusByteRejectsBadAlarm(t *testing.T) {
	if _, err := EncodeDeviceStatusByte(DeviceStatus{Alarm: 5}); err == nil {
		t.Fatal("expected error for alarm=5")
	}
}

func TestLbsCellRoundTrip(t *testing.T) {
	c := LbsCell{MCC: 460, MNC: 0, LAC: 0x1234, CellID: 0x00ABCD}
	enc := EncodeLbsCell(c)
	if len(enc) != 8 {
		t.Fatalf("expected 8 bytes, got %d", len(enc))
	}
	dec, err := DecodeLbsCell(enc)
	if err != nil {
		t.Fatal(err)
	}
	if dec != c {
		t.Errorf("round trip mismatch: got %+v, want %+v", dec, c)
	}
}

func TestEncodeLbsCellClampsOverflowCellID(t *testing.T) {
	c := LbsCell{MCC: 1, MNC: 1, LAC: 1, CellID: 0x01FFFFFF}
	enc := EncodeLbsCell(c)
	dec, err := DecodeLbsCell(enc)
	if err != nil {
		t.Fatal(err)
	}
	if dec.CellID != 0xFFFFFF {
		t.Errorf("expected clamped cell_id 0xFFFFFF, got 0x%X", dec.CellID)
	}
}

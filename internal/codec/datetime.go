package codec

import (
	"fmt"
	"time"
)

// DateTime field layout: six BCD bytes, YY MM DD HH MM SS, each a two
// decimal digit pair packed into one byte. Year is the last two digits
// of the calendar year, always interpreted as 2000+YY.

// EncodeDateTime packs t into the six-byte BCD date_time field used by
// location (0x12) and location+status (0x16) frames. t is converted to
// UTC first.
func EncodeDateTime(t time.Time) ([]byte, error) {
	u := t.UTC()
	year := u.Year() - 2000
	if year < 0 || year > 99 {
		return nil, fmt.Errorf("year %d out of BCD range [2000, 2099]", u.Year())
	}

	fields := []int{year, int(u.Month()), u.Day(), u.Hour(), u.Minute(), u.Second()}
	out := make([]byte, 6)
	for i, v := range fields {
		b, err := EncodeBCD(fmt.Sprintf("%02d", v))
		if err != nil {
			return nil, fmt.Errorf("date_time field %d: %w", i, err)
		}
		out[i] = b[0]
	}
	return out, nil
}

// DecodeDateTime unpacks a six-byte BCD date_time field into a UTC
// time.Time.
func DecodeDateTime(data []byte) (time.Time, error) {
	if len(data) != 6 {
		return time.Time{}, fmt.Errorf("date_time must be exactly 6 bytes, got %d", len(data))
	}

	digits := make([]int, 6)
	for i, b := range data {
		if !IsBCDValid(b) {
			return time.Time{}, fmt.Errorf("invalid BCD byte at date_time position %d: 0x%02X", i, b)
		}
		high, low := ReadNibbles(b)
		digits[i] = int(high)*10 + int(low)
	}

	year, month, day, hour, minute, second := digits[0], digits[1], digits[2], digits[3], digits[4], digits[5]
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("invalid month: %d", month)
	}
	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("invalid day: %d", day)
	}
	if hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, fmt.Errorf("invalid time of day: %02d:%02d:%02d", hour, minute, second)
	}

	return time.Date(2000+year, time.Month(month), day, hour, minute, second, 0, time.UTC), nil
}

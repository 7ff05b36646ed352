package codec

import "fmt"

// BCD (Binary-Coded Decimal) encoding helpers
// Used for the date_time field in the GT06 wire format

// EncodeBCD converts a decimal string to BCD-encoded bytes
// The string must contain only digits 0-9
// Example: "1234" -> []byte{0x12, 0x34}
func EncodeBCD(str string) ([]byte, error) {
	// Validate input contains only digits
	for i, c := range str {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("invalid character at position %d: '%c' (must be 0-9)", i, c)
		}
	}

	// Pad with trailing zero if odd length
	if len(str)%2 != 0 {
		str = str + "0"
	}

	result := make([]byte, len(str)/2)

	for i := 0; i < len(str); i += 2 {
		high := str[i] - '0'
		low := str[i+1] - '0'
		result[i/2] = (high << 4) | low
	}

	return result, nil
}

// IsBCDValid checks if a byte is a valid BCD byte (both nibbles 0-9)
func IsBCDValid(b byte) bool {
	high := (b >> 4) & 0x0F
	low := b & 0x0F
	return high <= 9 && low <= 9
}

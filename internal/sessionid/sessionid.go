// Package sessionid names game sessions for logs and the session banner.
package sessionid

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Crockford's base32, as used by TypeID.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded session ID.
const Length = 26

// Generate creates a UUIDv7 from entropy and encodes it as a 26-character
// base32 string. IDs generated later sort after earlier ones.
func Generate(entropy io.Reader) (string, error) {
	id, err := uuid.NewV7FromReader(entropy)
	if err != nil {
		return "", fmt.Errorf("generating session ID: %w", err)
	}
	return encodeBase32(id), nil
}

// encodeBase32 encodes 128 bits as 26 characters, five bits at a time,
// padding the final character with two zero bits.
func encodeBase32(data [16]byte) string {
	result := make([]byte, Length)

	for i := 0; i < Length; i++ {
		bitOffset := i * 5
		byteIndex := bitOffset / 8
		bitIndex := bitOffset % 8

		var value uint8
		if bitIndex <= 3 {
			value = (data[byteIndex] >> (3 - bitIndex)) & 0x1f
		} else {
			value = (data[byteIndex] << (bitIndex - 3)) & 0x1f
			if byteIndex+1 < 16 {
				value |= data[byteIndex+1] >> (11 - bitIndex)
			}
		}

		result[i] = alphabet[value]
	}

	return string(result)
}

// Validate checks that id is 26 characters of Crockford base32.
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("session ID must be exactly %d characters, got %d", Length, len(id))
	}

	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}

	return nil
}

package highlight

import (
	"encoding/base64"
	"encoding/binary"

	"gitlab.com/tozd/go/errors"
)

// The wire format packs each token of a line into a fixed 8-byte
// record, concatenates the records, and base64-encodes the result:
//
//	|<---- 4 bytes ---->|<-- 2 bytes -->|<-- 2 bytes -->|
//	|  start character  |    length     |  kind ordinal |
//
// All fields are big-endian. This layout is consumed by external
// editors and must be reproduced byte for byte.

// EncodeLine encodes one line's token group. An empty group encodes to
// the empty string, which tells the client to clear the line.
func EncodeLine(tokens []Token) string {
	if len(tokens) == 0 {
		return ""
	}
	buf := make([]byte, 0, len(tokens)*8)
	var rec [8]byte
	for _, t := range tokens {
		binary.BigEndian.PutUint32(rec[0:4], uint32(t.Range.Start.Character))
		binary.BigEndian.PutUint16(rec[4:6], uint16(t.Range.End.Character-t.Range.Start.Character))
		binary.BigEndian.PutUint16(rec[6:8], uint16(t.Kind))
		buf = append(buf, rec[:]...)
	}
	return base64.StdEncoding.EncodeToString(buf)
}

// WireToken is the decoded form of one 8-byte record.
type WireToken struct {
	Character uint32
	Length    uint16
	Kind      Kind
}

// DecodeLine decodes an encoded token line back into its records. The
// engine never needs this itself; it exists for the debugging CLI and
// for round-trip verification.
func DecodeLine(encoded string) ([]WireToken, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Errorf("decoding token line: %w", err)
	}
	if len(raw)%8 != 0 {
		return nil, errors.Errorf("token line is %d bytes, not a multiple of 8", len(raw))
	}
	decoded := make([]WireToken, 0, len(raw)/8)
	for i := 0; i < len(raw); i += 8 {
		decoded = append(decoded, WireToken{
			Character: binary.BigEndian.Uint32(raw[i:]),
			Length:    binary.BigEndian.Uint16(raw[i+4:]),
			Kind:      Kind(binary.BigEndian.Uint16(raw[i+6:])),
		})
	}
	return decoded, nil
}

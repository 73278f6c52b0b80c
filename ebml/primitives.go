package ebml

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/membraneframework/webm/webmerr"
)

// epoch is the EBML Date reference point: 2001-01-01 00:00:00 UTC.
var epoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// DecodeUint decodes a big-endian unsigned integer payload. An empty
// payload decodes to 0, per RFC 8794 §7.3.
func DecodeUint(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}

// EncodeUint encodes n as the minimal big-endian byte sequence, trimming
// leading zero bytes. n == 0 encodes to an empty payload.
func EncodeUint(n uint64) []byte {
	if n == 0 {
		return nil
	}
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], n)
	i := 0
	for i < 7 && tmp[i] == 0 {
		i++
	}
	return append([]byte(nil), tmp[i:]...)
}

// DecodeInt decodes a big-endian two's-complement signed integer payload,
// sign-extended from its declared length. An empty payload decodes to 0.
func DecodeInt(b []byte) int64 {
	if len(b) == 0 {
		return 0
	}
	var v int64
	if b[0]&0x80 != 0 {
		v = -1
	}
	for _, c := range b {
		v = v<<8 | int64(c)
	}
	return v
}

// EncodeInt encodes n as the minimal big-endian two's-complement byte
// sequence. n == 0 encodes to an empty payload.
func EncodeInt(n int64) []byte {
	if n == 0 {
		return nil
	}
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], uint64(n))
	fill := byte(0x00)
	if n < 0 {
		fill = 0xFF
	}
	i := 0
	for i < 7 && tmp[i] == fill && (tmp[i+1]&0x80 == fill&0x80) {
		i++
	}
	return append([]byte(nil), tmp[i:]...)
}

// DecodeFloat decodes an IEEE-754 big-endian float payload of 0, 4, or 8
// bytes. An empty payload decodes to 0.0; any other length is rejected.
func DecodeFloat(b []byte) (float64, error) {
	switch len(b) {
	case 0:
		return 0, nil
	case 4:
		return float64(math.Float32frombits(binary.BigEndian.Uint32(b))), nil
	case 8:
		return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
	default:
		return 0, webmerr.ErrFormat
	}
}

// EncodeFloat64 encodes f as an 8-byte IEEE-754 big-endian payload.
func EncodeFloat64(f float64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, math.Float64bits(f))
	return b
}

// EncodeFloat32 encodes f as a 4-byte IEEE-754 big-endian payload.
func EncodeFloat32(f float32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, math.Float32bits(f))
	return b
}

// DecodeString decodes an ASCII string payload, treating the first NUL
// byte as a terminator per RFC 8794 §7.7.
func DecodeString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// EncodeString encodes s as-is; callers that need NUL termination add it
// themselves (this library never emits it — only decode honors it).
func EncodeString(s string) []byte {
	return []byte(s)
}

// DecodeUTF8 decodes a UTF-8 payload, stripping any embedded NUL bytes
// per RFC 8794 §7.8.
func DecodeUTF8(b []byte) string {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c != 0 {
			out = append(out, c)
		}
	}
	return string(out)
}

// EncodeUTF8 encodes s as UTF-8 bytes.
func EncodeUTF8(s string) []byte {
	return []byte(s)
}

// DecodeDate decodes a signed-nanoseconds-since-epoch Date payload. An
// empty payload decodes to the epoch itself (2001-01-01 00:00:00 UTC).
func DecodeDate(b []byte) time.Time {
	return epoch.Add(time.Duration(DecodeInt(b)))
}

// EncodeDate encodes t as a signed nanosecond offset from the EBML epoch.
func EncodeDate(t time.Time) []byte {
	return EncodeInt(int64(t.Sub(epoch)))
}

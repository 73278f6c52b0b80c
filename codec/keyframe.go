package codec

import "github.com/membraneframework/webm/webmerr"

// VP8IsKeyframe reports whether a VP8 frame payload is a keyframe: the
// 3-byte uncompressed frame tag's least-significant bit is frame_type, 0
// meaning keyframe (RFC 6386 §9.1).
func VP8IsKeyframe(payload []byte) bool {
	if len(payload) < 3 {
		return false
	}
	return payload[0]&0x01 == 0
}

// bitReader reads individual bits MSB-first, the order VP9's uncompressed
// header is specified in.
type bitReader struct {
	data []byte
	pos  int
}

func (r *bitReader) bit() (uint32, bool) {
	byteIdx := r.pos / 8
	if byteIdx >= len(r.data) {
		return 0, false
	}
	b := (r.data[byteIdx] >> uint(7-r.pos%8)) & 1
	r.pos++
	return uint32(b), true
}

func (r *bitReader) bits(n int) (uint32, bool) {
	var v uint32
	for i := 0; i < n; i++ {
		b, ok := r.bit()
		if !ok {
			return 0, false
		}
		v = v<<1 | b
	}
	return v, true
}

// VP9IsKeyframe reports whether a VP9 frame payload is a keyframe. It walks
// the uncompressed header (VP9 bitstream spec §6.2) far enough to read
// frame_type, branching on the 2-bit profile: profiles 0-2 read
// show_existing_frame immediately after the profile bits, profile 3 first
// consumes a reserved_zero bit. A "show existing frame" header never
// introduces a new keyframe. ErrMalformedVP9Header is returned if the
// frame marker is missing or the header is truncated before frame_type.
func VP9IsKeyframe(payload []byte) (bool, error) {
	r := &bitReader{data: payload}

	marker, ok := r.bits(2)
	if !ok || marker != 0b10 {
		return false, webmerr.ErrMalformedVP9Header
	}

	profileLowBit, ok := r.bit()
	if !ok {
		return false, webmerr.ErrMalformedVP9Header
	}
	profileHighBit, ok := r.bit()
	if !ok {
		return false, webmerr.ErrMalformedVP9Header
	}
	profile := profileHighBit<<1 | profileLowBit

	switch profile {
	case 0, 1, 2:
		// No reserved bit: show_existing_frame follows immediately.
	case 3:
		if _, ok = r.bit(); !ok { // reserved_zero
			return false, webmerr.ErrMalformedVP9Header
		}
	}

	showExistingFrame, ok := r.bit()
	if !ok {
		return false, webmerr.ErrMalformedVP9Header
	}
	if showExistingFrame == 1 {
		return false, nil
	}

	frameType, ok := r.bit()
	if !ok {
		return false, webmerr.ErrMalformedVP9Header
	}
	return frameType == 0, nil
}

// IsKeyframe dispatches keyframe detection by codec. h264Hint carries the
// caller-supplied metadata.h264.key_frame flag, since H.264 keyframes are
// not detected here by parsing NAL units. Every Opus frame is reported as
// a keyframe. Any unrecognized codec defaults to "not a keyframe", failing
// safe rather than misclassifying a cluster boundary.
func IsKeyframe(c ID, payload []byte, h264Hint bool) (bool, error) {
	switch c {
	case Opus:
		return true, nil
	case VP8:
		return VP8IsKeyframe(payload), nil
	case VP9:
		return VP9IsKeyframe(payload)
	case H264:
		return h264Hint, nil
	default:
		return false, nil
	}
}

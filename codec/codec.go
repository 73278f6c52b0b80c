// Package codec holds the narrow, codec-specific helpers the muxer and
// demuxer need and nothing more: keyframe detection for VP8/VP9, the Opus
// ID header layout, and the codec↔wire-string↔track-type mapping. It
// deliberately does not parse bitstreams beyond what keyframe detection
// requires — full decoding is out of scope for a muxer/demuxer library.
package codec

import "github.com/membraneframework/webm/webmerr"

// ID identifies a supported codec. The zero value is not a valid codec.
type ID int

const (
	Unknown ID = iota
	Opus
	VP8
	VP9
	H264
)

// TrackType is the Matroska TrackType value derived from a codec.
type TrackType uint64

const (
	TrackTypeVideo TrackType = 1
	TrackTypeAudio TrackType = 2
)

// wireID is the Matroska CodecID string for each supported codec, per the
// Matroska CodecID registry.
var wireID = map[ID]string{
	Opus: "A_OPUS",
	VP8:  "V_VP8",
	VP9:  "V_VP9",
	H264: "V_MPEG4/ISO/AVC",
}

var fromWireID = map[string]ID{
	"A_OPUS":          Opus,
	"V_VP8":           VP8,
	"V_VP9":           VP9,
	"V_MPEG4/ISO/AVC": H264,
}

// WireID returns the CodecID string for c, or "" if c is not recognized.
func (c ID) WireID() string {
	return wireID[c]
}

// FromWireID resolves a Matroska CodecID string to a codec.ID. Vorbis and
// any other codec string not in the wire table is rejected — this library
// only muxes/demuxes Opus, VP8, VP9, and H.264.
func FromWireID(s string) (ID, error) {
	id, ok := fromWireID[s]
	if !ok {
		return Unknown, webmerr.ErrUnsupportedCodec
	}
	return id, nil
}

// Type reports whether c is an audio or video codec.
func (c ID) Type() TrackType {
	if c == Opus {
		return TrackTypeAudio
	}
	return TrackTypeVideo
}

func (c ID) String() string {
	switch c {
	case Opus:
		return "opus"
	case VP8:
		return "vp8"
	case VP9:
		return "vp9"
	case H264:
		return "h264"
	default:
		return "unknown"
	}
}

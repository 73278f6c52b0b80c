// Package webmerr defines the error kinds shared by the ebml, schema,
// codec, mux and demux packages.
package webmerr

import "errors"

// NeedMoreBytes is returned by decoders when the input does not yet hold
// a full VINT or element; callers retry once more bytes arrive. The
// streaming parser consumes it internally. demux.Pad.Next also returns it
// when the pad has not ended but no buffer is ready yet.
var NeedMoreBytes = errors.New("ebml: need more bytes")

// ErrFormat marks structurally invalid EBML: a VINT whose lead byte is
// zero, an element whose declared size contradicts the available input,
// or similar framing violations.
var ErrFormat = errors.New("ebml: not a valid format")

// ErrReservedVint is returned when a VINT payload is all-ones, the value
// RFC 8794 reserves to mean "unknown size". DecodeVint rejects it with this
// error; DecodeSize instead reports an unknown size, which only a flat
// element (Segment, Cluster) may carry. The muxer writes it for Segment.
var ErrReservedVint = errors.New("ebml: reserved (all-ones) vint value")

// ErrInvalidDocType is returned when the EBML header's DocType is neither
// "matroska" nor "webm".
var ErrInvalidDocType = errors.New("webm: invalid DocType")

// ErrUnsupportedCodec is returned when a Tracks element (demux) or AddPad
// call (mux) names a codec outside {opus, vp8, vp9, h264}.
var ErrUnsupportedCodec = errors.New("webm: unsupported codec")

// ErrLacedFrames is returned when a Block/SimpleBlock's flag byte carries
// a non-zero lacing value. Laced frames are out of scope for this library.
var ErrLacedFrames = errors.New("webm: laced frames are not supported")

// ErrChannelCountUnsupported is returned when an Opus track reports more
// than 2 channels.
var ErrChannelCountUnsupported = errors.New("webm: opus channel count must be 1 or 2")

// ErrPadAddedInPlayback is returned when Muxer.AddPad is called after
// streaming has begun.
var ErrPadAddedInPlayback = errors.New("webm: pad added after streaming began")

// ErrMalformedVP9Header is returned when none of the four VP9
// uncompressed-header layouts match while testing for a keyframe.
var ErrMalformedVP9Header = errors.New("webm: malformed vp9 uncompressed header")

// ErrCodecChanged names a track whose codec changes after its first
// frame, which the data model forbids. No function in this module returns
// it: a mux Pad's codec is fixed when AddPad creates it.
var ErrCodecChanged = errors.New("webm: track codec changed after first frame")

// ErrDuplicateFormat names a pad that receives more than one
// stream-format announcement. No function in this module returns it: a
// mux Pad's format is given once, as AddPad's TrackMeta.
var ErrDuplicateFormat = errors.New("webm: duplicate stream-format announcement")

// ErrSinkNotSeekable is returned when a Muxer is finalized against a sink
// that cannot satisfy the seek-and-rewrite contract.
var ErrSinkNotSeekable = errors.New("webm: sink does not support seek-and-rewrite")

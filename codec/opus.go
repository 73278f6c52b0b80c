package codec

import (
	"encoding/binary"

	"github.com/membraneframework/webm/webmerr"
)

// OpusIDHeaderSize is the fixed length of the Opus identification header
// this library emits as CodecPrivate (RFC 7845 §5.1).
const OpusIDHeaderSize = 19

// OpusIDHeader builds the 19-byte Opus identification header RFC 7845 §5.1
// specifies: the magic "OpusHead", encapsulation version 1, the channel
// count, and zero for pre-skip, original sample rate, output gain, and
// channel mapping family. Channel counts above 2 are rejected — this
// library does not support multi-channel Opus mapping families.
func OpusIDHeader(channels uint8) ([]byte, error) {
	if channels < 1 || channels > 2 {
		return nil, webmerr.ErrChannelCountUnsupported
	}
	b := make([]byte, OpusIDHeaderSize)
	copy(b[0:8], "OpusHead")
	b[8] = 1       // encapsulation_version
	b[9] = channels
	binary.LittleEndian.PutUint16(b[10:12], 0) // pre_skip
	binary.LittleEndian.PutUint32(b[12:16], 0) // orig_sample_rate
	binary.LittleEndian.PutUint16(b[16:18], 0) // output_gain
	b[18] = 0                                  // channel_mapping_family
	return b, nil
}

// ParseOpusIDHeader validates and extracts the channel count from an Opus
// identification header, for demux-side track format recovery.
func ParseOpusIDHeader(b []byte) (channels uint8, err error) {
	if len(b) != OpusIDHeaderSize || string(b[0:8]) != "OpusHead" {
		return 0, webmerr.ErrFormat
	}
	channels = b[9]
	if channels < 1 || channels > 2 {
		return 0, webmerr.ErrChannelCountUnsupported
	}
	return channels, nil
}

package codec

import (
	"testing"

	"github.com/matryer/is"
	"github.com/membraneframework/webm/webmerr"
)

func TestOpusIDHeaderRoundTrip(t *testing.T) {
	is := is.New(t)
	hdr, err := OpusIDHeader(2)
	is.NoErr(err)
	is.Equal(len(hdr), OpusIDHeaderSize)
	is.Equal(string(hdr[0:8]), "OpusHead")

	channels, err := ParseOpusIDHeader(hdr)
	is.NoErr(err)
	is.Equal(channels, uint8(2))
}

func TestOpusIDHeaderRejectsUnsupportedChannelCount(t *testing.T) {
	is := is.New(t)
	_, err := OpusIDHeader(3)
	is.Equal(err, webmerr.ErrChannelCountUnsupported)
}

func TestParseOpusIDHeaderRejectsBadMagic(t *testing.T) {
	is := is.New(t)
	bad := make([]byte, OpusIDHeaderSize)
	copy(bad, "NotOpus!")
	_, err := ParseOpusIDHeader(bad)
	is.Equal(err, webmerr.ErrFormat)
}

func TestParseOpusIDHeaderRejectsWrongLength(t *testing.T) {
	is := is.New(t)
	_, err := ParseOpusIDHeader([]byte("OpusHead"))
	is.Equal(err, webmerr.ErrFormat)
}

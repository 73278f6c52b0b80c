package codec

import (
	"testing"

	"github.com/matryer/is"
)

func TestVP8IsKeyframe(t *testing.T) {
	is := is.New(t)
	is.True(VP8IsKeyframe([]byte{0x00, 0x00, 0x00})) // frame_type bit 0: keyframe
	is.True(!VP8IsKeyframe([]byte{0x01, 0x00, 0x00})) // frame_type bit 1: interframe
	is.True(!VP8IsKeyframe([]byte{0x01, 0x00}))        // too short
}

func TestVP9IsKeyframeProfile0(t *testing.T) {
	is := is.New(t)

	keyframe, err := VP9IsKeyframe([]byte{0x80})
	is.NoErr(err)
	is.True(keyframe)

	interframe, err := VP9IsKeyframe([]byte{0x84})
	is.NoErr(err)
	is.True(!interframe)
}

func TestVP9IsKeyframeProfile3ConsumesReservedBit(t *testing.T) {
	is := is.New(t)
	keyframe, err := VP9IsKeyframe([]byte{0xB0})
	is.NoErr(err)
	is.True(keyframe)
}

func TestVP9IsKeyframeShowExistingFrameIsNeverAKeyframe(t *testing.T) {
	is := is.New(t)
	// marker=10, profile=0 (00), show_existing_frame=1.
	keyframe, err := VP9IsKeyframe([]byte{0b10001000})
	is.NoErr(err)
	is.True(!keyframe)
}

func TestVP9IsKeyframeRejectsBadMarker(t *testing.T) {
	is := is.New(t)
	_, err := VP9IsKeyframe([]byte{0x00})
	is.True(err != nil)
}

func TestVP9IsKeyframeRejectsTruncatedHeader(t *testing.T) {
	is := is.New(t)
	_, err := VP9IsKeyframe(nil)
	is.True(err != nil)
}

func TestIsKeyframeDispatch(t *testing.T) {
	is := is.New(t)

	ok, err := IsKeyframe(Opus, nil, false)
	is.NoErr(err)
	is.True(ok)

	ok, err = IsKeyframe(H264, nil, true)
	is.NoErr(err)
	is.True(ok)

	ok, err = IsKeyframe(H264, nil, false)
	is.NoErr(err)
	is.True(!ok)

	ok, err = IsKeyframe(VP8, []byte{0x00, 0x00, 0x00}, false)
	is.NoErr(err)
	is.True(ok)
}

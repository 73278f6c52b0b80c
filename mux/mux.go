// Package mux implements the muxing scheduler: per-track one-block
// lookahead, cross-track timestamp ordering, cluster segmentation, cue
// recording, and seek-and-rewrite finalization.
package mux

import (
	"github.com/cespare/xxhash/v2"
	"github.com/membraneframework/webm/codec"
	"github.com/membraneframework/webm/config"
	weblog "github.com/membraneframework/webm/internal/log"
	"github.com/membraneframework/webm/sink"
	"github.com/membraneframework/webm/webmerr"
)

var logger = weblog.Logger("webm/mux")

// Buffer is one input frame, in the producer's own time domain. Exactly one
// of PTS/DTS must be set on a track's first buffer; the muxer fixes which
// one it uses for that track from then on.
type Buffer struct {
	Payload      []byte
	PTS          *int64 // nanoseconds
	DTS          *int64 // nanoseconds
	H264KeyFrame bool   // metadata.h264.key_frame, ignored for other codecs
}

// TrackMeta carries the per-track format announcement a Pad is opened with.
type TrackMeta struct {
	Channels     uint8  // Opus: 1 or 2
	SampleRate   float64
	Width        uint64 // video only, 0 if unknown
	Height       uint64 // video only, 0 if unknown
	CodecPrivate []byte // H.264 AVC configuration record; ignored for Opus/VP8/VP9
	UID          uint64 // preserve a demuxed TrackUID across a round-trip; 0 means generate one

	// SeekPreRoll and CodecDelay are Opus-only and default to 0; set them
	// explicitly to match a source that used nonzero constants.
	SeekPreRoll uint64
	CodecDelay  uint64
}

type pendingBlock struct {
	absMs    int64
	payload  []byte
	keyframe bool
}

type cuePoint struct {
	timeMs     int64
	track      uint64
	clusterPos int64 // offset within the clusters region, fixed up at finalize
}

type trackState struct {
	num        uint64
	codecID    codec.ID
	meta       TrackMeta
	pending    []pendingBlock
	ended      bool
	offsetSet  bool
	offsetNs   int64
	usePTS     bool
}

// Pad is a muxer's per-track input handle.
type Pad struct {
	m     *Muxer
	track *trackState
}

// Muxer schedules 1..N input pads into a single WebM/Matroska byte stream.
type Muxer struct {
	sink sink.Seeker
	opts config.MuxOptions

	tracks  []*trackState
	started bool

	clusterStarted bool
	clusterTime    int64
	clusterSize    int64
	clusterBlocks  [][]byte

	segmentPosition int64
	cues            []cuePoint

	sawBlock bool
	timeMin  int64
	timeMax  int64

	checksum *xxhash.Digest
	finalized bool
}

// New creates a muxer writing to s.
func New(s sink.Seeker, opts config.MuxOptions) *Muxer {
	return &Muxer{sink: s, opts: opts, checksum: xxhash.New()}
}

// AddPad registers a new input track and returns its handle. AddPad must
// not be called once any buffer has been pushed on any pad.
func (m *Muxer) AddPad(c codec.ID, meta TrackMeta) (*Pad, error) {
	if m.started {
		return nil, webmerr.ErrPadAddedInPlayback
	}
	if c.WireID() == "" {
		return nil, webmerr.ErrUnsupportedCodec
	}
	if c == codec.Opus && meta.Channels > 2 {
		return nil, webmerr.ErrChannelCountUnsupported
	}
	if meta.UID == 0 {
		meta.UID = newTrackUID()
	}
	t := &trackState{num: uint64(len(m.tracks) + 1), codecID: c, meta: meta}
	m.tracks = append(m.tracks, t)
	return &Pad{m: m, track: t}, nil
}

// PushBuffer admits one input frame on this pad.
func (p *Pad) PushBuffer(b Buffer) error {
	m := p.m
	m.started = true
	t := p.track
	if t.ended {
		return webmerr.ErrFormat
	}

	if !t.offsetSet {
		t.usePTS = b.PTS != nil
		var ref int64
		switch {
		case b.PTS != nil:
			ref = *b.PTS
		case b.DTS != nil:
			ref = *b.DTS
		default:
			return webmerr.ErrFormat
		}
		t.offsetNs = ref
		t.offsetSet = true
	}

	var tsNs int64
	if t.usePTS {
		if b.PTS == nil {
			return webmerr.ErrFormat
		}
		tsNs = *b.PTS
	} else {
		if b.DTS == nil {
			return webmerr.ErrFormat
		}
		tsNs = *b.DTS
	}
	absMs := (tsNs - t.offsetNs) / config.TimestampScale

	keyframe, err := codec.IsKeyframe(t.codecID, b.Payload, b.H264KeyFrame)
	if err != nil {
		return err
	}

	t.pending = append(t.pending, pendingBlock{absMs: absMs, payload: b.Payload, keyframe: keyframe})
	return m.tryAdvance()
}

// EndOfStream marks this pad's input as finished. Cached blocks already
// pushed are still scheduled against the remaining active tracks; the
// muxer only finalizes once every pad has ended and drained.
func (p *Pad) EndOfStream() error {
	m := p.m
	p.track.ended = true
	if err := m.tryAdvance(); err != nil {
		return err
	}
	for _, t := range m.tracks {
		if !t.ended || len(t.pending) != 0 {
			return nil
		}
	}
	return m.finalize()
}

func (m *Muxer) writeBody(b []byte) error {
	if _, err := m.checksum.Write(b); err != nil {
		return err
	}
	_, err := m.sink.Write(b)
	return err
}

// BodyChecksum returns the running xxhash of every body byte written so
// far (clusters and cues; the header is excluded since it is inserted
// after the fact). This is an observability add-on — nothing in the mux
// control flow consults it.
func (m *Muxer) BodyChecksum() uint64 {
	return m.checksum.Sum64()
}

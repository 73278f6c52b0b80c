// Package demux implements the demuxer's three-state machine: read the
// header, wait for every announced track to be linked to an output pad,
// then stream blocks under per-pad credit backpressure.
package demux

import (
	"io"

	"github.com/membraneframework/webm/codec"
	"github.com/membraneframework/webm/config"
	weblog "github.com/membraneframework/webm/internal/log"
	"github.com/membraneframework/webm/schema"
	"github.com/membraneframework/webm/webmerr"
)

var logger = weblog.Logger("webm/demux")

// State is one of the demuxer's three phases.
type State int

const (
	StateReadingHeader State = iota
	StateAwaitingLinking
	StateStreaming
)

// TrackInfo describes a track announced by the Tracks element.
type TrackInfo struct {
	TrackNumber  uint64
	UID          uint64
	Codec        codec.ID
	Channels     uint8
	Width        uint64
	Height       uint64
	CodecPrivate []byte
}

// Buffer is one decoded frame delivered to a linked Pad.
type Buffer struct {
	Payload []byte
	PTSNs   int64
}

type cachedBuffer struct {
	trackNumber uint64
	buf         Buffer
}

// Pad is a demuxer's per-track output handle, pulled via credit.
type Pad struct {
	trackNumber uint64
	d           *Demuxer
	credit      int
	queue       []Buffer
	ended       bool
}

// SetDemand grants n additional buffers of credit to this pad and attempts
// to drain any cached buffers now unblocked.
func (p *Pad) SetDemand(n int) {
	p.credit += n
	p.d.dispatch()
}

// Next pulls the next ready buffer. It returns io.EOF once the pad has
// ended and its queue is drained.
func (p *Pad) Next() (Buffer, error) {
	if len(p.queue) > 0 {
		b := p.queue[0]
		p.queue = p.queue[1:]
		return b, nil
	}
	if p.ended {
		return Buffer{}, io.EOF
	}
	return Buffer{}, webmerr.NeedMoreBytes
}

// Demuxer incrementally decodes a WebM/Matroska byte stream.
type Demuxer struct {
	opts  config.DemuxOptions
	state State
	parser *schema.Parser

	pendingElements []*schema.Element

	timestampScale uint64

	tracks      []TrackInfo
	pads        map[uint64]*Pad
	linkedCount int

	inCluster   bool
	clusterTime int64

	cache []cachedBuffer
	ended bool
}

// New creates a demuxer with no input yet consumed.
func New(opts config.DemuxOptions) *Demuxer {
	return &Demuxer{
		opts:           opts,
		parser:         schema.NewParser(),
		timestampScale: config.TimestampScale,
		pads:           make(map[uint64]*Pad),
	}
}

// State reports the demuxer's current phase.
func (d *Demuxer) State() State {
	return d.state
}

// Tracks returns the tracks announced so far (populated once the Tracks
// element has been parsed, i.e. once State() is at least StateAwaitingLinking).
func (d *Demuxer) Tracks() []TrackInfo {
	return d.tracks
}

// Pad links a previously announced track to an output handle. Once every
// announced track has been linked, the demuxer enters StateStreaming.
func (d *Demuxer) Pad(trackNumber uint64) (*Pad, error) {
	if p, ok := d.pads[trackNumber]; ok {
		return p, nil
	}
	found := false
	for _, t := range d.tracks {
		if t.TrackNumber == trackNumber {
			found = true
			break
		}
	}
	if !found {
		return nil, webmerr.ErrFormat
	}
	p := &Pad{trackNumber: trackNumber, d: d, credit: d.opts.DefaultCredit, ended: d.ended}
	d.pads[trackNumber] = p
	d.linkedCount++
	if d.linkedCount == len(d.tracks) {
		d.state = StateStreaming
	}
	d.dispatch()
	return p, nil
}

// Write appends newly received bytes and decodes as far as current
// backpressure allows, mirroring the (int, error) shape of a plain
// io.Writer: on success it reports the full byte count, since every byte
// is buffered; on a decode error it reports 0.
func (d *Demuxer) Write(b []byte) (int, error) {
	d.parser.Feed(b)
	if len(d.cache) > 0 {
		return len(b), nil
	}
	if err := d.drainParser(); err != nil {
		return 0, err
	}
	return len(b), nil
}

// EndOfInput signals that no further bytes will arrive. Once every cached
// and queued buffer has been pulled, each pad's Next reports io.EOF.
func (d *Demuxer) EndOfInput() {
	d.ended = true
	for _, p := range d.pads {
		p.ended = true
	}
}

func (d *Demuxer) drainParser() error {
	for {
		if len(d.cache) > 0 {
			return nil
		}
		if len(d.pendingElements) == 0 {
			els, err := d.parser.Parse()
			if err != nil {
				return err
			}
			if len(els) == 0 {
				return nil
			}
			d.pendingElements = els
		}
		el := d.pendingElements[0]
		d.pendingElements = d.pendingElements[1:]
		if err := d.handleElement(el); err != nil {
			return err
		}
	}
}

// dispatch drains the global cache in strict FIFO order: it stops at the
// first cached buffer whose destination pad still has no credit, so
// cached buffers are reclassified and delivered in FIFO order.
func (d *Demuxer) dispatch() {
	for len(d.cache) > 0 {
		front := d.cache[0]
		p, ok := d.pads[front.trackNumber]
		if !ok || p.credit <= 0 {
			return
		}
		d.cache = d.cache[1:]
		p.credit--
		p.queue = append(p.queue, front.buf)
	}
	if err := d.drainParser(); err != nil {
		logger.Warnw("resuming parse after cache drain failed", "error", err)
	}
}

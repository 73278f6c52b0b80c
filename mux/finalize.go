package mux

import (
	"github.com/membraneframework/webm/codec"
	"github.com/membraneframework/webm/config"
	"github.com/membraneframework/webm/ebml"
	"github.com/membraneframework/webm/schema"
)

// finalize runs once every pad has ended and drained. It writes the final
// Cues element after the already-streamed clusters, then builds and
// inserts the EBML header, Segment header, SeekHead, Info, and Tracks in
// front of the whole body in a single seek-to-offset-0 rewrite.
func (m *Muxer) finalize() error {
	if m.finalized {
		return nil
	}
	m.finalized = true

	if m.clusterStarted {
		if err := m.flushCluster(); err != nil {
			return err
		}
		m.clusterStarted = false
	}
	clustersSize := m.segmentPosition

	infoBytes := m.encodeInfo()
	tracksBytes := m.encodeTracks()

	headerSize := int64(m.opts.SeekHeadBudget) + int64(len(infoBytes)) + int64(len(tracksBytes))

	cuesBytes := m.encodeCues(headerSize)
	if err := m.writeBody(cuesBytes); err != nil {
		return err
	}

	seekHeadBytes := m.encodeSeekHead(int64(len(infoBytes)), headerSize+clustersSize)

	var header []byte
	header = append(header, encodeEBMLHeader(m.docType())...)
	header = append(header, ebml.EncodeUnknownSizeHeader(segmentID().ID)...)
	header = append(header, seekHeadBytes...)
	header = append(header, infoBytes...)
	header = append(header, tracksBytes...)

	return m.sink.SeekInsert(header)
}

func segmentID() schema.Def {
	d, _ := schema.ByName("Segment")
	return d
}

// docType picks "matroska" when any track requires it (H.264, which WebM's
// restricted profile does not carry); otherwise "webm".
func (m *Muxer) docType() string {
	for _, t := range m.tracks {
		if t.codecID == codec.H264 {
			return "matroska"
		}
	}
	return "webm"
}

func encodeEBMLHeader(docType string) []byte {
	root := schema.Master("EBML",
		schema.Uint("EBMLVersion", 1),
		schema.Uint("EBMLReadVersion", 1),
		schema.Uint("EBMLMaxIDLength", 4),
		schema.Uint("EBMLMaxSizeLength", 8),
		schema.Str("DocType", docType),
		schema.Uint("DocTypeVersion", 4),
		schema.Uint("DocTypeReadVersion", 2),
	)
	return schema.Encode(root)
}

func (m *Muxer) encodeInfo() []byte {
	durationMs := float64(0)
	if m.sawBlock {
		durationMs = float64(m.timeMax - m.timeMin)
	}
	children := []*schema.Element{
		schema.Uint("TimestampScale", config.TimestampScale),
		schema.Float("Duration", durationMs),
		schema.UTF8("MuxingApp", m.opts.MuxingApp),
		schema.UTF8("WritingApp", m.opts.WritingApp),
	}
	root := schema.Master("Info", children...)
	return schema.Encode(root)
}

func (m *Muxer) encodeTracks() []byte {
	entries := make([]*schema.Element, 0, len(m.tracks))
	for _, t := range m.tracks {
		entries = append(entries, m.encodeTrackEntry(t))
	}
	root := schema.Master("Tracks", entries...)
	return schema.Encode(root)
}

func (m *Muxer) encodeTrackEntry(t *trackState) *schema.Element {
	children := []*schema.Element{
		schema.Uint("TrackNumber", t.num),
		schema.Uint("TrackUID", t.meta.UID),
		schema.Uint("TrackType", uint64(t.codecID.Type())),
		schema.Uint("FlagLacing", 0),
		schema.Str("CodecID", t.codecID.WireID()),
	}

	if priv := m.codecPrivate(t); priv != nil {
		children = append(children, schema.Binary("CodecPrivate", priv))
	}

	if t.codecID == codec.Opus {
		children = append(children,
			schema.Uint("CodecDelay", t.meta.CodecDelay),
			schema.Uint("SeekPreRoll", t.meta.SeekPreRoll),
		)
	}

	switch t.codecID.Type() {
	case codec.TrackTypeVideo:
		videoChildren := []*schema.Element{}
		if t.meta.Width != 0 {
			videoChildren = append(videoChildren, schema.Uint("PixelWidth", t.meta.Width))
		}
		if t.meta.Height != 0 {
			videoChildren = append(videoChildren, schema.Uint("PixelHeight", t.meta.Height))
		}
		if len(videoChildren) > 0 {
			children = append(children, schema.Master("Video", videoChildren...))
		}
	case codec.TrackTypeAudio:
		rate := t.meta.SampleRate
		if rate == 0 {
			rate = 48000
		}
		channels := uint64(t.meta.Channels)
		if channels == 0 {
			channels = 2
		}
		children = append(children, schema.Master("Audio",
			schema.Float("SamplingFrequency", rate),
			schema.Uint("Channels", channels),
		))
	}

	return schema.Master("TrackEntry", children...)
}

func (m *Muxer) codecPrivate(t *trackState) []byte {
	switch t.codecID {
	case codec.Opus:
		channels := t.meta.Channels
		if channels == 0 {
			channels = 2
		}
		hdr, err := codec.OpusIDHeader(channels)
		if err != nil {
			logger.Warnw("opus id header construction failed", "track", t.num, "error", err)
			return nil
		}
		return hdr
	case codec.H264:
		return t.meta.CodecPrivate
	default:
		return nil
	}
}

func (m *Muxer) encodeCues(headerSize int64) []byte {
	points := make([]*schema.Element, 0, len(m.cues))
	for _, c := range m.cues {
		points = append(points, schema.Master("CuePoint",
			schema.Uint("CueTime", uint64(c.timeMs)),
			schema.Master("CueTrackPositions",
				schema.Uint("CueTrack", c.track),
				schema.Uint("CueClusterPosition", uint64(c.clusterPos+headerSize)),
			),
		))
	}
	root := schema.Master("Cues", points...)
	return schema.Encode(root)
}

func (m *Muxer) encodeSeekHead(infoLen, cuesPos int64) []byte {
	infoID, _ := schema.ByName("Info")
	tracksID, _ := schema.ByName("Tracks")
	cuesID, _ := schema.ByName("Cues")

	seekEntry := func(id schema.Def, pos int64) *schema.Element {
		return schema.Master("Seek",
			schema.Binary("SeekID", ebml.EncodeID(id.ID)),
			schema.Uint("SeekPosition", uint64(pos)),
		)
	}

	tracksPos := int64(m.opts.SeekHeadBudget) + infoLen

	root := schema.Master("SeekHead",
		seekEntry(infoID, int64(m.opts.SeekHeadBudget)),
		seekEntry(tracksID, tracksPos),
		seekEntry(cuesID, cuesPos),
	)
	body := schema.Encode(root)

	budget := m.opts.SeekHeadBudget
	if len(body) >= budget {
		// Budget exceeded is a configuration error, not a runtime one;
		// widen the written size rather than corrupt the SeekHead.
		return body
	}
	return append(body, ebml.EncodeVoid(budget-len(body))...)
}

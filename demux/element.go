package demux

import (
	"github.com/membraneframework/webm/codec"
	"github.com/membraneframework/webm/ebml"
	"github.com/membraneframework/webm/schema"
	"github.com/membraneframework/webm/webmerr"
)

// handleElement interprets one fully decoded (or flat-start) top-level
// element against the demuxer's current state.
func (d *Demuxer) handleElement(el *schema.Element) error {
	if el.FlatStart {
		if el.Name == "Cluster" {
			d.inCluster = true
			d.clusterTime = 0
		}
		return nil
	}

	switch el.Name {
	case "EBML":
		if dt := el.Find("DocType"); dt != nil && dt.Str != "matroska" && dt.Str != "webm" {
			return webmerr.ErrInvalidDocType
		}
	case "Info":
		return d.handleInfo(el)
	case "Tracks":
		return d.handleTracks(el)
	case "Timecode":
		if d.inCluster {
			d.clusterTime = int64(el.Uint)
		}
	case "SimpleBlock":
		return d.handleBlockPayload(el.Bin)
	case "BlockGroup":
		if block := el.Find("Block"); block != nil {
			return d.handleBlockPayload(block.Bin)
		}
	}
	return nil
}

func (d *Demuxer) handleInfo(el *schema.Element) error {
	if scale := el.Find("TimestampScale"); scale != nil {
		d.timestampScale = scale.Uint
	}
	return nil
}

func (d *Demuxer) handleTracks(el *schema.Element) error {
	for _, entry := range el.FindAll("TrackEntry") {
		info, err := decodeTrackEntry(entry)
		if err != nil {
			return err
		}
		d.tracks = append(d.tracks, info)
	}
	if d.state == StateReadingHeader {
		d.state = StateAwaitingLinking
	}
	return nil
}

func decodeTrackEntry(entry *schema.Element) (TrackInfo, error) {
	var info TrackInfo
	if n := entry.Find("TrackNumber"); n != nil {
		info.TrackNumber = n.Uint
	}
	if u := entry.Find("TrackUID"); u != nil {
		info.UID = u.Uint
	}

	codecIDStr := ""
	if c := entry.Find("CodecID"); c != nil {
		codecIDStr = c.Str
	}
	id, err := codec.FromWireID(codecIDStr)
	if err != nil {
		return TrackInfo{}, err
	}
	info.Codec = id

	if priv := entry.Find("CodecPrivate"); priv != nil {
		info.CodecPrivate = priv.Bin
		if id == codec.Opus {
			if channels, err := codec.ParseOpusIDHeader(priv.Bin); err == nil {
				info.Channels = channels
			}
		}
	}
	if video := entry.Find("Video"); video != nil {
		if w := video.Find("PixelWidth"); w != nil {
			info.Width = w.Uint
		}
		if h := video.Find("PixelHeight"); h != nil {
			info.Height = h.Uint
		}
	}
	if audio := entry.Find("Audio"); audio != nil {
		if ch := audio.Find("Channels"); ch != nil {
			info.Channels = uint8(ch.Uint)
		}
	}
	return info, nil
}

// handleBlockPayload decodes a SimpleBlock/Block payload (encode_vint
// track_number || int16be relative || flags_byte || frame_bytes) and
// routes the resulting buffer per the demuxer's current state.
func (d *Demuxer) handleBlockPayload(payload []byte) error {
	trackNumber, n, err := ebml.DecodeVint(payload)
	if err != nil {
		return err
	}
	rest := payload[n:]
	if len(rest) < 3 {
		return webmerr.ErrFormat
	}
	relative := int16(uint16(rest[0])<<8 | uint16(rest[1]))
	flags := rest[2]
	frame := rest[3:]

	if flags&0x06 != 0 {
		return webmerr.ErrLacedFrames
	}

	absolute := d.clusterTime + int64(relative)
	ptsNs := absolute * int64(d.timestampScale)
	buf := Buffer{Payload: frame, PTSNs: ptsNs}

	switch d.state {
	case StateReadingHeader:
		// Structurally unreachable: Clusters only follow Tracks.
		return nil
	case StateAwaitingLinking:
		d.cache = append(d.cache, cachedBuffer{trackNumber: trackNumber, buf: buf})
	case StateStreaming:
		if len(d.cache) == 0 {
			if p, ok := d.pads[trackNumber]; ok && p.credit > 0 {
				p.credit--
				p.queue = append(p.queue, buf)
				return nil
			}
		}
		d.cache = append(d.cache, cachedBuffer{trackNumber: trackNumber, buf: buf})
	}
	return nil
}

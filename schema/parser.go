package schema

import (
	"github.com/membraneframework/webm/ebml"
	weblog "github.com/membraneframework/webm/internal/log"
	"github.com/membraneframework/webm/webmerr"
)

var logger = weblog.Logger("webm/schema")

// Parser incrementally decodes a stream of EBML bytes into schema.Elements.
// It is append-only and stateful: Feed appends newly
// arrived bytes, Parse extracts as many complete elements as the buffered
// bytes allow and leaves any partial element as residue for the next Feed.
//
// Segment and Cluster are flat-parsed: Parse reports their entry as an
// Element with FlatStart set and no Children, then continues decoding
// their children as if they were themselves top-level elements — this is
// what lets a multi-gigabyte Segment or an indeterminate-size Cluster
// stream through a bounded buffer.
type Parser struct {
	buf []byte
}

// NewParser returns an empty streaming parser.
func NewParser() *Parser {
	return &Parser{}
}

// Feed appends newly received bytes to the parser's input buffer.
func (p *Parser) Feed(b []byte) {
	p.buf = append(p.buf, b...)
}

// Buffered reports how many undecoded bytes remain in the residue.
func (p *Parser) Buffered() int {
	return len(p.buf)
}

// Parse decodes as many complete top-level elements as the buffered input
// allows. It returns webmerr.NeedMoreBytes only via a nil error with fewer
// (possibly zero) elements — the sentinel itself is consumed internally,
// never handed to the caller, so every returned element is guaranteed
// fully decoded.
func (p *Parser) Parse() ([]*Element, error) {
	var out []*Element
	off := 0
	for {
		hdr, err := ebml.DecodeHeader(p.buf[off:])
		if err == webmerr.NeedMoreBytes {
			break
		}
		if err != nil {
			return out, err
		}

		def, known := ByID(hdr.ID)
		if !known {
			def = Def{Name: UnknownName, ID: hdr.ID, Kind: KindBinary}
		}

		if def.Flat {
			off += hdr.HeaderLen
			out = append(out, &Element{Name: def.Name, ID: hdr.ID, Kind: KindMaster, FlatStart: true})
			continue
		}

		if hdr.Unknown {
			// A non-flat element is not permitted an unknown size; this
			// is a framing violation rather than a need-more-bytes case.
			return out, webmerr.ErrFormat
		}

		avail := len(p.buf) - off - hdr.HeaderLen
		if int64(avail) < hdr.Size {
			break
		}

		payload := p.buf[off+hdr.HeaderLen : off+hdr.HeaderLen+int(hdr.Size)]
		el, err := decodeValue(def, payload)
		if err != nil {
			return out, err
		}
		out = append(out, el)
		off += hdr.HeaderLen + int(hdr.Size)
	}
	p.buf = p.buf[off:]
	return out, nil
}

// decodeValue decodes a single element's already-sliced payload according
// to its schema Kind. Master payloads recurse to completion in-memory,
// since by construction they are fully contained in the slice.
func decodeValue(def Def, payload []byte) (*Element, error) {
	el := &Element{Name: def.Name, ID: def.ID, Kind: def.Kind}
	switch def.Kind {
	case KindMaster:
		children, err := decodeChildren(payload)
		if err != nil {
			return nil, err
		}
		el.Children = children
	case KindUint:
		el.Uint = ebml.DecodeUint(payload)
	case KindInt:
		el.Int = ebml.DecodeInt(payload)
	case KindFloat:
		f, err := ebml.DecodeFloat(payload)
		if err != nil {
			return nil, err
		}
		el.Float = f
	case KindString:
		el.Str = ebml.DecodeString(payload)
	case KindUTF8:
		el.Str = ebml.DecodeUTF8(payload)
	case KindDate:
		el.Date = ebml.DecodeDate(payload)
	default: // KindBinary, KindUnknown
		el.Bin = append([]byte(nil), payload...)
		if def.Name == UnknownName {
			logger.Debugw("tolerated unknown element", "id", def.ID, "bytes", len(payload))
		}
	}
	return el, nil
}

// decodeChildren fully decodes every element in an already-bounded master
// payload. Unlike Parser.Parse, it never returns NeedMoreBytes: a
// truncated child here means the enclosing element's declared size lied,
// which is a format error, not a streaming concern.
func decodeChildren(data []byte) ([]*Element, error) {
	var out []*Element
	off := 0
	for off < len(data) {
		hdr, err := ebml.DecodeHeader(data[off:])
		if err != nil {
			return nil, webmerr.ErrFormat
		}
		if hdr.Unknown {
			return nil, webmerr.ErrFormat
		}
		end := off + hdr.HeaderLen + int(hdr.Size)
		if end > len(data) {
			return nil, webmerr.ErrFormat
		}
		def, known := ByID(hdr.ID)
		if !known {
			def = Def{Name: UnknownName, ID: hdr.ID, Kind: KindBinary}
		}
		el, err := decodeValue(def, data[off+hdr.HeaderLen:end])
		if err != nil {
			return nil, err
		}
		out = append(out, el)
		off = end
	}
	return out, nil
}

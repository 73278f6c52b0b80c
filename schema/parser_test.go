package schema

import (
	"testing"

	"github.com/membraneframework/webm/ebml"
)

func TestParseSimpleMaster(t *testing.T) {
	info := Master("Info",
		Uint("TimestampScale", 1_000_000),
		UTF8("MuxingApp", "webmtool"),
	)
	p := NewParser()
	p.Feed(Encode(info))

	els, err := p.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if len(els) != 1 {
		t.Fatalf("got %d elements, want 1", len(els))
	}
	got := els[0]
	if got.Name != "Info" || got.Kind != KindMaster {
		t.Fatalf("got Name=%q Kind=%v", got.Name, got.Kind)
	}
	ts := got.Find("TimestampScale")
	if ts == nil || ts.Uint != 1_000_000 {
		t.Fatalf("TimestampScale missing or wrong: %+v", ts)
	}
	app := got.Find("MuxingApp")
	if app == nil || app.Str != "webmtool" {
		t.Fatalf("MuxingApp missing or wrong: %+v", app)
	}
	if p.Buffered() != 0 {
		t.Fatalf("Buffered() = %d, want 0", p.Buffered())
	}
}

func TestParseLeavesPartialElementAsResidue(t *testing.T) {
	info := Master("Info", Uint("TimestampScale", 1_000_000))
	full := Encode(info)

	p := NewParser()
	p.Feed(full[:len(full)-1])

	els, err := p.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if len(els) != 0 {
		t.Fatalf("got %d elements before the element is complete, want 0", len(els))
	}
	if p.Buffered() == 0 {
		t.Fatal("residue was dropped instead of retained")
	}

	p.Feed(full[len(full)-1:])
	els, err = p.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if len(els) != 1 {
		t.Fatalf("got %d elements after completing the feed, want 1", len(els))
	}
}

func TestParseFlatSegmentAndClusterDoNotBufferChildren(t *testing.T) {
	segHdr := ebml.EncodeUnknownSizeHeader(0x18538067)
	cluster := Master("Cluster", Uint("Timecode", 0))
	clusterBytes := Encode(cluster)

	p := NewParser()
	p.Feed(segHdr)
	p.Feed(clusterBytes)

	els, err := p.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if len(els) != 3 {
		t.Fatalf("got %d elements, want 3 (Segment flat-start + Cluster flat-start + Timecode)", len(els))
	}
	if !els[0].FlatStart || els[0].Name != "Segment" {
		t.Fatalf("els[0] = %+v, want a Segment FlatStart marker", els[0])
	}
	if els[0].Children != nil {
		t.Fatal("Segment FlatStart marker must not carry Children")
	}
	if !els[1].FlatStart || els[1].Name != "Cluster" || els[1].Children != nil {
		t.Fatalf("els[1] = %+v, want a Cluster FlatStart marker without Children", els[1])
	}
	tc := els[2]
	if tc.Name != "Timecode" || tc.Uint != 0 {
		t.Fatalf("els[2] = %+v, want the Cluster's Timecode as a top-level element", tc)
	}
}

func TestParseUnknownElementTolerated(t *testing.T) {
	payload := ebml.EncodeElement(0x12345678, []byte{1, 2, 3})
	p := NewParser()
	p.Feed(payload)

	els, err := p.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if len(els) != 1 {
		t.Fatalf("got %d elements, want 1", len(els))
	}
	if els[0].Name != UnknownName {
		t.Fatalf("Name = %q, want %q", els[0].Name, UnknownName)
	}
	if string(els[0].Bin) != "\x01\x02\x03" {
		t.Fatalf("Bin = %v, want [1 2 3]", els[0].Bin)
	}
}

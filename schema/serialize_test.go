package schema

import "testing"

func TestEncodeResolvesIDFromName(t *testing.T) {
	el := Uint("TrackNumber", 1)
	got := Encode(el)

	p := NewParser()
	p.Feed(got)
	els, err := p.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if len(els) != 1 || els[0].Name != "TrackNumber" || els[0].Uint != 1 {
		t.Fatalf("round trip produced %+v", els)
	}
}

func TestEncodeMasterRoundTrip(t *testing.T) {
	tracks := Master("Tracks",
		Master("TrackEntry",
			Uint("TrackNumber", 1),
			Uint("TrackUID", 42),
			Str("CodecID", "V_VP8"),
		),
	)

	p := NewParser()
	p.Feed(Encode(tracks))
	els, err := p.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if len(els) != 1 {
		t.Fatalf("got %d top-level elements, want 1", len(els))
	}
	entry := els[0].Find("TrackEntry")
	if entry == nil {
		t.Fatal("TrackEntry missing")
	}
	if num := entry.Find("TrackNumber"); num == nil || num.Uint != 1 {
		t.Fatalf("TrackNumber = %+v", num)
	}
	if uid := entry.Find("TrackUID"); uid == nil || uid.Uint != 42 {
		t.Fatalf("TrackUID = %+v", uid)
	}
	if codec := entry.Find("CodecID"); codec == nil || codec.Str != "V_VP8" {
		t.Fatalf("CodecID = %+v", codec)
	}
}

func TestBinaryBuilderRoundTrip(t *testing.T) {
	el := Binary("SeekID", []byte{0x15, 0x49, 0xA9, 0x66})
	got := Encode(el)

	p := NewParser()
	p.Feed(got)
	els, err := p.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if len(els) != 1 || string(els[0].Bin) != "\x15\x49\xA9\x66" {
		t.Fatalf("round trip produced %+v", els)
	}
}

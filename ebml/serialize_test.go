package ebml

import "testing"

func TestEncodeElementFraming(t *testing.T) {
	got := EncodeElement(0x4286, EncodeUint(1))
	want := []byte{0x42, 0x86, 0x81, 0x01}
	if string(got) != string(want) {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestEncodeMasterConcatenatesChildrenInOrder(t *testing.T) {
	a := EncodeElement(0x4286, EncodeUint(1))
	b := EncodeElement(0x42F7, EncodeUint(1))
	got := EncodeMaster(0x1A45DFA3, a, b)

	hdr, err := DecodeHeader(got)
	if err != nil {
		t.Fatal(err)
	}
	if hdr.ID != 0x1A45DFA3 {
		t.Fatalf("id = %x, want 0x1A45DFA3", hdr.ID)
	}
	payload := got[hdr.HeaderLen:]
	if int64(len(payload)) != hdr.Size {
		t.Fatalf("payload len = %d, want %d", len(payload), hdr.Size)
	}
	if string(payload) != string(append(append([]byte{}, a...), b...)) {
		t.Fatalf("children not concatenated in insertion order")
	}
}

func TestEncodeVoidExactLength(t *testing.T) {
	for _, length := range []int{2, 3, 9, 10, 137, 200} {
		got := EncodeVoid(length)
		if len(got) != length {
			t.Errorf("EncodeVoid(%d) produced %d bytes", length, len(got))
		}
		hdr, err := DecodeHeader(got)
		if err != nil {
			t.Fatalf("EncodeVoid(%d): %v", length, err)
		}
		if hdr.ID != VoidID {
			t.Errorf("EncodeVoid(%d) id = %x, want %x", length, hdr.ID, VoidID)
		}
		if int64(hdr.HeaderLen)+hdr.Size != int64(length) {
			t.Errorf("EncodeVoid(%d): header(%d)+size(%d) != %d", length, hdr.HeaderLen, hdr.Size, length)
		}
	}
}

func TestEncodeUnknownSizeHeader(t *testing.T) {
	got := EncodeUnknownSizeHeader(0x18538067)
	hdr, err := DecodeHeader(got)
	if err != nil {
		t.Fatal(err)
	}
	if !hdr.Unknown {
		t.Fatal("want Unknown=true")
	}
	if hdr.ID != 0x18538067 {
		t.Fatalf("id = %x, want 0x18538067", hdr.ID)
	}
}

package ebml

import (
	"testing"
	"time"
)

func TestUintRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 255, 256, 1 << 32, ^uint64(0)}
	for _, n := range cases {
		got := DecodeUint(EncodeUint(n))
		if got != n {
			t.Errorf("uint round trip: got %d, want %d", got, n)
		}
	}
}

func TestUintEmptyPayloadIsZero(t *testing.T) {
	if got := DecodeUint(nil); got != 0 {
		t.Errorf("DecodeUint(nil) = %d, want 0", got)
	}
}

func TestIntRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 127, -128, 200, -200, 1 << 40, -(1 << 40)}
	for _, n := range cases {
		got := DecodeInt(EncodeInt(n))
		if got != n {
			t.Errorf("int round trip: got %d, want %d", got, n)
		}
	}
}

func TestFloatRoundTrip(t *testing.T) {
	f, err := DecodeFloat(EncodeFloat64(3.25))
	if err != nil {
		t.Fatal(err)
	}
	if f != 3.25 {
		t.Errorf("got %v, want 3.25", f)
	}
}

func TestFloatEmptyPayloadIsZero(t *testing.T) {
	f, err := DecodeFloat(nil)
	if err != nil {
		t.Fatal(err)
	}
	if f != 0 {
		t.Errorf("got %v, want 0", f)
	}
}

func TestFloatRejectsBadLength(t *testing.T) {
	if _, err := DecodeFloat([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected an error for a 3-byte float payload")
	}
}

func TestStringNulTerminator(t *testing.T) {
	got := DecodeString([]byte("matroska\x00ignored"))
	if got != "matroska" {
		t.Errorf("got %q, want %q", got, "matroska")
	}
}

func TestUTF8StripsEmbeddedNuls(t *testing.T) {
	got := DecodeUTF8([]byte("a\x00b\x00c"))
	if got != "abc" {
		t.Errorf("got %q, want %q", got, "abc")
	}
}

func TestDateRoundTrip(t *testing.T) {
	want := time.Date(2020, time.March, 15, 12, 0, 0, 0, time.UTC)
	got := DecodeDate(EncodeDate(want))
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDateEmptyPayloadIsEpoch(t *testing.T) {
	got := DecodeDate(nil)
	want := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

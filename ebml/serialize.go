package ebml

// unknownSizeMarker is the one-byte "unknown size" VINT sentinel the muxer
// writes for the Segment element: width 1, all seven value bits set.
var unknownSizeMarker = []byte{0xFF}

// EncodeElement frames payload under id: encode_id(id) || encode_vint(len(payload)) || payload.
func EncodeElement(id uint32, payload []byte) []byte {
	idb := EncodeID(id)
	sizeb := EncodeVint(uint64(len(payload)))
	out := make([]byte, 0, len(idb)+len(sizeb)+len(payload))
	out = append(out, idb...)
	out = append(out, sizeb...)
	out = append(out, payload...)
	return out
}

// EncodeUnknownSizeElement frames payload under id using the reserved
// "unknown size" marker instead of an explicit byte count, for Segment and
// for a Cluster still being accumulated.
func EncodeUnknownSizeElement(id uint32, payload []byte) []byte {
	idb := EncodeID(id)
	out := make([]byte, 0, len(idb)+1+len(payload))
	out = append(out, idb...)
	out = append(out, unknownSizeMarker...)
	out = append(out, payload...)
	return out
}

// EncodeUnknownSizeHeader returns just an element's (id, unknown-size)
// header, with no payload appended — for Segment, whose payload (the
// SeekHead/Info/Tracks header plus the already-streamed clusters and cues)
// is written to the sink separately rather than held in memory.
func EncodeUnknownSizeHeader(id uint32) []byte {
	return EncodeUnknownSizeElement(id, nil)
}

// EncodeMaster concatenates already-framed children and wraps them under
// id, in insertion order.
func EncodeMaster(id uint32, children ...[]byte) []byte {
	total := 0
	for _, c := range children {
		total += len(c)
	}
	payload := make([]byte, 0, total)
	for _, c := range children {
		payload = append(payload, c...)
	}
	return EncodeElement(id, payload)
}

// VoidID is the Void element's ID (0xEC), used to pad reserved space such
// as the SeekHead budget.
const VoidID = 0xEC

// EncodeVoid returns a Void element whose total encoded length (id + size
// VINT + payload) is exactly length bytes. When the requested length would
// make the size VINT's own width ambiguous at a byte boundary, the VINT
// width is chosen explicitly so the arithmetic still comes out exact.
func EncodeVoid(length int) []byte {
	if length < 2 {
		panic("ebml: void element must be at least 2 bytes (id + zero-length size)")
	}
	idLen := 1 // Void's ID (0xEC) always encodes to a single byte
	for width := 1; width <= 8; width++ {
		sizeLen := width
		payloadLen := length - idLen - sizeLen
		if payloadLen < 0 {
			break
		}
		if payloadLen <= int(maxVintValue(width)) {
			out := make([]byte, 0, length)
			out = append(out, byte(VoidID))
			out = append(out, EncodeVintWidth(uint64(payloadLen), width)...)
			out = append(out, make([]byte, payloadLen)...)
			return out
		}
	}
	panic("ebml: void length does not fit any vint width")
}

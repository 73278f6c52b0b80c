package mux

import (
	"github.com/membraneframework/webm/ebml"
	"github.com/membraneframework/webm/schema"
)

var (
	clusterID, _     = schema.ByName("Cluster")
	timecodeID, _    = schema.ByName("Timecode")
	simpleBlockID, _ = schema.ByName("SimpleBlock")
)

// encodeSimpleBlock builds a SimpleBlock payload: encode_vint(track_number)
// || int16be(relative_timecode) || flags_byte || frame_bytes. The flag
// byte carries only the keyframe bit; lacing, invisible, and discardable
// are always 0.
func encodeSimpleBlock(trackNumber uint64, relative int16, keyframe bool, frame []byte) []byte {
	payload := make([]byte, 0, 8+len(frame))
	payload = append(payload, ebml.EncodeVint(trackNumber)...)
	payload = append(payload, byte(uint16(relative)>>8), byte(uint16(relative)))
	var flags byte
	if keyframe {
		flags |= 0x80
	}
	payload = append(payload, flags)
	payload = append(payload, frame...)
	return ebml.EncodeElement(simpleBlockID.ID, payload)
}

// encodeCluster wraps a cluster's Timecode and already-serialized
// SimpleBlocks into a complete Cluster element. Cluster is flat-parsed on
// decode, but here the whole cluster is already buffered in memory, so it
// serializes like any other sized master.
func encodeCluster(clusterTime int64, blocks [][]byte) []byte {
	children := make([][]byte, 0, len(blocks)+1)
	children = append(children, ebml.EncodeElement(timecodeID.ID, ebml.EncodeUint(uint64(clusterTime))))
	children = append(children, blocks...)
	return ebml.EncodeMaster(clusterID.ID, children...)
}

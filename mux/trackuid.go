package mux

import (
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// newTrackUID generates a random, session-unique TrackUID. A demuxed
// TrackUID is preserved across a round-trip by passing it in
// TrackMeta.UID, so this path is only taken for tracks that originate at
// the muxer itself. uuid.New is folded down to a uint64 with
// xxhash since TrackUID is a plain unsigned integer on the wire, not a
// 128-bit value.
func newTrackUID() uint64 {
	return RandomTrackUID()
}

// RandomTrackUID returns a fresh, non-zero TrackUID derived from a random
// UUID. Exposed for callers that want a production (non-deterministic)
// TrackUID outside of AddPad's own auto-generation, or that want to assign
// UIDs before tracks are added.
func RandomTrackUID() uint64 {
	id := uuid.New()
	h := xxhash.Sum64(id[:])
	if h == 0 {
		h = 1
	}
	return h
}

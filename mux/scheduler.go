package mux

import (
	"github.com/membraneframework/webm/codec"
	"github.com/membraneframework/webm/config"
)

// tryAdvance drains the scheduler as far as current input allows: while
// every still-active track holds a cached (pending) block, it picks the
// one with the smallest absolute timestamp — ties broken video-before-
// audio — and emits it.
func (m *Muxer) tryAdvance() error {
	for {
		for _, t := range m.tracks {
			if !t.ended && len(t.pending) == 0 {
				return nil
			}
		}

		var best *trackState
		for _, t := range m.tracks {
			if len(t.pending) == 0 {
				continue
			}
			if best == nil || betterCandidate(t, best) {
				best = t
			}
		}
		if best == nil {
			return nil
		}

		blk := best.pending[0]
		best.pending = best.pending[1:]
		if err := m.emitBlock(best, blk); err != nil {
			return err
		}
	}
}

// betterCandidate reports whether t should be scheduled ahead of cur: the
// smaller absolute timestamp wins, ties broken toward video tracks.
func betterCandidate(t, cur *trackState) bool {
	ta, ca := t.pending[0].absMs, cur.pending[0].absMs
	if ta != ca {
		return ta < ca
	}
	return t.codecID.Type() == codec.TrackTypeVideo && cur.codecID.Type() != codec.TrackTypeVideo
}

// emitBlock applies cluster formation rule (a)-(c), appends the block's
// serialized SimpleBlock to the in-progress cluster, and records a cue
// point when a new cluster is started by a video track's block.
func (m *Muxer) emitBlock(t *trackState, blk pendingBlock) error {
	isVideo := t.codecID.Type() == codec.TrackTypeVideo
	newCluster := !m.clusterStarted

	if m.clusterStarted {
		relative := blk.absMs - m.clusterTime
		if m.clusterSize >= m.opts.ClusterMaxBytes {
			newCluster = true
		}
		if relative >= m.opts.ClusterMaxDuration.Milliseconds() {
			newCluster = true
		}
		if isVideo && blk.keyframe {
			newCluster = true
		}
	}

	if newCluster {
		if m.clusterStarted {
			if err := m.flushCluster(); err != nil {
				return err
			}
		}
		m.clusterTime = blk.absMs
		m.clusterSize = 0
		m.clusterBlocks = nil
		m.clusterStarted = true
		if isVideo {
			m.cues = append(m.cues, cuePoint{timeMs: m.clusterTime, track: t.num, clusterPos: m.segmentPosition})
		}
	}

	relative := blk.absMs - m.clusterTime
	if relative > config.MaxRelativeTimecode || relative < config.MinRelativeTimecode {
		logger.Warnw("relative timecode out of signed-16-bit range, truncating",
			"track", t.num, "relative_ms", relative)
	}

	keyframeBit := t.codecID == codec.Opus || (isVideo && blk.keyframe)
	m.clusterBlocks = append(m.clusterBlocks, encodeSimpleBlock(t.num, int16(relative), keyframeBit, blk.payload))
	m.clusterSize += int64(len(m.clusterBlocks[len(m.clusterBlocks)-1]))

	if !m.sawBlock || blk.absMs < m.timeMin {
		m.timeMin = blk.absMs
	}
	if !m.sawBlock || blk.absMs > m.timeMax {
		m.timeMax = blk.absMs
	}
	m.sawBlock = true
	return nil
}

// flushCluster serializes the in-progress cluster and writes it to the
// sink immediately, so completed clusters never sit in muxer memory — only
// the current one does.
func (m *Muxer) flushCluster() error {
	b := encodeCluster(m.clusterTime, m.clusterBlocks)
	if err := m.writeBody(b); err != nil {
		return err
	}
	m.segmentPosition += int64(len(b))
	return nil
}

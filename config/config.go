// Package config carries the tunables shared by the mux and demux
// packages: cluster segmentation thresholds, the SeekHead byte budget,
// and the fixed timestamp scale.
package config

import "time"

// TimestampScale is the fixed output resolution: one millisecond,
// expressed in nanoseconds as Matroska's Info/TimestampScale requires.
const TimestampScale = 1_000_000

// DefaultClusterMaxBytes is the byte-size threshold (rule 4.7a) past which
// a new Cluster is started: 5 MiB.
const DefaultClusterMaxBytes = 5 * 1024 * 1024

// DefaultClusterMaxDuration is the relative-timecode threshold (rule 4.7b)
// past which a new Cluster is started: 5 seconds.
const DefaultClusterMaxDuration = 5 * time.Second

// DefaultSeekHeadBudget is the fixed byte size the SeekHead is padded to,
// including its own Void filler.
const DefaultSeekHeadBudget = 160

// MaxRelativeTimecode is the largest relative timecode a SimpleBlock can
// carry (signed 16-bit).
const MaxRelativeTimecode = 32767

// MinRelativeTimecode is the smallest relative timecode a SimpleBlock can
// carry (signed 16-bit).
const MinRelativeTimecode = -32768

// MuxOptions configures a mux.Muxer. Zero value is invalid; use
// DefaultMuxOptions to obtain sane values and override selectively.
type MuxOptions struct {
	ClusterMaxBytes    int64
	ClusterMaxDuration time.Duration
	SeekHeadBudget      int
	WritingApp         string
	MuxingApp          string
}

// DefaultMuxOptions returns sane default thresholds and app strings
// derived from the module's own identity, following the common Go idiom
// of a constructor that returns populated defaults.
func DefaultMuxOptions() MuxOptions {
	return MuxOptions{
		ClusterMaxBytes:    DefaultClusterMaxBytes,
		ClusterMaxDuration: DefaultClusterMaxDuration,
		SeekHeadBudget:     DefaultSeekHeadBudget,
		WritingApp:         "membraneframework/webm",
		MuxingApp:          "membraneframework/webm",
	}
}

// DemuxOptions configures a demux.Demuxer.
type DemuxOptions struct {
	// DefaultCredit is the initial per-pad demand granted to a newly
	// linked output pad, in buffers.
	DefaultCredit int
}

// DefaultDemuxOptions returns the library's default demuxer tunables.
func DefaultDemuxOptions() DemuxOptions {
	return DemuxOptions{DefaultCredit: 0}
}

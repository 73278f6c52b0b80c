// Package sink provides the muxer's output boundary: a plain io.Writer plus
// the one extra operation finalization needs — inserting the header at the
// start of the file after the body has already been written, a
// seek-to-offset-0-and-insert operation rather than an in-place overwrite.
package sink

import (
	"io"
	"os"

	"github.com/membraneframework/webm/webmerr"
)

// Seeker is the muxer's finalization contract. Write appends to the body in
// call order, the way any io.Writer does. SeekInsert is only ever called
// once, after the body is complete, to prepend the finished header.
type Seeker interface {
	io.Writer
	SeekInsert(data []byte) error
}

// MemorySink buffers the entire output in memory. SeekInsert prepends,
// since there is no on-disk offset to seek to.
type MemorySink struct {
	body []byte
}

// NewMemorySink returns an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Write(p []byte) (int, error) {
	s.body = append(s.body, p...)
	return len(p), nil
}

// SeekInsert prepends data to the buffered body.
func (s *MemorySink) SeekInsert(data []byte) error {
	out := make([]byte, 0, len(data)+len(s.body))
	out = append(out, data...)
	out = append(out, s.body...)
	s.body = out
	return nil
}

// Bytes returns the sink's full contents: header followed by body, once
// SeekInsert has run.
func (s *MemorySink) Bytes() []byte {
	return s.body
}

// FileSink streams the body directly to disk and, at finalization, inserts
// the header in front of it. The header's final size is only known once
// Duration and the cue table are complete, so it cannot be
// reserved-and-overwritten in place; SeekInsert instead rewrites the file
// through a temporary sibling and renames it over the original, the way a
// one-shot finalize step is expected to pay an O(body size) cost once.
type FileSink struct {
	f    *os.File
	path string
	pos  int64
}

// NewFileSink wraps f, whose name is used to derive the temporary file used
// by SeekInsert. f must be opened for writing.
func NewFileSink(f *os.File) *FileSink {
	return &FileSink{f: f, path: f.Name()}
}

func (s *FileSink) Write(p []byte) (int, error) {
	n, err := s.f.Write(p)
	s.pos += int64(n)
	return n, err
}

// SeekInsert prepends data to the file by copying the already-written body
// after it into a temporary file, then renaming over the original.
func (s *FileSink) SeekInsert(data []byte) error {
	if err := s.f.Sync(); err != nil {
		return err
	}
	body, err := os.Open(s.path)
	if err != nil {
		return err
	}
	defer body.Close()

	tmp, err := os.CreateTemp("", "webm-finalize-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := s.f.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, s.path)
}

// StreamSink wraps a plain, non-seekable io.Writer — a network socket or
// pipe — that cannot support SeekInsert. Such a destination must either
// buffer in memory (MemorySink) or fail outright; StreamSink is the "fail"
// half of that choice, so a caller that wires one up gets a clear error at
// finalize instead of a silently corrupt stream.
type StreamSink struct {
	w io.Writer
}

// NewStreamSink wraps w for a one-way (non-finalizable) muxer output.
func NewStreamSink(w io.Writer) *StreamSink {
	return &StreamSink{w: w}
}

func (s *StreamSink) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// SeekInsert always fails: a StreamSink has nowhere to rewind to.
func (s *StreamSink) SeekInsert(data []byte) error {
	return webmerr.ErrSinkNotSeekable
}

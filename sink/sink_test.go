package sink

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemorySinkWriteThenSeekInsert(t *testing.T) {
	s := NewMemorySink()
	_, err := s.Write([]byte("body"))
	require.NoError(t, err)

	require.NoError(t, s.SeekInsert([]byte("HEAD:")))
	require.Equal(t, []byte("HEAD:body"), s.Bytes())
}

func TestMemorySinkMultipleWritesAppendInOrder(t *testing.T) {
	s := NewMemorySink()
	_, err := s.Write([]byte("a"))
	require.NoError(t, err)
	_, err = s.Write([]byte("b"))
	require.NoError(t, err)
	require.Equal(t, []byte("ab"), s.Bytes())
}

func TestFileSinkWriteThenSeekInsert(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.webm")
	f, err := os.Create(path)
	require.NoError(t, err)

	s := NewFileSink(f)
	_, err = s.Write([]byte("cluster-bytes"))
	require.NoError(t, err)

	require.NoError(t, s.SeekInsert([]byte("HEADER:")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("HEADER:cluster-bytes"), got)
}

func TestStreamSinkRejectsSeekInsert(t *testing.T) {
	var buf bytes.Buffer
	s := NewStreamSink(&buf)

	_, err := s.Write([]byte("data"))
	require.NoError(t, err)
	require.Equal(t, "data", buf.String())

	err = s.SeekInsert([]byte("header"))
	require.Error(t, err)
}

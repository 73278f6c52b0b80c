// Command webmtool is a thin file-based exerciser of this module's muxer
// and demuxer: "mux" assembles a WebM file from raw frame files on disk,
// "demux" extracts a track's frames back out. It exists to give the
// library an end-to-end executable surface, the way every comparable repo
// in this pack ships a thin consumer of its own core package.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/membraneframework/webm/codec"
	"github.com/membraneframework/webm/config"
	"github.com/membraneframework/webm/demux"
	"github.com/membraneframework/webm/mux"
	"github.com/membraneframework/webm/sink"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "mux":
		err = runMux(os.Args[2:])
	case "demux":
		err = runDemux(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "webmtool:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: webmtool mux -codec vp8 -out out.webm frame1 frame2 ...")
	fmt.Fprintln(os.Stderr, "       webmtool demux -track 1 -in in.webm -out-dir frames/")
}

func runMux(args []string) error {
	fs := flag.NewFlagSet("mux", flag.ExitOnError)
	codecName := fs.String("codec", "vp8", "codec: opus, vp8, vp9, h264")
	out := fs.String("out", "out.webm", "output file path")
	frameMs := fs.Int64("frame-ms", 33, "milliseconds between frames")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := codecFromName(*codecName)
	if err != nil {
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()

	m := mux.New(sink.NewFileSink(f), config.DefaultMuxOptions())
	pad, err := m.AddPad(id, mux.TrackMeta{Channels: 2})
	if err != nil {
		return err
	}

	for i, path := range fs.Args() {
		payload, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		pts := int64(i) * *frameMs * 1_000_000
		if err := pad.PushBuffer(mux.Buffer{Payload: payload, PTS: &pts}); err != nil {
			return err
		}
	}
	return pad.EndOfStream()
}

func runDemux(args []string) error {
	fs := flag.NewFlagSet("demux", flag.ExitOnError)
	in := fs.String("in", "in.webm", "input file path")
	track := fs.Uint64("track", 1, "track number to extract")
	outDir := fs.String("out-dir", ".", "directory to write extracted frames into")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		return err
	}

	d := demux.New(config.DefaultDemuxOptions())
	if _, err := d.Write(data); err != nil {
		return err
	}
	d.EndOfInput()

	// The demuxer's cache is strict FIFO across tracks, so every track is
	// linked and credited; otherwise another track's first block would hold
	// back the requested one.
	for _, t := range d.Tracks() {
		p, err := d.Pad(t.TrackNumber)
		if err != nil {
			return err
		}
		p.SetDemand(1 << 20)
	}
	pad, err := d.Pad(*track)
	if err != nil {
		return err
	}

	n := 0
	for {
		buf, err := pad.Next()
		if err != nil {
			break
		}
		path := fmt.Sprintf("%s/frame-%04d.bin", *outDir, n)
		if err := os.WriteFile(path, buf.Payload, 0o644); err != nil {
			return err
		}
		n++
	}
	fmt.Printf("wrote %d frames from track %d\n", n, *track)
	return nil
}

func codecFromName(name string) (codec.ID, error) {
	switch name {
	case "opus":
		return codec.Opus, nil
	case "vp8":
		return codec.VP8, nil
	case "vp9":
		return codec.VP9, nil
	case "h264":
		return codec.H264, nil
	default:
		return codec.Unknown, fmt.Errorf("unknown codec %q", name)
	}
}

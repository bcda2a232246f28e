package export

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"chunkmesh/internal/world"

	"github.com/klauspost/compress/zstd"
)

// SnapshotVersion is bumped whenever the payload layout changes.
const SnapshotVersion = 1

// Header is written as a JSON line ahead of the gob payload so that tools can
// inspect a snapshot without decoding the blocks.
type Header struct {
	Version int `json:"version"`
	Width   int `json:"width"`
	Height  int `json:"height"`
	Depth   int `json:"depth"`
	Solid   int `json:"solid"`
}

type snapshotV1 struct {
	Header Header
	Blocks []uint16
}

// WriteSnapshot writes the grid as a zstd-compressed snapshot.
func WriteSnapshot(path string, g *world.Grid) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}

	w, h, d := g.Dims()
	snap := snapshotV1{
		Header: Header{Version: SnapshotVersion, Width: w, Height: h, Depth: d, Solid: g.CountSolid()},
		Blocks: make([]uint16, 0, g.Volume()),
	}
	for _, b := range g.Blocks() {
		snap.Blocks = append(snap.Blocks, uint16(b))
	}

	bw := bufio.NewWriterSize(enc, 256*1024)
	hb, _ := json.Marshal(snap.Header)
	if _, err := bw.Write(hb); err != nil {
		enc.Close()
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		enc.Close()
		return err
	}
	if err := gob.NewEncoder(bw).Encode(&snap); err != nil {
		enc.Close()
		return fmt.Errorf("gob encode: %w", err)
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return f.Close()
}

// ReadSnapshot restores a grid written by WriteSnapshot.
func ReadSnapshot(path string) (*world.Grid, Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Header{}, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, Header{}, err
	}
	defer dec.Close()

	br := bufio.NewReaderSize(dec, 256*1024)

	line, err := br.ReadBytes('\n')
	if err != nil {
		return nil, Header{}, fmt.Errorf("read header: %w", err)
	}
	var hdr Header
	if err := json.Unmarshal(line, &hdr); err != nil {
		return nil, Header{}, fmt.Errorf("parse header: %w", err)
	}
	if hdr.Version != SnapshotVersion {
		return nil, hdr, fmt.Errorf("unsupported snapshot version %d", hdr.Version)
	}

	var snap snapshotV1
	if err := gob.NewDecoder(br).Decode(&snap); err != nil {
		return nil, hdr, fmt.Errorf("gob decode: %w", err)
	}
	if snap.Header != hdr {
		return nil, hdr, errors.New("snapshot header does not match payload")
	}
	if hdr.Width <= 0 || hdr.Height <= 0 || hdr.Depth <= 0 {
		return nil, hdr, fmt.Errorf("invalid snapshot dimensions %dx%dx%d", hdr.Width, hdr.Height, hdr.Depth)
	}
	if len(snap.Blocks) != hdr.Width*hdr.Height*hdr.Depth {
		return nil, hdr, fmt.Errorf("snapshot has %d cells, want %d", len(snap.Blocks), hdr.Width*hdr.Height*hdr.Depth)
	}

	g := world.NewGrid(hdr.Width, hdr.Height, hdr.Depth)
	i := 0
	for z := 0; z < hdr.Depth; z++ {
		for y := 0; y < hdr.Height; y++ {
			for x := 0; x < hdr.Width; x++ {
				g.Set(x, y, z, world.BlockType(snap.Blocks[i]))
				i++
			}
		}
	}
	return g, hdr, nil
}

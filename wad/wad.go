// Package wad reads map geometry, things and the palette out of IWAD and PWAD files
package wad

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	ErrNotWAD      = errors.New("not a wad file")
	ErrMapNotFound = errors.New("map not found")
	ErrLump        = errors.New("malformed lump")
)

const (
	headerSize   = 12
	lumpSize     = 16
	maxLumpCount = 1 << 20
)

// Header is the 12-byte file header
type Header struct {
	Magic     [4]byte
	LumpCount int32
	DirOffset int32
}

// LumpEntry is one 16-byte directory record
type LumpEntry struct {
	FilePos int32
	Size    int32
	Name    [8]byte
}

// LumpName trims the NUL padding
func (e LumpEntry) LumpName() string {
	n := bytes.IndexByte(e.Name[:], 0)
	if n < 0 {
		n = len(e.Name)
	}
	return strings.ToUpper(string(e.Name[:n]))
}

// WAD is an opened archive; lumps are read on demand
type WAD struct {
	r    io.ReaderAt
	size int64
	IWAD bool
	Dir  []LumpEntry
}

// Open reads a whole file into memory and parses its directory
func Open(path string) (*WAD, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read wad: %w", err)
	}
	return FromBytes(data)
}

// FromBytes parses an in-memory archive
func FromBytes(data []byte) (*WAD, error) {
	return New(bytes.NewReader(data), int64(len(data)))
}

// New parses the header and directory from r
func New(r io.ReaderAt, size int64) (*WAD, error) {
	if size < headerSize {
		return nil, ErrNotWAD
	}
	var h Header
	if err := binary.Read(io.NewSectionReader(r, 0, headerSize), binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotWAD, err)
	}
	w := &WAD{r: r, size: size}
	switch string(h.Magic[:]) {
	case "IWAD":
		w.IWAD = true
	case "PWAD":
	default:
		return nil, ErrNotWAD
	}
	if h.LumpCount < 0 || h.LumpCount > maxLumpCount || h.DirOffset < 0 ||
		int64(h.DirOffset)+int64(h.LumpCount)*lumpSize > size {
		return nil, fmt.Errorf("%w: directory out of range", ErrNotWAD)
	}
	w.Dir = make([]LumpEntry, h.LumpCount)
	sr := io.NewSectionReader(r, int64(h.DirOffset), int64(h.LumpCount)*lumpSize)
	if err := binary.Read(sr, binary.LittleEndian, w.Dir); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotWAD, err)
	}
	return w, nil
}

// Find returns the index of the last lump with the given name, -1 if absent
// Later lumps override earlier ones, matching how PWADs patch IWADs
func (w *WAD) Find(name string) int {
	name = strings.ToUpper(name)
	for i := len(w.Dir) - 1; i >= 0; i-- {
		if w.Dir[i].LumpName() == name {
			return i
		}
	}
	return -1
}

// ReadLump returns the raw bytes of lump i
func (w *WAD) ReadLump(i int) ([]byte, error) {
	if i < 0 || i >= len(w.Dir) {
		return nil, fmt.Errorf("%w: index %d", ErrLump, i)
	}
	e := w.Dir[i]
	if e.FilePos < 0 || e.Size < 0 || int64(e.FilePos)+int64(e.Size) > w.size {
		return nil, fmt.Errorf("%w: %s out of range", ErrLump, e.LumpName())
	}
	buf := make([]byte, e.Size)
	if _, err := w.r.ReadAt(buf, int64(e.FilePos)); err != nil && !(errors.Is(err, io.EOF) && e.Size == 0) {
		return nil, fmt.Errorf("%w: %s: %v", ErrLump, e.LumpName(), err)
	}
	return buf, nil
}

// ReadNamed reads the last lump with the given name
func (w *WAD) ReadNamed(name string) ([]byte, error) {
	i := w.Find(name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s missing", ErrLump, name)
	}
	return w.ReadLump(i)
}

// decode fills a fixed-size record slice from a lump
func decode[T any](data []byte, recSize int, name string) ([]T, error) {
	if len(data)%recSize != 0 {
		return nil, fmt.Errorf("%w: %s size %d not a multiple of %d", ErrLump, name, len(data), recSize)
	}
	out := make([]T, len(data)/recSize)
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, out); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLump, name, err)
	}
	return out, nil
}

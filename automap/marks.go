package automap

import (
	"encoding/binary"
	"fmt"
	"io"
)

// initialMarkCap is the first allocation; capacity doubles from here
const initialMarkCap = 16

// maxStoredMarks bounds the count accepted by ReadFrom
const maxStoredMarks = 1 << 20

// Marks is the numbered list of user-placed map points
// Numbers are indices, so removing the last mark never renumbers the others
type Marks struct {
	pts []MapPoint
}

// Add appends a mark and returns its number
func (m *Marks) Add(p MapPoint) int {
	if len(m.pts) == cap(m.pts) {
		grown := make([]MapPoint, len(m.pts), max(initialMarkCap, 2*cap(m.pts)))
		copy(grown, m.pts)
		m.pts = grown
	}
	m.pts = append(m.pts, p)
	return len(m.pts) - 1
}

// RemoveLast drops the most recent mark, returning its number or -1 if there was none
func (m *Marks) RemoveLast() int {
	if len(m.pts) == 0 {
		return -1
	}
	m.pts = m.pts[:len(m.pts)-1]
	return len(m.pts)
}

// Clear forgets all marks and keeps the allocation
func (m *Marks) Clear() {
	m.pts = m.pts[:0]
}

// Len returns the number of marks
func (m *Marks) Len() int { return len(m.pts) }

// Cap returns the allocated capacity
func (m *Marks) Cap() int { return cap(m.pts) }

// At returns mark i
func (m *Marks) At(i int) MapPoint { return m.pts[i] }

// WriteTo stores the marks as a little-endian uint32 count followed by int64 x, y pairs
func (m *Marks) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 4+16*len(m.pts))
	binary.LittleEndian.PutUint32(buf, uint32(len(m.pts)))
	off := 4
	for _, p := range m.pts {
		binary.LittleEndian.PutUint64(buf[off:], uint64(p.X))
		binary.LittleEndian.PutUint64(buf[off+8:], uint64(p.Y))
		off += 16
	}
	n, err := w.Write(buf)
	if err != nil {
		return int64(n), fmt.Errorf("write marks: %w", err)
	}
	return int64(n), nil
}

// ReadFrom replaces the marks with a list written by WriteTo
func (m *Marks) ReadFrom(r io.Reader) (int64, error) {
	var hdr [4]byte
	n, err := io.ReadFull(r, hdr[:])
	read := int64(n)
	if err != nil {
		return read, fmt.Errorf("read marks count: %w", err)
	}
	count := binary.LittleEndian.Uint32(hdr[:])
	if count > maxStoredMarks {
		return read, fmt.Errorf("read marks: count %d exceeds %d", count, maxStoredMarks)
	}

	buf := make([]byte, 16*int(count))
	n, err = io.ReadFull(r, buf)
	read += int64(n)
	if err != nil {
		return read, fmt.Errorf("read marks: %w", err)
	}

	m.Clear()
	for off := 0; off < len(buf); off += 16 {
		m.Add(MapPoint{
			X: int64(binary.LittleEndian.Uint64(buf[off:])),
			Y: int64(binary.LittleEndian.Uint64(buf[off+8:])),
		})
	}
	return read, nil
}

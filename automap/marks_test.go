package automap

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestMarksNumbering(t *testing.T) {
	var m Marks
	if n := m.RemoveLast(); n != -1 {
		t.Errorf("Expected -1 from empty list, got %d", n)
	}
	for i := 0; i < 3; i++ {
		if n := m.Add(MapPoint{int64(i), int64(-i)}); n != i {
			t.Errorf("Expected mark %d, got %d", i, n)
		}
	}
	if n := m.RemoveLast(); n != 2 {
		t.Errorf("Expected to remove mark 2, got %d", n)
	}
	// The freed number is reused
	if n := m.Add(MapPoint{9, 9}); n != 2 {
		t.Errorf("Expected mark 2 again, got %d", n)
	}
	if p := m.At(1); p != (MapPoint{1, -1}) {
		t.Errorf("Expected mark 1 untouched, got %+v", p)
	}
}

func TestMarksCapacity(t *testing.T) {
	var m Marks
	m.Add(MapPoint{})
	if m.Cap() != initialMarkCap {
		t.Errorf("Expected initial capacity %d, got %d", initialMarkCap, m.Cap())
	}
	for m.Len() < initialMarkCap+1 {
		m.Add(MapPoint{})
	}
	if m.Cap() != 2*initialMarkCap {
		t.Errorf("Expected doubled capacity %d, got %d", 2*initialMarkCap, m.Cap())
	}

	m.Clear()
	if m.Len() != 0 || m.Cap() != 2*initialMarkCap {
		t.Errorf("Expected empty list with capacity kept, got len %d cap %d", m.Len(), m.Cap())
	}
}

func TestMarksSaveLoad(t *testing.T) {
	var m Marks
	pts := []MapPoint{{u(10), u(20)}, {-u(300), u(4000) + 7}, {0, -1}}
	for _, p := range pts {
		m.Add(p)
	}

	var buf bytes.Buffer
	n, err := m.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(4+16*len(pts)) {
		t.Errorf("Expected %d bytes, got %d", 4+16*len(pts), n)
	}

	var got Marks
	got.Add(MapPoint{1, 1})
	if _, err := got.ReadFrom(&buf); err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}
	if got.Len() != len(pts) {
		t.Fatalf("Expected %d marks, got %d", len(pts), got.Len())
	}
	for i, p := range pts {
		if got.At(i) != p {
			t.Errorf("Mark %d: expected %+v, got %+v", i, p, got.At(i))
		}
	}
}

func TestMarksReadErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short header", []byte{1, 0}},
		{"truncated body", append(binary.LittleEndian.AppendUint32(nil, 2), make([]byte, 20)...)},
		{"count too large", binary.LittleEndian.AppendUint32(nil, maxStoredMarks+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Marks
			m.Add(MapPoint{5, 5})
			if _, err := m.ReadFrom(bytes.NewReader(tt.data)); err == nil {
				t.Errorf("Expected error")
			}
			// A failed load leaves the list alone
			if m.Len() != 1 {
				t.Errorf("Expected existing mark kept, got %d marks", m.Len())
			}
		})
	}
}

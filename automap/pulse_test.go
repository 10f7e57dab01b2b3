package automap

import "testing"

func TestPulseSweepsBand(t *testing.T) {
	p := NewPulse([2]uint8{176, 183})
	if p.Color() != 176 {
		t.Fatalf("Expected start at band bottom, got %d", p.Color())
	}

	for i := 0; i < 7; i++ {
		p.Step()
	}
	if p.Color() != 183 || p.Dir != -1 {
		t.Errorf("Expected top of band moving down, got %d dir %d", p.Color(), p.Dir)
	}
	for i := 0; i < 7; i++ {
		p.Step()
	}
	if p.Color() != 176 || p.Dir != 1 {
		t.Errorf("Expected bottom of band moving up, got %d dir %d", p.Color(), p.Dir)
	}

	for i := 0; i < 100; i++ {
		p.Step()
		if p.Value < p.Min || p.Value > p.Max {
			t.Fatalf("Pulse left its band: %d", p.Value)
		}
	}
}

func TestPulsesStepOnEvenTics(t *testing.T) {
	am, _, _ := newTestMap(t, testLevel(), nil)
	start := am.tick.pulses.active.Value

	am.Tick()
	if am.tick.pulses.active.Value != start {
		t.Errorf("Expected no step on odd tic")
	}
	am.Tick()
	if am.tick.pulses.active.Value != start+1 {
		t.Errorf("Expected one step after two tics, got %d from %d", am.tick.pulses.active.Value, start)
	}
}

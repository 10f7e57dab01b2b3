package automap

// Pulse is a palette index that sweeps back and forth across a color band
type Pulse struct {
	Value    int
	Min, Max int
	Dir      int
}

// NewPulse starts at the bottom of the band moving up
func NewPulse(band [2]uint8) Pulse {
	return Pulse{Value: int(band[0]), Min: int(band[0]), Max: int(band[1]), Dir: 1}
}

// Step advances one position, reversing at either bound
func (p *Pulse) Step() {
	p.Value += p.Dir
	if p.Value >= p.Max {
		p.Value = p.Max
		p.Dir = -1
	} else if p.Value <= p.Min {
		p.Value = p.Min
		p.Dir = 1
	}
}

// Color returns the current palette index
func (p *Pulse) Color() uint8 {
	return uint8(p.Value)
}

// pulses are the animated colors of one session
type pulses struct {
	active    Pulse // monsters chasing a target
	inactive  Pulse // idle monsters
	spectator Pulse // detached camera arrow
}

func newPulses(b PulseBands) pulses {
	return pulses{
		active:    NewPulse(b.Active),
		inactive:  NewPulse(b.Inactive),
		spectator: NewPulse(b.Spectator),
	}
}

func (p *pulses) step() {
	p.active.Step()
	p.inactive.Step()
	p.spectator.Step()
}

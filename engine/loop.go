package engine

import "github.com/lixenwraith/automap/vmath"

// Stepper is the pair of call sites a front end drives each frame
type Stepper interface {
	Tick()
	Draw(frac vmath.Fixed)
}

// Loop couples a tic clock to a stepper
type Loop struct {
	Clock *TicClock
	Step  Stepper
	// Uncapped hands real sub-tic fractions to Draw; capped frames always draw at the tic boundary
	Uncapped bool
}

// NewLoop creates a loop on real time
func NewLoop(step Stepper, uncapped bool) *Loop {
	return &Loop{Clock: NewTicClock(nil), Step: step, Uncapped: uncapped}
}

// Frame runs all due tics and one draw, returning the number of tics run
func (l *Loop) Frame() int {
	n := l.RunTics()
	l.Render()
	return n
}

// RunTics runs the tics that are due by the clock
// Hosts with their own update/draw split call it from update and Render from draw
func (l *Loop) RunTics() int {
	n := l.Clock.Advance()
	for i := 0; i < n; i++ {
		l.Step.Tick()
	}
	return n
}

// Render draws at the current sub-tic fraction
func (l *Loop) Render() {
	frac := vmath.Fixed(vmath.FracUnit)
	if l.Uncapped && !l.Clock.IsPaused() {
		frac = l.Clock.Fraction()
	}
	l.Step.Draw(frac)
}

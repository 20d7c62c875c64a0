package orbsort

import (
	"github.com/vovakirdan/orb-sort/internal/config"
	"github.com/vovakirdan/orb-sort/internal/core"
	"github.com/vovakirdan/orb-sort/internal/games/orbsort/engine"
)

// Slot is a stack position in a tube (Pos 0 = bottom).
type Slot struct {
	Tube int
	Pos  int
}

// Flight is one orb travelling between tubes. The engine has already
// moved it; the flight only decides where it is drawn until it lands.
type Flight struct {
	Color engine.Color
	From  Slot
	To    Slot
	Delay int // Ticks the orb waits in the source tube
	Age   int // Ticks since launch
}

// FlightPhase is the part of the path an orb is on.
type FlightPhase int

const (
	PhaseWaiting FlightPhase = iota
	PhaseLift
	PhaseTravel
	PhaseDrop
	PhaseLanded
)

// Phase returns the current phase and the ticks spent in it.
func (f Flight) Phase(a config.AnimationConfig) (FlightPhase, int) {
	t := f.Age - f.Delay
	if t < 0 {
		return PhaseWaiting, 0
	}
	if t < a.LiftTicks {
		return PhaseLift, t
	}
	t -= a.LiftTicks
	if t < a.TravelTicks {
		return PhaseTravel, t
	}
	t -= a.TravelTicks
	if t < a.DropTicks {
		return PhaseDrop, t
	}
	return PhaseLanded, 0
}

// Landed reports whether the orb reached its target slot.
func (f Flight) Landed(a config.AnimationConfig) bool {
	phase, _ := f.Phase(a)
	return phase == PhaseLanded
}

// launch queues one flight per moved orb. The top orb leaves first and
// takes the lowest free slot of the target.
func (g *Game) launch(m engine.Move) {
	src, _ := g.engine.Tube(m.Source)
	dst, _ := g.engine.Tube(m.Target)
	srcLen := src.Len() + m.Count // Before the move
	dstLen := dst.Len() - m.Count

	stagger := g.settings.Config.Animation.StaggerTicks
	for k := range m.Count {
		g.flights = append(g.flights, Flight{
			Color: m.Color,
			From:  Slot{Tube: m.Source, Pos: srcLen - 1 - k},
			To:    Slot{Tube: m.Target, Pos: dstLen + k},
			Delay: k * stagger,
		})
	}
}

// advanceFlights ages every flight and drops the landed ones.
func (g *Game) advanceFlights() {
	anim := g.settings.Config.Animation
	kept := g.flights[:0]
	for _, f := range g.flights {
		f.Age++
		if !f.Landed(anim) {
			kept = append(kept, f)
		}
	}
	g.flights = kept
}

// animating reports whether any orb is still in the air.
func (g *Game) animating() bool {
	return len(g.flights) > 0
}

// incoming reports whether slot is the target of an orb still in flight.
func (g *Game) incoming(s Slot) bool {
	for _, f := range g.flights {
		if f.To == s {
			return true
		}
	}
	return false
}

// flightPosition returns the screen cell an orb is drawn at.
func (g *Game) flightPosition(f Flight, bg boardGeom) (x, y int) {
	anim := g.settings.Config.Animation
	fromX, toX := bg.orbX(f.From.Tube), bg.orbX(f.To.Tube)
	fromY, toY := bg.slotY(f.From.Pos), bg.slotY(f.To.Pos)

	phase, t := f.Phase(anim)
	switch phase {
	case PhaseWaiting:
		return fromX, fromY
	case PhaseLift:
		return fromX, core.Lerp(fromY, bg.travelY(), t, anim.LiftTicks)
	case PhaseTravel:
		return core.Lerp(fromX, toX, t, anim.TravelTicks), bg.travelY()
	case PhaseDrop:
		return toX, core.Lerp(bg.travelY(), toY, t, anim.DropTicks)
	default:
		return toX, toY
	}
}

package telemetry

import (
	"fmt"
	"log"
	"math"

	"pacenote/internal/catalog"
	"pacenote/internal/domain"
)

// callRadius is how close, in metres, the car must get to a cue before it is
// called. The call fires as soon as the car starts moving away again.
const callRadius = 10

// Player calls out the cues of the stage being driven. Cues are reloaded
// whenever the run restarts or the stage changes.
type Player struct {
	store  domain.TelemetryStore
	offset float64
	call   func(string)

	stageLength  float64
	lastDistance float64
	finder       *finder
	failed       bool
}

// NewPlayer returns a Player that passes each due message to call. offset
// scales how far ahead along its velocity the car is projected; higher
// values call earlier.
func NewPlayer(store domain.TelemetryStore, offset float64, call func(string)) *Player {
	return &Player{store: store, offset: offset, call: call, stageLength: -1}
}

// Handle consumes one packet. A stage whose cues cannot be loaded reports the
// error once and stays silent until the next restart.
func (pl *Player) Handle(p *Packet) error {
	if pl.lastDistance != 0 && p.StageCurrentDistance == 0 {
		pl.lastDistance = 0
		pl.stageLength = -1
		pl.failed = false
	}
	if pl.stageLength != p.StageLength {
		pl.stageLength = p.StageLength
		pl.finder = nil
	}
	if pl.finder == nil && !pl.failed {
		if err := pl.load(p); err != nil {
			pl.failed = true
			return err
		}
	}
	if pl.finder == nil || p.StageCurrentDistance == 0 {
		return nil
	}
	pl.lastDistance = p.StageCurrentDistance

	if c, ok := pl.finder.next(p); ok {
		log.Println("call:", c.Message)
		pl.call(c.Message)
	}
	return nil
}

func (pl *Player) load(p *Packet) error {
	st, ok := catalog.ByLength(p.StageLength)
	if !ok {
		return fmt.Errorf("%w: length %f", domain.ErrStageNotFound, p.StageLength)
	}
	cues, err := pl.store.Cues(st)
	if err != nil {
		return fmt.Errorf("pacenotes load failed: %w", err)
	}
	log.Printf("pacenotes loaded: %s (%d)", catalog.Label(st), len(cues))
	pl.finder = &finder{cues: cues, offset: pl.offset}
	pl.finder.next(p)
	return nil
}

// finder walks the cues in order. index is -1 once every cue was passed.
type finder struct {
	cues     []domain.Cue
	offset   float64
	index    int
	started  bool
	lastDist float64
}

// next reports the cue due at p. The first packet only picks the nearest cue
// as the starting point.
func (f *finder) next(p *Packet) (domain.Cue, bool) {
	if f.index < 0 {
		return domain.Cue{}, false
	}
	if !f.started {
		f.started = true
		best := math.Inf(1)
		for i := range f.cues {
			if d := f.distance(f.cues[i], p); d < best {
				best, f.index = d, i
			}
		}
		return domain.Cue{}, false
	}
	if f.index >= len(f.cues) {
		f.index = -1
		log.Println("pacenotes exhausted")
		return domain.Cue{}, false
	}

	cur := f.cues[f.index]
	d := f.distance(cur, p)
	defer func() { f.lastDist = d }()

	if d > callRadius {
		// Skip a cue that was missed once the next one is closer.
		if f.index+1 < len(f.cues) && f.distance(f.cues[f.index+1], p) < d {
			f.index++
		}
		return domain.Cue{}, false
	}
	if f.lastDist >= d {
		return domain.Cue{}, false
	}
	f.index++
	return cur, true
}

func (f *finder) distance(c domain.Cue, p *Packet) float64 {
	dt := f.offset * float64(p.GameDeltaTime)
	dx := c.X - (float64(p.VehiclePositionX) + dt*float64(p.VehicleVelocityX))
	dy := c.Y - (float64(p.VehiclePositionY) + dt*float64(p.VehicleVelocityY))
	dz := c.Z - (float64(p.VehiclePositionZ) + dt*float64(p.VehicleVelocityZ))
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

package telemetry

import (
	"log"
	"time"

	"pacenote/internal/catalog"
	"pacenote/internal/domain"
)

const (
	// A stop within finishWindow metres of the end, with brake and clutch
	// fully pressed for more than finishPackets packets, ends the run.
	finishWindow  = 1000
	finishPackets = 3

	defaultIdle = 3 * time.Second
)

// Recorder collects a run's positions and saves them as telemetry.log when
// the run finishes. A run starts when the stage distance drops back to zero.
// Runs that restart, go silent for longer than the idle timeout or belong to
// an unknown stage are dropped.
// Elapsed times are measured from the packet that started the run.
type Recorder struct {
	store domain.TelemetryStore
	now   func() time.Time
	idle  time.Duration

	last         *Packet
	lastDistance float64
	lastSeen     time.Time

	active   bool
	stage    domain.Stage
	start    time.Time
	points   []domain.TrackPoint
	finishes int
}

func NewRecorder(store domain.TelemetryStore) *Recorder {
	return &Recorder{
		store: store,
		now:   time.Now,
		idle:  defaultIdle,
		// Non-zero so a first packet at the start line begins a run.
		lastDistance: -1,
	}
}

// Handle consumes one packet. It returns the path of the recording this
// packet completed, or "".
func (r *Recorder) Handle(p *Packet) (string, error) {
	now := r.now()
	if r.active && now.Sub(r.lastSeen) > r.idle {
		log.Printf("recording dropped: no telemetry for %s", now.Sub(r.lastSeen).Round(time.Millisecond))
		r.active = false
	}
	r.lastSeen = now

	prev := r.last
	restarted := r.lastDistance != 0 && p.StageCurrentDistance == 0
	r.last, r.lastDistance = p, p.StageCurrentDistance

	if restarted {
		r.begin(p, now)
	}
	if !r.active {
		return "", nil
	}
	if moved(prev, p) {
		r.points = append(r.points, domain.TrackPoint{
			UID:     p.PacketUID,
			Elapsed: int64(now.Sub(r.start)),
			X:       float64(p.VehiclePositionX),
			Y:       float64(p.VehiclePositionY),
			Z:       float64(p.VehiclePositionZ),
		})
	}

	if !stopped(p) {
		return "", nil
	}
	r.finishes++
	if r.finishes <= finishPackets {
		return "", nil
	}

	r.active = false
	path, err := r.store.SaveTelemetry(r.stage, r.points)
	r.points = nil
	if err != nil {
		return "", err
	}
	log.Printf("log saved: %q (%s)", path, catalog.Label(r.stage))
	return path, nil
}

// Recording reports whether a run is in progress.
func (r *Recorder) Recording() bool { return r.active }

func (r *Recorder) begin(p *Packet, now time.Time) {
	if r.active {
		log.Printf("recording restarted: %s", catalog.Label(r.stage))
	}
	r.active = false
	r.points = nil
	r.finishes = 0

	st, ok := catalog.ByLength(p.StageLength)
	if !ok {
		log.Printf("recording skipped: unknown stage length %f", p.StageLength)
		return
	}
	r.active = true
	r.stage = st
	r.start = now
	log.Printf("recording start: %s", catalog.Label(st))
}

func moved(prev, next *Packet) bool {
	if prev == nil {
		return true
	}
	return prev.StageCurrentDistance != next.StageCurrentDistance ||
		prev.VehiclePositionX != next.VehiclePositionX ||
		prev.VehiclePositionY != next.VehiclePositionY ||
		prev.VehiclePositionZ != next.VehiclePositionZ
}

func stopped(p *Packet) bool {
	return p.StageCurrentDistance > p.StageLength-finishWindow &&
		p.VehicleClutch == 1 && p.VehicleBrake == 1
}

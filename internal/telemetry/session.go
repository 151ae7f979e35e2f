package telemetry

import (
	"log"

	"pacenote/internal/catalog"
	"pacenote/internal/domain"
)

// RecordingModeCall is passed to the call function when a stage without
// pacenotes comes up.
const RecordingModeCall = "recording mode"

// Session routes packets to a Recorder or a Player. The choice is made again
// every time the stage length changes: stages with a pacenote.log are played
// back, all others are recorded.
type Session struct {
	store    domain.TelemetryStore
	call     func(string)
	recorder *Recorder
	player   *Player

	known       bool
	stageLength float64
	recording   bool
}

// NewSession wires a Recorder and a Player to store. call receives spoken
// messages; nil discards them.
func NewSession(store domain.TelemetryStore, offset float64, call func(string)) *Session {
	if call == nil {
		call = func(string) {}
	}
	return &Session{
		store:    store,
		call:     call,
		recorder: NewRecorder(store),
		player:   NewPlayer(store, offset, call),
	}
}

var _ PacketHandler = (*Session)(nil)

// HandlePacket implements PacketHandler. Errors are logged.
func (s *Session) HandlePacket(p *Packet) {
	if !s.known || s.stageLength != p.StageLength {
		s.known = true
		s.stageLength = p.StageLength
		st, ok := catalog.ByLength(p.StageLength)
		s.recording = !ok || !s.store.HasPacenotes(st)
		if s.recording {
			log.Printf("pacenote.log not found for stage length %f", p.StageLength)
			s.call(RecordingModeCall)
		}
	}

	if s.recording {
		if _, err := s.recorder.Handle(p); err != nil {
			log.Print(err)
		}
		return
	}
	if err := s.player.Handle(p); err != nil {
		log.Print(err)
	}
}

// Recording reports whether the current stage is being recorded.
func (s *Session) Recording() bool { return s.recording }

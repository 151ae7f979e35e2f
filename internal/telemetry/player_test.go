package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacenote/internal/domain"
)

func along(z float32) *Packet {
	return &Packet{
		StageLength:          peiraCava,
		StageCurrentDistance: float64(z),
		VehiclePositionZ:     z,
	}
}

func TestPlayer_CallsEachCueOnceWhenLeavingIt(t *testing.T) {
	store := newMemStore()
	store.cues[peiraCavaID] = []domain.Cue{
		{Z: 50, Message: "left 3"},
		{Z: 100, Message: "right 2"},
	}

	var calls []string
	pl := NewPlayer(store, 10, func(msg string) { calls = append(calls, msg) })

	for _, z := range []float32{0, 10, 45, 50, 55} {
		require.NoError(t, pl.Handle(along(z)))
	}
	assert.Equal(t, []string{"left 3"}, calls)

	for _, z := range []float32{95, 100, 104, 150, 200} {
		require.NoError(t, pl.Handle(along(z)))
	}
	assert.Equal(t, []string{"left 3", "right 2"}, calls)
}

func TestPlayer_SkipsMissedCue(t *testing.T) {
	store := newMemStore()
	store.cues[peiraCavaID] = []domain.Cue{
		{Z: 50, Message: "missed"},
		{Z: 100, Message: "caught"},
	}

	var calls []string
	pl := NewPlayer(store, 0, func(msg string) { calls = append(calls, msg) })

	// The car passes 50 at more than callRadius, so "missed" never comes due.
	for _, z := range []float32{0, 30, 80, 98, 100, 103} {
		p := along(z)
		p.VehiclePositionX = 20
		if z >= 98 {
			p.VehiclePositionX = 0
		}
		require.NoError(t, pl.Handle(p))
	}
	assert.Equal(t, []string{"caught"}, calls)
}

func TestPlayer_ReportsUnknownStageOnce(t *testing.T) {
	pl := NewPlayer(newMemStore(), 10, func(string) {})

	p := along(0)
	p.StageLength = 1234.5
	assert.ErrorIs(t, pl.Handle(p), domain.ErrStageNotFound)
	p.StageCurrentDistance = 10
	assert.NoError(t, pl.Handle(p))
}

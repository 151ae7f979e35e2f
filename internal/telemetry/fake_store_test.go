package telemetry

import "pacenote/internal/domain"

// memStore is an in-memory domain.TelemetryStore.
type memStore struct {
	cues  map[domain.StageID][]domain.Cue
	saved map[domain.StageID][][]domain.TrackPoint
}

func newMemStore() *memStore {
	return &memStore{
		cues:  map[domain.StageID][]domain.Cue{},
		saved: map[domain.StageID][][]domain.TrackPoint{},
	}
}

func (m *memStore) HasPacenotes(st domain.Stage) bool {
	_, ok := m.cues[st.ID]
	return ok
}

func (m *memStore) Cues(st domain.Stage) ([]domain.Cue, error) {
	return m.cues[st.ID], nil
}

func (m *memStore) SaveTelemetry(st domain.Stage, points []domain.TrackPoint) (string, error) {
	m.saved[st.ID] = append(m.saved[st.ID], append([]domain.TrackPoint(nil), points...))
	return st.Stage + "/telemetry.log", nil
}

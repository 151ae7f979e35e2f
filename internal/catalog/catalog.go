// Package catalog resolves location/stage numbers against the static table of
// rallies and names the on-disk directory of each stage.
package catalog

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"pacenote/internal/domain"
)

// Resolve looks up 1-based location and stage numbers given as strings
// ("01", "2"). It reports false for anything outside the table.
func Resolve(location, stage string) (domain.Stage, bool) {
	loc, err := strconv.Atoi(strings.TrimSpace(location))
	if err != nil {
		return domain.Stage{}, false
	}
	ss, err := strconv.Atoi(strings.TrimSpace(stage))
	if err != nil {
		return domain.Stage{}, false
	}
	return Lookup(domain.StageID{Location: loc, Stage: ss})
}

// Lookup resolves a numeric stage id.
func Lookup(id domain.StageID) (domain.Stage, bool) {
	if id.Location < 1 || id.Location > len(Locations) {
		return domain.Stage{}, false
	}
	l := Locations[id.Location-1]
	if id.Stage < 1 || id.Stage > len(l.Stages) {
		return domain.Stage{}, false
	}
	return domain.Stage{
		ID:       id,
		Location: l.Name,
		Stage:    l.Stages[id.Stage-1],
	}, true
}

// Stages lists every stage of location number loc in order.
func Stages(loc int) []domain.Stage {
	if loc < 1 || loc > len(Locations) {
		return nil
	}
	out := make([]domain.Stage, 0, len(Locations[loc-1].Stages))
	for ss := range Locations[loc-1].Stages {
		st, _ := Lookup(domain.StageID{Location: loc, Stage: ss + 1})
		out = append(out, st)
	}
	return out
}

// Dir is the stage directory relative to the log root:
// "01.Rallye Monte-Carlo/02.Peïra Cava - La Bollène-Vésubie".
func Dir(stage domain.Stage) string {
	return filepath.Join(locationSegment(stage), stageSegment(stage))
}

// Label is the human readable form of Dir, independent of the OS separator.
func Label(stage domain.Stage) string {
	return locationSegment(stage) + " / " + stageSegment(stage)
}

func locationSegment(stage domain.Stage) string {
	return fmt.Sprintf("%02d.%s", stage.ID.Location, stage.Location)
}

func stageSegment(stage domain.Stage) string {
	return fmt.Sprintf("%02d.%s", stage.ID.Stage, stage.Stage)
}

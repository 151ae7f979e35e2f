package editpage

import (
	"encoding/json"
	"fmt"

	"pacenote/internal/domain"
)

// StageName decodes the stage payload, a JSON string such as
// "01.Rallye Monte-Carlo / 02.Peïra Cava - La Bollène-Vésubie".
func StageName(res domain.LoadResult) (string, error) {
	var name string
	if err := json.Unmarshal(res.Stage, &name); err != nil {
		return "", fmt.Errorf("stage payload: %w: %w", domain.ErrParse, err)
	}
	return name, nil
}

// DecodeRegions decodes the regions payload.
func DecodeRegions(res domain.LoadResult) (domain.Regions, error) {
	var regions domain.Regions
	if err := json.Unmarshal(res.Regions, &regions); err != nil {
		return nil, fmt.Errorf("regions payload: %w: %w", domain.ErrParse, err)
	}
	return regions, nil
}

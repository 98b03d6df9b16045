// Package export serializes the planner's visual state to interchange
// formats: JSON snapshots, SVG and PNG images, and iCalendar documents.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/dsebastien/week-planner/pkg/models"
)

// JSON renders a snapshot as an indented JSON document sufficient to
// reconstruct identical state through BlockStore.ImportData.
func JSON(data models.PlannerData) ([]byte, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return append(out, '\n'), nil
}

// ParseJSON decodes a snapshot document. Validation happens when the result
// is handed to ImportData, so a malformed snapshot never half-applies.
func ParseJSON(raw []byte) (models.PlannerData, error) {
	var data models.PlannerData
	if err := json.Unmarshal(raw, &data); err != nil {
		return models.PlannerData{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	return data, nil
}

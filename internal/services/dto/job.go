package dto

import (
	"sentosa_backend/internal/models"
	"sentosa_backend/internal/repositories"
)

// JobDetailResponse is the denormalized position view: the joined primary
// row spread at the top level plus the merged child records. Requirements
// and WorkingConditions carry the first child row and are omitted entirely
// when the position has none; the two lists are always present, empty when
// the position has no child rows.
type JobDetailResponse struct {
	repositories.JobRow
	Tasks                []models.Task                `json:"tasks"`
	DocumentRequirements []models.DocumentRequirement `json:"documentRequirements"`
	Requirements         *models.Requirement          `json:"requirements,omitempty"`
	WorkingConditions    *models.WorkingCondition     `json:"workingConditions,omitempty"`
}

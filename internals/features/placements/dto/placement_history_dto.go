package dto

import (
	"time"

	"github.com/google/uuid"

	phService "quadroescolar_backend/internals/features/placements/service"
)

type PlacementHistoryResponse struct {
	PlacementHistoryID string     `json:"placement_history_id"`
	EmployeeID         string     `json:"employee_id"`
	PreviousSchoolID   *uuid.UUID `json:"previous_school_id,omitempty"`
	PreviousSchoolName *string    `json:"previous_school_name,omitempty"`
	NewSchoolID        *uuid.UUID `json:"new_school_id,omitempty"`
	NewSchoolName      *string    `json:"new_school_name,omitempty"`
	Timestamp          time.Time  `json:"timestamp"`
	Reason             string     `json:"reason"`
}

func NewPlacementHistoryResponse(e *phService.HistoryEntry) *PlacementHistoryResponse {
	if e == nil {
		return nil
	}
	return &PlacementHistoryResponse{
		PlacementHistoryID: e.PlacementHistoryID.String(),
		EmployeeID:         e.PlacementHistoryEmployeeID.String(),
		PreviousSchoolID:   e.PlacementHistoryPreviousSchoolID,
		PreviousSchoolName: e.PreviousSchoolName,
		NewSchoolID:        e.PlacementHistoryNewSchoolID,
		NewSchoolName:      e.NewSchoolName,
		Timestamp:          e.PlacementHistoryTimestamp,
		Reason:             e.PlacementHistoryReason,
	}
}

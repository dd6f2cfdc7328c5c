package model

import (
	"time"

	"github.com/google/uuid"
)

// PlacementHistoryModel é trilha append-only: uma linha por mudança real de
// lotação. Nunca é atualizada nem removida depois de criada.
type PlacementHistoryModel struct {
	PlacementHistoryID uuid.UUID `gorm:"type:uuid;primaryKey;column:placement_history_id" json:"placement_history_id"`

	PlacementHistoryEmployeeID uuid.UUID `gorm:"type:uuid;not null;index;column:placement_history_employee_id" json:"placement_history_employee_id"`

	// nil = sem lotação (transições de/para "sem unidade" também contam)
	PlacementHistoryPreviousSchoolID *uuid.UUID `gorm:"type:uuid;column:placement_history_previous_school_id" json:"placement_history_previous_school_id,omitempty"`
	PlacementHistoryNewSchoolID      *uuid.UUID `gorm:"type:uuid;column:placement_history_new_school_id" json:"placement_history_new_school_id,omitempty"`

	PlacementHistoryTimestamp time.Time `gorm:"not null;column:placement_history_timestamp" json:"placement_history_timestamp"`
	PlacementHistoryReason    string    `gorm:"type:varchar(200);not null;column:placement_history_reason" json:"placement_history_reason"`

	PlacementHistoryOwnerID string `gorm:"type:uuid;not null;index;column:placement_history_owner_id" json:"placement_history_owner_id"`

	PlacementHistoryCreatedAt time.Time `gorm:"column:placement_history_created_at;autoCreateTime" json:"placement_history_created_at"`
}

func (PlacementHistoryModel) TableName() string { return "placement_histories" }

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SchoolModel struct {
	// PK
	SchoolID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_id" json:"school_id"`

	// Identidade
	SchoolRegistryCode string  `gorm:"type:varchar(20);column:school_registry_code" json:"school_registry_code"`
	SchoolName         string  `gorm:"type:varchar(150);not null;column:school_name" json:"school_name"`
	SchoolAddress      *string `gorm:"column:school_address" json:"school_address,omitempty"`

	// Turnos de funcionamento (lista de strings em JSONB)
	SchoolShifts datatypes.JSON `gorm:"type:jsonb;column:school_shifts" json:"school_shifts,omitempty"`

	// Credenciais de acesso geradas pelo sistema. Podem ser regeneradas,
	// mas nunca ficam vazias depois que a unidade existe.
	SchoolManagerCode string `gorm:"type:varchar(16);not null;column:school_manager_code" json:"school_manager_code"`
	SchoolAccessCode  string `gorm:"type:varchar(16);not null;column:school_access_code" json:"school_access_code"`

	// Extras
	SchoolNotes   *string `gorm:"column:school_notes" json:"school_notes,omitempty"`
	SchoolLogoURL *string `gorm:"column:school_logo_url" json:"school_logo_url,omitempty"`

	// Tenancy
	SchoolOwnerID string `gorm:"type:uuid;not null;index;column:school_owner_id" json:"school_owner_id"`

	// Audit
	SchoolCreatedAt time.Time  `gorm:"column:school_created_at;autoCreateTime" json:"school_created_at"`
	SchoolUpdatedAt *time.Time `gorm:"column:school_updated_at;autoUpdateTime" json:"school_updated_at,omitempty"`
}

func (SchoolModel) TableName() string { return "schools" }

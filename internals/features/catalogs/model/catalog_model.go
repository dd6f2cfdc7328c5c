package model

import (
	"time"

	"github.com/google/uuid"
)

// Setores e cargos são catálogos de referência simples usados para rotular
// e filtrar servidores; não carregam regra além do particionamento.

type SectorModel struct {
	SectorID        uuid.UUID  `gorm:"type:uuid;primaryKey;column:sector_id" json:"sector_id"`
	SectorName      string     `gorm:"type:varchar(100);not null;column:sector_name" json:"sector_name"`
	SectorOwnerID   string     `gorm:"type:uuid;not null;index;column:sector_owner_id" json:"sector_owner_id"`
	SectorCreatedAt time.Time  `gorm:"column:sector_created_at;autoCreateTime" json:"sector_created_at"`
	SectorUpdatedAt *time.Time `gorm:"column:sector_updated_at;autoUpdateTime" json:"sector_updated_at,omitempty"`
}

func (SectorModel) TableName() string { return "sectors" }

type RoleModel struct {
	RoleID        uuid.UUID  `gorm:"type:uuid;primaryKey;column:role_id" json:"role_id"`
	RoleName      string     `gorm:"type:varchar(100);not null;column:role_name" json:"role_name"`
	RoleOwnerID   string     `gorm:"type:uuid;not null;index;column:role_owner_id" json:"role_owner_id"`
	RoleCreatedAt time.Time  `gorm:"column:role_created_at;autoCreateTime" json:"role_created_at"`
	RoleUpdatedAt *time.Time `gorm:"column:role_updated_at;autoUpdateTime" json:"role_updated_at,omitempty"`
}

func (RoleModel) TableName() string { return "roles" }

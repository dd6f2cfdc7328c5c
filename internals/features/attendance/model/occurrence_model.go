package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
)

/*
Tipo da ocorrência diária (ENUM no DB):
- "presente"
- "falta_injustificada"
- "atestado"
*/
type OccurrenceKind string

const (
	KindPresente           OccurrenceKind = "presente"
	KindFaltaInjustificada OccurrenceKind = "falta_injustificada"
	KindAtestado           OccurrenceKind = "atestado"
)

func (k *OccurrenceKind) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*k = OccurrenceKind(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*k = OccurrenceKind(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*k = ""
	}
	return nil
}
func (k OccurrenceKind) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(k))), nil
}

func (k OccurrenceKind) Valid() bool {
	switch k {
	case KindPresente, KindFaltaInjustificada, KindAtestado:
		return true
	}
	return false
}

// OccurrenceModel guarda no máximo uma ocorrência por (servidor, dia):
// reenvio no mesmo dia sobrescreve, não duplica.
type OccurrenceModel struct {
	// PK
	OccurrenceID uuid.UUID `gorm:"type:uuid;primaryKey;column:occurrence_id" json:"occurrence_id"`

	OccurrenceEmployeeID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_occurrence_employee_date;column:occurrence_employee_id" json:"occurrence_employee_id"`
	OccurrenceSchoolID   *uuid.UUID `gorm:"type:uuid;index;column:occurrence_school_id" json:"occurrence_school_id,omitempty"`

	OccurrenceDate time.Time      `gorm:"type:date;not null;uniqueIndex:uq_occurrence_employee_date;column:occurrence_date" json:"occurrence_date"`
	OccurrenceKind OccurrenceKind `gorm:"type:varchar(30);not null;column:occurrence_kind" json:"occurrence_kind"`
	OccurrenceNote *string        `gorm:"column:occurrence_note" json:"occurrence_note,omitempty"`

	// Atestado
	OccurrenceCertificateURL *string    `gorm:"column:occurrence_certificate_url" json:"occurrence_certificate_url,omitempty"`
	OccurrencePeriodStart    *time.Time `gorm:"type:date;column:occurrence_period_start" json:"occurrence_period_start,omitempty"`
	OccurrencePeriodEnd      *time.Time `gorm:"type:date;column:occurrence_period_end" json:"occurrence_period_end,omitempty"`

	// Tenancy
	OccurrenceOwnerID string `gorm:"type:uuid;not null;index;column:occurrence_owner_id" json:"occurrence_owner_id"`

	// Audit
	OccurrenceCreatedAt time.Time  `gorm:"column:occurrence_created_at;autoCreateTime" json:"occurrence_created_at"`
	OccurrenceUpdatedAt *time.Time `gorm:"column:occurrence_updated_at;autoUpdateTime" json:"occurrence_updated_at,omitempty"`
}

func (OccurrenceModel) TableName() string { return "attendance_occurrences" }

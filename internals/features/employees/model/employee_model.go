package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/*
Situação funcional (ENUM no DB):
- "ativo"
- "inativo"
- "licenca_medica"
- "licenca_especial"
- "licenca_maternidade"
- "licenca_sem_vencimento"
- "ferias"
- "readaptado"
*/
type EmploymentStatus string

const (
	StatusAtivo                EmploymentStatus = "ativo"
	StatusInativo              EmploymentStatus = "inativo"
	StatusLicencaMedica        EmploymentStatus = "licenca_medica"
	StatusLicencaEspecial      EmploymentStatus = "licenca_especial"
	StatusLicencaMaternidade   EmploymentStatus = "licenca_maternidade"
	StatusLicencaSemVencimento EmploymentStatus = "licenca_sem_vencimento"
	StatusFerias               EmploymentStatus = "ferias"
	StatusReadaptado           EmploymentStatus = "readaptado"
)

// Normaliza para lower-case no scan/save (fonte pode vir mixed-case)
func (s *EmploymentStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = EmploymentStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = EmploymentStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	}
	return nil
}
func (s EmploymentStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

func (s EmploymentStatus) Valid() bool {
	switch s {
	case StatusAtivo, StatusInativo, StatusLicencaMedica, StatusLicencaEspecial,
		StatusLicencaMaternidade, StatusLicencaSemVencimento, StatusFerias, StatusReadaptado:
		return true
	}
	return false
}

// Qualification é um item da formação do servidor (JSONB ordenado).
type Qualification struct {
	Level  string `json:"level"`
	Course string `json:"course"`
}

// Attachment é um documento anexado ao cadastro.
type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Kind string `json:"kind"`
}

type EmployeeModel struct {
	// PK
	EmployeeID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:employee_id" json:"employee_id"`

	// Identidade
	EmployeeFullName     string  `gorm:"type:varchar(150);not null;column:employee_full_name" json:"employee_full_name"`
	EmployeeRegistration *string `gorm:"type:varchar(30);column:employee_registration" json:"employee_registration,omitempty"`
	EmployeeCPF          *string `gorm:"type:varchar(14);column:employee_cpf" json:"employee_cpf,omitempty"`
	EmployeePhone        *string `gorm:"type:varchar(20);column:employee_phone" json:"employee_phone,omitempty"`
	EmployeeEmail        *string `gorm:"type:varchar(120);column:employee_email" json:"employee_email,omitempty"`

	// Vínculos (catálogos + lotação atual). Lotação nula = sem unidade;
	// mudar esse campo é o único gatilho do histórico de lotação.
	EmployeeRoleID   *uuid.UUID `gorm:"type:uuid;column:employee_role_id" json:"employee_role_id,omitempty"`
	EmployeeSectorID *uuid.UUID `gorm:"type:uuid;column:employee_sector_id" json:"employee_sector_id,omitempty"`
	EmployeeSchoolID *uuid.UUID `gorm:"type:uuid;index;column:employee_school_id" json:"employee_school_id,omitempty"`

	// Situação funcional
	EmployeeStatus EmploymentStatus `gorm:"type:varchar(30);not null;default:'ativo';column:employee_status" json:"employee_status"`

	// Jornada
	EmployeeWeeklyHours int            `gorm:"column:employee_weekly_hours" json:"employee_weekly_hours"`
	EmployeeShifts      datatypes.JSON `gorm:"type:jsonb;column:employee_shifts" json:"employee_shifts,omitempty"`

	// Formação {level, course} em ordem
	EmployeeQualifications datatypes.JSON `gorm:"type:jsonb;column:employee_qualifications" json:"employee_qualifications,omitempty"`

	// Frequência derivada
	EmployeePresenceConfirmedToday bool       `gorm:"not null;default:false;column:employee_presence_confirmed_today" json:"employee_presence_confirmed_today"`
	EmployeeLastAttendanceDate     *time.Time `gorm:"type:date;column:employee_last_attendance_date" json:"employee_last_attendance_date,omitempty"`

	// Mídia
	EmployeePhotoURL    *string        `gorm:"column:employee_photo_url" json:"employee_photo_url,omitempty"`
	EmployeeAttachments datatypes.JSON `gorm:"type:jsonb;column:employee_attachments" json:"employee_attachments,omitempty"`

	// Tenancy
	EmployeeOwnerID string `gorm:"type:uuid;not null;index;column:employee_owner_id" json:"employee_owner_id"`

	// Audit
	EmployeeCreatedAt time.Time  `gorm:"column:employee_created_at;autoCreateTime" json:"employee_created_at"`
	EmployeeUpdatedAt *time.Time `gorm:"column:employee_updated_at;autoUpdateTime" json:"employee_updated_at,omitempty"`
}

func (EmployeeModel) TableName() string { return "employees" }

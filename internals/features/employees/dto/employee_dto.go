package dto

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	eModel "quadroescolar_backend/internals/features/employees/model"
)

/* ===================== REQUESTS ===================== */

type CreateEmployeeRequest struct {
	EmployeeFullName     string  `json:"employee_full_name" validate:"required,min=2,max=150"`
	EmployeeRegistration *string `json:"employee_registration" validate:"omitempty,max=30"`
	EmployeeCPF          *string `json:"employee_cpf" validate:"omitempty,max=14"`
	EmployeePhone        *string `json:"employee_phone" validate:"omitempty,max=20"`
	EmployeeEmail        *string `json:"employee_email" validate:"omitempty,email,max=120"`

	EmployeeRoleID   *uuid.UUID `json:"employee_role_id" validate:"omitempty"`
	EmployeeSectorID *uuid.UUID `json:"employee_sector_id" validate:"omitempty"`
	EmployeeSchoolID *uuid.UUID `json:"employee_school_id" validate:"omitempty"`

	EmployeeStatus *eModel.EmploymentStatus `json:"employee_status" validate:"omitempty,oneof=ativo inativo licenca_medica licenca_especial licenca_maternidade licenca_sem_vencimento ferias readaptado"`

	EmployeeWeeklyHours    int                    `json:"employee_weekly_hours" validate:"omitempty,min=0,max=60"`
	EmployeeShifts         []string               `json:"employee_shifts" validate:"omitempty,dive,oneof=manha tarde noite integral"`
	EmployeeQualifications []eModel.Qualification `json:"employee_qualifications" validate:"omitempty,dive"`
}

func (r *CreateEmployeeRequest) ToModel(ownerID string) *eModel.EmployeeModel {
	m := &eModel.EmployeeModel{
		EmployeeFullName:     r.EmployeeFullName,
		EmployeeRegistration: r.EmployeeRegistration,
		EmployeeCPF:          r.EmployeeCPF,
		EmployeePhone:        r.EmployeePhone,
		EmployeeEmail:        r.EmployeeEmail,

		EmployeeRoleID:   r.EmployeeRoleID,
		EmployeeSectorID: r.EmployeeSectorID,
		EmployeeSchoolID: r.EmployeeSchoolID,

		EmployeeStatus:      eModel.StatusAtivo,
		EmployeeWeeklyHours: r.EmployeeWeeklyHours,
		EmployeeOwnerID:     ownerID,
	}
	if r.EmployeeStatus != nil {
		m.EmployeeStatus = *r.EmployeeStatus
	}
	if len(r.EmployeeShifts) > 0 {
		m.EmployeeShifts = mustJSON(r.EmployeeShifts)
	}
	if len(r.EmployeeQualifications) > 0 {
		m.EmployeeQualifications = mustJSON(r.EmployeeQualifications)
	}
	return m
}

type UpdateEmployeeRequest struct {
	EmployeeFullName     *string `json:"employee_full_name" validate:"omitempty,min=2,max=150"`
	EmployeeRegistration *string `json:"employee_registration" validate:"omitempty,max=30"`
	EmployeeCPF          *string `json:"employee_cpf" validate:"omitempty,max=14"`
	EmployeePhone        *string `json:"employee_phone" validate:"omitempty,max=20"`
	EmployeeEmail        *string `json:"employee_email" validate:"omitempty,email,max=120"`

	EmployeeRoleID   *uuid.UUID `json:"employee_role_id" validate:"omitempty"`
	EmployeeSectorID *uuid.UUID `json:"employee_sector_id" validate:"omitempty"`

	// Lotação: presente no payload = aplicar (inclusive null explícito
	// para "sem unidade"); por isso o campo de controle separado.
	EmployeeSchoolID    *uuid.UUID `json:"employee_school_id" validate:"omitempty"`
	ClearEmployeeSchool bool       `json:"clear_employee_school,omitempty"`

	// Motivo opcional gravado no histórico quando a lotação muda
	PlacementReason *string `json:"placement_reason" validate:"omitempty,max=200"`

	EmployeeStatus *eModel.EmploymentStatus `json:"employee_status" validate:"omitempty,oneof=ativo inativo licenca_medica licenca_especial licenca_maternidade licenca_sem_vencimento ferias readaptado"`

	EmployeeWeeklyHours    *int                   `json:"employee_weekly_hours" validate:"omitempty,min=0,max=60"`
	EmployeeShifts         []string               `json:"employee_shifts" validate:"omitempty,dive,oneof=manha tarde noite integral"`
	EmployeeQualifications []eModel.Qualification `json:"employee_qualifications" validate:"omitempty,dive"`
}

func (r *UpdateEmployeeRequest) ApplyToModel(m *eModel.EmployeeModel) {
	if r.EmployeeFullName != nil {
		m.EmployeeFullName = *r.EmployeeFullName
	}
	if r.EmployeeRegistration != nil {
		m.EmployeeRegistration = r.EmployeeRegistration
	}
	if r.EmployeeCPF != nil {
		m.EmployeeCPF = r.EmployeeCPF
	}
	if r.EmployeePhone != nil {
		m.EmployeePhone = r.EmployeePhone
	}
	if r.EmployeeEmail != nil {
		m.EmployeeEmail = r.EmployeeEmail
	}
	if r.EmployeeRoleID != nil {
		m.EmployeeRoleID = r.EmployeeRoleID
	}
	if r.EmployeeSectorID != nil {
		m.EmployeeSectorID = r.EmployeeSectorID
	}
	if r.ClearEmployeeSchool {
		m.EmployeeSchoolID = nil
	} else if r.EmployeeSchoolID != nil {
		m.EmployeeSchoolID = r.EmployeeSchoolID
	}
	if r.EmployeeStatus != nil {
		m.EmployeeStatus = *r.EmployeeStatus
	}
	if r.EmployeeWeeklyHours != nil {
		m.EmployeeWeeklyHours = *r.EmployeeWeeklyHours
	}
	if r.EmployeeShifts != nil {
		m.EmployeeShifts = mustJSON(r.EmployeeShifts)
	}
	if r.EmployeeQualifications != nil {
		m.EmployeeQualifications = mustJSON(r.EmployeeQualifications)
	}
	now := time.Now()
	m.EmployeeUpdatedAt = &now
}

/* ===================== RESPONSES ===================== */

type EmployeeResponse struct {
	EmployeeID           string  `json:"employee_id"`
	EmployeeFullName     string  `json:"employee_full_name"`
	EmployeeRegistration *string `json:"employee_registration,omitempty"`
	EmployeeCPF          *string `json:"employee_cpf,omitempty"`
	EmployeePhone        *string `json:"employee_phone,omitempty"`
	EmployeeEmail        *string `json:"employee_email,omitempty"`

	EmployeeRoleID   *uuid.UUID `json:"employee_role_id,omitempty"`
	EmployeeSectorID *uuid.UUID `json:"employee_sector_id,omitempty"`
	EmployeeSchoolID *uuid.UUID `json:"employee_school_id,omitempty"`

	EmployeeStatus eModel.EmploymentStatus `json:"employee_status"`

	EmployeeWeeklyHours    int            `json:"employee_weekly_hours"`
	EmployeeShifts         datatypes.JSON `json:"employee_shifts,omitempty"`
	EmployeeQualifications datatypes.JSON `json:"employee_qualifications,omitempty"`

	EmployeePresenceConfirmedToday bool       `json:"employee_presence_confirmed_today"`
	EmployeeLastAttendanceDate     *time.Time `json:"employee_last_attendance_date,omitempty"`

	EmployeePhotoURL    *string        `json:"employee_photo_url,omitempty"`
	EmployeeAttachments datatypes.JSON `json:"employee_attachments,omitempty"`

	EmployeeOwnerID   string     `json:"employee_owner_id"`
	EmployeeCreatedAt time.Time  `json:"employee_created_at"`
	EmployeeUpdatedAt *time.Time `json:"employee_updated_at,omitempty"`
}

func NewEmployeeResponse(m *eModel.EmployeeModel) *EmployeeResponse {
	if m == nil {
		return nil
	}
	return &EmployeeResponse{
		EmployeeID:           m.EmployeeID.String(),
		EmployeeFullName:     m.EmployeeFullName,
		EmployeeRegistration: m.EmployeeRegistration,
		EmployeeCPF:          m.EmployeeCPF,
		EmployeePhone:        m.EmployeePhone,
		EmployeeEmail:        m.EmployeeEmail,

		EmployeeRoleID:   m.EmployeeRoleID,
		EmployeeSectorID: m.EmployeeSectorID,
		EmployeeSchoolID: m.EmployeeSchoolID,

		EmployeeStatus: m.EmployeeStatus,

		EmployeeWeeklyHours:    m.EmployeeWeeklyHours,
		EmployeeShifts:         m.EmployeeShifts,
		EmployeeQualifications: m.EmployeeQualifications,

		EmployeePresenceConfirmedToday: m.EmployeePresenceConfirmedToday,
		EmployeeLastAttendanceDate:     m.EmployeeLastAttendanceDate,

		EmployeePhotoURL:    m.EmployeePhotoURL,
		EmployeeAttachments: m.EmployeeAttachments,

		EmployeeOwnerID:   m.EmployeeOwnerID,
		EmployeeCreatedAt: m.EmployeeCreatedAt,
		EmployeeUpdatedAt: m.EmployeeUpdatedAt,
	}
}

func mustJSON(v any) datatypes.JSON {
	b, err := sonic.Marshal(v)
	if err != nil {
		return datatypes.JSON([]byte("null"))
	}
	return datatypes.JSON(b)
}

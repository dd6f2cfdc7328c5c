package dto

import (
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"

	sModel "quadroescolar_backend/internals/features/schools/model"
)

/* ===================== REQUESTS ===================== */

type CreateSchoolRequest struct {
	SchoolRegistryCode string   `json:"school_registry_code" validate:"omitempty,max=20"`
	SchoolName         string   `json:"school_name" validate:"required,min=2,max=150"`
	SchoolAddress      *string  `json:"school_address" validate:"omitempty"`
	SchoolShifts       []string `json:"school_shifts" validate:"omitempty,dive,oneof=manha tarde noite integral"`
	SchoolNotes        *string  `json:"school_notes" validate:"omitempty"`
}

func (r *CreateSchoolRequest) ToModel(ownerID string) *sModel.SchoolModel {
	m := &sModel.SchoolModel{
		SchoolRegistryCode: r.SchoolRegistryCode,
		SchoolName:         r.SchoolName,
		SchoolAddress:      r.SchoolAddress,
		SchoolNotes:        r.SchoolNotes,
		SchoolOwnerID:      ownerID,
	}
	if len(r.SchoolShifts) > 0 {
		m.SchoolShifts = marshalShifts(r.SchoolShifts)
	}
	return m
}

type UpdateSchoolRequest struct {
	SchoolRegistryCode *string  `json:"school_registry_code" validate:"omitempty,max=20"`
	SchoolName         *string  `json:"school_name" validate:"omitempty,min=2,max=150"`
	SchoolAddress      *string  `json:"school_address" validate:"omitempty"`
	SchoolShifts       []string `json:"school_shifts" validate:"omitempty,dive,oneof=manha tarde noite integral"`
	SchoolNotes        *string  `json:"school_notes" validate:"omitempty"`
}

func (r *UpdateSchoolRequest) ApplyToModel(m *sModel.SchoolModel) {
	if r.SchoolRegistryCode != nil {
		m.SchoolRegistryCode = *r.SchoolRegistryCode
	}
	if r.SchoolName != nil {
		m.SchoolName = *r.SchoolName
	}
	if r.SchoolAddress != nil {
		m.SchoolAddress = r.SchoolAddress
	}
	if r.SchoolShifts != nil {
		m.SchoolShifts = marshalShifts(r.SchoolShifts)
	}
	if r.SchoolNotes != nil {
		m.SchoolNotes = r.SchoolNotes
	}
	now := time.Now()
	m.SchoolUpdatedAt = &now
}

/* ===================== RESPONSES ===================== */

type SchoolResponse struct {
	SchoolID           string         `json:"school_id"`
	SchoolRegistryCode string         `json:"school_registry_code"`
	SchoolName         string         `json:"school_name"`
	SchoolAddress      *string        `json:"school_address,omitempty"`
	SchoolShifts       datatypes.JSON `json:"school_shifts,omitempty"`
	SchoolManagerCode  string         `json:"school_manager_code"`
	SchoolAccessCode   string         `json:"school_access_code"`
	SchoolNotes        *string        `json:"school_notes,omitempty"`
	SchoolLogoURL      *string        `json:"school_logo_url,omitempty"`
	SchoolOwnerID      string         `json:"school_owner_id"`
	SchoolCreatedAt    time.Time      `json:"school_created_at"`
	SchoolUpdatedAt    *time.Time     `json:"school_updated_at,omitempty"`
}

func NewSchoolResponse(m *sModel.SchoolModel) *SchoolResponse {
	if m == nil {
		return nil
	}
	return &SchoolResponse{
		SchoolID:           m.SchoolID.String(),
		SchoolRegistryCode: m.SchoolRegistryCode,
		SchoolName:         m.SchoolName,
		SchoolAddress:      m.SchoolAddress,
		SchoolShifts:       m.SchoolShifts,
		SchoolManagerCode:  m.SchoolManagerCode,
		SchoolAccessCode:   m.SchoolAccessCode,
		SchoolNotes:        m.SchoolNotes,
		SchoolLogoURL:      m.SchoolLogoURL,
		SchoolOwnerID:      m.SchoolOwnerID,
		SchoolCreatedAt:    m.SchoolCreatedAt,
		SchoolUpdatedAt:    m.SchoolUpdatedAt,
	}
}

func marshalShifts(shifts []string) datatypes.JSON {
	b, err := sonic.Marshal(shifts)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}

package dto

import (
	"time"

	"github.com/google/uuid"

	aModel "quadroescolar_backend/internals/features/attendance/model"
)

/* ===================== REQUESTS ===================== */

// RegisterOccurrenceRequest chega como JSON ou multipart (o atestado em si
// vai no campo de arquivo "certificate"). Datas no formato 2006-01-02.
type RegisterOccurrenceRequest struct {
	EmployeeID      string  `json:"employee_id" form:"employee_id" validate:"required,uuid4"`
	Kind            string  `json:"kind" form:"kind" validate:"required,oneof=presente falta_injustificada atestado"`
	Note            *string `json:"note" form:"note" validate:"omitempty,max=500"`
	ResultingStatus *string `json:"resulting_status" form:"resulting_status" validate:"omitempty,oneof=ativo inativo licenca_medica licenca_especial licenca_maternidade licenca_sem_vencimento ferias readaptado"`
	PeriodStart     *string `json:"period_start" form:"period_start" validate:"omitempty,datetime=2006-01-02"`
	PeriodEnd       *string `json:"period_end" form:"period_end" validate:"omitempty,datetime=2006-01-02"`
}

/* ===================== RESPONSES ===================== */

type OccurrenceResponse struct {
	OccurrenceID             string                `json:"occurrence_id"`
	OccurrenceEmployeeID     string                `json:"occurrence_employee_id"`
	OccurrenceSchoolID       *uuid.UUID            `json:"occurrence_school_id,omitempty"`
	OccurrenceDate           string                `json:"occurrence_date"`
	OccurrenceKind           aModel.OccurrenceKind `json:"occurrence_kind"`
	OccurrenceNote           *string               `json:"occurrence_note,omitempty"`
	OccurrenceCertificateURL *string               `json:"occurrence_certificate_url,omitempty"`
	OccurrencePeriodStart    *string               `json:"occurrence_period_start,omitempty"`
	OccurrencePeriodEnd      *string               `json:"occurrence_period_end,omitempty"`
	OccurrenceOwnerID        string                `json:"occurrence_owner_id"`
}

func NewOccurrenceResponse(m *aModel.OccurrenceModel) *OccurrenceResponse {
	if m == nil {
		return nil
	}
	return &OccurrenceResponse{
		OccurrenceID:             m.OccurrenceID.String(),
		OccurrenceEmployeeID:     m.OccurrenceEmployeeID.String(),
		OccurrenceSchoolID:       m.OccurrenceSchoolID,
		OccurrenceDate:           m.OccurrenceDate.Format("2006-01-02"),
		OccurrenceKind:           m.OccurrenceKind,
		OccurrenceNote:           m.OccurrenceNote,
		OccurrenceCertificateURL: m.OccurrenceCertificateURL,
		OccurrencePeriodStart:    formatDate(m.OccurrencePeriodStart),
		OccurrencePeriodEnd:      formatDate(m.OccurrencePeriodEnd),
		OccurrenceOwnerID:        m.OccurrenceOwnerID,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

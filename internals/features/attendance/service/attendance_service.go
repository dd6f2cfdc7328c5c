package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"quadroescolar_backend/internals/constants"
	aModel "quadroescolar_backend/internals/features/attendance/model"
	eModel "quadroescolar_backend/internals/features/employees/model"
	eService "quadroescolar_backend/internals/features/employees/service"
	"quadroescolar_backend/internals/helpers/media"
	"quadroescolar_backend/internals/reconcile"
)

// StateMachine registra a ocorrência do dia e deriva a situação funcional
// do servidor a partir dela. Cada servidor tem no máximo uma ocorrência
// por dia; registrar de novo no mesmo dia sobrescreve a anterior.
type StateMachine struct {
	Occurrences *reconcile.Store[aModel.OccurrenceModel]
	Employees   *reconcile.Store[eModel.EmployeeModel]
	Tracker     *eService.PlacementTracker
	Uploader    *media.Uploader
	Now         func() time.Time
}

func NewStateMachine(
	occurrences *reconcile.Store[aModel.OccurrenceModel],
	employees *reconcile.Store[eModel.EmployeeModel],
	tracker *eService.PlacementTracker,
	uploader *media.Uploader,
) *StateMachine {
	return &StateMachine{
		Occurrences: occurrences,
		Employees:   employees,
		Tracker:     tracker,
		Uploader:    uploader,
		Now:         time.Now,
	}
}

type RegisterInput struct {
	EmployeeID      uuid.UUID
	Kind            aModel.OccurrenceKind
	Note            *string
	ResultingStatus *eModel.EmploymentStatus
	Certificate     []byte
	CertificateName string
	PeriodStart     *time.Time
	PeriodEnd       *time.Time
	OwnerID         string
}

// RegisterOccurrence grava (ou sobrescreve) a ocorrência de hoje do
// servidor e atualiza o cadastro dele. A data é sempre a do relógio do
// servidor de processo, nunca a do cliente.
func (sm *StateMachine) RegisterOccurrence(ctx context.Context, in RegisterInput) (*aModel.OccurrenceModel, error) {
	if !in.Kind.Valid() {
		return nil, fmt.Errorf("tipo de ocorrência inválido: %q", in.Kind)
	}

	today := dateOnly(sm.Now())

	emp, err := sm.Employees.FindByID(ctx, in.EmployeeID.String(), in.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar o servidor: %w", err)
	}
	if emp == nil {
		return nil, fmt.Errorf("servidor %s não encontrado", in.EmployeeID)
	}

	ownerID := in.OwnerID
	if ownerID == constants.OwnerAll {
		ownerID = emp.EmployeeOwnerID
	}

	occ := sm.todaysOccurrence(ctx, in.EmployeeID, today, ownerID)
	if occ == nil {
		occ = &aModel.OccurrenceModel{
			OccurrenceID:        uuid.New(),
			OccurrenceCreatedAt: sm.Now(),
		}
	}
	occ.OccurrenceEmployeeID = in.EmployeeID
	occ.OccurrenceSchoolID = emp.EmployeeSchoolID
	occ.OccurrenceDate = today
	occ.OccurrenceKind = in.Kind
	occ.OccurrenceNote = in.Note
	occ.OccurrencePeriodStart = normalizeDate(in.PeriodStart)
	occ.OccurrencePeriodEnd = normalizeDate(in.PeriodEnd)
	occ.OccurrenceOwnerID = ownerID

	if len(in.Certificate) > 0 {
		occ.OccurrenceCertificateURL = sm.Uploader.Upload(ctx, "atestados", in.CertificateName, in.Certificate)
	}

	if err := sm.Occurrences.Save(ctx, occ, ownerID); err != nil {
		return nil, fmt.Errorf("falha ao gravar a ocorrência: %w", err)
	}

	// deriva a situação do servidor a partir da ocorrência
	emp.EmployeePresenceConfirmedToday = in.Kind == aModel.KindPresente
	emp.EmployeeLastAttendanceDate = &today
	if in.Kind == aModel.KindAtestado {
		// atestado força licença médica, ignorando o status pedido
		emp.EmployeeStatus = eModel.StatusLicencaMedica
	} else if in.ResultingStatus != nil {
		emp.EmployeeStatus = *in.ResultingStatus
	}

	if err := sm.Tracker.SaveWithHistory(ctx, emp, ownerID, ""); err != nil {
		return nil, fmt.Errorf("falha ao atualizar o servidor: %w", err)
	}
	return occ, nil
}

// ListByDate devolve as ocorrências de um dia, opcionalmente filtradas por
// unidade escolar.
func (sm *StateMachine) ListByDate(ctx context.Context, ownerID string, date time.Time, schoolID *uuid.UUID) []aModel.OccurrenceModel {
	day := dateOnly(date)
	all := sm.Occurrences.GetAll(ctx, ownerID)
	var rows []aModel.OccurrenceModel
	for i := range all {
		if !dateOnly(all[i].OccurrenceDate).Equal(day) {
			continue
		}
		if schoolID != nil {
			if all[i].OccurrenceSchoolID == nil || *all[i].OccurrenceSchoolID != *schoolID {
				continue
			}
		}
		rows = append(rows, all[i])
	}
	return rows
}

func (sm *StateMachine) todaysOccurrence(ctx context.Context, employeeID uuid.UUID, day time.Time, ownerID string) *aModel.OccurrenceModel {
	for _, row := range sm.Occurrences.GetAll(ctx, ownerID) {
		row := row
		if row.OccurrenceEmployeeID == employeeID && dateOnly(row.OccurrenceDate).Equal(day) {
			return &row
		}
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func normalizeDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := dateOnly(*t)
	return &d
}

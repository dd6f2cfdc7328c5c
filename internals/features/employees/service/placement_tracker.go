package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"quadroescolar_backend/internals/constants"
	eModel "quadroescolar_backend/internals/features/employees/model"
	phModel "quadroescolar_backend/internals/features/placements/model"
	"quadroescolar_backend/internals/reconcile"
)

// PlacementTracker decora o save do servidor com o registro de histórico de
// lotação.
type PlacementTracker struct {
	Employees *reconcile.Store[eModel.EmployeeModel]
	History   *reconcile.Store[phModel.PlacementHistoryModel]
	Now       func() time.Time
}

func NewPlacementTracker(
	employees *reconcile.Store[eModel.EmployeeModel],
	history *reconcile.Store[phModel.PlacementHistoryModel],
) *PlacementTracker {
	return &PlacementTracker{Employees: employees, History: history, Now: time.Now}
}

// SaveWithHistory persiste o servidor. Em update (id presente) lê a lotação
// ATUALMENTE persistida imediatamente antes da gravação; se difere da que
// está sendo salva (inclusive de/para nil) insere exatamente uma linha de
// histórico. Falha nessa leitura pula o histórico; o save em si prossegue.
func (t *PlacementTracker) SaveWithHistory(ctx context.Context, m *eModel.EmployeeModel, ownerID, reason string) error {
	if m.EmployeeID != uuid.Nil {
		prev, err := t.Employees.FindByID(ctx, m.EmployeeID.String(), ownerID)
		if err != nil {
			log.Printf("[WARN] lotação: leitura prévia falhou, histórico pulado (employee=%s): %v", m.EmployeeID, err)
		} else if prev != nil && !sameSchool(prev.EmployeeSchoolID, m.EmployeeSchoolID) {
			t.appendEntry(ctx, m, prev.EmployeeSchoolID, ownerID, reason)
		}
	}
	return t.Employees.Save(ctx, m, ownerID)
}

func (t *PlacementTracker) appendEntry(ctx context.Context, m *eModel.EmployeeModel, previous *uuid.UUID, ownerID, reason string) {
	if strings.TrimSpace(reason) == "" {
		reason = constants.DefaultPlacementReason
	}
	entry := &phModel.PlacementHistoryModel{
		PlacementHistoryID:               uuid.New(),
		PlacementHistoryEmployeeID:       m.EmployeeID,
		PlacementHistoryPreviousSchoolID: previous,
		PlacementHistoryNewSchoolID:      m.EmployeeSchoolID,
		PlacementHistoryTimestamp:        t.Now(),
		PlacementHistoryReason:           reason,
		PlacementHistoryOwnerID:          ownerID,
	}
	if err := t.History.Save(ctx, entry, ownerID); err != nil {
		log.Printf("[ERROR] lotação: falha ao gravar histórico (employee=%s): %v", m.EmployeeID, err)
	}
}

func sameSchool(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

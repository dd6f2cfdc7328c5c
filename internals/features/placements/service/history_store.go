package service

import (
	"context"
	"log"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quadroescolar_backend/internals/constants"
	phModel "quadroescolar_backend/internals/features/placements/model"
	"quadroescolar_backend/internals/localcache"
	"quadroescolar_backend/internals/reconcile"
)

// NewStore instancia o store reconciliador do histórico de lotação. O store
// só anexa: não existem rotas de update/delete para essa entidade.
func NewStore(db *gorm.DB, cache *localcache.Store, configured func() bool) *reconcile.Store[phModel.PlacementHistoryModel] {
	return &reconcile.Store[phModel.PlacementHistoryModel]{
		Entity:     "placement_histories",
		Configured: configured,
		Remote: reconcile.GormRemote[phModel.PlacementHistoryModel]{
			DB:          db,
			IDColumn:    "placement_history_id",
			OwnerColumn: "placement_history_owner_id",
		},
		Cache: cache,
		ID: func(m *phModel.PlacementHistoryModel) string {
			if m.PlacementHistoryID == uuid.Nil {
				return ""
			}
			return m.PlacementHistoryID.String()
		},
		SetID: func(m *phModel.PlacementHistoryModel, id string) {
			m.PlacementHistoryID = uuid.MustParse(id)
		},
		Owner: func(m *phModel.PlacementHistoryModel) string { return m.PlacementHistoryOwnerID },
	}
}

// HistoryEntry é a linha do histórico com os nomes das unidades resolvidos
// (quando o remoto está disponível para o join).
type HistoryEntry struct {
	phModel.PlacementHistoryModel
	PreviousSchoolName *string `gorm:"column:previous_school_name" json:"previous_school_name,omitempty"`
	NewSchoolName      *string `gorm:"column:new_school_name" json:"new_school_name,omitempty"`
}

// Lister resolve o histórico de um servidor, com join nos nomes das
// unidades no caminho remoto e fallback para o cache sem nomes.
type Lister struct {
	DB         *gorm.DB
	Configured func() bool
	Store      *reconcile.Store[phModel.PlacementHistoryModel]
}

// listByEmployeeQuery monta a consulta remota. A partição da mantenedora
// entra no WHERE, fora o valor reservado.
func listByEmployeeQuery(employeeID uuid.UUID, ownerID string) (string, []any) {
	q := `
SELECT
  ph.*,
  ps.school_name AS previous_school_name,
  ns.school_name AS new_school_name
FROM placement_histories ph
LEFT JOIN schools ps ON ps.school_id = ph.placement_history_previous_school_id
LEFT JOIN schools ns ON ns.school_id = ph.placement_history_new_school_id
WHERE ph.placement_history_employee_id = ?`
	args := []any{employeeID}
	if ownerID != constants.OwnerAll {
		q += `
  AND ph.placement_history_owner_id = ?`
		args = append(args, ownerID)
	}
	q += `
ORDER BY ph.placement_history_timestamp ASC`
	return q, args
}

func (l *Lister) ListByEmployee(ctx context.Context, employeeID uuid.UUID, ownerID string) []HistoryEntry {
	if l.Configured() {
		q, args := listByEmployeeQuery(employeeID, ownerID)
		var rows []HistoryEntry
		if err := l.DB.WithContext(ctx).Raw(q, args...).Scan(&rows).Error; err != nil {
			log.Printf("[WARN] histórico: leitura remota falhou, usando cache: %v", err)
		} else {
			// linhas gravadas em contingência ainda não estão no remoto
			return mergeEntries(rows, l.Store.Cached(ownerID), employeeID)
		}
	}

	return mergeEntries(nil, l.Store.GetAll(ctx, ownerID), employeeID)
}

// mergeEntries anexa ao resultado remoto as linhas do cache que só existem
// lá, filtra pelo servidor e reordena por data.
func mergeEntries(remote []HistoryEntry, cached []phModel.PlacementHistoryModel, employeeID uuid.UUID) []HistoryEntry {
	seen := make(map[uuid.UUID]struct{}, len(remote))
	for i := range remote {
		seen[remote[i].PlacementHistoryID] = struct{}{}
	}
	rows := remote
	for i := range cached {
		if cached[i].PlacementHistoryEmployeeID != employeeID {
			continue
		}
		if _, ok := seen[cached[i].PlacementHistoryID]; ok {
			continue
		}
		rows = append(rows, HistoryEntry{PlacementHistoryModel: cached[i]})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].PlacementHistoryTimestamp.Before(rows[j].PlacementHistoryTimestamp)
	})
	return rows
}

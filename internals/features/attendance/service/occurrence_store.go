package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	aModel "quadroescolar_backend/internals/features/attendance/model"
	"quadroescolar_backend/internals/localcache"
	"quadroescolar_backend/internals/reconcile"
)

// NewOccurrenceStore instancia o store reconciliador das ocorrências diárias.
func NewOccurrenceStore(db *gorm.DB, cache *localcache.Store, configured func() bool) *reconcile.Store[aModel.OccurrenceModel] {
	return &reconcile.Store[aModel.OccurrenceModel]{
		Entity:     "attendance_occurrences",
		Configured: configured,
		Remote: reconcile.GormRemote[aModel.OccurrenceModel]{
			DB:          db,
			IDColumn:    "occurrence_id",
			OwnerColumn: "occurrence_owner_id",
		},
		Cache: cache,
		ID: func(m *aModel.OccurrenceModel) string {
			if m.OccurrenceID == uuid.Nil {
				return ""
			}
			return m.OccurrenceID.String()
		},
		SetID: func(m *aModel.OccurrenceModel, id string) {
			m.OccurrenceID = uuid.MustParse(id)
		},
		Owner: func(m *aModel.OccurrenceModel) string { return m.OccurrenceOwnerID },
	}
}

package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	cModel "quadroescolar_backend/internals/features/catalogs/model"
	"quadroescolar_backend/internals/localcache"
	"quadroescolar_backend/internals/reconcile"
)

// Os catálogos usam o mesmo algoritmo de reconciliação das demais entidades,
// sem anexos nem histórico. O id é gerado no cliente (no Save, quando vazio)
// para cache e remoto concordarem sem round-trip.

func NewSectorStore(db *gorm.DB, cache *localcache.Store, configured func() bool) *reconcile.Store[cModel.SectorModel] {
	return &reconcile.Store[cModel.SectorModel]{
		Entity:     "sectors",
		Configured: configured,
		Remote: reconcile.GormRemote[cModel.SectorModel]{
			DB:          db,
			IDColumn:    "sector_id",
			OwnerColumn: "sector_owner_id",
		},
		Cache: cache,
		ID: func(m *cModel.SectorModel) string {
			if m.SectorID == uuid.Nil {
				return ""
			}
			return m.SectorID.String()
		},
		SetID: func(m *cModel.SectorModel, id string) {
			m.SectorID = uuid.MustParse(id)
		},
		Owner: func(m *cModel.SectorModel) string { return m.SectorOwnerID },
	}
}

func NewRoleStore(db *gorm.DB, cache *localcache.Store, configured func() bool) *reconcile.Store[cModel.RoleModel] {
	return &reconcile.Store[cModel.RoleModel]{
		Entity:     "roles",
		Configured: configured,
		Remote: reconcile.GormRemote[cModel.RoleModel]{
			DB:          db,
			IDColumn:    "role_id",
			OwnerColumn: "role_owner_id",
		},
		Cache: cache,
		ID: func(m *cModel.RoleModel) string {
			if m.RoleID == uuid.Nil {
				return ""
			}
			return m.RoleID.String()
		},
		SetID: func(m *cModel.RoleModel, id string) {
			m.RoleID = uuid.MustParse(id)
		},
		Owner: func(m *cModel.RoleModel) string { return m.RoleOwnerID },
	}
}

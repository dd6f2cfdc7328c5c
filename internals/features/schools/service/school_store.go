package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "quadroescolar_backend/internals/helpers"
	"quadroescolar_backend/internals/localcache"
	"quadroescolar_backend/internals/reconcile"

	sModel "quadroescolar_backend/internals/features/schools/model"
)

const entityName = "schools"

// NewStore instancia o store reconciliador das unidades escolares.
func NewStore(db *gorm.DB, cache *localcache.Store, configured func() bool) *reconcile.Store[sModel.SchoolModel] {
	return &reconcile.Store[sModel.SchoolModel]{
		Entity:     entityName,
		Configured: configured,
		Remote: reconcile.GormRemote[sModel.SchoolModel]{
			DB:          db,
			IDColumn:    "school_id",
			OwnerColumn: "school_owner_id",
		},
		Cache: cache,
		ID: func(m *sModel.SchoolModel) string {
			if m.SchoolID == uuid.Nil {
				return ""
			}
			return m.SchoolID.String()
		},
		SetID: func(m *sModel.SchoolModel, id string) {
			m.SchoolID = uuid.MustParse(id)
		},
		Owner: func(m *sModel.SchoolModel) string { return m.SchoolOwnerID },
	}
}

// EnsureAccessCodes preenche credenciais em branco. É chamada em todo save
// para manter o invariante de nunca persistir unidade sem códigos.
func EnsureAccessCodes(m *sModel.SchoolModel) {
	if m.SchoolManagerCode == "" {
		m.SchoolManagerCode = helper.NewAccessCode(4)
	}
	if m.SchoolAccessCode == "" {
		m.SchoolAccessCode = helper.NewAccessCode(4)
	}
}

// RegenerateAccessCodes troca as duas credenciais da unidade.
func RegenerateAccessCodes(m *sModel.SchoolModel) {
	m.SchoolManagerCode = helper.NewAccessCode(4)
	m.SchoolAccessCode = helper.NewAccessCode(4)
}

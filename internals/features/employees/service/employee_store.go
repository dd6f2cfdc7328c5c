package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	eModel "quadroescolar_backend/internals/features/employees/model"
	"quadroescolar_backend/internals/localcache"
	"quadroescolar_backend/internals/reconcile"
)

// NewStore instancia o store reconciliador dos servidores.
func NewStore(db *gorm.DB, cache *localcache.Store, configured func() bool) *reconcile.Store[eModel.EmployeeModel] {
	return &reconcile.Store[eModel.EmployeeModel]{
		Entity:     "employees",
		Configured: configured,
		Remote: reconcile.GormRemote[eModel.EmployeeModel]{
			DB:          db,
			IDColumn:    "employee_id",
			OwnerColumn: "employee_owner_id",
		},
		Cache: cache,
		ID: func(m *eModel.EmployeeModel) string {
			if m.EmployeeID == uuid.Nil {
				return ""
			}
			return m.EmployeeID.String()
		},
		SetID: func(m *eModel.EmployeeModel, id string) {
			m.EmployeeID = uuid.MustParse(id)
		},
		Owner: func(m *eModel.EmployeeModel) string { return m.EmployeeOwnerID },
	}
}

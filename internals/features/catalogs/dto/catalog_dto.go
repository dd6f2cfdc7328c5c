package dto

import (
	cModel "quadroescolar_backend/internals/features/catalogs/model"
)

/* ===================== REQUESTS ===================== */

type CreateCatalogRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type RenameCatalogRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

/* ===================== RESPONSES ===================== */

type SectorResponse struct {
	SectorID      string `json:"sector_id"`
	SectorName    string `json:"sector_name"`
	SectorOwnerID string `json:"sector_owner_id"`
}

func NewSectorResponse(m *cModel.SectorModel) *SectorResponse {
	if m == nil {
		return nil
	}
	return &SectorResponse{
		SectorID:      m.SectorID.String(),
		SectorName:    m.SectorName,
		SectorOwnerID: m.SectorOwnerID,
	}
}

type RoleResponse struct {
	RoleID      string `json:"role_id"`
	RoleName    string `json:"role_name"`
	RoleOwnerID string `json:"role_owner_id"`
}

func NewRoleResponse(m *cModel.RoleModel) *RoleResponse {
	if m == nil {
		return nil
	}
	return &RoleResponse{
		RoleID:      m.RoleID.String(),
		RoleName:    m.RoleName,
		RoleOwnerID: m.RoleOwnerID,
	}
}

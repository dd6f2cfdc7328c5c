package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	cDTO "quadroescolar_backend/internals/features/catalogs/dto"
	cModel "quadroescolar_backend/internals/features/catalogs/model"
	helper "quadroescolar_backend/internals/helpers"
	"quadroescolar_backend/internals/reconcile"
)

type RoleController struct {
	Store *reconcile.Store[cModel.RoleModel]
}

func NewRoleController(store *reconcile.Store[cModel.RoleModel]) *RoleController {
	return &RoleController{Store: store}
}

// GET /roles
func (h *RoleController) List(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerID(c)
	if err != nil {
		return err
	}
	rows := h.Store.GetAll(c.UserContext(), ownerID)
	items := make([]*cDTO.RoleResponse, 0, len(rows))
	for i := range rows {
		items = append(items, cDTO.NewRoleResponse(&rows[i]))
	}
	return helper.JsonOK(c, "", items)
}

// POST /roles
func (h *RoleController) Create(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerID(c)
	if err != nil {
		return err
	}
	var req cDTO.CreateCatalogRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m := &cModel.RoleModel{
		RoleID:        uuid.New(),
		RoleName:      req.Name,
		RoleOwnerID:   ownerID,
		RoleCreatedAt: time.Now(),
	}
	if err := h.Store.Save(c.UserContext(), m, ownerID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar o cargo")
	}
	return helper.JsonCreated(c, "Cargo criado", cDTO.NewRoleResponse(m))
}

// PATCH /roles/:id
func (h *RoleController) Rename(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}
	var req cDTO.RenameCatalogRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m, err := h.Store.FindByID(c.UserContext(), id.String(), ownerID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar o cargo")
	}
	if m == nil {
		return fiber.NewError(fiber.StatusNotFound, "Cargo não encontrado")
	}

	m.RoleName = req.Name
	now := time.Now()
	m.RoleUpdatedAt = &now
	if err := h.Store.Save(c.UserContext(), m, ownerID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar o cargo")
	}
	return helper.JsonUpdated(c, "Cargo renomeado", cDTO.NewRoleResponse(m))
}

// DELETE /roles/:id
func (h *RoleController) Remove(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}
	if err := h.Store.Delete(c.UserContext(), id.String()); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover o cargo")
	}
	return helper.JsonDeleted(c, "Cargo removido", fiber.Map{"role_id": id})
}

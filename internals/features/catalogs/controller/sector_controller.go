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

type SectorController struct {
	Store *reconcile.Store[cModel.SectorModel]
}

func NewSectorController(store *reconcile.Store[cModel.SectorModel]) *SectorController {
	return &SectorController{Store: store}
}

// GET /sectors
func (h *SectorController) List(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerID(c)
	if err != nil {
		return err
	}
	rows := h.Store.GetAll(c.UserContext(), ownerID)
	items := make([]*cDTO.SectorResponse, 0, len(rows))
	for i := range rows {
		items = append(items, cDTO.NewSectorResponse(&rows[i]))
	}
	return helper.JsonOK(c, "", items)
}

// POST /sectors
func (h *SectorController) Create(c *fiber.Ctx) error {
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

	m := &cModel.SectorModel{
		SectorID:        uuid.New(), // id gerado no cliente (sem round-trip)
		SectorName:      req.Name,
		SectorOwnerID:   ownerID,
		SectorCreatedAt: time.Now(),
	}
	if err := h.Store.Save(c.UserContext(), m, ownerID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar o setor")
	}
	return helper.JsonCreated(c, "Setor criado", cDTO.NewSectorResponse(m))
}

// PATCH /sectors/:id
func (h *SectorController) Rename(c *fiber.Ctx) error {
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
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar o setor")
	}
	if m == nil {
		return fiber.NewError(fiber.StatusNotFound, "Setor não encontrado")
	}

	m.SectorName = req.Name
	now := time.Now()
	m.SectorUpdatedAt = &now
	if err := h.Store.Save(c.UserContext(), m, ownerID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar o setor")
	}
	return helper.JsonUpdated(c, "Setor renomeado", cDTO.NewSectorResponse(m))
}

// DELETE /sectors/:id
func (h *SectorController) Remove(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}
	if err := h.Store.Delete(c.UserContext(), id.String()); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover o setor")
	}
	return helper.JsonDeleted(c, "Setor removido", fiber.Map{"sector_id": id})
}

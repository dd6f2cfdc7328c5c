package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	phDTO "quadroescolar_backend/internals/features/placements/dto"
	phService "quadroescolar_backend/internals/features/placements/service"
	helper "quadroescolar_backend/internals/helpers"
)

type PlacementHistoryController struct {
	Lister *phService.Lister
}

func NewPlacementHistoryController(lister *phService.Lister) *PlacementHistoryController {
	return &PlacementHistoryController{Lister: lister}
}

// GET /employees/:id/placements
func (h *PlacementHistoryController) ListByEmployee(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerID(c)
	if err != nil {
		return err
	}
	employeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	rows := h.Lister.ListByEmployee(c.UserContext(), employeeID, ownerID)
	items := make([]*phDTO.PlacementHistoryResponse, 0, len(rows))
	for i := range rows {
		items = append(items, phDTO.NewPlacementHistoryResponse(&rows[i]))
	}
	return helper.JsonOK(c, "", items)
}

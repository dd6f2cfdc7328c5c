package route

import (
	"github.com/gofiber/fiber/v2"

	phcontroller "quadroescolar_backend/internals/features/placements/controller"
)

func PlacementRoutes(api fiber.Router, ctrl *phcontroller.PlacementHistoryController) {
	// =========================
	// 📜 HISTÓRICO DE LOTAÇÃO (somente leitura)
	// =========================
	api.Get("/employees/:id/placements", ctrl.ListByEmployee)
}

package route

import (
	"github.com/gofiber/fiber/v2"

	acontroller "quadroescolar_backend/internals/features/attendance/controller"
)

func AttendanceRoutes(api fiber.Router, ctrl *acontroller.AttendanceController) {
	// =========================
	// 🗓 FREQUÊNCIA DIÁRIA
	// =========================
	occurrences := api.Group("/occurrences")

	occurrences.Post("/", ctrl.Register)
	occurrences.Get("/", ctrl.ListByDate)
}

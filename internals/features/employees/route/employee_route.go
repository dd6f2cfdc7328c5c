package route

import (
	"github.com/gofiber/fiber/v2"

	econtroller "quadroescolar_backend/internals/features/employees/controller"
)

func EmployeeRoutes(api fiber.Router, ctrl *econtroller.EmployeeController) {
	// =========================
	// 👤 SERVIDORES
	// =========================
	employees := api.Group("/employees")

	employees.Get("/", ctrl.List)
	employees.Post("/", ctrl.Create)
	employees.Put("/:id", ctrl.Update)
	employees.Delete("/:id", ctrl.Delete)
	employees.Post("/:id/photo", ctrl.UploadPhoto)
	employees.Post("/:id/attachments", ctrl.UploadAttachment)
}

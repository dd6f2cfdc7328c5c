package route

import (
	"github.com/gofiber/fiber/v2"

	scontroller "quadroescolar_backend/internals/features/schools/controller"
	"quadroescolar_backend/internals/middlewares/auth"
)

func SchoolRoutes(api fiber.Router, ctrl *scontroller.SchoolController) {
	// =========================
	// 🏫 UNIDADES ESCOLARES
	// =========================
	schools := api.Group("/schools")

	schools.Get("/", ctrl.List)
	schools.Post("/", ctrl.Create)
	schools.Put("/:id", ctrl.Update)
	schools.Delete("/:id", ctrl.Delete)
	schools.Post("/:id/logo", ctrl.UploadLogo)

	// regenerar credenciais é ação administrativa
	schools.Post("/:id/codes/regenerate", auth.OnlyAdmin(), ctrl.RegenerateCodes)
}

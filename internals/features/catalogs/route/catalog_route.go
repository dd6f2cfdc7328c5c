package route

import (
	"github.com/gofiber/fiber/v2"

	ccontroller "quadroescolar_backend/internals/features/catalogs/controller"
)

func CatalogRoutes(api fiber.Router, sectors *ccontroller.SectorController, roles *ccontroller.RoleController) {
	// =========================
	// 🗂 CATÁLOGOS (SETOR/CARGO)
	// =========================
	s := api.Group("/sectors")
	s.Get("/", sectors.List)
	s.Post("/", sectors.Create)
	s.Patch("/:id", sectors.Rename)
	s.Delete("/:id", sectors.Remove)

	r := api.Group("/roles")
	r.Get("/", roles.List)
	r.Post("/", roles.Create)
	r.Patch("/:id", roles.Rename)
	r.Delete("/:id", roles.Remove)
}

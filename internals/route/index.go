package routes

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quadroescolar_backend/internals/configs"
	database "quadroescolar_backend/internals/databases"
	"quadroescolar_backend/internals/localcache"
	auth "quadroescolar_backend/internals/middlewares/auth"

	acontroller "quadroescolar_backend/internals/features/attendance/controller"
	aroute "quadroescolar_backend/internals/features/attendance/route"
	aservice "quadroescolar_backend/internals/features/attendance/service"
	ccontroller "quadroescolar_backend/internals/features/catalogs/controller"
	croute "quadroescolar_backend/internals/features/catalogs/route"
	cservice "quadroescolar_backend/internals/features/catalogs/service"
	econtroller "quadroescolar_backend/internals/features/employees/controller"
	eroute "quadroescolar_backend/internals/features/employees/route"
	eservice "quadroescolar_backend/internals/features/employees/service"
	phcontroller "quadroescolar_backend/internals/features/placements/controller"
	phroute "quadroescolar_backend/internals/features/placements/route"
	phservice "quadroescolar_backend/internals/features/placements/service"
	scontroller "quadroescolar_backend/internals/features/schools/controller"
	sroute "quadroescolar_backend/internals/features/schools/route"
	sservice "quadroescolar_backend/internals/features/schools/service"
	"quadroescolar_backend/internals/helpers/media"
)

// SetupRoutes monta a cadeia completa: cache local, uploader, stores
// reconciliadores, serviços e controllers, e pendura tudo em /api atrás do
// JWT. db pode ser nil (modo local, só cache).
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	cache := localcache.New(configs.LocalCacheDir)
	uploader := media.New(context.Background(), configs.MediaBucket, configs.MediaRegion)

	// ===================== STORES =====================
	configured := database.IsConfigured

	schoolStore := sservice.NewStore(db, cache, configured)
	sectorStore := cservice.NewSectorStore(db, cache, configured)
	roleStore := cservice.NewRoleStore(db, cache, configured)
	employeeStore := eservice.NewStore(db, cache, configured)
	historyStore := phservice.NewStore(db, cache, configured)
	occurrenceStore := aservice.NewOccurrenceStore(db, cache, configured)

	// ===================== SERVICES =====================
	tracker := eservice.NewPlacementTracker(employeeStore, historyStore)
	historyLister := &phservice.Lister{DB: db, Configured: configured, Store: historyStore}
	machine := aservice.NewStateMachine(occurrenceStore, employeeStore, tracker, uploader)

	// ===================== CONTROLLERS =====================
	schoolCtrl := scontroller.NewSchoolController(schoolStore, uploader)
	sectorCtrl := ccontroller.NewSectorController(sectorStore)
	roleCtrl := ccontroller.NewRoleController(roleStore)
	employeeCtrl := econtroller.NewEmployeeController(employeeStore, tracker, uploader)
	placementCtrl := phcontroller.NewPlacementHistoryController(historyLister)
	attendanceCtrl := acontroller.NewAttendanceController(machine)

	// ===================== MOUNT =====================
	api := app.Group("/api", auth.AuthMiddleware())

	log.Println("[INFO] Montando rotas de unidades escolares...")
	sroute.SchoolRoutes(api, schoolCtrl)

	log.Println("[INFO] Montando rotas de catálogos...")
	croute.CatalogRoutes(api, sectorCtrl, roleCtrl)

	log.Println("[INFO] Montando rotas de servidores...")
	eroute.EmployeeRoutes(api, employeeCtrl)

	log.Println("[INFO] Montando rotas de histórico de lotação...")
	phroute.PlacementRoutes(api, placementCtrl)

	log.Println("[INFO] Montando rotas de frequência...")
	aroute.AttendanceRoutes(api, attendanceCtrl)
}

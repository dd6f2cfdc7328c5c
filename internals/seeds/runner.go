package seeds

import (
	"log"
	"os"

	"gorm.io/gorm"

	catalogs "quadroescolar_backend/internals/seeds/catalogs"
)

// RunAllSeeds popula os catálogos padrão. Só roda com SEED_OWNER_ID
// definido, para as linhas ficarem na partição da secretaria certa.
func RunAllSeeds(db *gorm.DB) {
	ownerID := os.Getenv("SEED_OWNER_ID")
	if ownerID == "" {
		log.Println("⚠️ SEED_OWNER_ID não definido, seeds pulados")
		return
	}

	catalogs.SeedSectorsFromJSON(db, "internals/seeds/catalogs/data_sectors.json", ownerID)
	catalogs.SeedRolesFromJSON(db, "internals/seeds/catalogs/data_roles.json", ownerID)
}

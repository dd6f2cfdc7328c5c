package catalogs

import (
	"log"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cModel "quadroescolar_backend/internals/features/catalogs/model"
)

type catalogSeed struct {
	Name string `json:"name"`
}

// SeedSectorsFromJSON insere os setores padrão da rede a partir de um JSON.
// Entradas já existentes (mesmo nome) são puladas.
func SeedSectorsFromJSON(db *gorm.DB, filePath, ownerID string) {
	log.Println("📥 Lendo arquivo:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Falha ao ler o JSON: %v", err)
		return
	}

	var rows []catalogSeed
	if err := sonic.Unmarshal(file, &rows); err != nil {
		log.Printf("❌ Falha ao decodificar o JSON: %v", err)
		return
	}

	for _, r := range rows {
		var existing cModel.SectorModel
		if err := db.Where("sector_name = ?", r.Name).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Setor %q já existe, pulando...", r.Name)
			continue
		}

		row := cModel.SectorModel{
			SectorID:        uuid.New(),
			SectorName:      r.Name,
			SectorOwnerID:   ownerID,
			SectorCreatedAt: time.Now(),
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Falha ao inserir setor %q: %v", r.Name, err)
		} else {
			log.Printf("✅ Setor %q inserido", r.Name)
		}
	}
}

// SeedRolesFromJSON insere os cargos padrão da rede a partir de um JSON.
func SeedRolesFromJSON(db *gorm.DB, filePath, ownerID string) {
	log.Println("📥 Lendo arquivo:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Falha ao ler o JSON: %v", err)
		return
	}

	var rows []catalogSeed
	if err := sonic.Unmarshal(file, &rows); err != nil {
		log.Printf("❌ Falha ao decodificar o JSON: %v", err)
		return
	}

	for _, r := range rows {
		var existing cModel.RoleModel
		if err := db.Where("role_name = ?", r.Name).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Cargo %q já existe, pulando...", r.Name)
			continue
		}

		row := cModel.RoleModel{
			RoleID:        uuid.New(),
			RoleName:      r.Name,
			RoleOwnerID:   ownerID,
			RoleCreatedAt: time.Now(),
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Falha ao inserir cargo %q: %v", r.Name, err)
		} else {
			log.Printf("✅ Cargo %q inserido", r.Name)
		}
	}
}

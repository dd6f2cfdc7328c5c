package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"quadroescolar_backend/internals/configs"
	attendanceModel "quadroescolar_backend/internals/features/attendance/model"
	catalogModel "quadroescolar_backend/internals/features/catalogs/model"
	employeeModel "quadroescolar_backend/internals/features/employees/model"
	placementModel "quadroescolar_backend/internals/features/placements/model"
	schoolModel "quadroescolar_backend/internals/features/schools/model"
)

var DB *gorm.DB

// IsConfigured informa se o banco remoto está disponível. A checagem é
// estática (resolvida no boot); falhas pontuais depois do boot são tratadas
// chamada a chamada pelo fallback do reconcile.Store.
func IsConfigured() bool { return DB != nil }

// ConnectDB abre a conexão com o Postgres quando as variáveis de ambiente
// existem. Sem DB_HOST o serviço sobe em modo local (somente cache).
func ConnectDB() {
	host := os.Getenv("DB_HOST")
	if host == "" {
		log.Println("⚠️ DB_HOST ausente, banco remoto não configurado, operando com cache local")
		return
	}

	log.Println("🔌 Conectando ao PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=quadroescolar&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		host,
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // compatível com PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Printf("❌ Falha ao conectar no banco: %v, seguindo em modo local", err)
		return
	}
	DB = db
	log.Println("✅ DB conectado.")
}

func TunePool() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// AutoMigrate roda apenas com DB_AUTOMIGRATE=true; em produção o schema é
// gerenciado por migrations externas.
func AutoMigrate() {
	if DB == nil || configs.GetEnv("DB_AUTOMIGRATE") != "true" {
		return
	}
	if err := DB.AutoMigrate(
		&employeeModel.EmployeeModel{},
		&schoolModel.SchoolModel{},
		&catalogModel.SectorModel{},
		&catalogModel.RoleModel{},
		&attendanceModel.OccurrenceModel{},
		&placementModel.PlacementHistoryModel{},
	); err != nil {
		log.Printf("❌ AutoMigrate falhou: %v", err)
		return
	}
	log.Println("✅ AutoMigrate concluído.")
}

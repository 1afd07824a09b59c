package main

import (
	"log"
	"os"

	"interview-eval-be/internal/model"
	"interview-eval-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. AutoMigrate All Models
	models := []interface{}{
		&model.Session{},
		&model.RoomParticipant{},
		&model.Applicant{},
		&model.JobRole{},
		&model.JobRoleKeyword{},
		&model.Keyword{},
		&model.KeywordCriteria{},
		&model.ApplicantKeywordScore{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatal("Error: AutoMigrate failed:", err)
	}

	log.Printf("Migration complete: %d tables ensured", len(models))
}

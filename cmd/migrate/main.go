// FILE: cmd/migrate/main.go
package main

import (
	"log"
	"os"

	"radiant-system-be/pkg/database"
	"radiant-system-be/pkg/recordstore"

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

	log.Println("Starting GORM Migration...")

	// 3. The record store owns its table layout; AutoMigrate runs inside.
	if _, err := recordstore.NewPostgresStore(db); err != nil {
		log.Fatal("Error: Failed to migrate records table:", err)
	}

	log.Println("Migration completed: records table is ready.")
}

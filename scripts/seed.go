package main

import (
	"log"
	"os"

	"cleanmorocco-server/routes"
	"cleanmorocco-server/storage"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("DB_CONNECTION_STRING environment variable is required")
	}

	db, err := storage.Connect(dsn)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := routes.SeedReferenceData(db); err != nil {
		log.Fatalf("Error seeding reference data: %v", err)
	}

	log.Println("Seed completed")
}

package storage

import (
	"cleanmorocco-server/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and runs migrations. The returned
// handle is passed down to handlers explicitly; there is no package-global
// client.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate is exported separately so tests can run the same schema against a
// throwaway database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.City{},
		&models.User{},
		&models.House{},
		&models.Cleaner{},
		&models.Review{},
		&models.BookingRequest{},
	)
}

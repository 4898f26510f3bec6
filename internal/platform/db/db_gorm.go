// Package db bootstraps the relational database connection.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "controlastock_backend/internal/feature/auth/domain/entity"
	itementity "controlastock_backend/internal/feature/inventory/domain/entity"
)

// OpenDB connects to Postgres using the DB_* environment variables, retrying
// for up to a minute so the service survives a database that is still coming
// up. TranslateError is enabled so adapters can match gorm.ErrDuplicatedKey
// across drivers.
func OpenDB() *gorm.DB {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, pass, name, port)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := Migrate(db); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

// Migrate creates or updates the usuarios, tokens and itens_inventario tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authentity.User{},
		&authentity.IssuedToken{},
		&itementity.Item{},
	)
}

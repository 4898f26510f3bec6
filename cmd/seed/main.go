package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"controlastock_backend/internal/feature/auth/adapters"
	"controlastock_backend/internal/feature/auth/domain/entity"
	"controlastock_backend/internal/feature/auth/usecase"
	infradb "controlastock_backend/internal/platform/db"
)

// Seeds (or resets) the administrator account. Safe to run repeatedly:
// an existing account with the given e-mail is promoted and gets a fresh
// password instead of being duplicated.
func main() {
	nome := flag.String("nome", "Administrador", "display name for the admin account")
	cnpj := flag.String("cnpj", "00000000000000", "14 digit CNPJ for the admin account")
	cep := flag.String("cep", "01001000", "8 digit CEP for the admin account")
	email := flag.String("email", "", "admin e-mail (required)")
	senha := flag.String("senha", "", "admin password (required)")
	flag.Parse()

	if *email == "" || *senha == "" {
		log.Fatal("both -email and -senha are required")
	}

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found, using system environment variables")
	}

	db := infradb.OpenDB()
	if err := infradb.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*senha), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	ctx := context.Background()
	repo := adapters.NewUserGorm(db)

	existing, err := repo.FindByEmail(ctx, *email)
	switch {
	case err == nil:
		existing.Nome = *nome
		existing.Cnpj = *cnpj
		existing.Cep = *cep
		existing.Senha = string(hash)
		existing.Role = entity.RoleAdmin
		if err := db.WithContext(ctx).Save(existing).Error; err != nil {
			log.Fatalf("update admin: %v", err)
		}
		log.Printf("admin account updated: id=%d email=%s", existing.ID, existing.Email)
	case errors.Is(err, usecase.ErrUserNotFound):
		admin := &entity.User{
			Nome:  *nome,
			Cnpj:  *cnpj,
			Cep:   *cep,
			Email: *email,
			Senha: string(hash),
			Role:  entity.RoleAdmin,
		}
		if err := repo.Create(ctx, admin); err != nil {
			log.Fatalf("create admin: %v", err)
		}
		log.Printf("admin account created: id=%d email=%s", admin.ID, admin.Email)
	default:
		log.Fatalf("lookup admin: %v", err)
	}
}

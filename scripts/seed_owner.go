package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/lucasmonteiro/vitrine/pkg/auth"
)

func main() {
	fmt.Println("adding owner into database...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	dsn := os.Getenv("DB_DSN")
	ownerEmail := os.Getenv("OWNER_EMAIL")
	ownerName := os.Getenv("OWNER_NAME")
	ownerPassword := os.Getenv("OWNER_PASSWORD")

	hash, err := auth.HashPassword(ownerPassword)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	query := `
		INSERT INTO users (id, email, name, password_hash)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET name = $3, password_hash = $4
	`
	_, err = pool.Exec(context.Background(), query, uuid.New(), ownerEmail, ownerName, hash)
	if err != nil {
		log.Fatalf("cannot add user: %v", err)
	}

	fmt.Printf("added or updated owner '%s' successfully!\n", ownerEmail)
}

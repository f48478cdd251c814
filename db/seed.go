package db

import (
	"database/sql"
	"fmt"

	"attendance_backend/middleware"
)

// SeedData populates the database with the demo manager and employee
// accounts. Safe to run repeatedly.
func SeedData(db *sql.DB) error {
	// Start a transaction
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	accounts := []struct {
		name       string
		email      string
		password   string
		role       string
		department string
	}{
		{"Boss Manager", "boss@test.com", "123", "manager", "General"},
		{"John Employee", "john@test.com", "123", "employee", "General"},
	}

	for _, a := range accounts {
		hashed, err := middleware.HashPassword(a.password)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error hashing seed password: %w", err)
		}
		_, err = tx.Exec(`
			INSERT INTO users (name, email, password_hash, role, department)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (email) DO NOTHING
		`, a.name, a.email, hashed, a.role, a.department)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error seeding users: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

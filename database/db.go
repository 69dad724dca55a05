package database

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
)

var DB *sql.DB

// Init ouvre la connexion PostgreSQL avec un pool optimisé
func Init(connStr string) error {
	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return err
	}

	// Pool de connexions optimisé
	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(5)
	DB.SetConnMaxLifetime(5 * time.Minute)

	return DB.Ping()
}

// Close ferme la connexion
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// ConnStringFromEnv construit la connection string depuis l'environnement
func ConnStringFromEnv() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "cataloguser"),
		getEnv("DB_PASSWORD", "catalogpass"),
		getEnv("DB_NAME", "catalogdb"),
		getEnv("DB_SSLMODE", "disable"),
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

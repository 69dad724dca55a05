package testhelpers

import (
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"catalog/database"
)

// SetupTestDB initialise une connexion à la base de données de test.
// Le test est sauté si la base n'est pas joignable: les tests d'intégration
// exigent un PostgreSQL configuré via l'environnement.
func SetupTestDB(tb testing.TB) *sql.DB {
	tb.Helper()

	// Charger les variables d'environnement
	_ = godotenv.Load("../../../.env")

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "cataloguser"),
		getEnv("DB_PASSWORD", "catalogpass"),
		getEnv("DB_NAME", "catalogdb_test"),
		getEnv("DB_SSLMODE", "disable"),
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		tb.Skipf("test database unavailable: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		tb.Skipf("test database unreachable: %v", err)
	}

	if err := database.CreateSchema(db); err != nil {
		tb.Fatalf("failed to create schema: %v", err)
	}

	tb.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// CleanTables vide les tables du catalogue entre deux tests
func CleanTables(tb testing.TB, db *sql.DB) {
	tb.Helper()

	if _, err := db.Exec("TRUNCATE TABLE products, categories CASCADE"); err != nil {
		tb.Fatalf("failed to clean tables: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

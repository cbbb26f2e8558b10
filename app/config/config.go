package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB        *sql.DB
	JWTSecret string
	Port      string
	Billing   BillingConfig
}

// BillingConfig carries the tunables of the fee/installment engine.
type BillingConfig struct {
	// Present-class counts that mark the next installment as due, by class
	// format. Curriculums may override these per catalog entry.
	ClassesPerInstallmentWeekday int
	ClassesPerInstallmentWeekend int

	// Installment count used when a curriculum has no duration set.
	DefaultInstallments int
}

var AppConfig *Config

// Init loads .env (when present), reads the environment and opens the
// database connection pool.
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "edcenter"),
		getEnv("DB_SSLMODE", "disable"),
	)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	AppConfig = &Config{
		DB:        db,
		JWTSecret: getEnv("JWT_SECRET", "edcenter-dev-secret"),
		Port:      getEnv("PORT", "8080"),
		Billing: BillingConfig{
			ClassesPerInstallmentWeekday: getEnvInt("CLASSES_PER_INSTALLMENT_WEEKDAY", 8),
			ClassesPerInstallmentWeekend: getEnvInt("CLASSES_PER_INSTALLMENT_WEEKEND", 4),
			DefaultInstallments:          getEnvInt("DEFAULT_INSTALLMENTS", 12),
		},
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

// GetBilling returns the billing tunables.
func GetBilling() BillingConfig {
	return AppConfig.Billing
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

const (
	DRIVER_POSTGRES = "postgres"
	DRIVER_MYSQL    = "mysql"
	DRIVER_SQLITE   = "sqlite"
)

func GetAPIEnv() string {
	return os.Getenv("API_ENV")
}

func GetEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func GetDriver() string {
	return GetEnv("DATABASE_DRIVER", DRIVER_POSTGRES)
}

// GetDSN builds the connection string for the configured driver. DATABASE_URL
// takes precedence when set.
func GetDSN() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	DATABASE_HOST := GetEnv("DATABASE_HOST", "localhost")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := GetEnv("DATABASE_NAME", "alxtravel")

	switch GetDriver() {
	case DRIVER_MYSQL:
		DATABASE_PORT := GetEnv("DATABASE_PORT", "3306")
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC", DATABASE_USER, DATABASE_PASSWORD, DATABASE_HOST, DATABASE_PORT, DATABASE_NAME)
	case DRIVER_SQLITE:
		return fmt.Sprintf("%s?_foreign_keys=on", DATABASE_NAME)
	}
	DATABASE_PORT := GetEnv("DATABASE_PORT", "5432")
	DATABASE_SSLMODE := GetEnv("DATABASE_SSLMODE", "disable")
	DATABASE_TIMEZONE := GetEnv("DATABASE_TIMEZONE", "UTC")
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
}

func GetPort() string {
	return GetEnv("PORT", "9090")
}

// IsMaintenanceMode reports MAINTENANCE_MODE. Unset means off.
func IsMaintenanceMode() bool {
	mm := os.Getenv("MAINTENANCE_MODE")
	if mm == "" {
		return false
	}
	on, err := strconv.ParseBool(mm)
	if err != nil {
		log.Printf("Invalid MAINTENANCE_MODE value %q, assuming on\n", mm)
		return true
	}
	return on
}

// GetSweepInterval is how often lapsed pending bookings are canceled. Zero
// disables the sweeper.
func GetSweepInterval() time.Duration {
	raw := os.Getenv("BOOKING_SWEEP_INTERVAL")
	if raw == "" || raw == "0" {
		return 0
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		log.Printf("Invalid BOOKING_SWEEP_INTERVAL %q, sweeper disabled\n", raw)
		return 0
	}
	return d
}

func GetEventsBackend() string {
	return GetEnv("EVENTS_BACKEND", "log")
}

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DevJWTSecret is the local development fallback for JWT_SECRET. It is
// public, so release builds refuse to run with it.
const DevJWTSecret = "super-secret-key-change-me"

type Env struct {
	AppAddr            string
	GinMode            string
	LogLevel           string
	DBDSN              string
	JWTSecret          string
	CORSAllowedOrigins []string

	SeatBindingMode       string
	RequireTravelDocument bool
	BookingRefPrefix      string
	CartIdleTTL           time.Duration
}

// LoadEnv reads configuration from the environment, loading .env when present.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		AppAddr:            getEnv("APP_ADDR", ":8080"),
		GinMode:            getEnv("GIN_MODE", ""),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		DBDSN:              getEnv("DB_DSN", "root:@tcp(127.0.0.1:3306)/goairline"),
		JWTSecret:          getEnv("JWT_SECRET", DevJWTSecret),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173,http://localhost:3000"),

		SeatBindingMode:       getEnv("SEAT_BINDING_MODE", "REPACK"),
		RequireTravelDocument: getEnvBool("REQUIRE_TRAVEL_DOCUMENT", true),
		BookingRefPrefix:      getEnv("BOOKING_REF_PREFIX", "GOA"),
		CartIdleTTL:           getEnvDuration("CART_IDLE_TTL", 30*time.Minute),
	}
}

// Validate rejects settings that are only acceptable outside release mode.
func (e Env) Validate() error {
	if e.GinMode == "release" && e.JWTSecret == DevJWTSecret {
		return errors.New("JWT_SECRET must be set in release mode")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(getEnv(key, "")); err == nil && v > 0 {
		return v
	}
	return fallback
}

func getEnvList(key, fallback string) []string {
	out := []string{}
	for _, o := range strings.Split(getEnv(key, fallback), ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

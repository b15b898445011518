package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBType      string
	PostgresURL string
	MongoURL    string

	JWTSecret string
	JWTTTL    time.Duration

	// Letterhead identity printed on every document.
	CompanyName    string
	CompanyTagline string
	CompanyAddress string
	CompanyContact string
	CompanyEmail   string
	CompanyGSTIN   string
	CompanyPAN     string

	// PDF engine.
	ChromePath     string
	MaxBrowserUses int
	RenderTimeout  time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:        os.Getenv("PORT"),
		DBType:      os.Getenv("DB_TYPE"),
		PostgresURL: os.Getenv("POSTGRES_URL"),
		MongoURL:    os.Getenv("MONGO_URL"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    envDuration("JWT_TTL", 24*time.Hour),

		CompanyName:    envDefault("COMPANY_NAME", "Tarapur Transport"),
		CompanyTagline: os.Getenv("COMPANY_TAGLINE"),
		CompanyAddress: os.Getenv("COMPANY_ADDRESS"),
		CompanyContact: os.Getenv("COMPANY_CONTACT"),
		CompanyEmail:   os.Getenv("COMPANY_EMAIL"),
		CompanyGSTIN:   os.Getenv("COMPANY_GSTIN"),
		CompanyPAN:     os.Getenv("COMPANY_PAN"),

		ChromePath:     os.Getenv("CHROME_PATH"),
		MaxBrowserUses: envInt("MAX_BROWSER_USES", 50),
		RenderTimeout:  envDuration("RENDER_TIMEOUT", 30*time.Second),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

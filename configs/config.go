package configs

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Port     string
	DBSource string

	JWTSecret string
	JWTTTL    time.Duration

	RedisAddr string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string

	AdminEmail    string
	AdminPassword string

	MealPlanSchedule string
	PublicBaseURL    string
}

// Load reads .env if present, then the process environment.
func Load(log *zap.Logger) *Config {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file, using environment")
	}

	return &Config{
		Port:     getEnv("PORT", "8080"),
		DBSource: getEnv("DB_SOURCE", "cafechain.db"),

		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTTTL:    time.Duration(getEnvInt("JWT_TTL_HOURS", 72)) * time.Hour,

		RedisAddr: os.Getenv("REDIS_ADDR"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: getEnvInt("SMTP_PORT", 587),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		MailFrom: getEnv("MAIL_FROM", "no-reply@cafechain.local"),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@cafechain.local"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin1234"),

		MealPlanSchedule: getEnv("MEAL_PLAN_SCHEDULE", "0 9 * * *"),
		PublicBaseURL:    getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
	}
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
		return fallback
	}
	return n
}

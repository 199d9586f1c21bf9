package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	ServerPort string
	// Максимум сырой оценки внимания в источнике. Оценка умножается
	// на 100/ListenRateMaxRaw при импорте; если источник сменит шкалу,
	// меняется одна переменная окружения, а не пороги по всему коду.
	ListenRateMaxRaw float64
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", "postgres"),
		DBName:           getEnv("DB_NAME", "progress_dashboard"),
		JWTSecret:        getEnv("JWT_SECRET", "secret"),
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		ListenRateMaxRaw: getEnvFloat("LISTEN_RATE_MAX_RAW", 5),
	}, nil
}

// ListenRateScale — множитель перевода сырой оценки в проценты.
func (c *Config) ListenRateScale() float64 {
	if c.ListenRateMaxRaw <= 0 {
		return 0
	}
	return 100 / c.ListenRateMaxRaw
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %v", key, value, defaultValue)
		return defaultValue
	}
	return f
}

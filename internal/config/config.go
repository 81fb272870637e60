package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr    string
	DBPath        string
	PhotoPath     string
	PublicBaseURL string
	JWTSecret     string
	JWTExpiryHrs  int
	LogLevel      string
	LogFile       string
}

// Load reads configuration from the environment, after loading a .env file
// if one is present beside the binary.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":8080"),
		DBPath:        getEnv("DB_PATH", "/data/motorcheck.db"),
		PhotoPath:     getEnv("PHOTO_LOCAL_PATH", "/data/photos"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		JWTExpiryHrs:  getEnvInt("JWT_EXPIRY_HOURS", 12),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFile:       getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	SERVER_PORT                   string
	DB_URI                        string
	DB_NAME                       string
	DB_MAXPOOLSIZE                uint64
	DB_MINPOOLSIZE                uint64
	DB_MAXIDLETIME_INMINUTES      int
	MODEL_SERVICE_URL             string
	SCORING_TIMEOUT_MS            int
	RAG_API_URL                   string
	RAG_API_KEY                   string
	RAG_DEFAULT_USER_ID           string
	RAG_TIMEOUT_MS                int
	ADMIN_LIST_MAX_LIMIT          int
	ADMIN_LIST_DEFAULT_LIMIT      int
	METRICS_CACHE_TTL_SECONDS     int
	REDIS_ADDR                    string
	REDIS_PASSWORD                string
	REDIS_DB                      int
	REDIS_ENABLED                 bool
	REDIS_CONNECT_TIMEOUT_SECONDS int
	BCRYPT_COST                   int
	SERVICE_NAME                  string
	OTEL_URL                      string
	LOG_LEVEL                     string
)

type RedisConfig struct {
	Addr           string        `yaml:"addr"`
	Password       string        `yaml:"password"`
	DB             int           `yaml:"db"`
	ConnectTimeout time.Duration `yaml:"connect_timeout_seconds"`
}

// LoadEnv loads the environment variables from a .env file
func LoadEnv() error {
	err := godotenv.Load("./../.env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	LoadEnvValues()

	return nil
}

func LoadEnvValues() {
	SERVER_PORT = GetEnv("SERVER_PORT", "8080")
	DB_URI = GetEnv("MONGODB_URI", "mongodb://localhost:27017/creditrisk")
	DB_NAME = GetEnv("DB_NAME", "creditrisk")
	DB_MAXPOOLSIZE, _ = strconv.ParseUint(GetEnv("DB_MAXPOOLSIZE", "100"), 10, 64)
	DB_MINPOOLSIZE, _ = strconv.ParseUint(GetEnv("DB_MINPOOLSIZE", "10"), 10, 64)
	DB_MAXIDLETIME_INMINUTES, _ = strconv.Atoi(GetEnv("DB_MAXIDLETIME_INMINUTES", "5"))

	MODEL_SERVICE_URL = GetEnv("MODEL_SERVICE_URL", "http://localhost:8000")
	SCORING_TIMEOUT_MS, _ = strconv.Atoi(GetEnv("SCORING_TIMEOUT_MS", "5000"))

	RAG_API_URL = GetEnv("RAG_API_URL", "https://zibtek.vercel.app/api/chat")
	RAG_API_KEY = GetEnv("RAG_API_KEY", "")
	RAG_DEFAULT_USER_ID = GetEnv("RAG_DEFAULT_USER_ID", "anonymous")
	RAG_TIMEOUT_MS, _ = strconv.Atoi(GetEnv("RAG_TIMEOUT_MS", "15000"))

	ADMIN_LIST_MAX_LIMIT, _ = strconv.Atoi(GetEnv("ADMIN_LIST_MAX_LIMIT", "200"))
	ADMIN_LIST_DEFAULT_LIMIT, _ = strconv.Atoi(GetEnv("ADMIN_LIST_DEFAULT_LIMIT", "50"))

	METRICS_CACHE_TTL_SECONDS, _ = strconv.Atoi(GetEnv("METRICS_CACHE_TTL_SECONDS", "30"))
	REDIS_ADDR = GetEnv("REDIS_ADDR", "localhost:6379")
	REDIS_PASSWORD = GetEnv("REDIS_PASSWORD", "")
	REDIS_DB, _ = strconv.Atoi(GetEnv("REDIS_DB", "0"))
	REDIS_ENABLED, _ = strconv.ParseBool(GetEnv("REDIS_ENABLED", "false"))
	REDIS_CONNECT_TIMEOUT_SECONDS, _ = strconv.Atoi(GetEnv("REDIS_CONNECT_TIMEOUT_SECONDS", "5"))

	BCRYPT_COST, _ = strconv.Atoi(GetEnv("BCRYPT_COST", "10"))

	SERVICE_NAME = GetEnv("SERVICE_NAME", "creditrisk")
	OTEL_URL = GetEnv("OTEL_URL", "")
	LOG_LEVEL = GetEnv("LOG_LEVEL", "INFO")
}

// GetRedisConfig returns a RedisConfig struct populated from environment variables
func GetRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:           REDIS_ADDR,
		Password:       REDIS_PASSWORD,
		DB:             REDIS_DB,
		ConnectTimeout: time.Duration(REDIS_CONNECT_TIMEOUT_SECONDS) * time.Second,
	}
}

// GetEnv fetches the value of an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}

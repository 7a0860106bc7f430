package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr       string
	MongoURI       string
	MongoDB        string
	RedisAddr      string
	KafkaBrokers   []string
	TokenSecret    string
	TokenTTL       time.Duration
	AllowedOrigins []string
	Production     bool
	ServiceName    string
}

func Load() Config {
	return Config{
		HTTPAddr:       getenv("HTTP_ADDR", ":5000"),
		MongoURI:       getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getenv("MONGO_DB", "restaurant"),
		RedisAddr:      getenv("REDIS_ADDR", "redis:6379"),
		KafkaBrokers:   splitCSV(getenv("KAFKA_BROKERS", "kafka:9092")),
		TokenSecret:    os.Getenv("ACCESS_TOKEN_SECRET"),
		TokenTTL:       time.Duration(getenvInt("TOKEN_TTL_SECONDS", 3600)) * time.Second,
		AllowedOrigins: splitCSV(getenv("ALLOWED_ORIGINS", "http://localhost:5173")),
		Production:     getenv("APP_ENV", "development") == "production",
		ServiceName:    getenv("SERVICE_NAME", "catalog-api"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string
	MySQLDSN      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	PageSize      int
	IndexCacheTTL time.Duration
	JWTSecret     string
	JWTTTL        time.Duration
	UploadDir     string
	SMTP          SMTPConfig
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Load reads configuration from the environment, with a best-effort
// .env file on top.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env not loaded: %v", err)
	}

	return Config{
		Addr:          envString("YATUBE_ADDR", ":8080"),
		MySQLDSN:      envString("YATUBE_MYSQL_DSN", "user:password@tcp(127.0.0.1:3306)/yatube?charset=utf8mb4&parseTime=True"),
		RedisAddr:     envString("YATUBE_REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: envString("YATUBE_REDIS_PASSWORD", ""),
		RedisDB:       envInt("YATUBE_REDIS_DB", 0),
		PageSize:      envInt("YATUBE_PAGE_SIZE", 10),
		IndexCacheTTL: envDuration("YATUBE_INDEX_CACHE_TTL", 20*time.Second),
		JWTSecret:     envString("YATUBE_JWT_SECRET", "dev-secret-key"),
		JWTTTL:        envDuration("YATUBE_JWT_TTL", 24*time.Hour),
		UploadDir:     envString("YATUBE_UPLOAD_DIR", "uploads/images"),
		SMTP: SMTPConfig{
			Host:     envString("YATUBE_SMTP_HOST", "localhost"),
			Port:     envInt("YATUBE_SMTP_PORT", 587),
			Username: envString("YATUBE_SMTP_USER", ""),
			Password: envString("YATUBE_SMTP_PASSWORD", ""),
			From:     envString("YATUBE_SMTP_FROM", "NoReply <no-reply@yatube.local>"),
		},
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

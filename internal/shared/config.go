package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	MetricsAddr   string
	MySQLDSN      string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	DirectoryBase string
	DirectoryKey  string
	DirectoryRPS  int
	Workers       int
	CacheTTL      time.Duration
	Debounce      time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ":9100"),
		MySQLDSN:      env("MYSQL_DSN", "root:root@tcp(localhost:3306)/padelyzer?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisPass:     env("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		DirectoryBase: env("DIRECTORY_BASE_URL", "https://api.padelyzer.com/v1"),
		DirectoryKey:  env("DIRECTORY_API_KEY", ""),
		DirectoryRPS:  atoi("DIRECTORY_RPS", 5),
		Workers:       atoi("INGEST_WORKERS", 8),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		Debounce:      time.Duration(atoi("SEARCH_DEBOUNCE_MS", 300)) * time.Millisecond,
	}
	if c.DirectoryKey == "" {
		log.Warn().Msg("DIRECTORY_API_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

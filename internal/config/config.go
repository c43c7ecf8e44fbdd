package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	LogFile      string
}

func Load() Config {
	port, _ := strconv.Atoi(getenv("PORT", "8000"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "http://localhost:3000"), ",")
	return Config{
		Host:         getenv("HOST", "0.0.0.0"),
		Port:         port,
		AllowOrigins: origins,
		LogLevel:     getenv("LOG_LEVEL", "info"),
		LogFile:      getenv("LOG_FILE", "logs/annapoorna-api.log"),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

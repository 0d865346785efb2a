package config

import (
	"os"
	"strings"
)

type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	RedisHost     string
	RedisPort     string
	SessionSecret string
	GinMode       string

	// AdminAccessCode and TeamAccessCode are the two configured secrets of
	// the role-resolution boundary. Either may be a bcrypt hash.
	AdminAccessCode string
	TeamAccessCode  string

	// TeamMembers is the fixed assignee enumeration for tickets. Empty means
	// assignees are unrestricted.
	TeamMembers []string
}

func Load() *Config {
	return &Config{
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "3306"),
		DBUser:          getEnv("DB_USER", "teamhub"),
		DBPassword:      getEnv("DB_PASSWORD", "teamhub"),
		DBName:          getEnv("DB_NAME", "teamhub"),
		RedisHost:       getEnv("REDIS_HOST", "localhost"),
		RedisPort:       getEnv("REDIS_PORT", "6379"),
		SessionSecret:   getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		GinMode:         getEnv("GIN_MODE", "debug"),
		AdminAccessCode: getEnv("ADMIN_ACCESS_CODE", ""),
		TeamAccessCode:  getEnv("TEAM_ACCESS_CODE", ""),
		TeamMembers:     splitList(getEnv("TEAM_MEMBERS", "")),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}
	return values
}

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var DefaultEnvConfig *envConfig

type envConfig struct {
	// server config
	APP_PORT string
	// storage config
	DATA_DIR          string
	EMPLOYEE_TABLE    string
	PERFORMANCE_TABLE string
	USERS_TABLE       string
	// inference config
	MODEL_PATH string
	// auth config
	AUTH_SECRET string
	TOKEN_TTL   time.Duration
	// logger config
	LOG_FILE_PATH string
}

// LoadEnvConfig populates DefaultEnvConfig from the environment,
// reading a .env file first when one exists.
func LoadEnvConfig() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}

	DefaultEnvConfig = &envConfig{
		APP_PORT:          getEnvString("APP_PORT", "8000"),
		DATA_DIR:          getEnvString("DATA_DIR", "data"),
		EMPLOYEE_TABLE:    getEnvString("EMPLOYEE_TABLE", "employees.csv"),
		PERFORMANCE_TABLE: getEnvString("PERFORMANCE_TABLE", "performance.csv"),
		USERS_TABLE:       getEnvString("USERS_TABLE", "users.csv"),
		MODEL_PATH:        getEnvString("MODEL_PATH", filepath.Join("models", "attrition_model.json")),
		AUTH_SECRET:       getEnvString("AUTH_SECRET", "hr-nexus-enterprise-secret-key-change-in-production"),
		TOKEN_TTL:         getEnvDuration("TOKEN_TTL", 60*time.Minute),
		LOG_FILE_PATH:     getEnvString("LOG_FILE_PATH", ""),
	}
	return nil
}

// EmployeePath returns the absolute-or-relative path of the employees
// table inside DATA_DIR.
func (c *envConfig) EmployeePath() string {
	return filepath.Join(c.DATA_DIR, c.EMPLOYEE_TABLE)
}

func (c *envConfig) PerformancePath() string {
	return filepath.Join(c.DATA_DIR, c.PERFORMANCE_TABLE)
}

func (c *envConfig) UsersPath() string {
	return filepath.Join(c.DATA_DIR, c.USERS_TABLE)
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
		if i, err := strconv.Atoi(val); err == nil {
			return time.Duration(i) * time.Second
		}
	}
	return fallback
}

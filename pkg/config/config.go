package config

import "os"

type AppConfig struct {
	LogLevel  string
	SeedDemo  bool
	ReportDir string
}

type Config struct {
	App AppConfig
}

func New() *Config {
	return &Config{
		App: AppConfig{
			LogLevel:  getEnv("LOG_LEVEL", "info"),
			SeedDemo:  getEnv("SEED_DEMO_DATA", "true") != "false",
			ReportDir: getEnv("REPORT_DIR", "./reports"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

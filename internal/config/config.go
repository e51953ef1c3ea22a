package config

import "os"

type Config struct {
	ListenAddr      string
	DBPath          string
	LogLevel        string
	LogFile         string
	AnthropicAPIKey string
	AnthropicModel  string
}

func Load() *Config {
	return &Config{
		ListenAddr:      getEnv("LISTEN_ADDR", ":8080"),
		DBPath:          getEnv("DB_PATH", "/data/first_aid_stock.db"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         getEnv("LOG_FILE", ""),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-3-5-haiku-latest"),
	}
}

// AdvisorEnabled reports whether the restock advisor should be wired up.
func (c *Config) AdvisorEnabled() bool {
	return c.AnthropicAPIKey != ""
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

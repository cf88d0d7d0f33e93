package config

import "os"

// LoadLogConfigFromEnv applies CHATMETA_LOG_LEVEL and CHATMETA_DEBUG overrides.
func LoadLogConfigFromEnv(cfg LogConfig) LogConfig {
	if level := os.Getenv("CHATMETA_LOG_LEVEL"); level != "" {
		cfg.Level = level
	}
	if os.Getenv("CHATMETA_DEBUG") == "1" {
		cfg.Level = "debug"
	}
	return cfg
}

package config

import (
	"main/utils"
	"time"
)

type ServerConfig struct {
	Port        string
	BaseURL     string
	Environment string
}

type DatabaseConfig struct {
	Path string
}

// TrashConfig controls the soft-delete lifecycle. Retention is how long a
// trashed note stays restorable before it becomes eligible for purge.
type TrashConfig struct {
	Retention time.Duration
}

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Trash    TrashConfig
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        utils.GetEnvAsString("PORT", "8080"),
			BaseURL:     utils.GetEnvAsString("BASE_URL", "http://localhost:8080"),
			Environment: utils.GetEnvAsString("GO_ENV", "development"),
		},
		Database: DatabaseConfig{
			Path: utils.GetEnvAsString("NOTES_DB_PATH", "notes.db"),
		},
		Trash: TrashConfig{
			Retention: time.Duration(utils.GetEnvAsInt("TRASH_RETENTION_SECONDS", 30)) * time.Second,
		},
	}
}

// Package config хранит настройки клиента labsync в JSON файле в
// домашнем каталоге пользователя.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	configDirName  = "labsync"
	configFileName = "config.json"
	dataFileName   = "labsync.db"
)

// Умолчания клиента
const (
	DefaultServerURL     = "http://localhost:8080"
	DefaultSyncInterval  = 30 * time.Second
	DefaultProbeInterval = 10 * time.Second
)

// Config contains client settings persisted between runs
type Config struct {
	ServerURL     string        `json:"server_url"`     // адрес сервера синхронизации
	DBPath        string        `json:"db_path"`        // путь к локальной базе BoltDB
	SyncInterval  time.Duration `json:"sync_interval"`  // период фонового разбора очереди
	ProbeInterval time.Duration `json:"probe_interval"` // период проб доступности
	QuotaBytes    int64         `json:"quota_bytes"`    // бюджет локального хранилища, 0 = без лимита
}

// DefaultPath returns the config file location, ~/.config/labsync/config.json
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(base, configDirName, configFileName), nil
}

// defaults returns the config used when no file exists yet
func defaults() (*Config, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return &Config{
		ServerURL:     DefaultServerURL,
		DBPath:        filepath.Join(base, configDirName, dataFileName),
		SyncInterval:  DefaultSyncInterval,
		ProbeInterval: DefaultProbeInterval,
	}, nil
}

// Load reads the config from path. Отсутствующий файл не ошибка:
// возвращаются умолчания.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults()
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := defaults()
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to path using atomic write (temp file + rename)
func Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Временный файл в том же каталоге, затем rename
	tmp, err := os.CreateTemp(dir, "config-*.json.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp config: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp config: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace config: %w", err)
	}

	return nil
}

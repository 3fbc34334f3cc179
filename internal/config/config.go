package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server           ServerConfig           `toml:"server"`
	Database         DatabaseConfig         `toml:"database"`
	Logs             LogsConfig             `toml:"logs"`
	Metrics          MetricsConfig          `toml:"metrics"`
	VehicleDirectory VehicleDirectoryConfig `toml:"vehicle_directory"`
	Notifier         NotifierConfig         `toml:"notifier"`
	Wizard           WizardConfig           `toml:"wizard"`
	Seed             SeedConfig             `toml:"seed"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// DatabaseConfig настройки реестра
// Реестр живет в in-memory SQLite и теряется при перезапуске процесса
type DatabaseConfig struct {
	DSN string `toml:"dsn"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// VehicleDirectoryConfig настройки справочника транспортных средств
// Если URL пустой, используется встроенный статический справочник
type VehicleDirectoryConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

// NotifierConfig настройки webhook-уведомлений
// Если URL пустой, уведомления только логируются
type NotifierConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

// WizardConfig настройки сессий мастера бронирования
type WizardConfig struct {
	SessionTTLMinutes int `toml:"session_ttl_minutes"`
}

// SeedConfig настройки демо-данных
type SeedConfig struct {
	Demo bool `toml:"demo"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort <= 0 || cfg.Server.HTTPPort > 65535 {
		return nil, fmt.Errorf("config: invalid server.http_port %d", cfg.Server.HTTPPort)
	}
	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("config: database.dsn is required")
	}
	if cfg.Wizard.SessionTTLMinutes <= 0 {
		return nil, fmt.Errorf("config: wizard.session_ttl_minutes must be positive")
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			DSN: "file:registry?mode=memory&cache=shared",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			ServiceName: "mot-booking-service",
			Path:        "/metrics",
		},
		VehicleDirectory: VehicleDirectoryConfig{
			Timeout: 5,
		},
		Notifier: NotifierConfig{
			Timeout: 5,
		},
		Wizard: WizardConfig{
			SessionTTLMinutes: 60,
		},
	}
}

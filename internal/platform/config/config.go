package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type StorageDriver string

const (
	DriverMemory   StorageDriver = "memory"
	DriverLevelDB  StorageDriver = "leveldb"
	DriverPostgres StorageDriver = "postgres"
)

type Config struct {
	App     AppConfig
	Server  ServerConfig
	Storage StorageConfig
	Log     LogConfig
	Metrics MetricsConfig
}

type AppConfig struct {
	Name    string
	Version string
}

// ExportTag es el identificador que va en el campo "app" del export.
func (a AppConfig) ExportTag() string {
	return fmt.Sprintf("%s v%s", a.Name, a.Version)
}

type ServerConfig struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf(":%d", s.Port)
}

type StorageConfig struct {
	Driver      StorageDriver
	PostgresDSN string
	LevelDBPath string
}

type LogConfig struct {
	Level  string
	Format string
}

type MetricsConfig struct {
	Enabled bool
}

// Load lee config desde defaults, env y (opcional) un archivo apuntado por CONFIG_FILE.
// Env soportadas (además de las claves con prefijo de sección, p.ej. SERVER_PORT):
// - PORT, DB_DSN, LEVELDB_PATH, STORAGE_DRIVER
// - LOG_LEVEL, LOG_FORMAT, APP_NAME, APP_VERSION
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Nombres cortos heredados (PORT, DB_DSN) que ya usan los despliegues.
	_ = v.BindEnv("server.port", "PORT", "SERVER_PORT")
	_ = v.BindEnv("storage.postgres_dsn", "DB_DSN", "STORAGE_POSTGRES_DSN")
	_ = v.BindEnv("storage.leveldb_path", "LEVELDB_PATH", "STORAGE_LEVELDB_PATH")
	_ = v.BindEnv("storage.driver", "STORAGE_DRIVER")

	if err := v.BindEnv("config_file", "CONFIG_FILE"); err == nil {
		if path := strings.TrimSpace(v.GetString("config_file")); path != "" {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading config file %s: %w", path, err)
			}
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "VetCalc")
	v.SetDefault("app.version", "1.0")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 15*time.Second)

	v.SetDefault("storage.driver", "")
	v.SetDefault("storage.postgres_dsn", "")
	v.SetDefault("storage.leveldb_path", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("metrics.enabled", true)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:    strings.TrimSpace(v.GetString("app.name")),
			Version: strings.TrimSpace(v.GetString("app.version")),
		},
		Server: ServerConfig{
			Port:            v.GetInt("server.port"),
			ReadTimeout:     v.GetDuration("server.read_timeout"),
			WriteTimeout:    v.GetDuration("server.write_timeout"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		Storage: StorageConfig{
			Driver:      StorageDriver(strings.ToLower(strings.TrimSpace(v.GetString("storage.driver")))),
			PostgresDSN: strings.TrimSpace(v.GetString("storage.postgres_dsn")),
			LevelDBPath: strings.TrimSpace(v.GetString("storage.leveldb_path")),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("metrics.enabled"),
		},
	}

	// Sin driver explícito: DSN => postgres, path => leveldb, si no in-memory.
	if cfg.Storage.Driver == "" {
		switch {
		case cfg.Storage.PostgresDSN != "":
			cfg.Storage.Driver = DriverPostgres
		case cfg.Storage.LevelDBPath != "":
			cfg.Storage.Driver = DriverLevelDB
		default:
			cfg.Storage.Driver = DriverMemory
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	var errs []string

	if cfg.App.Name == "" {
		errs = append(errs, "APP_NAME must not be empty")
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server port %d out of range", cfg.Server.Port))
	}

	switch cfg.Storage.Driver {
	case DriverMemory:
	case DriverLevelDB:
		if cfg.Storage.LevelDBPath == "" {
			errs = append(errs, "LEVELDB_PATH is required for the leveldb driver")
		}
	case DriverPostgres:
		if cfg.Storage.PostgresDSN == "" {
			errs = append(errs, "DB_DSN is required for the postgres driver")
		}
	default:
		errs = append(errs, fmt.Sprintf("unknown STORAGE_DRIVER %q", cfg.Storage.Driver))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

package config

import (
	pkgconfig "github.com/weiawesome/wes-io-live/devid-service/pkg/config"
	"github.com/weiawesome/wes-io-live/devid-service/pkg/database"
	"github.com/weiawesome/wes-io-live/devid-service/pkg/storage"
)

type Config struct {
	Server   ServerConfig
	Batch    BatchConfig
	Database database.Config
	Storage  storage.Config
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type BatchConfig struct {
	MaxCount int `mapstructure:"max_count"`
}

type LogConfig struct {
	Level  string
	Pretty bool
}

// Load reads ./config/config.yaml (when present) and DEVID_* environment
// variables over the defaults below.
func Load() (*Config, error) {
	return LoadFrom("./config", "config")
}

// LoadFrom is Load with an explicit config location.
func LoadFrom(configPath, configName string) (*Config, error) {
	v, err := pkgconfig.Load(configPath, configName, "DEVID")
	if err != nil {
		return nil, err
	}

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8095)
	v.SetDefault("batch.max_count", 10000)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "devid")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "devid")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.file_path", "./data/devid.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 0) // 0 keeps the driver default
	v.SetDefault("database.conn_max_lifetime", 60)
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("storage.driver", "local")
	v.SetDefault("storage.local.base_path", "./data/exports")
	v.SetDefault("storage.s3.endpoint", "")
	v.SetDefault("storage.s3.region", "us-east-1")
	v.SetDefault("storage.s3.bucket", "")
	v.SetDefault("storage.s3.prefix", "devid/")
	v.SetDefault("storage.s3.access_key_id", "")
	v.SetDefault("storage.s3.secret_access_key", "")
	v.SetDefault("storage.s3.use_path_style", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// Conventional names that do not follow the DEVID_ prefix
	v.BindEnv("server.port", "PORT")
	v.BindEnv("database.driver", "DEVID_DATABASE_DRIVER", "DB_DRIVER")
	v.BindEnv("database.host", "DEVID_DATABASE_HOST", "DB_HOST")
	v.BindEnv("database.port", "DEVID_DATABASE_PORT", "DB_PORT")
	v.BindEnv("database.user", "DEVID_DATABASE_USER", "DB_USER")
	v.BindEnv("database.password", "DEVID_DATABASE_PASSWORD", "DB_PASSWORD")
	v.BindEnv("database.dbname", "DEVID_DATABASE_DBNAME", "DB_NAME")
	v.BindEnv("database.sslmode", "DEVID_DATABASE_SSLMODE", "DB_SSLMODE")
	v.BindEnv("database.file_path", "DEVID_DATABASE_FILE_PATH", "DB_FILE_PATH")
	v.BindEnv("storage.s3.access_key_id", "AWS_ACCESS_KEY_ID")
	v.BindEnv("storage.s3.secret_access_key", "AWS_SECRET_ACCESS_KEY")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

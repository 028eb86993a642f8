package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Keys de configuración. El nombre de la env var es la key en mayúsculas
// (p.ej. api_base_url => API_BASE_URL).
const (
	KeyAPIBaseURL        = "api_base_url"
	KeyAPITimeout        = "api_timeout"
	KeyPort              = "port"
	KeyDBDSN             = "db_dsn"
	KeyLogLevel          = "log_level"
	KeyLogFormat         = "log_format"
	KeyAppName           = "app_name"
	KeySessionPath       = "session_path"
	KeyPageSize          = "page_size"
	KeyDirectoryCacheTTL = "directory_cache_ttl"
	KeyExportDir         = "export_dir"
)

type Config struct {
	APIBaseURL string
	APITimeout time.Duration

	Port  string
	DBDSN string // opcional: si viene, el log de reportes va a Postgres

	LogLevel  string
	LogFormat string
	AppName   string

	SessionPath string // archivo bbolt donde se guarda el token

	PageSize          int
	DirectoryCacheTTL time.Duration
	ExportDir         string
}

// SetDefaults registra los defaults en v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAPIBaseURL, "http://localhost:8000")
	v.SetDefault(KeyAPITimeout, 10*time.Second)
	v.SetDefault(KeyPort, "8080")
	v.SetDefault(KeyDBDSN, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyAppName, "animal-control-admin")
	v.SetDefault(KeySessionPath, "session.db")
	v.SetDefault(KeyPageSize, 10)
	v.SetDefault(KeyDirectoryCacheTTL, 5*time.Minute)
	v.SetDefault(KeyExportDir, ".")
}

// NewViper arma un viper con defaults + env (+ .env si existe) + config file opcional.
func NewViper(configFile string) (*viper.Viper, error) {
	// .env es opcional (dev); si no existe seguimos.
	_ = godotenv.Load()

	v := viper.New()
	SetDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(configFile) != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}
	return v, nil
}

// FromViper convierte y valida.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		APIBaseURL:        strings.TrimRight(strings.TrimSpace(v.GetString(KeyAPIBaseURL)), "/"),
		APITimeout:        v.GetDuration(KeyAPITimeout),
		Port:              strings.TrimSpace(v.GetString(KeyPort)),
		DBDSN:             strings.TrimSpace(v.GetString(KeyDBDSN)),
		LogLevel:          v.GetString(KeyLogLevel),
		LogFormat:         v.GetString(KeyLogFormat),
		AppName:           v.GetString(KeyAppName),
		SessionPath:       strings.TrimSpace(v.GetString(KeySessionPath)),
		PageSize:          v.GetInt(KeyPageSize),
		DirectoryCacheTTL: v.GetDuration(KeyDirectoryCacheTTL),
		ExportDir:         strings.TrimSpace(v.GetString(KeyExportDir)),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return errors.New("config: api_base_url is required")
	}
	if _, err := url.ParseRequestURI(c.APIBaseURL); err != nil {
		return fmt.Errorf("config: invalid api_base_url: %w", err)
	}
	if c.APITimeout <= 0 {
		return errors.New("config: api_timeout must be > 0")
	}
	if c.PageSize < 1 {
		return errors.New("config: page_size must be >= 1")
	}
	if c.Port == "" {
		return errors.New("config: port is required")
	}
	return nil
}

// Addr devuelve ":<port>".
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

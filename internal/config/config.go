package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/Keddaaa/Aurane/internal/platform"
)

// Backend names
const (
	BackendCatalog  = "catalog"
	BackendWebFonts = "webfonts"
)

// Log output formats
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

const (
	envPrefix        = "AURANE"
	configName       = "config"
	configType       = "toml"
	defaultLimit     = 50
	defaultLogLevel  = "info"
	defaultLogFormat = LogFormatConsole
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the process configuration, read from config.toml and AURANE_* variables.
type Config struct {
	Backend  string         `mapstructure:"backend" toml:"backend" json:"backend"`
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	Catalog  CatalogConfig  `mapstructure:"catalog" toml:"catalog" json:"catalog"`
	WebFonts WebFontsConfig `mapstructure:"webfonts" toml:"webfonts" json:"webfonts"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
}

// DatabaseConfig locates the local catalog database
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// CatalogConfig tunes the local catalog backend
type CatalogConfig struct {
	Limit int `mapstructure:"limit" toml:"limit" json:"limit"`
}

// WebFontsConfig configures the Google Web Fonts backend
type WebFontsConfig struct {
	APIKey   string `mapstructure:"api_key" toml:"api_key" json:"api_key"`
	Endpoint string `mapstructure:"endpoint" toml:"endpoint" json:"endpoint"`
	Limit    int    `mapstructure:"limit" toml:"limit" json:"limit"`
}

// LoggingConfig selects log verbosity and output format
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level"`
	Format string `mapstructure:"format" toml:"format" json:"format"`
}

// Load reads configuration. An explicit path must exist; without one the
// user config directory and the working directory are searched and a
// missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file at %s: %w", path, err)
		}
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		if dir, err := platform.GetConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	normalize(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Backend:  BackendCatalog,
		Catalog:  CatalogConfig{Limit: defaultLimit},
		WebFonts: WebFontsConfig{Limit: defaultLimit},
		Logging:  LoggingConfig{Level: defaultLogLevel, Format: defaultLogFormat},
	}
}

// Validate checks backend selection and limits
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendCatalog:
	case BackendWebFonts:
		if strings.TrimSpace(c.WebFonts.APIKey) == "" {
			return fmt.Errorf("%w: webfonts backend requires webfonts.api_key", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
	}

	if c.Catalog.Limit < 1 {
		return fmt.Errorf("%w: catalog.limit must be positive, got %d", ErrInvalidConfig, c.Catalog.Limit)
	}
	if c.WebFonts.Limit < 1 {
		return fmt.Errorf("%w: webfonts.limit must be positive, got %d", ErrInvalidConfig, c.WebFonts.Limit)
	}
	return ValidateLogFormat(c.Logging.Format)
}

// ValidateLogFormat rejects anything but console or json
func ValidateLogFormat(format string) error {
	switch format {
	case LogFormatConsole, LogFormatJSON:
		return nil
	}
	return fmt.Errorf("%w: unknown logging.format %q", ErrInvalidConfig, format)
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("backend", d.Backend)
	v.SetDefault("database.path", "")
	v.SetDefault("catalog.limit", d.Catalog.Limit)
	v.SetDefault("webfonts.api_key", "")
	v.SetDefault("webfonts.endpoint", "")
	v.SetDefault("webfonts.limit", d.WebFonts.Limit)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

func normalize(cfg *Config) {
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	if cfg.Backend == "" {
		cfg.Backend = BackendCatalog
	}
	cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = defaultLogFormat
	}
}

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// DefaultAPIURL is the books API address used when nothing else is configured.
const DefaultAPIURL = "http://localhost:5000"

// Config defines the app configuration.
type Config struct {
	Server struct {
		Port int    `yaml:"port" env:"PORT" validate:"min=1,max=65535"`
		Env  string `yaml:"env" env:"ENV" validate:"oneof=development staging production"`
	} `yaml:"server"`
	API struct {
		BaseURL string `yaml:"base_url" env:"CATALOG_API_URL" validate:"required,url"`
	} `yaml:"api"`
	Session struct {
		TTL        time.Duration `yaml:"ttl" env:"SESSIONTTL" validate:"gt=0"`
		CookieName string        `yaml:"cookie_name" env:"SESSIONCOOKIE" validate:"required"`
	} `yaml:"session"`
	Limiter struct {
		RPS     float64 `yaml:"rps" env:"RPS" validate:"gte=0"`
		Burst   int     `yaml:"burst" env:"BURST" validate:"gte=0"`
		Enabled bool    `yaml:"enabled" env:"LENABLED"`
	} `yaml:"limiter"`
	Metrics struct {
		Enabled bool `yaml:"enabled" env:"MENABLED"`
	} `yaml:"metrics"`
	BasicAuth struct {
		Username     string `yaml:"username" env:"AUTHUSERNAME"`
		PasswordHash string `yaml:"password_hash" env:"AUTHPASSWORDHASH" validate:"required_with=Username"`
	} `yaml:"basic_auth"`
	Log struct {
		Level string `yaml:"level" env:"LOGLEVEL" validate:"oneof=debug info error fatal off"`
	} `yaml:"log"`
	Seed struct {
		Enabled bool `yaml:"enabled" env:"SEED"`
	} `yaml:"seed"`
}

// Default returns the configuration used when neither a file nor the environment
// say otherwise.
func Default() Config {
	var cfg Config
	cfg.Server.Port = 4000
	cfg.Server.Env = "development"
	cfg.API.BaseURL = DefaultAPIURL
	cfg.Session.TTL = 30 * time.Minute
	cfg.Session.CookieName = "catalog_session"
	cfg.Limiter.RPS = 4
	cfg.Limiter.Burst = 8
	cfg.Limiter.Enabled = true
	cfg.Log.Level = "info"
	return cfg
}

// Decode layers the YAML file at path (when it exists) and then the environment on
// top of Default. A missing file is not an error.
func Decode(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return cfg, fmt.Errorf("config: read %s: %w", path, err)
			}
			return cfg, nil
		case !errors.Is(err, fs.ErrNotExist):
			return cfg, fmt.Errorf("config: %w", err)
		}
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("config: read environment: %w", err)
	}
	return cfg, nil
}

// Validate checks the structural constraints declared on Config. The log level is
// compared case-insensitively, as jsonlog.ParseLevel reads it.
func (c Config) Validate() error {
	c.Log.Level = strings.ToLower(c.Log.Level)
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("config: %s failed %q validation", fe.Namespace(), fe.Tag())
	}
	return fmt.Errorf("config: %w", err)
}

// Dump writes the configuration to w as YAML.
func (c Config) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

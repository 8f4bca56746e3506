// Package config loads server settings from defaults, an optional YAML file
// and PORTFOLIO_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks the environment overrides. A double underscore nests:
// PORTFOLIO_RELAY__SERVICE_ID sets relay.service_id.
const EnvPrefix = "PORTFOLIO_"

type Log struct {
	Level string `yaml:"level" koanf:"level" validate:"oneof=trace debug info warn error"`
	Human bool   `yaml:"human" koanf:"human"`
	File  string `yaml:"file" koanf:"file"`
}

type SMTP struct {
	Host string `yaml:"host" koanf:"host"`
	Port string `yaml:"port" koanf:"port"`
	User string `yaml:"user" koanf:"user"`
	Pass string `yaml:"pass" koanf:"pass"`
	To   string `yaml:"to" koanf:"to"`
}

type Relay struct {
	Provider   string `yaml:"provider" koanf:"provider" validate:"oneof=emailjs smtp"`
	Endpoint   string `yaml:"endpoint" koanf:"endpoint" validate:"omitempty,url"`
	ServiceID  string `yaml:"service_id" koanf:"service_id" validate:"required_if=Provider emailjs"`
	TemplateID string `yaml:"template_id" koanf:"template_id" validate:"required_if=Provider emailjs"`
	PublicKey  string `yaml:"public_key" koanf:"public_key" validate:"required_if=Provider emailjs"`
	PrivateKey string `yaml:"private_key" koanf:"private_key"`
	SMTP       SMTP   `yaml:"smtp" koanf:"smtp"`
}

type Session struct {
	TTL   time.Duration `yaml:"ttl" koanf:"ttl" validate:"gt=0"`
	Sweep time.Duration `yaml:"sweep" koanf:"sweep" validate:"gt=0"`

	// MaxPages bounds live pages; the idlest one is evicted when full.
	MaxPages int `yaml:"max_pages" koanf:"max_pages" validate:"gt=0"`
}

// Config is the full server configuration.
type Config struct {
	Port        string  `yaml:"port" koanf:"port" validate:"required,numeric"`
	Mode        string  `yaml:"mode" koanf:"mode" validate:"oneof=debug release test"`
	AssetsDir   string  `yaml:"assets_dir" koanf:"assets_dir" validate:"required"`
	ContentFile string  `yaml:"content_file" koanf:"content_file"`
	Log         Log     `yaml:"log" koanf:"log"`
	Relay       Relay   `yaml:"relay" koanf:"relay"`
	Session     Session `yaml:"session" koanf:"session"`
}

// Default returns the built-in settings. The relay ids are the public EmailJS
// identifiers the site was published with.
//
// EmailJS refuses calls from servers unless the account enables API access
// for non-browser applications. Set relay.private_key for an account that
// requires it, or switch relay.provider to smtp.
func Default() *Config {
	return &Config{
		Port:      "8080",
		Mode:      "release",
		AssetsDir: "./assets",
		Log:       Log{Level: "info"},
		Relay: Relay{
			Provider:   "emailjs",
			ServiceID:  "service_6s8k59i",
			TemplateID: "template_bclueju",
			PublicKey:  "E9vb1jRf2CGY2Rnbl",
		},
		Session: Session{TTL: 30 * time.Minute, Sweep: time.Minute, MaxPages: 10000},
	}
}

var validate = validator.New()

// Load reads path when it exists, then applies environment overrides. The
// bare PORT variable wins over everything, as hosting platforms expect.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Validate checks value ranges and required relay settings.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}

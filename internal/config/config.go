// internal/config/config.go
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Addr            string `yaml:"addr" json:"addr" validate:"required"`
		Port            int    `yaml:"port" json:"port" validate:"min=1,max=65535"`
		ShutdownSeconds int    `yaml:"shutdown_seconds" json:"shutdown_seconds" validate:"gte=0"`
		MaxBodyBytes    int64  `yaml:"max_body_bytes" json:"max_body_bytes" validate:"gt=0"`
		FormFile        string `yaml:"form_file" json:"form_file"`
	} `yaml:"server" json:"server"`

	Output struct {
		Notice   string `yaml:"notice" json:"notice" validate:"required"`
		Template string `yaml:"template" json:"template" validate:"required"`
		Parallel int    `yaml:"parallel" json:"parallel" validate:"gte=1,lte=64"`
	} `yaml:"output" json:"output"`

	Draft struct {
		Enabled           bool    `yaml:"enabled" json:"enabled"`
		Endpoint          string  `yaml:"endpoint" json:"endpoint" validate:"omitempty,url"`
		Model             string  `yaml:"model" json:"model" validate:"required_if=Enabled true"`
		RequestsPerMinute float64 `yaml:"requests_per_minute" json:"requests_per_minute" validate:"gte=0"`
		Burst             int     `yaml:"burst" json:"burst" validate:"gte=0"`
		TimeoutSeconds    int     `yaml:"timeout_seconds" json:"timeout_seconds" validate:"gte=0"`
	} `yaml:"draft" json:"draft"`

	Log struct {
		Level string `yaml:"level" json:"level" validate:"omitempty,oneof=debug info warn error"`
		JSON  bool   `yaml:"json" json:"json"`
	} `yaml:"log" json:"log"`
}

func Default() Config {
	var cfg Config
	cfg.Server.Addr = "127.0.0.1"
	cfg.Server.Port = 8000
	cfg.Server.ShutdownSeconds = 5
	cfg.Server.MaxBodyBytes = 1 << 20

	cfg.Output.Notice = "notice_a4.pptx"
	cfg.Output.Template = "notice_template.pptx"
	cfg.Output.Parallel = 4

	cfg.Draft.Endpoint = "https://api.openai.com/v1/chat/completions"
	cfg.Draft.Model = "gpt-4o-mini"
	cfg.Draft.RequestsPerMinute = 20
	cfg.Draft.Burst = 2
	cfg.Draft.TimeoutSeconds = 60

	cfg.Log.Level = "info"
	return cfg
}

// Load reads path over the defaults, so keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownSeconds) * time.Second
}

func (c Config) DraftTimeout() time.Duration {
	return time.Duration(c.Draft.TimeoutSeconds) * time.Second
}

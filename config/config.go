package config

import (
	"fmt"
	"net/url"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/samber/lo"
)

const (
	OutputText     = "text"
	OutputMarkdown = "markdown"
	OutputHTML     = "html"
)

var outputs = []string{OutputText, OutputMarkdown, OutputHTML}

type Config struct {
	BaseURL        string        `env:"TONE_API_URL,required=true"`
	LogLevel       string        `env:"LOG_LEVEL,default=info"`
	Colors         bool          `env:"TONE_COLORS,default=true"`
	Output         string        `env:"TONE_OUTPUT,default=text"`
	HealthInterval time.Duration `env:"TONE_HEALTHCHECK_INTERVAL,default=15s"`
}

// Load reads the process environment. Call LoadEnv first to pick up a .env file.
func Load() (Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return cfg, fmt.Errorf("config error: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("TONE_API_URL must be an absolute URL, got %q", c.BaseURL)
	}
	if !lo.Contains(outputs, c.Output) {
		return fmt.Errorf("TONE_OUTPUT must be one of %v, got %q", outputs, c.Output)
	}
	return nil
}

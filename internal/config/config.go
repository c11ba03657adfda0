package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "TIPCALC_"

// Theme names accepted by TIPCALC_THEME.
const (
	ThemeRosePineMoon = "rose-pine-moon"
	ThemeRosePineDawn = "rose-pine-dawn"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	LogLevel    string
	LogFile     string
	Theme       string
	SliderSteps int
}

// Load reads configuration from TIPCALC_* environment variables and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		LogLevel:    strings.ToLower(valueOrDefault(k.String("log_level"), "info")),
		LogFile:     valueOrDefault(k.String("log_file"), "tip-calculator.log"),
		Theme:       strings.ToLower(valueOrDefault(k.String("theme"), ThemeRosePineMoon)),
		SliderSteps: 10,
	}

	if raw := strings.TrimSpace(k.String("slider_steps")); raw != "" {
		steps, err := strconv.Atoi(raw)
		if err != nil || steps < 1 || steps > 100 {
			return nil, fmt.Errorf("TIPCALC_SLIDER_STEPS must be between 1 and 100, got %q", raw)
		}
		cfg.SliderSteps = steps
	}

	switch cfg.Theme {
	case ThemeRosePineMoon, ThemeRosePineDawn:
	default:
		return nil, fmt.Errorf("unknown theme %q", cfg.Theme)
	}

	return cfg, nil
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

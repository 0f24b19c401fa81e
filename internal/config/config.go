package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	App    App    `mapstructure:",squash"`
	Output Output `mapstructure:",squash"`
	Remote Remote `mapstructure:",squash"`
}

type App struct {
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`
}

// Output controls where and in which formats results are written.
type Output struct {
	Dir  string `mapstructure:"output_dir"`
	XLSX bool   `mapstructure:"xlsx_report"`
}

// Remote bounds the fetch of http(s) catalog and sales sources.
type Remote struct {
	Timeout  time.Duration `mapstructure:"http_timeout"`
	MaxRetry time.Duration `mapstructure:"http_max_retry"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "local")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("OUTPUT_DIR", ".")
	v.SetDefault("XLSX_REPORT", false)

	v.SetDefault("HTTP_TIMEOUT", "15s")
	v.SetDefault("HTTP_MAX_RETRY", "30s")
}

// Load reads .env (when present) and the process environment on top of the
// defaults.
func Load() (*Config, error) {
	_ = godotenv.Load() // loads .env

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{}
	err := v.Unmarshal(cfg, viper.DecodeHook(mapstructure.StringToTimeDurationHookFunc()))
	if err != nil {
		return nil, err
	}

	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "."
	}
	return cfg, nil
}

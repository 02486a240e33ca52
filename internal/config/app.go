package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type Oracle struct {
	PrivateKey        string   `mapstructure:"private_key"`
	TrustedClientKeys []string `mapstructure:"trusted_client_keys"`
}

// Credentials returns the configured client keys with blanks removed.
func (o Oracle) Credentials() []string {
	creds := make([]string, 0, len(o.TrustedClientKeys))
	for _, raw := range o.TrustedClientKeys {
		// env values arrive as one comma separated string
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				creds = append(creds, c)
			}
		}
	}
	return creds
}

// PriceSource.URL overrides the public price API endpoint; empty keeps the default.
type PriceSource struct {
	URL            string `mapstructure:"url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type RateLimit struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type AppConfig struct {
	HTTPServer  HTTPServer  `mapstructure:"http_server"`
	Logging     Logging     `mapstructure:"logging"`
	Oracle      Oracle      `mapstructure:"oracle"`
	PriceSource PriceSource `mapstructure:"price_source"`
	RateLimit   RateLimit   `mapstructure:"rate_limit"`
}

// Init loads .env and config.yaml from the working directory (both optional) and overlays env vars.
func Init() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return load(v)
}

func load(v *viper.Viper) (*AppConfig, error) {
	var cfg AppConfig

	v.SetDefault("http_server.port", "8080")
	v.SetDefault("logging.level", "info")
	v.SetDefault("price_source.timeout_seconds", 10)
	v.SetDefault("rate_limit.rps", 0)
	v.SetDefault("rate_limit.burst", 10)

	// http server env vars
	_ = v.BindEnv("http_server.port", "HTTP_PORT", "PORT")
	_ = v.BindEnv("logging.level", "LOG_LEVEL")

	// oracle env vars
	_ = v.BindEnv("oracle.private_key", "ORACLE_PRIVATE_KEY")
	_ = v.BindEnv("oracle.trusted_client_keys", "TRUSTED_CLIENT_KEYS")

	// price source env vars
	_ = v.BindEnv("price_source.url", "PRICE_API_URL")
	_ = v.BindEnv("price_source.timeout_seconds", "PRICE_API_TIMEOUT_SECONDS")

	_ = v.BindEnv("rate_limit.rps", "RATE_LIMIT_RPS")
	_ = v.BindEnv("rate_limit.burst", "RATE_LIMIT_BURST")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if strings.TrimSpace(cfg.Oracle.PrivateKey) == "" {
		return nil, errors.New("oracle private key is required (ORACLE_PRIVATE_KEY)")
	}
	cfg.PriceSource.URL = strings.TrimSpace(cfg.PriceSource.URL)
	return &cfg, nil
}

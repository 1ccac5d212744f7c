// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package shared

import (
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config is resolved once at startup and handed to every component.
// Business logic never reads the environment on its own.
type Config struct {
	Port        int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Environment string `mapstructure:"environment" validate:"required"`
	LogLevel    string `mapstructure:"logLevel" validate:"oneof=debug info warn error"`

	SiteURL         string `mapstructure:"siteUrl" validate:"required,url"`
	WordPressAPIURL string `mapstructure:"wordpressApiUrl" validate:"required,url"`

	UpstreamCacheTTL  time.Duration `mapstructure:"upstreamCacheTtl" validate:"gte=0"`
	UpstreamCacheSize int           `mapstructure:"upstreamCacheSize" validate:"gte=0"`
	// requests per second, 0 disables the limiter
	UpstreamRateLimit float64 `mapstructure:"upstreamRateLimit" validate:"gte=0"`

	CORSOrigins []string `mapstructure:"corsOrigins"`

	GAMeasurementID string `mapstructure:"gaMeasurementId"`
	GAAPISecret     string `mapstructure:"gaApiSecret"`

	ErrorTrackingDSN string `mapstructure:"errorTrackingDsn"`
	OTelEndpoint     string `mapstructure:"otelEndpoint"`
}

func (c Config) IsDev() bool {
	return c.Environment == "dev"
}

func (c Config) AnalyticsEnabled() bool {
	return c.GAMeasurementID != "" && c.GAAPISecret != ""
}

var configDefaults = map[string]any{
	"port":              8080,
	"environment":       "dev",
	"logLevel":          "info",
	"siteUrl":           "http://localhost:3000",
	"wordpressApiUrl":   "http://localhost:8000/wp-json/wp/v2",
	"upstreamCacheTtl":  15 * time.Minute,
	"upstreamCacheSize": 256,
	"upstreamRateLimit": 10.0,
	"corsOrigins":       []string{"http://localhost:3000"},
	"gaMeasurementId":   "",
	"gaApiSecret":       "",
	"errorTrackingDsn":  "",
	"otelEndpoint":      "",
}

// the first name is the preferred one, the others are kept for existing deployments
var configEnv = map[string][]string{
	"port":              {"VPENG_PORT", "PORT"},
	"environment":       {"VPENG_ENVIRONMENT", "ENVIRONMENT"},
	"logLevel":          {"VPENG_LOG_LEVEL"},
	"siteUrl":           {"VPENG_SITE_URL", "NUXT_PUBLIC_SITE_URL"},
	"wordpressApiUrl":   {"VPENG_WORDPRESS_API_URL", "NUXT_PUBLIC_WP_API_URL"},
	"upstreamCacheTtl":  {"VPENG_UPSTREAM_CACHE_TTL"},
	"upstreamCacheSize": {"VPENG_UPSTREAM_CACHE_SIZE"},
	"upstreamRateLimit": {"VPENG_UPSTREAM_RATE_LIMIT"},
	"corsOrigins":       {"VPENG_CORS_ORIGINS"},
	"gaMeasurementId":   {"VPENG_GA_MEASUREMENT_ID", "NUXT_PUBLIC_GA_MEASUREMENT_ID"},
	"gaApiSecret":       {"VPENG_GA_API_SECRET"},
	"errorTrackingDsn":  {"VPENG_ERROR_TRACKING_DSN", "ERROR_TRACKING_DSN"},
	"otelEndpoint":      {"VPENG_OTEL_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT"},
}

// LoadAppConfig resolves the configuration from defaults, an optional config file and
// the environment (in that order of precedence, lowest first).
func LoadAppConfig(cfgFile string) (Config, error) {
	v := viper.New()

	for key, val := range configDefaults {
		v.SetDefault(key, val)
	}

	for key, envs := range configEnv {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return Config{}, errors.Wrapf(err, "could not bind env for %s", key)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/vpeng/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return Config{}, errors.Wrap(err, "could not read config file")
		}
		slog.Debug("no config file found, using defaults and environment")
	} else {
		slog.Info("using config file", "file", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "could not decode config")
	}

	cfg.SiteURL = strings.TrimSuffix(cfg.SiteURL, "/")
	cfg.WordPressAPIURL = strings.TrimSuffix(cfg.WordPressAPIURL, "/")

	if err := V.Struct(cfg); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

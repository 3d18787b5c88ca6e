package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// OrderSourceFixture serves orders from a local JSON fixture.
	OrderSourceFixture = "fixture"
	// OrderSourceHTTP serves orders from the upstream storefront API.
	OrderSourceHTTP = "http"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// Cross-field rules are checked by validate after decoding.
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	Orders     OrdersConfig     `mapstructure:",squash"`
	Cache      CacheConfig      `mapstructure:",squash"`
	Thumbnails ThumbnailsConfig `mapstructure:",squash"`
	Pagination PaginationConfig `mapstructure:",squash"`
	Carriers   CarriersConfig   `mapstructure:",squash"`
	Proxy      ProxyConfig      `mapstructure:",squash"`
}

// OrdersConfig selects and configures the order repository.
type OrdersConfig struct {
	// Source is either "fixture" or "http".
	Source string `mapstructure:"ORDER_SOURCE" default:"fixture"`
	// FixturePath is the JSON file read when Source is "fixture".
	FixturePath string `mapstructure:"ORDER_FIXTURE_PATH" default:"data/orders.json"`
	// APIURL is the base URL of the upstream storefront API.
	APIURL string `mapstructure:"ORDERS_API_URL"`
	// APIKey is sent as X-API-Key to the upstream API.
	APIKey string `mapstructure:"ORDERS_API_KEY"`
	// TimeoutSeconds bounds each upstream request.
	TimeoutSeconds int `mapstructure:"ORDERS_API_TIMEOUT_SECONDS" default:"10"`
}

// Timeout returns the upstream request timeout.
func (c OrdersConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CacheConfig configures the Redis read-through cache. An empty URL disables it.
type CacheConfig struct {
	RedisURL        string `mapstructure:"REDIS_URL"`
	OrderTTLSeconds int    `mapstructure:"ORDER_CACHE_TTL_SECONDS" default:"300"`
}

// OrderTTL returns how long a fetched order stays cached.
func (c CacheConfig) OrderTTL() time.Duration {
	return time.Duration(c.OrderTTLSeconds) * time.Second
}

// ThumbnailsConfig holds the default item thumbnail geometry in pixels.
type ThumbnailsConfig struct {
	TilePx int `mapstructure:"THUMB_TILE_PX" default:"64"`
	GapPx  int `mapstructure:"THUMB_GAP_PX" default:"8"`
}

// PaginationConfig bounds order history pages.
type PaginationConfig struct {
	DefaultPageSize int `mapstructure:"DEFAULT_PAGE_SIZE" default:"10"`
	MaxPageSize     int `mapstructure:"MAX_PAGE_SIZE" default:"50"`
}

// CarriersConfig holds tracking page URL templates; %s is replaced by the tracking number.
type CarriersConfig struct {
	UPSURL   string `mapstructure:"CARRIER_UPS_URL" default:"https://www.ups.com/track?tracknum=%s"`
	USPSURL  string `mapstructure:"CARRIER_USPS_URL" default:"https://tools.usps.com/go/TrackConfirmAction?tLabels=%s"`
	FedExURL string `mapstructure:"CARRIER_FEDEX_URL" default:"https://www.fedex.com/fedextrack/?trknbr=%s"`
	DHLURL   string `mapstructure:"CARRIER_DHL_URL" default:"https://www.dhl.com/us-en/home/tracking.html?tracking-id=%s"`
}

// ProxyConfig configures an optional outbound proxy for upstream calls.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"PROXY_ENABLED"`
	Hostname string `mapstructure:"PROXY_HOST"`
	Port     int    `mapstructure:"PROXY_PORT"`
	Username string `mapstructure:"PROXY_USERNAME"`
	Password string `mapstructure:"PROXY_PASSWORD"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// validate checks rules that span several fields.
func (c *AppConfig) validate() error {
	c.Orders.Source = strings.ToLower(strings.TrimSpace(c.Orders.Source))

	switch c.Orders.Source {
	case OrderSourceFixture:
		if c.Orders.FixturePath == "" {
			return fmt.Errorf("missing required configuration: ORDER_FIXTURE_PATH")
		}
	case OrderSourceHTTP:
		if c.Orders.APIURL == "" {
			return fmt.Errorf("missing required configuration: ORDERS_API_URL")
		}
	default:
		return fmt.Errorf("invalid ORDER_SOURCE %q: must be %q or %q", c.Orders.Source, OrderSourceFixture, OrderSourceHTTP)
	}

	if c.Pagination.DefaultPageSize <= 0 || c.Pagination.MaxPageSize < c.Pagination.DefaultPageSize {
		return fmt.Errorf("invalid pagination: DEFAULT_PAGE_SIZE=%d MAX_PAGE_SIZE=%d",
			c.Pagination.DefaultPageSize, c.Pagination.MaxPageSize)
	}

	if c.Thumbnails.TilePx <= 0 || c.Thumbnails.GapPx < 0 {
		return fmt.Errorf("invalid thumbnail geometry: THUMB_TILE_PX=%d THUMB_GAP_PX=%d",
			c.Thumbnails.TilePx, c.Thumbnails.GapPx)
	}

	return nil
}

// processTags iterates over the struct fields, binds env keys and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("failed to bind env %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

package app

import (
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the complete application configuration, loadable from
// environment variables (SNAPBUY_ prefix), flags, or YAML config files.
type Config struct {
	BaseURL   string        `usage:"Remote API base URL (SNAPBUY_BASE_URL)" flag:"base-url"`
	APIKey    string        `usage:"Store API key sent with every request (SNAPBUY_API_KEY)" flag:"api-key"`
	TokenFile string        `default:".snapbuy_token" usage:"Path of the persisted session token" flag:"token-file"`
	CacheTTL  time.Duration `default:"5m" usage:"Catalog response cache TTL" flag:"cache-ttl"`
	Timeout   time.Duration `default:"30s" usage:"Per-request HTTP timeout"`
	Throttle  ThrottleConfig

	Command string `default:"store" usage:"Command to run: store, products, product, delivery, login, me, orders, order, submit"`

	ProductID string `usage:"Product id for the product command" flag:"product-id"`
	Quantity  int    `default:"1" usage:"Quantity used when resolving prices"`
	Limit     int    `usage:"Page size for listing commands"`
	StartAt   string `usage:"Pagination cursor for listing commands" flag:"start-at"`
	OrderID   string `usage:"Order id for the order command" flag:"order-id"`
	Username  string `usage:"Username for the login command"`
	Password  string `usage:"Password for the login command"`
	DraftFile string `usage:"Path of the order draft JSON for the submit command" flag:"draft-file"`
}

// ThrottleConfig controls the outbound sliding window throttle.
type ThrottleConfig struct {
	Max    int           `default:"60" usage:"Max outbound requests per window"`
	Window time.Duration `default:"1m" usage:"Throttle window duration"`
}

// LoadConfig loads configuration from flags, environment variables, and
// YAML config files.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "SNAPBUY",
		Files:     []string{"config.yaml", "/etc/snapbuy/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required: set SNAPBUY_BASE_URL")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("API key is required: set SNAPBUY_API_KEY")
	}

	return &cfg, nil
}

package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	Checkout  CheckoutConfig
	Password  PasswordConfig
	Inventory InventoryConfig
	Seed      SeedConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Checkout.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"KUKUHUB_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"KUKUHUB_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"KUKUHUB_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// CheckoutConfig carries the flat order pricing knobs. Amounts are
// whole Ugandan shillings.
type CheckoutConfig struct {
	DeliveryFee int `envconfig:"KUKUHUB_CHECKOUT_DELIVERY_FEE" default:"5000"`
	Discount    int `envconfig:"KUKUHUB_CHECKOUT_DISCOUNT" default:"0"`
}

func (c CheckoutConfig) validate() error {
	if c.DeliveryFee < 0 {
		return fmt.Errorf("%s must be non-negative", EnvCheckoutDeliveryFee)
	}
	if c.Discount < 0 {
		return fmt.Errorf("%s must be non-negative", EnvCheckoutDiscount)
	}
	return nil
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"KUKUHUB_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"KUKUHUB_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"KUKUHUB_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"KUKUHUB_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"KUKUHUB_ARGON_KEY_LEN" default:"32"`
}

type InventoryConfig struct {
	LowStockThreshold int `envconfig:"KUKUHUB_INVENTORY_LOW_STOCK_THRESHOLD" default:"50"`
}

type SeedConfig struct {
	DemoData bool `envconfig:"KUKUHUB_SEED_DEMO_DATA" default:"true"`
}

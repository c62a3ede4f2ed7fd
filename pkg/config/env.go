package config

// EnvPrefix is passed to envconfig; field tags carry the full names.
const EnvPrefix = "kukuhub"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv              = "KUKUHUB_APP_ENV"
	EnvLogLevel            = "KUKUHUB_LOG_LEVEL"
	EnvCheckoutDeliveryFee = "KUKUHUB_CHECKOUT_DELIVERY_FEE"
	EnvCheckoutDiscount    = "KUKUHUB_CHECKOUT_DISCOUNT"
	EnvLowStockThreshold   = "KUKUHUB_INVENTORY_LOW_STOCK_THRESHOLD"
	EnvSeedDemoData        = "KUKUHUB_SEED_DEMO_DATA"
)

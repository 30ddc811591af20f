package domain

// Config defines the config for the router query server.
type Config struct {
	// Defines the web server configuration.
	ServerAddress string `mapstructure:"server-address"`

	// Defines the logger configuration.
	LoggerFilename     string `mapstructure:"logger-filename"`
	LoggerIsProduction bool   `mapstructure:"logger-is-production"`
	LoggerLevel        string `mapstructure:"logger-level"`

	// Sentry DSN. Error reporting is disabled when empty.
	SentryDSN string `mapstructure:"sentry-dsn"`

	// Router encapsulates the router config.
	Router *RouterConfig `mapstructure:"router"`

	// Options encapsulates the option exercise config.
	Options *OptionsConfig `mapstructure:"options"`

	CORS *CORSConfig `mapstructure:"cors"`
}

// RouterConfig defines the router-specific config.
type RouterConfig struct {
	// MaxHops caps the number of hops accepted in a single route.
	MaxHops int `mapstructure:"max-hops"`

	// RouterAccount is the transient account the router moves funds through.
	RouterAccount string `mapstructure:"router-account"`
}

// OptionsConfig defines the option exercise quoter config.
type OptionsConfig struct {
	// SafetyMarginBps pads the gross exercise quote against wrapper rate
	// movement between quote and execution, in basis points.
	SafetyMarginBps int64 `mapstructure:"safety-margin-bps"`
}

// CORSConfig defines the CORS headers served by the middleware.
type CORSConfig struct {
	AllowedHeaders string `mapstructure:"allowed-headers"`
	AllowedMethods string `mapstructure:"allowed-methods"`
	AllowedOrigin  string `mapstructure:"allowed-origin"`
}

// DefaultConfig defines the default config for the router query server.
var DefaultConfig = Config{
	ServerAddress:      ":9092",
	LoggerFilename:     "router.log",
	LoggerIsProduction: true,
	LoggerLevel:        "info",
	Router: &RouterConfig{
		MaxHops:       4,
		RouterAccount: "router",
	},
	Options: &OptionsConfig{
		SafetyMarginBps: 100,
	},
	CORS: &CORSConfig{
		AllowedHeaders: "Origin, Accept, Content-Type, X-Requested-With, X-Server-Time",
		AllowedMethods: "GET, POST, PATCH, PUT, DELETE, OPTIONS",
		AllowedOrigin:  "*",
	},
}

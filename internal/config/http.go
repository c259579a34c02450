package config

import "time"

type HTTP struct {
	BaseURL string  `env:"BASE_URL,expand" envDefault:"/"`
	Address string  `env:"ADDRESS,expand" envDefault:":3002"`
	Session Session `envPrefix:"SESSION_"`
	Metrics Metrics `envPrefix:"METRICS_"`

	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

type Session struct {
	Name   string   `env:"NAME" envDefault:"feedback"`
	Keys   []string `env:"KEYS" envSeparator:","`
	Cookie Cookie   `envPrefix:"COOKIE_"`
}

type Cookie struct {
	Path     string        `env:"PATH" envDefault:"/"`
	HTTPOnly bool          `env:"HTTP_ONLY" envDefault:"true"`
	Secure   bool          `env:"SECURE" envDefault:"false"`
	MaxAge   time.Duration `env:"MAX_AGE" envDefault:"1h"`
}

type Metrics struct {
	Enabled bool `env:"ENABLED" envDefault:"true"`
}

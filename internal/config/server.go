package config

type ServerConfig struct {
	HTTP HTTPConfig `yaml:"http"`
}

type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST"`
	Port int    `yaml:"port" env:"PORT"`

	// RateLimit is the allowed sustained request rate per client IP.
	// Zero disables the limiter.
	RateLimit float64 `yaml:"rate_limit"`
	// RateBurst is the short-term burst allowance on top of RateLimit.
	RateBurst int `yaml:"rate_burst"`
}

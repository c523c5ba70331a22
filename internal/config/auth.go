package config

import "time"

// AuthConfig holds session, cookie and lockout policy settings.
type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret" env:"JWT_SECRET"`
	TokenTTL   time.Duration `yaml:"token_ttl"`
	CookieName string        `yaml:"cookie_name" env:"COOKIE_NAME"`

	LockoutThreshold int           `yaml:"lockout_threshold"`
	LockoutDuration  time.Duration `yaml:"lockout_duration"`

	ResetTokenTTL time.Duration `yaml:"reset_token_ttl"`
}

// WithDefaults fills zero fields with the policy defaults.
func (c AuthConfig) WithDefaults() AuthConfig {
	if c.TokenTTL == 0 {
		c.TokenTTL = 7 * 24 * time.Hour
	}
	if c.CookieName == "" {
		c.CookieName = "att_token"
	}
	if c.LockoutThreshold == 0 {
		c.LockoutThreshold = 5
	}
	if c.LockoutDuration == 0 {
		c.LockoutDuration = 30 * time.Minute
	}
	if c.ResetTokenTTL == 0 {
		c.ResetTokenTTL = time.Hour
	}
	return c
}

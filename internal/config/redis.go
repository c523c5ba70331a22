package config

// RedisConfig holds the optional redis connection used for publishing
// audit events. An empty Addr disables publishing entirely.
type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"`
	Channel  string `yaml:"channel"`
}

package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel       string         `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Storage        string         `yaml:"storage" env:"STORAGE" env-default:"memory"`
	Redis          Redis          `yaml:"redis"`
	SessionTTL     time.Duration  `yaml:"session-ttl" env:"SESSION_TTL" env-default:"2h"`
	PlayerNames    []string       `yaml:"player-names" env:"PLAYER_NAMES" env-default:"Player 1,Player 2"`
	CustomCategory CustomCategory `yaml:"custom-category"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type CustomCategory struct {
	MinSymbols int `yaml:"min-symbols" env:"CUSTOM_MIN_SYMBOLS" env-default:"4"`
	MaxSymbols int `yaml:"max-symbols" env:"CUSTOM_MAX_SYMBOLS" env-default:"8"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads config.yml and applies env overrides and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root process configuration, loaded once in main and passed
// down explicitly to every component that needs it.
type Config struct {
	Server ServerConfig `yaml:"server"`
	MySQL  MySQLConfig  `yaml:"mysql"`
	Redis  RedisConfig  `yaml:"redis"`
	Kafka  KafkaConfig  `yaml:"kafka"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port int `yaml:"port" env:"SERVER_PORT" env-default:"8080"`
}

// MySQLConfig holds the store connection credentials.
type MySQLConfig struct {
	Host     string `yaml:"host"     env:"MYSQL_HOST"     env-default:"127.0.0.1"`
	Port     int    `yaml:"port"     env:"MYSQL_PORT"     env-default:"3306"`
	Username string `yaml:"username" env:"MYSQL_USERNAME" env-required:"true"`
	Password string `yaml:"password" env:"MYSQL_PASSWORD" env-required:"true"`
	Database string `yaml:"database" env:"MYSQL_DATABASE" env-required:"true"`
}

// RedisConfig holds the profile cache settings. An empty Addr disables the
// cache entirely.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB" env-default:"0"`
}

// KafkaConfig holds the activity relay settings. Empty Brokers disables the
// producer; outbox rows are then drained to the log instead.
type KafkaConfig struct {
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS"`
	Topic   string   `yaml:"topic"   env:"KAFKA_TOPIC" env-default:"ocean.activity"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// DSN builds the mysql driver connection string.
func (c MySQLConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True",
		c.Username, c.Password, c.Host, c.Port, c.Database)
}

// Load reads the config file at path with env overrides. A missing file is a
// fatal startup condition surfaced to the caller.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return &cfg, nil
}

package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreMemory = "memory"
	StoreMySQL  = "mysql"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Store    StoreConfig    `yaml:"store"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Log      LogConfig      `yaml:"log"`
	Order    OrderConfig    `yaml:"order"`
	Shop     ShopConfig     `yaml:"shop"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type StoreConfig struct {
	Driver string `yaml:"driver"`
}

type DatabaseConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name"`
	MaxOpenConns    int           `yaml:"maxOpenConns"`
	MaxIdleConns    int           `yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `yaml:"connMaxLifetime"`
	Migrate         bool          `yaml:"migrate"`
}

// RedisConfig enables the report cache when Addr is set.
type RedisConfig struct {
	Addr           string        `yaml:"addr"`
	Password       string        `yaml:"password"`
	DB             int           `yaml:"db"`
	ReportCacheTTL time.Duration `yaml:"reportCacheTTL"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

type OrderConfig struct {
	MaxRetryAttempts int           `yaml:"maxRetryAttempts"`
	NumberPrefix     string        `yaml:"numberPrefix"`
	TxTimeout        time.Duration `yaml:"txTimeout"`
}

type ShopConfig struct {
	Name                string `yaml:"name"`
	City                string `yaml:"city"`
	DefaultNotes        string `yaml:"defaultNotes"`
	WhatsAppCountryCode string `yaml:"whatsAppCountryCode"`
}

var defaults = map[string]any{
	"SERVER_PORT":              8080,
	"STORE_DRIVER":             StoreMemory,
	"DB_HOST":                  "localhost",
	"DB_PORT":                  3306,
	"DB_USER":                  "senthur",
	"DB_PASSWORD":              "secret",
	"DB_NAME":                  "senthur",
	"DB_MAX_OPEN_CONNS":        25,
	"DB_MAX_IDLE_CONNS":        5,
	"DB_CONN_MAX_LIFETIME":     "5m",
	"DB_MIGRATE":               false,
	"REDIS_ADDR":               "",
	"REDIS_PASSWORD":           "",
	"REDIS_DB":                 0,
	"REPORT_CACHE_TTL":         "10m",
	"LOG_LEVEL":                "info",
	"LOG_ENCODING":             "json",
	"ORDER_MAX_RETRY_ATTEMPTS": 3,
	"ORDER_NUMBER_PREFIX":      "SS-",
	"ORDER_TX_TIMEOUT":         "5s",
	"SHOP_NAME":                "SRI SENTHUR FURNITURE",
	"SHOP_CITY":                "ERODE",
	"INVOICE_DEFAULT_NOTES":    "Thank you for your business.",
	"WHATSAPP_COUNTRY_CODE":    "91",
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() *Config {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	cfg, _ := fromViper(v)
	return cfg
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	connMaxLifetime, err := time.ParseDuration(v.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, fmt.Errorf("parsing DB_CONN_MAX_LIFETIME: %w", err)
	}
	cacheTTL, err := time.ParseDuration(v.GetString("REPORT_CACHE_TTL"))
	if err != nil {
		return nil, fmt.Errorf("parsing REPORT_CACHE_TTL: %w", err)
	}
	txTimeout, err := time.ParseDuration(v.GetString("ORDER_TX_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("parsing ORDER_TX_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetInt("SERVER_PORT"),
		},
		Store: StoreConfig{
			Driver: v.GetString("STORE_DRIVER"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
			Migrate:         v.GetBool("DB_MIGRATE"),
		},
		Redis: RedisConfig{
			Addr:           v.GetString("REDIS_ADDR"),
			Password:       v.GetString("REDIS_PASSWORD"),
			DB:             v.GetInt("REDIS_DB"),
			ReportCacheTTL: cacheTTL,
		},
		Log: LogConfig{
			Level:    v.GetString("LOG_LEVEL"),
			Encoding: v.GetString("LOG_ENCODING"),
		},
		Order: OrderConfig{
			MaxRetryAttempts: v.GetInt("ORDER_MAX_RETRY_ATTEMPTS"),
			NumberPrefix:     v.GetString("ORDER_NUMBER_PREFIX"),
			TxTimeout:        txTimeout,
		},
		Shop: ShopConfig{
			Name:                v.GetString("SHOP_NAME"),
			City:                v.GetString("SHOP_CITY"),
			DefaultNotes:        v.GetString("INVOICE_DEFAULT_NOTES"),
			WhatsAppCountryCode: v.GetString("WHATSAPP_COUNTRY_CODE"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreMemory, StoreMySQL:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Order.MaxRetryAttempts < 1 {
		return fmt.Errorf("order max retry attempts must be at least 1, got %d", c.Order.MaxRetryAttempts)
	}
	return nil
}

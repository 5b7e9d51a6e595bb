// Package config предоставляет структуры и функции для загрузки конфигурации
// из YAML-файла и переменных окружения.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек.
type Config struct {
	Env               string `yaml:"env" env:"ENV" env-default:"local"`
	DatabaseURL       string `yaml:"database_url" env:"DATABASE_URL"`
	FrontendURL       string `yaml:"frontend_url" env:"FRONTEND_URL" env-default:"http://localhost:5173"`
	GRPCHealthAddress string `yaml:"grpc_health_address" env:"GRPC_HEALTH_ADDRESS"`
	HTTPServer        `yaml:"http_server"`
	Telegram          `yaml:"telegram"`
	JWTToken          `yaml:"jwttoken"`
	YooKassa          `yaml:"yookassa"`
	CORS              `yaml:"cors"`
	RedisConnection   `yaml:"redis_connection"`
	RabbitMQ          `yaml:"rabbitmq"`
	RateLimit         `yaml:"rate_limit"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":3000"`
	TimeoutHTTP time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	// TrustProxy разрешает брать адрес клиента из X-Forwarded-For / X-Real-IP.
	TrustProxy  bool          `yaml:"trust_proxy" env:"HTTP_TRUST_PROXY" env-default:"false"`
}

// Telegram настройки бота, которым подписываются данные Mini App.
type Telegram struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN"`
}

// JWTToken структура для работы с jwt-токеном.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET"`
	TokenTTL     time.Duration `yaml:"token_ttl" env:"JWT_TTL" env-default:"168h"`
}

// YooKassa настройки платёжного провайдера.
type YooKassa struct {
	ShopID   string `yaml:"shop_id" env:"YOOKASSA_SHOP_ID"`
	APIKey   string `yaml:"api_key" env:"YOOKASSA_API_KEY"`
	APIURL   string `yaml:"api_url" env:"YOOKASSA_API_URL" env-default:"https://api.yookassa.ru/v3"`
	Currency string `yaml:"currency" env:"PAYMENT_CURRENCY" env-default:"RUB"`
}

// CORS список источников, которым разрешены запросы с credentials.
type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:5173,http://localhost:5174"`
}

// RedisConnection структура для настройки подключения к redis.
// Пустой адрес отключает кэш.
type RedisConnection struct {
	AddressRedis string        `yaml:"address" env:"REDIS_ADDRESS"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user" env:"REDIS_USER"`
	DB           int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	MaxRetries   int           `yaml:"max_retries" env:"REDIS_MAX_RETRIES" env-default:"3"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
	TimeoutRedis time.Duration `yaml:"timeout" env:"REDIS_TIMEOUT" env-default:"3s"`
	CacheTTL     time.Duration `yaml:"cache_ttl" env:"REDIS_CACHE_TTL" env-default:"5m"`
}

// RabbitMQ настройки публикации событий заказов. Пустой URL отключает события.
type RabbitMQ struct {
	URL      string `yaml:"url" env:"RABBITMQ_URL"`
	Exchange string `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"petcare.orders"`
}

// RateLimit ограничение частоты запросов к /auth/login.
type RateLimit struct {
	RPS   float64 `yaml:"rps" env:"RATE_LIMIT_RPS" env-default:"5"`
	Burst int     `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"10"`
}

// Load читает конфиг из файла path (если задан) и переменных окружения
// и проверяет обязательные поля.
func Load(path string) (*Config, error) {
	const op = "config.Load"
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// MustLoad загружает конфиг из файла CONFIG_PATH (или только из окружения,
// если переменная не задана) и завершает процесс при ошибке.
func MustLoad() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// Validate проверяет, что заданы обязательные настройки.
func (c *Config) Validate() error {
	var missing []string
	if c.BotToken == "" {
		missing = append(missing, "TELEGRAM_BOT_TOKEN")
	}
	if c.JWTSecretKey == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required settings: %s", strings.Join(missing, ", "))
	}
	if c.TokenTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	return nil
}

// String возвращает конфиг без секретов, для записи в лог при старте.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"  TrustProxy: %t\n"+
			"TokenTTL: %s\n"+
			"YooKassa:\n"+
			"  ShopID: %s\n"+
			"  APIURL: %s\n"+
			"  Currency: %s\n"+
			"FrontendURL: %s\n"+
			"CORSAllowedOrigins: %s\n"+
			"Redis: %s\n"+
			"RabbitMQ enabled: %t\n"+
			"GRPCHealthAddress: %s\n",
		c.Env,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.TrustProxy,
		c.TokenTTL,
		c.ShopID,
		c.APIURL,
		c.Currency,
		c.FrontendURL,
		strings.Join(c.AllowedOrigins, ","),
		c.AddressRedis,
		c.RabbitMQ.URL != "",
		c.GRPCHealthAddress,
	)
}

package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config хранит все настройки приложения
type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Engine      EngineConfig
	Admin       AdminConfig
	Recommender RecommenderConfig
	RateLimit   RateLimitConfig
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string
	ReadTimeout  int
	WriteTimeout int
}

// DatabaseConfig содержит настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig содержит унифицированные настройки подключения к Redis
// Поддерживает режимы: single, sentinel, cluster
type RedisConfig struct {
	// Mode: Режим работы Redis ("single", "sentinel", "cluster"). По умолчанию "single".
	Mode string `mapstructure:"mode"`

	// Addrs: Список адресов Redis (хост:порт). Используется для всех режимов.
	Addrs []string `mapstructure:"addrs"`

	// Addr: Альтернативный адрес для режима 'single'.
	Addr string `mapstructure:"addr"`

	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`

	// MasterName: Имя мастер-сервера Redis (только для режима "sentinel")
	MasterName string `mapstructure:"master_name"`

	// MaxRetries: Максимальное количество попыток переподключения
	MaxRetries int `mapstructure:"max_retries"`

	// MinRetryBackoff: Минимальный интервал между попытками (мс)
	MinRetryBackoff int `mapstructure:"min_retry_backoff"`

	// MaxRetryBackoff: Максимальный интервал между попытками (мс)
	MaxRetryBackoff int `mapstructure:"max_retry_backoff"`
}

// EngineConfig содержит настройки адаптивного движка
type EngineConfig struct {
	// UseHistory: выбирать сложность по последнему событию истории.
	// false — упрощённый вариант "всегда начинать с easy".
	UseHistory bool `mapstructure:"use_history"`

	// Scoring: режим скоринга взаимодействий ("training" или "simple").
	// Ровно один маппинг применяется ко всем записям датасета.
	Scoring string `mapstructure:"scoring"`

	// RequestTimeoutMs: таймаут всех внешних вызовов одной операции (мс)
	RequestTimeoutMs int `mapstructure:"request_timeout_ms"`
}

// RequestTimeout возвращает таймаут операции как time.Duration
func (e *EngineConfig) RequestTimeout() time.Duration {
	if e.RequestTimeoutMs <= 0 {
		return 5 * time.Second
	}
	return time.Duration(e.RequestTimeoutMs) * time.Millisecond
}

// AdminConfig содержит настройки админских маршрутов
type AdminConfig struct {
	// JWTSecret — секрет проверки Bearer-токенов админских операций
	JWTSecret string `mapstructure:"jwt_secret"`
}

// RecommenderConfig содержит настройки клиента внешнего ранжировщика
type RecommenderConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Endpoint   string `mapstructure:"endpoint"`
	CampaignID string `mapstructure:"campaign_id"`
	APIKey     string `mapstructure:"api_key"`
	TimeoutMs  int    `mapstructure:"timeout_ms"`
}

// RateLimitConfig содержит настройки лимитера публичных endpoints
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute"`
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Load загружает конфигурацию из файла
func Load(configPath string) (*Config, error) {
	vip := viper.New() // Новый экземпляр Viper, чтобы избежать глобального состояния

	// 1. Значения по умолчанию
	vip.SetDefault("server.port", "8080")
	vip.SetDefault("engine.use_history", true)
	vip.SetDefault("engine.scoring", "training")
	vip.SetDefault("engine.request_timeout_ms", 5000)
	vip.SetDefault("ratelimit.requests_per_minute", 60)

	// 2. Привязываем переменные окружения ЯВНО
	vip.BindEnv("database.host", "DATABASE_HOST")
	vip.BindEnv("database.port", "DATABASE_PORT")
	vip.BindEnv("database.user", "DATABASE_USER")
	vip.BindEnv("database.password", "DATABASE_PASSWORD")
	vip.BindEnv("database.dbname", "DATABASE_DBNAME")
	vip.BindEnv("database.sslmode", "DATABASE_SSLMODE")

	vip.BindEnv("redis.mode", "REDIS_MODE")
	vip.BindEnv("redis.addrs", "REDIS_ADDRS")
	vip.BindEnv("redis.addr", "REDIS_ADDR")
	vip.BindEnv("redis.password", "REDIS_PASSWORD")
	vip.BindEnv("redis.db", "REDIS_DB")
	vip.BindEnv("redis.master_name", "REDIS_MASTER_NAME")

	vip.BindEnv("engine.use_history", "ENGINE_USE_HISTORY")
	vip.BindEnv("engine.scoring", "ENGINE_SCORING")
	vip.BindEnv("engine.request_timeout_ms", "ENGINE_REQUEST_TIMEOUT_MS")

	vip.BindEnv("admin.jwt_secret", "ADMIN_JWT_SECRET")

	vip.BindEnv("recommender.enabled", "RECOMMENDER_ENABLED")
	vip.BindEnv("recommender.endpoint", "RECOMMENDER_ENDPOINT")
	vip.BindEnv("recommender.campaign_id", "RECOMMENDER_CAMPAIGN_ID")
	vip.BindEnv("recommender.api_key", "RECOMMENDER_API_KEY")
	vip.BindEnv("recommender.timeout_ms", "RECOMMENDER_TIMEOUT_MS")

	vip.BindEnv("ratelimit.enabled", "RATELIMIT_ENABLED")
	vip.BindEnv("ratelimit.requests_per_minute", "RATELIMIT_REQUESTS_PER_MINUTE")

	vip.BindEnv("server.port", "SERVER_PORT")

	// 3. Файл конфигурации (не страшно, если его нет — есть BindEnv)
	if configPath != "" {
		vip.SetConfigFile(configPath)
		if err := vip.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				log.Printf("Файл конфигурации '%s' не найден, используются переменные окружения/умолчания.", configPath)
			} else {
				log.Printf("Предупреждение: не удалось прочитать файл конфигурации '%s': %v", configPath, err)
			}
		}
	}

	// 4. Анмаршалим (Viper объединит файл и привязанные env vars)
	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Логирование конфигурации (только вне release-режима)
	if os.Getenv("GIN_MODE") != "release" {
		log.Printf("--- Загруженные значения конфигурации ---")
		log.Printf("Server Port: %s", cfg.Server.Port)
		log.Printf("Database Host: %s", cfg.Database.Host)
		log.Printf("Database Name: %s", cfg.Database.DBName)
		log.Printf("Redis Addr: %s", cfg.Redis.Addr)
		log.Printf("Redis Mode: %s", cfg.Redis.Mode)
		log.Printf("Engine UseHistory: %t", cfg.Engine.UseHistory)
		log.Printf("Engine Scoring: %s", cfg.Engine.Scoring)
		log.Printf("Recommender Enabled: %t", cfg.Recommender.Enabled)
		log.Printf("Admin JWT Secret Set: %t", cfg.Admin.JWTSecret != "")
		log.Printf("-----------------------------------------")
	}

	// 6. Проверка обязательных параметров
	if cfg.Database.Host == "" || cfg.Database.DBName == "" || cfg.Database.User == "" {
		return nil, fmt.Errorf("database configuration (host, dbname, user) is incomplete in config (check DATABASE_HOST, DATABASE_DBNAME, DATABASE_USER env vars)")
	}
	if cfg.Admin.JWTSecret == "" {
		return nil, fmt.Errorf("admin JWT secret is required in config (check ADMIN_JWT_SECRET env var)")
	}
	if cfg.Engine.Scoring != "training" && cfg.Engine.Scoring != "simple" {
		return nil, fmt.Errorf("engine.scoring must be 'training' or 'simple', got %q", cfg.Engine.Scoring)
	}
	if cfg.Recommender.Enabled && cfg.Recommender.Endpoint == "" {
		return nil, fmt.Errorf("recommender.endpoint is required when recommender is enabled (check RECOMMENDER_ENDPOINT env var)")
	}

	return &cfg, nil
}

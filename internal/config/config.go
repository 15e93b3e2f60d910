package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/m04kA/OdontoBooking/internal/domain"
)

// Источники таблицы доступности
const (
	AvailabilityStatic   = "static"
	AvailabilityPostgres = "postgres"
)

// DefaultRateLimitClients число отслеживаемых IP по умолчанию
const DefaultRateLimitClients = 10000

// Переменные окружения с секретами, имеют приоритет над config.toml
const (
	EnvFirebaseAPIKey   = "FIREBASE_API_KEY"
	EnvDatabasePassword = "DATABASE_PASSWORD"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Clinic       ClinicConfig       `toml:"clinic"`
	Availability AvailabilityConfig `toml:"availability"`
	Database     DatabaseConfig     `toml:"database"`
	Firebase     FirebaseConfig     `toml:"firebase"`
	RateLimit    RateLimitConfig    `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"required,min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"min=0"`
	WriteTimeout    int `toml:"write_timeout" validate:"min=0"`
	IdleTimeout     int `toml:"idle_timeout" validate:"min=0"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"min=0"`
}

// LogsConfig настройки логирования. Пустой file - вывод в stdout
type LogsConfig struct {
	Level string `toml:"level" validate:"omitempty,oneof=debug info warn error"`
	File  string `toml:"file"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" validate:"required_if=Enabled true"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
}

// ClinicConfig настройки клиники
type ClinicConfig struct {
	Timezone            string `toml:"timezone"` // пусто - domain.DefaultTimezone
	DefaultProcedure    string `toml:"default_procedure"`
	DefaultProfessional string `toml:"default_professional"`
	LookupTimeoutMs     int    `toml:"lookup_timeout_ms" validate:"min=0"`
	DemoUserID          string `toml:"demo_user_id"` // UID, для которого засеваются демонстрационные записи
	MaxSessions         int    `toml:"max_sessions" validate:"min=0"` // 0 - domain.DefaultMaxSessions
}

// AvailabilityConfig настройки таблицы доступности
type AvailabilityConfig struct {
	Source          string `toml:"source" validate:"required,oneof=static postgres"`
	CacheSize       int    `toml:"cache_size" validate:"min=0"` // 0 - без кэша
	StaticLatencyMs int    `toml:"static_latency_ms" validate:"min=0"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// FirebaseConfig настройки Firebase Authentication
type FirebaseConfig struct {
	CredentialsFile string `toml:"credentials_file"`
	APIKey          string `toml:"api_key"`
	IdentityURL     string `toml:"identity_url" validate:"omitempty,url"`
	Timeout         int    `toml:"timeout" validate:"min=0"` // секунды
}

// RateLimitConfig ограничение частоты запросов к auth эндпоинтам на один IP
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second" validate:"required_if=Enabled true,gte=0"`
	Burst             int     `toml:"burst" validate:"required_if=Enabled true,gte=0"`
	// TrustProxyHeaders учитывать X-Forwarded-For/X-Real-IP. Включать только за доверенным прокси
	TrustProxyHeaders bool `toml:"trust_proxy_headers"`
	MaxClients        int  `toml:"max_clients" validate:"gte=0"` // сколько IP отслеживается одновременно
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.DBName,
		RawQuery: "sslmode=" + sslMode,
	}
	return u.String()
}

// Load читает конфигурацию из TOML файла, подмешивает секреты из .env и окружения и валидирует
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	// .env необязателен: в контейнере секреты приходят через окружение
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	applyEnv(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет обязательные поля и зависимые секции
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if c.Availability.Source == AvailabilityPostgres {
		if c.Database.Host == "" || c.Database.Port == 0 || c.Database.DBName == "" {
			return errors.New("config validation failed: database host, port and dbname are required for postgres availability")
		}
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Clinic.Timezone == "" {
		cfg.Clinic.Timezone = domain.DefaultTimezone
	}
	if cfg.RateLimit.MaxClients == 0 {
		cfg.RateLimit.MaxClients = DefaultRateLimitClients
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvFirebaseAPIKey); v != "" {
		cfg.Firebase.APIKey = v
	}
	if v := os.Getenv(EnvDatabasePassword); v != "" {
		cfg.Database.Password = v
	}
}

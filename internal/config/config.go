package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

// EnvFile файл с переменными окружения, подхватывается, если существует
const EnvFile = ".env"

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Venue        VenueConfig        `toml:"venue"`
	Availability AvailabilityConfig `toml:"availability"`
	RateLimit    RateLimitConfig    `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
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

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// VenueConfig настройки заведения
type VenueConfig struct {
	Timezone string `toml:"timezone"` // IANA, например "Europe/Moscow"
}

// AvailabilityConfig значения по умолчанию для запросов доступности
type AvailabilityConfig struct {
	DefaultPartySize    int `toml:"default_party_size"`
	DefaultHorizonWeeks int `toml:"default_horizon_weeks"`
	MaxHorizonWeeks     int `toml:"max_horizon_weeks"`
}

// RateLimitConfig ограничение частоты запросов к публичным маршрутам
type RateLimitConfig struct {
	Enabled           bool `toml:"enabled"`
	RequestsPerMinute int  `toml:"requests_per_minute"`
}

// Load читает TOML файл, накладывает переменные окружения (и .env), проставляет значения
// по умолчанию и валидирует результат
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", EnvFile, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv переменные окружения имеют приоритет над файлом
func (c *Config) applyEnv() error {
	stringVars := map[string]*string{
		"DB_HOST":        &c.Database.Host,
		"DB_USER":        &c.Database.User,
		"DB_PASSWORD":    &c.Database.Password,
		"DB_NAME":        &c.Database.DBName,
		"LOG_LEVEL":      &c.Logs.Level,
		"VENUE_TIMEZONE": &c.Venue.Timezone,
	}
	for name, dst := range stringVars {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			*dst = v
		}
	}

	intVars := map[string]*int{
		"DB_PORT":   &c.Database.Port,
		"HTTP_PORT": &c.Server.HTTPPort,
	}
	for name, dst := range intVars {
		v, ok := os.LookupEnv(name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", name, v, err)
		}
		*dst = n
	}

	return nil
}

func (c *Config) setDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "table-availability"
	}

	if c.Venue.Timezone == "" {
		c.Venue.Timezone = "UTC"
	}

	if c.Availability.DefaultPartySize == 0 {
		c.Availability.DefaultPartySize = domain.DefaultPartySize
	}
	if c.Availability.DefaultHorizonWeeks == 0 {
		c.Availability.DefaultHorizonWeeks = domain.DefaultHorizonWeeks
	}
	if c.Availability.MaxHorizonWeeks == 0 {
		c.Availability.MaxHorizonWeeks = domain.MaxHorizonWeeks
	}

	if c.RateLimit.RequestsPerMinute == 0 {
		c.RateLimit.RequestsPerMinute = 120
	}
}

// Validate проверяет значения, которые нельзя исправить значениями по умолчанию
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port out of range: %d", c.Server.HTTPPort)
	}
	if c.Database.Host == "" {
		return errors.New("database.host is required")
	}
	if c.Database.DBName == "" {
		return errors.New("database.dbname is required")
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		return fmt.Errorf("database.port out of range: %d", c.Database.Port)
	}
	if _, err := c.Venue.Location(); err != nil {
		return err
	}
	if c.Availability.DefaultPartySize < domain.MinPartySize {
		return fmt.Errorf("availability.default_party_size must be >= %d", domain.MinPartySize)
	}
	if c.Availability.MaxHorizonWeeks < domain.MinHorizonWeeks {
		return fmt.Errorf("availability.max_horizon_weeks must be >= %d", domain.MinHorizonWeeks)
	}
	if c.Availability.DefaultHorizonWeeks < domain.MinHorizonWeeks ||
		c.Availability.DefaultHorizonWeeks > c.Availability.MaxHorizonWeeks {
		return fmt.Errorf("availability.default_horizon_weeks must be in [%d, %d]",
			domain.MinHorizonWeeks, c.Availability.MaxHorizonWeeks)
	}
	if c.RateLimit.RequestsPerMinute < 1 {
		return errors.New("rate_limit.requests_per_minute must be positive")
	}
	return nil
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// ConnMaxLifetimeDuration время жизни соединения
func (d DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Second
}

// Location часовой пояс заведения
func (v VenueConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(v.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid venue.timezone %q: %w", v.Timezone, err)
	}
	return loc, nil
}

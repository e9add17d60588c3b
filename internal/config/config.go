package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Драйверы хранилища документа
const (
	StorageDriverFile     = "file"
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

// Драйверы корзины
const (
	CartDriverMemory = "memory"
	CartDriverRedis  = "redis"
)

var (
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Storage   StorageConfig   `toml:"storage"`
	Database  DatabaseConfig  `toml:"database"`
	Cart      CartConfig      `toml:"cart"`
	Redis     RedisConfig     `toml:"redis"`
	Auth      AuthConfig      `toml:"auth"`
	Seed      SeedConfig      `toml:"seed"`
	CORS      CORSConfig      `toml:"cors"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Schedule  ScheduleConfig  `toml:"schedule"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig настройки хранилища документа приложения
type StorageConfig struct {
	Driver     string `toml:"driver"`
	FilePath   string `toml:"file_path"`
	DocumentID string `toml:"document_id"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type CartConfig struct {
	Driver     string `toml:"driver"`
	TTLMinutes int    `toml:"ttl_minutes"`
}

type RedisConfig struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

type AuthConfig struct {
	JWTSecret     string `toml:"jwt_secret"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
	Issuer        string `toml:"issuer"`
	BcryptCost    int    `toml:"bcrypt_cost"`
}

// SeedConfig учетная запись администратора, создаваемая при первом запуске
type SeedConfig struct {
	AdminEmail    string `toml:"admin_email"`
	AdminPassword string `toml:"admin_password"`
	AdminName     string `toml:"admin_name"`
	AdminPhone    string `toml:"admin_phone"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// ScheduleConfig рабочие часы салона для подбора свободных слотов
type ScheduleConfig struct {
	OpenTime         string `toml:"open_time"`
	CloseTime        string `toml:"close_time"`
	SlotStepMinutes  int    `toml:"slot_step_minutes"`
	MinNoticeMinutes int    `toml:"min_notice_minutes"`
	AdvanceDays      int    `toml:"advance_days"` // 0 - без ограничения
}

// Load читает TOML файл, затем .env.<APP_ENV> / .env и применяет переопределения из окружения
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	loadDotEnv()
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{Path: "/metrics", ServiceName: "salon-service"},
		Storage: StorageConfig{
			Driver:     StorageDriverFile,
			FilePath:   "data/db.json",
			DocumentID: "main",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Cart:  CartConfig{Driver: CartDriverMemory, TTLMinutes: 24 * 60},
		Redis: RedisConfig{Addr: "localhost:6379", KeyPrefix: "salon:cart:"},
		Auth: AuthConfig{
			TokenTTLHours: 24,
			Issuer:        "salon-service",
			BcryptCost:    10,
		},
		Seed: SeedConfig{
			AdminEmail:    "admin@eleela.com",
			AdminPassword: "admin123",
			AdminName:     "Administrador",
			AdminPhone:    "840000000",
		},
		RateLimit: RateLimitConfig{RequestsPerSecond: 1, Burst: 5},
		Schedule: ScheduleConfig{
			OpenTime:         "08:00",
			CloseTime:        "19:00",
			SlotStepMinutes:  30,
			MinNoticeMinutes: 30,
			AdvanceDays:      60,
		},
	}
}

// loadDotEnv подгружает .env.<APP_ENV>, если его нет - .env
// Отсутствие файлов не ошибка: в проде переменные задаются окружением
func loadDotEnv() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	if err := godotenv.Load(fmt.Sprintf(".env.%s", env)); err != nil {
		_ = godotenv.Load()
	}
}

func applyEnv(cfg *Config) {
	setString(&cfg.Auth.JWTSecret, "SALON_JWT_SECRET")
	setString(&cfg.Database.Host, "SALON_DB_HOST")
	setInt(&cfg.Database.Port, "SALON_DB_PORT")
	setString(&cfg.Database.User, "SALON_DB_USER")
	setString(&cfg.Database.Password, "SALON_DB_PASSWORD")
	setString(&cfg.Database.DBName, "SALON_DB_NAME")
	setString(&cfg.Redis.Addr, "SALON_REDIS_ADDR")
	setString(&cfg.Redis.Password, "SALON_REDIS_PASSWORD")
	setString(&cfg.Storage.Driver, "SALON_STORAGE_DRIVER")
	setString(&cfg.Storage.FilePath, "SALON_STORAGE_FILE")
	setString(&cfg.Cart.Driver, "SALON_CART_DRIVER")
	setString(&cfg.Seed.AdminPassword, "SALON_ADMIN_PASSWORD")
	setInt(&cfg.Server.HTTPPort, "SALON_HTTP_PORT")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}

	switch c.Storage.Driver {
	case StorageDriverFile:
		if c.Storage.FilePath == "" {
			return fmt.Errorf("%w: storage.file_path is required for file driver", ErrInvalidConfig)
		}
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if c.Database.Port <= 0 {
			return fmt.Errorf("%w: database.port must be positive", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	switch c.Cart.Driver {
	case CartDriverMemory, CartDriverRedis:
	default:
		return fmt.Errorf("%w: unknown cart driver %q", ErrInvalidConfig, c.Cart.Driver)
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required (or SALON_JWT_SECRET)", ErrInvalidConfig)
	}
	if c.Auth.TokenTTLHours <= 0 {
		return fmt.Errorf("%w: auth.token_ttl_hours must be positive", ErrInvalidConfig)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_second and burst", ErrInvalidConfig)
	}

	if err := c.Schedule.validate(); err != nil {
		return err
	}

	return nil
}

func (c ScheduleConfig) validate() error {
	open, err := types.NewTimeStringFromString(c.OpenTime)
	if err != nil {
		return fmt.Errorf("%w: schedule.open_time: %v", ErrInvalidConfig, err)
	}
	closing, err := types.NewTimeStringFromString(c.CloseTime)
	if err != nil {
		return fmt.Errorf("%w: schedule.close_time: %v", ErrInvalidConfig, err)
	}
	if !open.IsBefore(closing) {
		return fmt.Errorf("%w: schedule.open_time must be before close_time", ErrInvalidConfig)
	}
	if c.SlotStepMinutes <= 0 {
		return fmt.Errorf("%w: schedule.slot_step_minutes must be positive", ErrInvalidConfig)
	}
	if c.MinNoticeMinutes < 0 || c.AdvanceDays < 0 {
		return fmt.Errorf("%w: schedule.min_notice_minutes and advance_days must not be negative", ErrInvalidConfig)
	}
	return nil
}

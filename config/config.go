package config

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	App struct {
		Env         string `env:"APP_ENV"      envDefault:"development"`
		Port        string `env:"PORT"         envDefault:"8088"`
		FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	}
	DB struct {
		Host           string `env:"DB_HOST"            envDefault:"localhost"`
		Port           string `env:"DB_PORT"            envDefault:"5432"`
		User           string `env:"DB_USER"            envDefault:"postgres"`
		Password       string `env:"DB_PASSWORD"        envDefault:"password"`
		Name           string `env:"DB_NAME"            envDefault:"sport_db"`
		SSLMode        string `env:"DB_SSLMODE"         envDefault:"disable"`
		MigrationsPath string `env:"DB_MIGRATIONS_PATH"`
	}
	Notification struct {
		// Timeout bounds a single webhook delivery attempt.
		Timeout     time.Duration `env:"NOTIFY_TIMEOUT"     envDefault:"10s"`
		Concurrency int           `env:"NOTIFY_CONCURRENCY" envDefault:"4"`
		// ShutdownGrace is how long in-flight broadcasts may keep running after a stop signal.
		ShutdownGrace time.Duration `env:"NOTIFY_SHUTDOWN_GRACE" envDefault:"5s"`
	}
	Kafka struct {
		Brokers []string `env:"KAFKA_BROKERS" envSeparator:","`
		Topic   string   `env:"KAFKA_TOPIC"   envDefault:"sport-events"`
	}
	Log struct {
		Level string `env:"LOG_LEVEL" envDefault:"info"`
		File  string `env:"LOG_FILE"`
		// DBTimeout bounds one failure_events write.
		DBTimeout time.Duration `env:"LOG_DB_TIMEOUT" envDefault:"2s"`
	}
}

// Global DB instance, set by Initialize.
var DB *gorm.DB

var appConfig *Config
var once sync.Once

// LoadConfig reads an optional .env file and parses the environment into a Config.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, relying on system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.Notification.Concurrency < 1 {
		cfg.Notification.Concurrency = 1
	}
	if cfg.DB.Password == "password" && cfg.App.Env == "production" {
		slog.Warn("using default DB password in production, set DB_PASSWORD")
	}

	appConfig = cfg
	return cfg, nil
}

// DSN renders the postgres connection string for cfg.
func (cfg *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
	)
}

// ConnectDB opens the postgres connection and sets the global DB.
// Unique violations are translated to gorm.ErrDuplicatedKey.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{TranslateError: true}
	if cfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	gormDB, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = gormDB
	slog.Info("connected to database", "host", cfg.DB.Host, "name", cfg.DB.Name)
	return gormDB, nil
}

// Initialize loads the configuration and connects to the database. Safe to call more than once.
func Initialize() error {
	var loadErr error
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}

		if _, err = ConnectDB(*loadedCfg); err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
			return
		}
	})
	return loadErr
}

// GetConfig returns the loaded configuration. It panics if Initialize has not run.
func GetConfig() *Config {
	if appConfig == nil {
		panic("configuration not loaded, call config.Initialize first")
	}
	return appConfig
}

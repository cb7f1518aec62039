// Package config предоставляет структуры и функции для загрузки конфигурации.
//
// Конфиг читается один раз при старте из YAML-файла (CONFIG_PATH), любое поле
// можно переопределить переменной окружения. Дальше он передаётся в конструкторы.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Драйверы хранилища.
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

// Бэкенды хранения изображений.
const (
	ImagesLocal = "local"
	ImagesMinio = "minio"
)

// Config общая структура для хранения настроек.
type Config struct {
	Env             string `yaml:"env" env:"ENV" env-default:"local"`
	Storage         `yaml:"storage"`
	HTTPServer      `yaml:"http_server"`
	JWTToken        `yaml:"jwttoken"`
	RedisConnection `yaml:"redis_connection"`
	Images          `yaml:"images"`
	RabbitMQ        `yaml:"rabbitmq"`
}

// Storage настройки хранилища пользователей и историй.
type Storage struct {
	Driver         string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres"`
	PostgresDSN    string `yaml:"postgres_dsn" env:"POSTGRES_DSN"`
	MongoURI       string `yaml:"mongo_uri" env:"MONGO_URI"`
	MongoDatabase  string `yaml:"mongo_database" env:"MONGO_DATABASE" env-default:"travel_journal"`
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"./migrations"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP        string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8000"`
	TimeoutHTTP        time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout        time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	PublicBaseURL      string        `yaml:"public_base_url" env:"PUBLIC_BASE_URL" env-default:"http://localhost:8000"`
	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
}

// JWTToken структура для работы с токеном сессии.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"ACCESS_TOKEN_SECRET" env-required:"true"`
	TokenTTL     time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"72h"`
}

// RedisConnection структура для настройки подключения к redis.
// Пустой адрес отключает кеш.
type RedisConnection struct {
	AddressRedis string        `yaml:"address" env:"REDIS_ADDRESS"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user" env:"REDIS_USER"`
	DB           int           `yaml:"db" env:"REDIS_DB"`
	MaxRetries   int           `yaml:"max_retries" env:"REDIS_MAX_RETRIES" env-default:"3"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
	TimeoutRedis time.Duration `yaml:"timeout" env:"REDIS_TIMEOUT" env-default:"3s"`
	UserTTL      time.Duration `yaml:"user_ttl" env:"REDIS_USER_TTL" env-default:"1h"`
}

// Images настройки хранения загруженных изображений.
type Images struct {
	Backend        string `yaml:"backend" env:"IMAGES_BACKEND" env-default:"local"`
	UploadsDir     string `yaml:"uploads_dir" env:"IMAGES_UPLOADS_DIR" env-default:"./uploads"`
	AssetsDir      string `yaml:"assets_dir" env:"IMAGES_ASSETS_DIR" env-default:"./assets"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes" env:"IMAGES_MAX_UPLOAD_BYTES" env-default:"10485760"`
	Minio          `yaml:"minio"`
}

// Minio настройки объектного хранилища.
type Minio struct {
	Endpoint  string `yaml:"endpoint" env:"MINIO_ENDPOINT"`
	AccessKey string `yaml:"access_key" env:"MINIO_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"MINIO_SECRET_KEY"`
	Bucket    string `yaml:"bucket" env:"MINIO_BUCKET" env-default:"travel-images"`
	UseSSL    bool   `yaml:"use_ssl" env:"MINIO_USE_SSL"`
}

// RabbitMQ настройки очереди очистки изображений.
// Пустой URL — очистка выполняется внутри процесса.
type RabbitMQ struct {
	URL              string        `yaml:"url" env:"RABBITMQ_URL"`
	MaxRetries       int           `yaml:"max_retries" env:"RABBITMQ_MAX_RETRIES" env-default:"5"`
	RetryDelay       time.Duration `yaml:"retry_delay" env:"RABBITMQ_RETRY_DELAY" env-default:"2s"`
	CleanupWorkers   int           `yaml:"cleanup_workers" env:"CLEANUP_WORKERS" env-default:"2"`
	CleanupQueueSize int           `yaml:"cleanup_queue_size" env:"CLEANUP_QUEUE_SIZE" env-default:"100"`
}

// MustLoad загружает конфиг из CONFIG_PATH и завершает процесс при ошибке.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// Load читает и проверяет конфиг из файла.
func Load(configPath string) (*Config, error) {
	const op = "config.Load"
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: file %s does not exist", op, configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// Validate проверяет согласованность полей, которые cleanenv проверить не может.
func (c *Config) Validate() error {
	if c.JWTSecretKey == "" {
		return errors.New("jwt secret key is required")
	}
	if c.TokenTTL <= 0 {
		return errors.New("token_ttl must be positive")
	}

	switch c.Driver {
	case DriverPostgres:
		if c.PostgresDSN == "" {
			return errors.New("postgres_dsn is required for postgres driver")
		}
	case DriverMongo:
		if c.MongoURI == "" {
			return errors.New("mongo_uri is required for mongo driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Driver)
	}

	switch c.Backend {
	case ImagesLocal:
	case ImagesMinio:
		if c.Endpoint == "" || c.Bucket == "" {
			return errors.New("minio endpoint and bucket are required for minio backend")
		}
	default:
		return fmt.Errorf("unknown images backend %q", c.Backend)
	}

	if c.CleanupWorkers < 1 {
		return errors.New("cleanup_workers must be positive")
	}
	return nil
}

// PlaceholderImageURL возвращает адрес картинки-заглушки.
func (c *Config) PlaceholderImageURL() string {
	return c.PublicBaseURL + "/assets/placeholder.webp"
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"Storage:\n"+
			"  Driver: %s\n"+
			"  MongoDatabase: %s\n"+
			"  MigrationsPath: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"  PublicBaseURL: %s\n"+
			"JWTToken:\n"+
			"  TokenTTL: %s\n"+
			"Redis:\n"+
			"  Addr: %s\n"+
			"Images:\n"+
			"  Backend: %s\n"+
			"RabbitMQ:\n"+
			"  Enabled: %t\n",
		c.Env,
		c.Driver,
		c.MongoDatabase,
		c.MigrationsPath,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.PublicBaseURL,
		c.TokenTTL,
		c.AddressRedis,
		c.Backend,
		c.RabbitMQ.URL != "",
	)
}

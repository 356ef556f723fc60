package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// ErrorMode decides what happens when a remote store call fails.
// Lenient keeps the storefront demoable: reads fall back to generated data and
// writes report success with a demo flag. Strict surfaces the failure.
type ErrorMode string

const (
	ModeLenient ErrorMode = "lenient"
	ModeStrict  ErrorMode = "strict"
)

func (m ErrorMode) Strict() bool {
	return m == ModeStrict
}

type Config struct {
	Env       string
	LogLevel  string
	ErrorMode ErrorMode
	Port      string

	Postgres PostgresConfig
	Redis    RedisConfig
	Broker   BrokerConfig
	Catalog  CatalogConfig
	Checkout CheckoutConfig
	Gateway  GatewayConfig
}

type PostgresConfig struct {
	URL      string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

type RedisConfig struct {
	Host string
	Port string
}

type BrokerConfig struct {
	KafkaBroker string
	OrderTopic  string
	RabbitURI   string
	OrderQueue  string
}

type CatalogConfig struct {
	Seed     int64
	CacheTTL time.Duration
}

type CheckoutConfig struct {
	Delay         time.Duration
	CartTTL       time.Duration
	PublicBaseURL string
}

type GatewayConfig struct {
	CatalogSvcURL   string
	OrderSvcURL     string
	AnalyticsSvcURL string
}

// Load reads configuration from the environment. Outside production a local
// .env file is loaded first; a missing file is not an error.
func Load(defaultPort string) (*Config, error) {
	env := getEnv("APP_ENV", "development")
	if env != "production" {
		_ = godotenv.Load()
	}

	cfg := &Config{
		Env:       env,
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		ErrorMode: ErrorMode(strings.ToLower(getEnv("ERROR_MODE", string(ModeLenient)))),
		Port:      getEnv("PORT", defaultPort),
		Postgres: PostgresConfig{
			URL:      os.Getenv("DATABASE_URL"),
			Host:     os.Getenv("DB_HOST"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     os.Getenv("DB_NAME"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Redis: RedisConfig{
			Host: os.Getenv("REDIS_HOST"),
			Port: getEnv("REDIS_PORT", "6379"),
		},
		Broker: BrokerConfig{
			KafkaBroker: os.Getenv("KAFKA_BROKER"),
			OrderTopic:  getEnv("ORDER_TOPIC", "orders"),
			RabbitURI:   os.Getenv("RABBITMQ_URI"),
			OrderQueue:  getEnv("ORDER_QUEUE", "orders"),
		},
		Catalog: CatalogConfig{
			Seed:     int64(getEnvAsInt("CATALOG_SEED", 42)),
			CacheTTL: getEnvAsDuration("CATALOG_CACHE_TTL", 10*time.Minute),
		},
		Checkout: CheckoutConfig{
			Delay:         getEnvAsDuration("CHECKOUT_DELAY", 2*time.Second),
			CartTTL:       getEnvAsDuration("CART_TTL", 24*time.Hour),
			PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		},
		Gateway: GatewayConfig{
			CatalogSvcURL:   getEnv("CATALOG_SVC_URL", "http://localhost:8081"),
			OrderSvcURL:     getEnv("ORDER_SVC_URL", "http://localhost:8082"),
			AnalyticsSvcURL: getEnv("ANALYTICS_SVC_URL", "http://localhost:8083"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.ErrorMode != ModeLenient && c.ErrorMode != ModeStrict {
		return fmt.Errorf("invalid error mode: %s (must be lenient or strict)", c.ErrorMode)
	}
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	return nil
}

// Configured reports whether a remote Postgres store was configured at all.
func (p PostgresConfig) Configured() bool {
	return p.URL != "" || p.Host != ""
}

func (p PostgresConfig) DSN() string {
	if p.URL != "" {
		return p.URL
	}
	return "host=" + p.Host + " port=" + p.Port + " user=" + p.User +
		" password=" + p.Password + " dbname=" + p.Name + " sslmode=disable"
}

func (r RedisConfig) Configured() bool {
	return r.Host != ""
}

func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

// OpenPostgres connects and pings. Callers decide whether a failure is fatal.
func OpenPostgres(cfg PostgresConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func OpenRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr(),
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

func NewKafkaReader(broker, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{broker},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

// OpenRabbitChannel dials RabbitMQ and declares the durable order queue.
func OpenRabbitChannel(uri, queue string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(uri)
	if err != nil {
		return nil, nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}

	return conn, ch, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

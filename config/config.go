package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

const (
	SlotMemory   = "memory"
	SlotFile     = "file"
	SlotRedis    = "redis"
	SlotPostgres = "postgres"
)

type Config struct {
	ListenAddr    string
	BackendURL    string
	PublicBaseURL string
	StaticDir     string
	Timeout       time.Duration

	Slot SlotConfig

	OrderPollInterval  time.Duration
	OrdersPollInterval time.Duration
	PaymentToken       string

	Kafka KafkaConfig
}

// SlotConfig picks where the basket and session survive restarts.
type SlotConfig struct {
	Backend string
	File    string
	Scope   string
	TTL     time.Duration
}

type KafkaConfig struct {
	Broker  string
	Topic   string
	GroupID string
}

// Load reads .env when present, then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("WARNING: could not read .env: %v", err)
	}

	return &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":8090"),
		BackendURL:    getEnv("BACKEND_URL", "http://localhost:8080"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:5173"),
		StaticDir:     os.Getenv("STATIC_DIR"),
		Timeout:       getDuration("BACKEND_TIMEOUT", 15*time.Second),
		Slot: SlotConfig{
			Backend: getEnv("SLOT_BACKEND", SlotFile),
			File:    getEnv("SLOT_FILE", "storefront-state.json"),
			Scope:   getEnv("SLOT_SCOPE", "default"),
			TTL:     getDuration("SLOT_TTL", 0),
		},
		OrderPollInterval:  getDuration("ORDER_POLL_INTERVAL", 3*time.Second),
		OrdersPollInterval: getDuration("ORDERS_POLL_INTERVAL", 5*time.Second),
		PaymentToken:       getEnv("PAYMENT_TOKEN", "tok_test"),
		Kafka: KafkaConfig{
			Broker:  os.Getenv("KAFKA_BROKER"),
			Topic:   getEnv("ORDER_STATUS_TOPIC", "order-status"),
			GroupID: getEnv("ORDER_STATUS_GROUP", "storefront"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	// bare numbers are seconds
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Printf("WARNING: invalid duration %s=%q, using %s", key, raw, def)
	return def
}

func MustInitPostgres() *sql.DB {
	connStr := "host=" + getEnv("DB_HOST", "localhost") +
		" port=" + getEnv("DB_PORT", "5432") +
		" user=" + getEnv("DB_USER", "postgres") +
		" password=" + os.Getenv("DB_PASSWORD") +
		" dbname=" + getEnv("DB_NAME", "storefront") +
		" sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_HOST", "localhost") + ":" + getEnv("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(cfg KafkaConfig) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   cfg.Topic,
		GroupID: cfg.GroupID,
	})
}

func NewKafkaWriter(cfg KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.Broker),
		Topic:    cfg.Topic,
		Balancer: &kafka.Hash{},
	}
}

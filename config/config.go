package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	Postgres   PostgresConfig
	Redis      RedisConfig
	Kafka      KafkaConfig
	Elastic    ElasticsearchConfig
	CatalogAPI CatalogAPIConfig
	Draft      DraftConfig
}

type ServerConfig struct {
	AppEnv   string
	GRPCPort string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers      []string
	ProductTopic string
	OrderTopic   string
	GroupID      string
}

type ElasticsearchConfig struct {
	Addresses []string
	Username  string
	Password  string
}

// CatalogAPIConfig points at the external product API. FallbackURLs are
// tried in order when the primary base is unreachable.
type CatalogAPIConfig struct {
	BaseURL      string
	FallbackURLs []string
	Timeout      time.Duration
	MaxRetries   int
}

// DraftConfig tunes server-held batch tables. Drafts untouched for MaxAge
// are purged every PurgeInterval.
type DraftConfig struct {
	LockTTL       time.Duration
	MaxAge        time.Duration
	PurgeInterval time.Duration
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:   getEnv("APP_ENV", "dev"),
			GRPCPort: getEnv("GRPC_PORT", ":8084"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnv("POSTGRES_PORT", "5433"),
			User:            getEnv("POSTGRES_USER", "omnipos"),
			Password:        getEnv("POSTGRES_PASSWORD", "omnipos"),
			DBName:          getEnv("POSTGRES_DB", "omnipos_catalog"),
			SSLMode:         getEnv("POSTGRES_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("POSTGRES_CONN_MAX_LIFETIME", 300),
			ConnMaxIdleTime: getEnvInt("POSTGRES_CONN_MAX_IDLE_TIME", 60),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers:      getEnvSlice("KAFKA_BROKERS", []string{"localhost:9092"}),
			ProductTopic: getEnv("KAFKA_TOPIC_PRODUCTS", "products.events"),
			OrderTopic:   getEnv("KAFKA_TOPIC_ORDERS", "orders.events"),
			GroupID:      getEnv("KAFKA_GROUP_CATALOG", "catalog"),
		},
		Elastic: ElasticsearchConfig{
			Addresses: getEnvSlice("ELASTICSEARCH_ADDRESSES", []string{"http://localhost:9200"}),
			Username:  getEnv("ELASTICSEARCH_USERNAME", ""),
			Password:  getEnv("ELASTICSEARCH_PASSWORD", ""),
		},
		CatalogAPI: CatalogAPIConfig{
			BaseURL:      getEnv("CATALOG_API_BASE_URL", "https://thajanwar.onrender.com"),
			FallbackURLs: getEnvSlice("CATALOG_API_FALLBACK_URLS", []string{"http://localhost:5000"}),
			Timeout:      getEnvDuration("CATALOG_API_TIMEOUT", 15*time.Second),
			MaxRetries:   getEnvInt("CATALOG_API_MAX_RETRIES", 3),
		},
		Draft: DraftConfig{
			LockTTL:       getEnvDuration("DRAFT_LOCK_TTL", 10*time.Second),
			MaxAge:        getEnvDuration("DRAFT_MAX_AGE", 72*time.Hour),
			PurgeInterval: getEnvDuration("DRAFT_PURGE_INTERVAL", time.Hour),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

// getEnvSlice splits a comma separated list. Blank entries are dropped, so an
// empty variable yields an empty slice.
func getEnvSlice(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

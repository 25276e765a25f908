package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMemory    = "memory"
	DriverMySQL     = "mysql"
	DriverPostgres  = "postgres"
	DriverSQLite    = "sqlite"
	DriverRedis     = "redis"
	DriverFirestore = "firestore"
)

type Config struct {
	HTTPAddr    string
	StoreDriver string
	Collection  string

	MySQLDSN    string
	PostgresDSN string
	SQLitePath  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	FirestoreProjectID       string
	FirestoreCredentialsFile string

	RabbitMQURL         string
	RabbitExchange      string
	RabbitQueue         string
	RabbitRoutingKey    string
	RabbitConsumerTag   string
	RabbitPublishPrefix string

	SSEHeartbeat  time.Duration
	SessionCookie string
	SessionTTL    time.Duration

	LogFile  string
	LogLevel string

	CORSAllowedOrigins []string

	OTELServiceName string
	OTLPEndpoint    string
	OTLPInsecure    bool
}

func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:            ":8080",
		Collection:          "inventory",
		SQLitePath:          "pantry.db",
		RedisAddr:           "localhost:6379",
		RabbitExchange:      "inventory",
		RabbitQueue:         "inventory.commands",
		RabbitRoutingKey:    "inventory.*",
		RabbitConsumerTag:   "pantry-consumer",
		RabbitPublishPrefix: "inventory",
		SSEHeartbeat:        15 * time.Second,
		SessionCookie:       "pantry_session",
		SessionTTL:          time.Hour,
		LogFile:             "logs/pantry.log",
		LogLevel:            "info",
		OTELServiceName:     "pantry",
		OTLPInsecure:        true,
	}

	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		cfg.HTTPAddr = addr
	} else if port := os.Getenv("PORT"); port != "" {
		cfg.HTTPAddr = ":" + port
	}

	cfg.MySQLDSN = os.Getenv("MYSQL_DSN")
	cfg.PostgresDSN = os.Getenv("POSTGRES_DSN")
	cfg.RabbitMQURL = os.Getenv("RABBITMQ_URL")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.FirestoreProjectID = os.Getenv("FIRESTORE_PROJECT_ID")
	cfg.FirestoreCredentialsFile = os.Getenv("FIRESTORE_CREDENTIALS_FILE")

	cfg.StoreDriver = os.Getenv("STORE_DRIVER")
	if cfg.StoreDriver == "" {
		cfg.StoreDriver = DriverMemory
		if cfg.MySQLDSN != "" {
			cfg.StoreDriver = DriverMySQL
		}
	}

	if v := os.Getenv("INVENTORY_COLLECTION"); v != "" {
		cfg.Collection = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.SQLitePath = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.RedisDB = n
		}
	}

	if v := os.Getenv("RABBITMQ_EXCHANGE"); v != "" {
		cfg.RabbitExchange = v
	}
	if v := os.Getenv("RABBITMQ_QUEUE"); v != "" {
		cfg.RabbitQueue = v
	}
	if v := os.Getenv("RABBITMQ_ROUTING_KEY"); v != "" {
		cfg.RabbitRoutingKey = v
	}
	if v := os.Getenv("RABBITMQ_CONSUMER_TAG"); v != "" {
		cfg.RabbitConsumerTag = v
	}
	if v := os.Getenv("RABBITMQ_PUBLISH_PREFIX"); v != "" {
		cfg.RabbitPublishPrefix = v
	}

	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("OTEL_SERVICE_NAME"); v != "" {
		cfg.OTELServiceName = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTLPEndpoint = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_INSECURE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.OTLPInsecure = b
		}
	}

	if v := os.Getenv("SSE_HEARTBEAT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SSEHeartbeat = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("SESSION_COOKIE"); v != "" {
		cfg.SessionCookie = v
	}
	if v := os.Getenv("SESSION_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SessionTTL = time.Duration(n) * time.Minute
		}
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
			}
		}
	}

	return cfg
}

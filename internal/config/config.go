package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Server     ServerConfig
	Worker     WorkerConfig
	Logging    LoggingConfig
	EventBus   EventBusConfig
	Database   DatabaseConfig
	Settlement SettlementConfig
	Transfer   TransferConfig
	Breaker    BreakerConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ShutdownTimeout time.Duration
}

type WorkerConfig struct {
	PoolSize   int
	MaxRetries int
	RetryDelay time.Duration
}

type LoggingConfig struct {
	Level string
}

type EventBusConfig struct {
	ChannelBufferSize int
}

// DatabaseConfig selects the Postgres store when URL is set. An empty URL
// keeps everything in memory.
type DatabaseConfig struct {
	URL             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	ConnectAttempts int
}

type SettlementConfig struct {
	AuthorizeLatency    time.Duration
	NotifyLatency       time.Duration
	ConfirmLatency      time.Duration
	CallTimeout         time.Duration
	MaxAuthorizedAmount decimal.Decimal
}

type TransferConfig struct {
	InstitutionID     string
	CompensationDelay time.Duration
	Timeout           time.Duration
	SecretHashCost    int
}

type BreakerConfig struct {
	MaxRequests         uint32
	Interval            time.Duration
	Timeout             time.Duration
	ConsecutiveFailures uint32
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Worker: WorkerConfig{
			PoolSize:   getIntEnv("WORKER_POOL_SIZE", 10),
			MaxRetries: getIntEnv("MAX_RETRIES", 5),
			RetryDelay: getDurationEnv("RETRY_BASE_DELAY", 100*time.Millisecond),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		EventBus: EventBusConfig{
			ChannelBufferSize: getIntEnv("EVENT_CHANNEL_BUFFER_SIZE", 1000),
		},
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        int32(getIntEnv("DATABASE_MAX_CONNS", 10)),
			MinConns:        int32(getIntEnv("DATABASE_MIN_CONNS", 0)),
			MaxConnLifetime: getDurationEnv("DATABASE_MAX_CONN_LIFETIME", time.Hour),
			MaxConnIdleTime: getDurationEnv("DATABASE_MAX_CONN_IDLE_TIME", 30*time.Minute),
			ConnectAttempts: getIntEnv("DATABASE_CONNECT_ATTEMPTS", 5),
		},
		Settlement: SettlementConfig{
			AuthorizeLatency:    getDurationEnv("SETTLEMENT_AUTHORIZE_LATENCY", 500*time.Millisecond),
			NotifyLatency:       getDurationEnv("SETTLEMENT_NOTIFY_LATENCY", 300*time.Millisecond),
			ConfirmLatency:      getDurationEnv("SETTLEMENT_CONFIRM_LATENCY", 200*time.Millisecond),
			CallTimeout:         getDurationEnv("SETTLEMENT_CALL_TIMEOUT", 5*time.Second),
			MaxAuthorizedAmount: getDecimalEnv("SETTLEMENT_MAX_AUTHORIZED_AMOUNT", decimal.Zero),
		},
		Transfer: TransferConfig{
			InstitutionID:     getEnv("TRANSFER_INSTITUTION_ID", "000"),
			CompensationDelay: getDurationEnv("TRANSFER_COMPENSATION_DELAY", time.Second),
			Timeout:           getDurationEnv("TRANSFER_TIMEOUT", 30*time.Second),
			SecretHashCost:    getIntEnv("SECRET_HASH_COST", 10),
		},
		Breaker: BreakerConfig{
			MaxRequests:         uint32(getIntEnv("BREAKER_MAX_REQUESTS", 1)),
			Interval:            getDurationEnv("BREAKER_INTERVAL", time.Minute),
			Timeout:             getDurationEnv("BREAKER_TIMEOUT", 30*time.Second),
			ConsecutiveFailures: uint32(getIntEnv("BREAKER_CONSECUTIVE_FAILURES", 5)),
		},
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid duration for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		log.Printf("Invalid decimal for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

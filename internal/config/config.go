package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type key string

const (
	KeyUUID    key = "uuid"
	KeyLogger  key = "logger"
	KeyMetrics key = "metrics"
)

type Config struct {
	Service    Service
	Postgres   Postgres
	Logger     Logger
	Platform   Platform
	Centrifuge Centrifuge
	Kafka      Kafka
	Metrics    Metrics
	Chat       Chat
	Client     Client
}

type Service struct {
	Port string `env:"SERVICE_PORT" env-default:"8080"`
	Name string `env:"SERVICE_NAME" env-default:"chat-service"`
}

type Postgres struct {
	User     string `env:"CHAT_SERVICE_POSTGRES_USER" env-default:""`
	Password string `env:"CHAT_SERVICE_POSTGRES_PASSWORD" env-default:""`
	Database string `env:"CHAT_SERVICE_POSTGRES_DB" env-default:""`
	Host     string `env:"CHAT_SERVICE_POSTGRES_HOST" env-default:""`
	Port     string `env:"CHAT_SERVICE_POSTGRES_PORT" env-default:""`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Platform struct {
	Env string `env:"ENV"`
}

type Centrifuge struct {
	BaseURL      string        `env:"CENTRIFUGO_BASE_URL" env-default:"http://localhost:8000"`
	WebsocketURL string        `env:"CENTRIFUGO_WS_URL" env-default:"ws://localhost:8000/connection/websocket"`
	APIKey       string        `env:"CENTRIFUGO_API_KEY"`
	JWTSecret    string        `env:"CENTRIFUGO_JWT_SECRET"`
	Timeout      time.Duration `env:"CENTRIFUGO_TIMEOUT" env-default:"5s"`
}

type Kafka struct {
	Host      string `env:"KAFKA_HOST"`
	Port      string `env:"KAFKA_PORT"`
	UserTopic string `env:"USER_TOPIC"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

// Chat holds the settings of the public chat room shared by the service and the client.
type Chat struct {
	AdminUserID   string  `env:"CHAT_ADMIN_USER_ID"`
	Channel       string  `env:"CHAT_CHANNEL" env-default:"messages"`
	ReconcileCron string  `env:"CHAT_RECONCILE_CRON" env-default:"*/5 * * * *"`
	SendRPS       float64 `env:"CHAT_SEND_RPS" env-default:"1"`
	SendBurst     int     `env:"CHAT_SEND_BURST" env-default:"5"`
}

type Client struct {
	BaseURL   string        `env:"CHAT_CLIENT_BASE_URL" env-default:"http://localhost:8080"`
	UserID    string        `env:"CHAT_CLIENT_USER_ID"`
	Username  string        `env:"CHAT_CLIENT_USERNAME"`
	AvatarURL string        `env:"CHAT_CLIENT_AVATAR_URL"`
	Timeout   time.Duration `env:"CHAT_CLIENT_TIMEOUT" env-default:"10s"`
}

func MustLoad() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env variables: %s", err)
	}

	return cfg
}

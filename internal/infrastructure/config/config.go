package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// 転送方式
const (
	TransportHTTP = "http"
	TransportGRPC = "grpc"
)

// 保存先
const (
	StorageMemory = "memory"
	StorageMySQL  = "mysql"
)

var (
	// ErrInvalidConfig 設定値が不正
	ErrInvalidConfig = errors.New("invalid config")
)

// Config アプリケーション全体の設定
type Config struct {
	Client        ClientConfig
	Server        ServerConfig
	Database      DatabaseConfig
	JWT           JWTConfig
	OpenTelemetry OpenTelemetryConfig
	Environment   string
}

// ClientConfig APIクライアント設定
type ClientConfig struct {
	BaseURL          string
	Transport        string // "http", "grpc"
	GRPCTarget       string
	MerchantID       string
	AccessToken      string
	TokenSecret      string
	TokenIssuer      string
	TokenAudience    string
	TokenSubject     string
	TokenTTL         time.Duration
	Timeout          time.Duration
	RetryCount       int
	RetryWaitTime    time.Duration
	RetryMaxWaitTime time.Duration
}

// ServerConfig サンドボックスサーバー設定
type ServerConfig struct {
	Port         int
	GRPCPort     int
	Storage      string // "memory", "mysql"
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DatabaseConfig データベース設定
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// JWTConfig サンドボックスが受け付けるベアラートークンの設定
type JWTConfig struct {
	Secret   string
	Issuer   string
	Audience string
}

// OpenTelemetryConfig OpenTelemetry設定
type OpenTelemetryConfig struct {
	Enabled         bool
	ServiceName     string
	ServiceVersion  string
	OTLPEndpoint    string
	OTLPInsecure    bool
	TraceExporter   string // "otlp", "none"
	MetricsExporter string // "otlp", "none"
	SampleRatio     float64
	MetricsInterval time.Duration
}

// Load サンドボックスサーバーの設定を読み込む
func Load() (*Config, error) {
	cfg := load()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// LoadClient クライアントの設定を読み込む
//
// サーバー側の設定は検証しない。
func LoadClient() (*Config, error) {
	cfg := load()
	if err := cfg.Client.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func load() *Config {
	// .envファイルを読み込む（存在しない場合は無視）
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Client: ClientConfig{
			BaseURL:          getEnv("PAYMENTS_BASE_URL", "http://localhost:8080"),
			Transport:        getEnv("PAYMENTS_TRANSPORT", TransportHTTP),
			GRPCTarget:       getEnv("PAYMENTS_GRPC_TARGET", "localhost:8081"),
			MerchantID:       getEnv("PAYMENTS_MERCHANT_ID", ""),
			AccessToken:      getEnv("PAYMENTS_ACCESS_TOKEN", ""),
			TokenSecret:      getEnv("PAYMENTS_TOKEN_SECRET", ""),
			TokenIssuer:      getEnv("PAYMENTS_TOKEN_ISSUER", "online-payments-client"),
			TokenAudience:    getEnv("PAYMENTS_TOKEN_AUDIENCE", "online-payments"),
			TokenSubject:     getEnv("PAYMENTS_TOKEN_SUBJECT", ""),
			TokenTTL:         getEnvAsDuration("PAYMENTS_TOKEN_TTL", 5*time.Minute),
			Timeout:          getEnvAsDuration("PAYMENTS_TIMEOUT", 30*time.Second),
			RetryCount:       getEnvAsInt("PAYMENTS_RETRY_COUNT", 2),
			RetryWaitTime:    getEnvAsDuration("PAYMENTS_RETRY_WAIT", 500*time.Millisecond),
			RetryMaxWaitTime: getEnvAsDuration("PAYMENTS_RETRY_MAX_WAIT", 5*time.Second),
		},
		Server: ServerConfig{
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			GRPCPort:     getEnvAsInt("SERVER_GRPC_PORT", 8081),
			Storage:      getEnv("SANDBOX_STORAGE", StorageMemory),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "payments_sandbox"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			ConnMaxIdleTime: getEnvAsDuration("DB_CONN_MAX_IDLE_TIME", 10*time.Minute),
		},
		JWT: JWTConfig{
			Secret:   getEnv("JWT_SECRET", ""),
			Issuer:   getEnv("JWT_ISSUER", ""),
			Audience: getEnv("JWT_AUDIENCE", "online-payments"),
		},
		OpenTelemetry: OpenTelemetryConfig{
			Enabled:         getEnvAsBool("OTEL_ENABLED", false),
			ServiceName:     getEnv("OTEL_SERVICE_NAME", "online-payments"),
			ServiceVersion:  getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			OTLPEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318"),
			OTLPInsecure:    getEnvAsBool("OTEL_EXPORTER_OTLP_INSECURE", true),
			TraceExporter:   getEnv("OTEL_TRACES_EXPORTER", "otlp"),
			MetricsExporter: getEnv("OTEL_METRICS_EXPORTER", "otlp"),
			SampleRatio:     getEnvAsFloat("OTEL_TRACES_SAMPLER_ARG", 1),
			MetricsInterval: getEnvAsDuration("OTEL_METRIC_EXPORT_INTERVAL", time.Minute),
		},
	}
}

// validate サンドボックスサーバー設定の検証
func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("%w: JWT_SECRET is required", ErrInvalidConfig)
	}
	switch c.Server.Storage {
	case StorageMemory:
	case StorageMySQL:
		if c.Database.Host == "" {
			return fmt.Errorf("%w: DB_HOST is required", ErrInvalidConfig)
		}
		if c.Database.Database == "" {
			return fmt.Errorf("%w: DB_NAME is required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unsupported SANDBOX_STORAGE %q", ErrInvalidConfig, c.Server.Storage)
	}
	if c.Server.Port == c.Server.GRPCPort {
		return fmt.Errorf("%w: SERVER_PORT and SERVER_GRPC_PORT must differ", ErrInvalidConfig)
	}
	return nil
}

// validate クライアント設定の検証
func (c *ClientConfig) validate() error {
	switch c.Transport {
	case TransportHTTP:
		if c.BaseURL == "" {
			return fmt.Errorf("%w: PAYMENTS_BASE_URL is required", ErrInvalidConfig)
		}
	case TransportGRPC:
		if c.GRPCTarget == "" {
			return fmt.Errorf("%w: PAYMENTS_GRPC_TARGET is required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unsupported PAYMENTS_TRANSPORT %q", ErrInvalidConfig, c.Transport)
	}
	if c.AccessToken != "" && c.TokenSecret != "" {
		return fmt.Errorf("%w: PAYMENTS_ACCESS_TOKEN and PAYMENTS_TOKEN_SECRET are mutually exclusive", ErrInvalidConfig)
	}
	if c.RetryCount < 0 {
		return fmt.Errorf("%w: PAYMENTS_RETRY_COUNT must not be negative", ErrInvalidConfig)
	}
	return nil
}

// DSN データベース接続文字列を返す
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// getEnv 環境変数を取得（デフォルト値付き）
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt 環境変数を整数として取得
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsFloat 環境変数を浮動小数点数として取得
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool 環境変数を真偽値として取得
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration 環境変数を時間として取得
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

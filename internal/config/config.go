// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for our application
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Security   SecurityConfig
	Classifier ClassifierConfig
	Detection  DetectionConfig
	Payment    PaymentConfig
	Store      StoreConfig
	Logging    LoggingConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string
	Version     string
	Environment string
	Debug       bool
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// RedisConfig contains Redis configuration
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	CartTTL      time.Duration
}

// JWTConfig contains shopper session token configuration
type JWTConfig struct {
	Secret        string
	SessionExpiry time.Duration
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	RateLimitPerMinute int
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	TrustedProxies     []string
}

// ClassifierConfig contains the image classifier service configuration
type ClassifierConfig struct {
	BaseURL        string
	LoadTimeout    time.Duration
	PredictTimeout time.Duration
}

// DetectionConfig contains the detection loop configuration
type DetectionConfig struct {
	ConfidenceThreshold float64
	DebounceWindow      time.Duration
	CycleInterval       time.Duration
	ExcludedLabels      []string
}

// PaymentConfig contains the simulated payment processor configuration
type PaymentConfig struct {
	VerifyDelay        time.Duration
	SuccessProbability float64
	QRExpiry           time.Duration
	QRPollInterval     time.Duration
	CompletionDelay    time.Duration
}

// StoreConfig contains storefront identity used in payment payloads and receipts
type StoreConfig struct {
	Name          string
	ReceiverUPIID string
	Currency      string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Smart Cart Backend"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			Debug:       getEnvAsBool("APP_DEBUG", true),
		},
		Server: ServerConfig{
			Port:         getEnv("APP_PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
			CartTTL:      getEnvAsDuration("CART_TTL", 24*time.Hour),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", "your-super-secret-jwt-key-change-in-production"),
			SessionExpiry: getEnvAsDuration("JWT_SESSION_EXPIRE", 24*time.Hour),
		},
		Security: SecurityConfig{
			RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 100),
			CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:3001"}),
			CORSAllowedMethods: getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			CORSAllowedHeaders: getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization"}),
			TrustedProxies:     getEnvAsSlice("TRUSTED_PROXIES", []string{}),
		},
		Classifier: ClassifierConfig{
			BaseURL:        getEnv("CLASSIFIER_BASE_URL", "http://localhost:9000/model"),
			LoadTimeout:    getEnvAsDuration("CLASSIFIER_LOAD_TIMEOUT", 30*time.Second),
			PredictTimeout: getEnvAsDuration("CLASSIFIER_PREDICT_TIMEOUT", 5*time.Second),
		},
		Detection: DetectionConfig{
			ConfidenceThreshold: getEnvAsFloat("DETECTION_CONFIDENCE_THRESHOLD", 0.98),
			DebounceWindow:      getEnvAsDuration("DETECTION_DEBOUNCE_WINDOW", 3*time.Second),
			CycleInterval:       getEnvAsDuration("DETECTION_CYCLE_INTERVAL", 33*time.Millisecond),
			ExcludedLabels:      getEnvAsSlice("DETECTION_EXCLUDED_LABELS", []string{"background", "nothing"}),
		},
		Payment: PaymentConfig{
			VerifyDelay:        getEnvAsDuration("PAYMENT_VERIFY_DELAY", 2*time.Second),
			SuccessProbability: getEnvAsFloat("PAYMENT_SUCCESS_PROBABILITY", 0.7),
			QRExpiry:           getEnvAsDuration("PAYMENT_QR_EXPIRY", 300*time.Second),
			QRPollInterval:     getEnvAsDuration("PAYMENT_QR_POLL_INTERVAL", 5*time.Second),
			CompletionDelay:    getEnvAsDuration("PAYMENT_COMPLETION_DELAY", 2*time.Second),
		},
		Store: StoreConfig{
			Name:          getEnv("STORE_NAME", "Smart Cart Store"),
			ReceiverUPIID: getEnv("STORE_RECEIVER_UPI_ID", "store@okaxis"),
			Currency:      getEnv("STORE_CURRENCY", "INR"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Validate JWT secret
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	}

	// Validate Redis configuration
	if c.Redis.Host == "" {
		return fmt.Errorf("REDIS_HOST is required")
	}

	// Validate server port
	if c.Server.Port == "" {
		return fmt.Errorf("APP_PORT is required")
	}

	if c.Detection.ConfidenceThreshold <= 0 || c.Detection.ConfidenceThreshold >= 1 {
		return fmt.Errorf("DETECTION_CONFIDENCE_THRESHOLD must be between 0 and 1 exclusive")
	}

	if c.Payment.SuccessProbability < 0 || c.Payment.SuccessProbability > 1 {
		return fmt.Errorf("PAYMENT_SUCCESS_PROBABILITY must be between 0 and 1")
	}

	if c.Payment.QRPollInterval >= c.Payment.QRExpiry {
		return fmt.Errorf("PAYMENT_QR_POLL_INTERVAL must be shorter than PAYMENT_QR_EXPIRY")
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

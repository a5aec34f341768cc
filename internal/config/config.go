// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultSessionSecret = "change-this-admin-session-secret"

type Config struct {
	Environment string
	Server      ServerConfig
	Storage     StorageConfig
	Session     SessionConfig
	Admin       AdminConfig
	CORS        CORSConfig
	RateLimit   RateLimitConfig
	Log         LogConfig
	AWS         AWSConfig
	Email       EmailConfig
	I18n        I18nConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

// StorageConfig locates the JSON documents and uploaded assets on disk.
type StorageConfig struct {
	DataDir          string
	UploadsDir       string
	UploadsURLPrefix string
	MaxUploadMB      int // 0 disables the cap
	ThumbnailWidth   int // 0 disables thumbnails
	ServeUploads     bool
}

type SessionConfig struct {
	Secret   string
	TTLHours int
}

// AdminConfig seeds the admin document on first boot only.
type AdminConfig struct {
	InitialPassword string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	MessagesPerMinute int
	MessagesBurst     int
	LoginPerMinute    int
	LoginBurst        int
}

type LogConfig struct {
	Level  string
	Format string
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
	CloudFrontURL   string
}

// EmailConfig drives new-message alerts. An empty SMTPHost or NotifyTo
// disables them.
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	NotifyTo     string
}

type I18nConfig struct {
	DefaultLocale string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Storage: StorageConfig{
			DataDir:          getEnv("DATA_DIR", "./data"),
			UploadsDir:       getEnv("UPLOADS_DIR", "./public/uploads"),
			UploadsURLPrefix: getEnv("UPLOADS_URL_PREFIX", "/uploads"),
			MaxUploadMB:      getEnvAsInt("MAX_UPLOAD_MB", 0),
			ThumbnailWidth:   getEnvAsInt("THUMBNAIL_WIDTH", 0),
			ServeUploads:     getEnvAsBool("SERVE_UPLOADS", true),
		},
		Session: SessionConfig{
			Secret:   getEnv("SESSION_SECRET", defaultSessionSecret),
			TTLHours: getEnvAsInt("SESSION_TTL_HOURS", 12),
		},
		Admin: AdminConfig{
			InitialPassword: getEnv("ADMIN_PASSWORD", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		RateLimit: RateLimitConfig{
			MessagesPerMinute: getEnvAsInt("RATE_LIMIT_MESSAGES_PER_MINUTE", 5),
			MessagesBurst:     getEnvAsInt("RATE_LIMIT_MESSAGES_BURST", 3),
			LoginPerMinute:    getEnvAsInt("RATE_LIMIT_LOGIN_PER_MINUTE", 5),
			LoginBurst:        getEnvAsInt("RATE_LIMIT_LOGIN_BURST", 5),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			S3Bucket:        getEnv("AWS_S3_BUCKET", ""),
			CloudFrontURL:   getEnv("AWS_CLOUDFRONT_URL", ""),
		},
		Email: EmailConfig{
			SMTPHost:     getEnv("SMTP_HOST", ""),
			SMTPPort:     getEnv("SMTP_PORT", "587"),
			SMTPUsername: getEnv("SMTP_USERNAME", ""),
			SMTPPassword: getEnv("SMTP_PASSWORD", ""),
			FromEmail:    getEnv("FROM_EMAIL", "noreply@localhost"),
			NotifyTo:     getEnv("NOTIFY_EMAIL", ""),
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "fa"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Storage.DataDir) == "" {
		return fmt.Errorf("DATA_DIR must not be empty")
	}

	if strings.TrimSpace(c.Storage.UploadsDir) == "" {
		return fmt.Errorf("UPLOADS_DIR must not be empty")
	}

	if c.Session.Secret == defaultSessionSecret && c.Environment == "production" {
		return fmt.Errorf("session secret must be changed in production")
	}

	if c.AWS.AccessKeyID != "" && c.AWS.S3Bucket == "" {
		return fmt.Errorf("AWS_S3_BUCKET is required when AWS credentials are set")
	}

	return nil
}

// NotifiesByEmail reports whether new messages are mailed to the owner.
func (c *Config) NotifiesByEmail() bool {
	return c.Email.SMTPHost != "" && c.Email.NotifyTo != ""
}

// UsesS3 reports whether uploads go to S3 instead of the local uploads dir.
func (c *Config) UsesS3() bool {
	return c.AWS.AccessKeyID != "" && c.AWS.S3Bucket != ""
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Helper functions
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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

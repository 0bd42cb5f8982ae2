package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppPort     string `yaml:"APP_PORT"`
	AppURL      string `yaml:"APP_URL"`
	LogLevel    string `yaml:"LOG_LEVEL"`
	CORSOrigins string `yaml:"CORS_ORIGINS"`
	RateLimit   int    `yaml:"RATE_LIMIT_PER_SECOND"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT
	JWTSecret   string `yaml:"JWT_SECRET"`
	JWTTTLHours int    `yaml:"JWT_TTL_HOURS"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket   string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region   string `yaml:"AWS_S3_REGION"`
	AWSS3Endpoint string `yaml:"AWS_S3_ENDPOINT"`
	AWSAccessKey  string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey  string `yaml:"AWS_SECRET_KEY"`

	// Gemini API configuration
	GeminiAPIKey  string `yaml:"GEMINI_API_KEY"`
	GeminiModel   string `yaml:"GEMINI_MODEL"`
	GeminiBaseURL string `yaml:"GEMINI_BASE_URL"`

	// Scheduled jobs
	ExpiryDigestCron string `yaml:"EXPIRY_DIGEST_CRON"`
}

// LoadConfig reads the yaml file at path (a missing file is not an error)
// and lets environment variables of the same name override it.
func LoadConfig(path string) (Config, error) {
	cfg := Config{}

	file, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("failed to read config file, %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file, %w", err)
		}
	}

	overrideFromEnv(&cfg)
	cfg.applyDefaults()

	return cfg, nil
}

func overrideFromEnv(cfg *Config) {
	strs := map[string]*string{
		"APP_PORT":           &cfg.AppPort,
		"APP_URL":            &cfg.AppURL,
		"LOG_LEVEL":          &cfg.LogLevel,
		"CORS_ORIGINS":       &cfg.CORSOrigins,
		"DB_USER":            &cfg.DBUser,
		"DB_NAME":            &cfg.DBName,
		"DB_PASSWORD":        &cfg.DBPassword,
		"DB_PORT":            &cfg.DBPort,
		"DB_HOST":            &cfg.DBHost,
		"JWT_SECRET":         &cfg.JWTSecret,
		"SMTP_HOST":          &cfg.SMTPHost,
		"SMTP_PORT":          &cfg.SMTPPort,
		"SMTP_SENDER_NAME":   &cfg.SMTPSenderName,
		"SMTP_AUTH_EMAIL":    &cfg.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD": &cfg.SMTPAuthPassword,
		"AWS_S3_BUCKET":      &cfg.AWSS3Bucket,
		"AWS_S3_REGION":      &cfg.AWSS3Region,
		"AWS_S3_ENDPOINT":    &cfg.AWSS3Endpoint,
		"AWS_ACCESS_KEY":     &cfg.AWSAccessKey,
		"AWS_SECRET_KEY":     &cfg.AWSSecretKey,
		"GEMINI_API_KEY":     &cfg.GeminiAPIKey,
		"GEMINI_MODEL":       &cfg.GeminiModel,
		"GEMINI_BASE_URL":    &cfg.GeminiBaseURL,
		"EXPIRY_DIGEST_CRON": &cfg.ExpiryDigestCron,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv("JWT_TTL_HOURS"); ok {
		if hours, err := strconv.Atoi(v); err == nil {
			cfg.JWTTTLHours = hours
		}
	}
	if v, ok := os.LookupEnv("RATE_LIMIT_PER_SECOND"); ok {
		if limit, err := strconv.Atoi(v); err == nil {
			cfg.RateLimit = limit
		}
	}
}

func (c *Config) applyDefaults() {
	if c.AppPort == "" {
		c.AppPort = "3000"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.RateLimit == 0 {
		c.RateLimit = 10
	}
	if c.JWTTTLHours <= 0 {
		c.JWTTTLHours = 24 * 7
	}
	if c.GeminiModel == "" {
		c.GeminiModel = "gemini-2.5-flash"
	}
	if c.GeminiBaseURL == "" {
		c.GeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
}

// Validate reports settings the application cannot start without.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}

	var missing []string
	for key, val := range map[string]string{
		"DB_HOST": c.DBHost,
		"DB_USER": c.DBUser,
		"DB_NAME": c.DBName,
		"DB_PORT": c.DBPort,
	} {
		if val == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing database settings: %s", strings.Join(missing, ", "))
	}

	return nil
}

func (c Config) SMTPEnabled() bool {
	return c.SMTPHost != "" && c.SMTPAuthEmail != ""
}

func (c Config) Origins() []string {
	if c.CORSOrigins == "" {
		return []string{"*"}
	}
	return strings.Split(c.CORSOrigins, ",")
}

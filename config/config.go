package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
    // Server
    Port           string   `validate:"required,numeric"`
    Environment    string   `validate:"oneof=development staging production test"`
    AllowedOrigins []string `validate:"min=1,dive,required"`
    MaxBodyBytes   int64    `validate:"gt=0"`
    AdminToken     string

    // Database
    Database DatabaseConfig

    // AI Service (diagnosis oracle)
    AI AIConfig

    // Matching thresholds
    Matching MatchingConfig

    // Logging
    Log LogConfig
}

type DatabaseConfig struct {
    Type     string `validate:"oneof=mongodb memory"`
    URI      string
    Name     string `validate:"required"`
    Host     string
    Port     string
    Username string
    Password string

    // Connection pool settings
    MaxConnections int `validate:"gte=0"`
    MinConnections int `validate:"gte=0"`
    MaxIdleTime    time.Duration
}

type AIConfig struct {
    BaseURL      string        `validate:"required,url"`
    APIKey       string
    Model        string        `validate:"required"`
    VisionModel  string        `validate:"required"`
    MaxTokens    int           `validate:"gt=0"`
    Temperature  float64       `validate:"gte=0,lte=2"`
    Timeout      time.Duration `validate:"gt=0"`
    ImageTimeout time.Duration `validate:"gt=0"`
    CacheTTL     time.Duration `validate:"gte=0"`
}

// MatchingConfig holds the decision policy cut-offs
type MatchingConfig struct {
    DiagnoseThreshold  float64 `validate:"gte=0,lte=1"`
    ClarifyBelow       float64 `validate:"gte=0,lte=1,gtefield=DiagnoseThreshold"`
    ClarifyMaxSymptoms int     `validate:"gte=0"`
    HistoryWindow      int     `validate:"gte=0"`
    FollowUpQuestions  int     `validate:"gt=0"`
}

type LogConfig struct {
    File  string
    Level string `validate:"oneof=debug info warn error"`
}

var cfg *Config

// Load reads .env and the environment into a validated Config
func Load() (*Config, error) {
    if err := godotenv.Load(); err != nil {
        log.Println("No .env file found, using environment variables")
    }

    c := &Config{
        Port:           getEnv("PORT", "8080"),
        Environment:    getEnv("ENVIRONMENT", "development"),
        AllowedOrigins: getEnvAsSlice("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
        MaxBodyBytes:   int64(getEnvAsInt("MAX_BODY_BYTES", 8<<20)),
        AdminToken:     getEnv("ADMIN_TOKEN", ""),

        Database: DatabaseConfig{
            Type:     getEnv("DB_TYPE", "memory"),
            URI:      getEnv("DATABASE_URL", ""),
            Name:     getEnv("DB_NAME", "digital_physician"),
            Host:     getEnv("DB_HOST", "localhost"),
            Port:     getEnv("DB_PORT", "27017"),
            Username: getEnv("DB_USERNAME", ""),
            Password: getEnv("DB_PASSWORD", ""),

            MaxConnections: getEnvAsInt("DB_MAX_CONNECTIONS", 100),
            MinConnections: getEnvAsInt("DB_MIN_CONNECTIONS", 10),
            MaxIdleTime:    getEnvAsDuration("DB_MAX_IDLE_TIME", "30m"),
        },

        AI: AIConfig{
            BaseURL:      getEnv("AI_BASE_URL", "https://api.openai.com"),
            APIKey:       getEnv("OPENAI_API_KEY", ""),
            Model:        getEnv("AI_MODEL", "gpt-4"),
            VisionModel:  getEnv("AI_VISION_MODEL", "gpt-4-vision-preview"),
            MaxTokens:    getEnvAsInt("AI_MAX_TOKENS", 1200),
            Temperature:  getEnvAsFloat("AI_TEMPERATURE", 0.3),
            Timeout:      getEnvAsDuration("AI_TIMEOUT", "15s"),
            ImageTimeout: getEnvAsDuration("AI_IMAGE_TIMEOUT", "20s"),
            CacheTTL:     getEnvAsDuration("AI_CACHE_TTL", "30m"),
        },

        Matching: MatchingConfig{
            DiagnoseThreshold:  getEnvAsFloat("DIAGNOSE_THRESHOLD", 0.5),
            ClarifyBelow:       getEnvAsFloat("CLARIFY_BELOW", 0.6),
            ClarifyMaxSymptoms: getEnvAsInt("CLARIFY_MAX_SYMPTOMS", 3),
            HistoryWindow:      getEnvAsInt("HISTORY_WINDOW", 3),
            FollowUpQuestions:  getEnvAsInt("FOLLOW_UP_QUESTIONS", 3),
        },

        Log: LogConfig{
            File:  getEnv("LOG_FILE", "logs/app.log"),
            Level: strings.ToLower(getEnv("LOG_LEVEL", "info")),
        },
    }

    if err := c.Validate(); err != nil {
        return nil, fmt.Errorf("configuration validation failed: %w", err)
    }

    cfg = c
    return cfg, nil
}

// Get returns the loaded configuration
func Get() *Config {
    if cfg == nil {
        log.Fatal("Configuration not loaded. Call Load() first")
    }
    return cfg
}

// Default returns the configuration used when no environment is set.
// Tests start from it and override single fields.
func Default() *Config {
    return &Config{
        Port:           "8080",
        Environment:    "test",
        AllowedOrigins: []string{"http://localhost:3000"},
        MaxBodyBytes:   8 << 20,
        Database: DatabaseConfig{
            Type: "memory",
            Name: "digital_physician",
        },
        AI: AIConfig{
            BaseURL:      "https://api.openai.com",
            Model:        "gpt-4",
            VisionModel:  "gpt-4-vision-preview",
            MaxTokens:    1200,
            Temperature:  0.3,
            Timeout:      15 * time.Second,
            ImageTimeout: 20 * time.Second,
            CacheTTL:     30 * time.Minute,
        },
        Matching: MatchingConfig{
            DiagnoseThreshold:  0.5,
            ClarifyBelow:       0.6,
            ClarifyMaxSymptoms: 3,
            HistoryWindow:      3,
            FollowUpQuestions:  3,
        },
        Log: LogConfig{Level: "info"},
    }
}

// Helper functions
func getEnv(key, defaultValue string) string {
    if value := os.Getenv(key); value != "" {
        return value
    }
    return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
    valueStr := getEnv(key, "")
    if value, err := strconv.Atoi(valueStr); err == nil {
        return value
    }
    return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
    valueStr := getEnv(key, "")
    if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
        return value
    }
    return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
    valueStr := getEnv(key, defaultValue)
    if duration, err := time.ParseDuration(valueStr); err == nil {
        return duration
    }
    duration, _ := time.ParseDuration(defaultValue)
    return duration
}

func getEnvAsSlice(key string, defaultValue []string) []string {
    value := getEnv(key, "")
    if value == "" {
        return defaultValue
    }
    parts := strings.Split(value, ",")
    out := make([]string, 0, len(parts))
    for _, p := range parts {
        if p = strings.TrimSpace(p); p != "" {
            out = append(out, p)
        }
    }
    return out
}

// Validate checks field ranges and cross-field rules
func (c *Config) Validate() error {
    if err := validator.New().Struct(c); err != nil {
        return err
    }

    if c.Database.Type == "mongodb" && c.Database.URI == "" {
        if c.Database.Host == "" || c.Database.Port == "" {
            return fmt.Errorf("database URI or host/port must be provided")
        }
    }

    if c.Database.MinConnections > c.Database.MaxConnections {
        return fmt.Errorf("DB_MIN_CONNECTIONS must not exceed DB_MAX_CONNECTIONS")
    }

    return nil
}

// BuildDatabaseURI constructs the database URI if not provided
func (c *Config) BuildDatabaseURI() string {
    if c.Database.URI != "" {
        return c.Database.URI
    }

    if c.Database.Username != "" && c.Database.Password != "" {
        return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s",
            c.Database.Username,
            c.Database.Password,
            c.Database.Host,
            c.Database.Port,
            c.Database.Name,
        )
    }
    return fmt.Sprintf("mongodb://%s:%s/%s",
        c.Database.Host,
        c.Database.Port,
        c.Database.Name,
    )
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
    return c.Environment == "production"
}

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissingConfig = errors.New("missing required configuration")

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string
	JWTTTL    time.Duration

	HubBufferLimit  int
	StreamKeepAlive time.Duration

	LogLevel  string
	LogFormat string

	KafkaHost              string
	KafkaOrderChangedTopic string

	SeedDemoData       bool
	JobsReportSchedule string
	ShutdownTimeout    time.Duration
}

// DSN is the connection string for gorm's postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaEnabled reports whether order events should be relayed to Kafka.
func (c Config) KafkaEnabled() bool {
	return c.KafkaHost != "" && c.KafkaOrderChangedTopic != ""
}

// LoadConfig reads the environment, after loading envFile when it exists.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var errs []error
	cfg := Config{
		HTTPPort:   stringVar("HTTP_PORT", "8080"),
		DBHost:     requiredVar("DB_HOST", &errs),
		DBPort:     stringVar("DB_PORT", "5432"),
		DBUser:     requiredVar("DB_USER", &errs),
		DBPassword: stringVar("DB_PASSWORD", ""),
		DBName:     requiredVar("DB_NAME", &errs),
		DBSslMode:  stringVar("DB_SSLMODE", "disable"),

		JWTSecret: requiredVar("JWT_SECRET", &errs),
		JWTTTL:    durationVar("JWT_TTL", 24*time.Hour, &errs),

		HubBufferLimit:  intVar("HUB_BUFFER_LIMIT", 1024, &errs),
		StreamKeepAlive: durationVar("STREAM_KEEPALIVE", 15*time.Second, &errs),

		LogLevel:  stringVar("LOG_LEVEL", "info"),
		LogFormat: stringVar("LOG_FORMAT", "json"),

		KafkaHost:              stringVar("KAFKA_HOST", ""),
		KafkaOrderChangedTopic: stringVar("KAFKA_ORDER_CHANGED_TOPIC", ""),

		SeedDemoData:       boolVar("SEED_DEMO_DATA", false, &errs),
		JobsReportSchedule: stringVar("JOBS_REPORT_SCHEDULE", "*/30 * * * * *"),
		ShutdownTimeout:    durationVar("SHUTDOWN_TIMEOUT", 10*time.Second, &errs),
	}

	if cfg.HubBufferLimit < 0 {
		errs = append(errs, fmt.Errorf("HUB_BUFFER_LIMIT must not be negative, got %d", cfg.HubBufferLimit))
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func stringVar(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func requiredVar(key string, errs *[]error) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		*errs = append(*errs, fmt.Errorf("%w: %s", ErrMissingConfig, key))
	}
	return v
}

func durationVar(key string, def time.Duration, errs *[]error) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}

func intVar(key string, def int, errs *[]error) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func boolVar(key string, def bool, errs *[]error) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return b
}

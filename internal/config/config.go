package config

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database     DatabaseConfig
	JWT          JWTConfig
	App          AppConfig
	Attendance   AttendanceConfig
	Gamification GamificationConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration. Token issuance lives in an external
// identity service; this app only verifies access tokens.
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	// Timezone is the fixed civil timezone every calendar date and period
	// is interpreted in, e.g. "Asia/Makassar".
	Timezone string
}

// AttendanceConfig holds the check-in scoring window. WindowStart and
// WindowEnd are clock times (HH:MM) in App.Timezone.
type AttendanceConfig struct {
	WindowStart string
	WindowEnd   string
	MaxScore    int
}

// GamificationConfig holds the XP curve and the level threshold table.
type GamificationConfig struct {
	XpBase          int
	XpPerPoint      float64
	LevelThresholds []LevelThreshold
}

type LevelThreshold struct {
	MinXp int64
	Level int
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using process environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "gembira"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Timezone: getEnv("APP_TIMEZONE", "Asia/Makassar"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Attendance scoring window
	maxScore, err := strconv.Atoi(getEnv("SCORE_MAX", "100"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCORE_MAX: %w", err)
	}
	config.Attendance = AttendanceConfig{
		WindowStart: getEnv("SCORE_WINDOW_START", "07:00"),
		WindowEnd:   getEnv("SCORE_WINDOW_END", "08:15"),
		MaxScore:    maxScore,
	}

	// Gamification configuration
	xpBase, err := strconv.Atoi(getEnv("XP_BASE", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid XP_BASE: %w", err)
	}
	xpPerPoint, err := strconv.ParseFloat(getEnv("XP_PER_POINT", "0.5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid XP_PER_POINT: %w", err)
	}
	thresholds, err := parseLevelThresholds(getEnv("LEVEL_THRESHOLDS", "0:1,100:2,300:3,700:4,1500:5"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEVEL_THRESHOLDS: %w", err)
	}
	config.Gamification = GamificationConfig{
		XpBase:          xpBase,
		XpPerPoint:      xpPerPoint,
		LevelThresholds: thresholds,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("APP_TIMEZONE is not a valid IANA timezone: %w", err)
	}
	start, err := parseClock(c.Attendance.WindowStart)
	if err != nil {
		return fmt.Errorf("SCORE_WINDOW_START: %w", err)
	}
	end, err := parseClock(c.Attendance.WindowEnd)
	if err != nil {
		return fmt.Errorf("SCORE_WINDOW_END: %w", err)
	}
	if end <= start {
		return fmt.Errorf("SCORE_WINDOW_END must be after SCORE_WINDOW_START")
	}
	if c.Attendance.MaxScore <= 0 {
		return fmt.Errorf("SCORE_MAX must be positive")
	}
	if c.Gamification.XpBase < 0 || c.Gamification.XpPerPoint < 0 {
		return fmt.Errorf("XP_BASE and XP_PER_POINT must not be negative")
	}
	if len(c.Gamification.LevelThresholds) == 0 {
		return fmt.Errorf("LEVEL_THRESHOLDS is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// WindowStartMinutes returns the scoring window start as minutes since
// midnight. Validate has already checked the format.
func (c *AttendanceConfig) WindowStartMinutes() int {
	m, _ := parseClock(c.WindowStart)
	return m
}

// WindowEndMinutes returns the scoring window end as minutes since midnight.
func (c *AttendanceConfig) WindowEndMinutes() int {
	m, _ := parseClock(c.WindowEnd)
	return m
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("expected HH:MM, got %q", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func parseLevelThresholds(value string) ([]LevelThreshold, error) {
	parts := strings.Split(value, ",")
	thresholds := make([]LevelThreshold, 0, len(parts))
	for _, part := range parts {
		kv := strings.Split(strings.TrimSpace(part), ":")
		if len(kv) != 2 {
			return nil, fmt.Errorf("expected minXp:level, got %q", part)
		}
		minXp, err := strconv.ParseInt(kv[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid minimum XP %q: %w", kv[0], err)
		}
		level, err := strconv.Atoi(kv[1])
		if err != nil {
			return nil, fmt.Errorf("invalid level %q: %w", kv[1], err)
		}
		thresholds = append(thresholds, LevelThreshold{MinXp: minXp, Level: level})
	}
	sort.Slice(thresholds, func(i, j int) bool { return thresholds[i].MinXp < thresholds[j].MinXp })
	return thresholds, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

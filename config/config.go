package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Scheduling semantics. Hours are wall-clock in DefaultTimezone;
	// buffers are minutes.
	DefaultTimezone     string `mapstructure:"DEFAULT_TIMEZONE"`
	WorkDayStartHour    int    `mapstructure:"WORK_DAY_START_HOUR"`
	WorkDayEndHour      int    `mapstructure:"WORK_DAY_END_HOUR"`
	WarmupMinutes       int    `mapstructure:"WARMUP_MINUTES"`
	CooldownMinutes     int    `mapstructure:"COOLDOWN_MINUTES"`
	MinLeadHours        int    `mapstructure:"MIN_LEAD_HOURS"`
	ReminderLeadHours   int    `mapstructure:"REMINDER_LEAD_HOURS"`
	AvailabilityTTLSecs int    `mapstructure:"AVAILABILITY_CACHE_TTL_SECS"`

	// Google Calendar collaborator.
	GoogleCalendarID      string `mapstructure:"GOOGLE_CALENDAR_ID"`
	GoogleCredentialsFile string `mapstructure:"GOOGLE_CREDENTIALS_FILE"`

	// Confirmation email.
	SMTPHost string `mapstructure:"SMTP_HOST"`
	SMTPPort string `mapstructure:"SMTP_PORT"`
	SMTPFrom string `mapstructure:"SMTP_FROM"`

	// CRM tagging side effect.
	CRMBaseURL string `mapstructure:"CRM_BASE_URL"`
	CRMAPIKey  string `mapstructure:"CRM_API_KEY"`

	// Admin surface.
	AdminJWTSecret string `mapstructure:"ADMIN_JWT_SECRET"`
	AdminAPISecret string `mapstructure:"ADMIN_API_SECRET"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DEFAULT_TIMEZONE", "America/Phoenix")
	viper.SetDefault("WORK_DAY_START_HOUR", 9)
	viper.SetDefault("WORK_DAY_END_HOUR", 17)
	viper.SetDefault("WARMUP_MINUTES", 30)
	viper.SetDefault("COOLDOWN_MINUTES", 30)
	viper.SetDefault("MIN_LEAD_HOURS", 4)
	viper.SetDefault("REMINDER_LEAD_HOURS", 1)
	viper.SetDefault("AVAILABILITY_CACHE_TTL_SECS", 60)
	viper.SetDefault("GOOGLE_CALENDAR_ID", "primary")
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json")
	viper.SetDefault("SMTP_HOST", "localhost")
	viper.SetDefault("SMTP_PORT", "1025")
	viper.SetDefault("SMTP_FROM", "bookings@blacksheepmarketing.com")
	viper.SetDefault("CRM_BASE_URL", "")
	viper.SetDefault("CRM_API_KEY", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

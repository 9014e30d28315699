package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	Env         string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Redis configuration (reminder delivery queue).
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Stripe secret key for autopay charges.
	StripeKey string `mapstructure:"STRIPE_KEY"`

	// Scheduling knobs.
	RouteHorizonDays int    `mapstructure:"ROUTE_HORIZON_DAYS"`
	ReminderSendHour int    `mapstructure:"REMINDER_SEND_HOUR"`
	DefaultTimezone  string `mapstructure:"DEFAULT_TIMEZONE"`

	// Reminder SMS content.
	SMSFrom    string `mapstructure:"SMS_FROM"`
	ReviewLink string `mapstructure:"REVIEW_LINK"`
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
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 3)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("ROUTE_HORIZON_DAYS", 7)
	viper.SetDefault("REMINDER_SEND_HOUR", 7)
	viper.SetDefault("DEFAULT_TIMEZONE", "America/Denver")
	viper.SetDefault("SMS_FROM", "Scooply")
	viper.SetDefault("REVIEW_LINK", "")

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

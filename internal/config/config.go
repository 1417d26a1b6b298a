package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Backend   BackendConfig
	JWT       JWTConfig
	Session   SessionConfig
	Printer   PrinterConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// BackendConfig points the terminal at the sales backend that owns
// products, clients and the sales ledger.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type JWTConfig struct {
	Secret string
}

// SessionConfig controls how long an idle cart survives before being
// swept.
type SessionConfig struct {
	TTL time.Duration
}

type PrinterConfig struct {
	Type    string
	USBPath string
	Address string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "pos-terminal")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:4000/api")
	viper.SetDefault("BACKEND_TIMEOUT_SECONDS", 10)
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("SESSION_TTL_MINUTES", 120)
	viper.SetDefault("PRINTER_TYPE", "null")
	viper.SetDefault("PRINTER_USB_PATH", "/dev/usb/lp0")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Backend: BackendConfig{
			BaseURL: viper.GetString("BACKEND_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("BACKEND_TIMEOUT_SECONDS")) * time.Second,
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
		},
		Session: SessionConfig{
			TTL: time.Duration(viper.GetInt("SESSION_TTL_MINUTES")) * time.Minute,
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

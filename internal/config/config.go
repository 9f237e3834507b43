package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Storage — path of the local SQLite file backing the key-value store
	DataPath string `mapstructure:"DATA_PATH"`

	// Auth
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`
	BcryptCost         int    `mapstructure:"BCRYPT_COST"`

	// Business
	PDFStoragePath string `mapstructure:"PDF_STORAGE_PATH"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATA_PATH", "gasoleo.db")
	viper.SetDefault("JWT_SECRET", "dev-secret-cambiar-en-produccion")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 8)
	viper.SetDefault("BCRYPT_COST", 12)
	viper.SetDefault("PDF_STORAGE_PATH", "/tmp/gasoleo/pdfs")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

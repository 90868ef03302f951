package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App  AppConfig  `mapstructure:"app"`
	API  APIConfig  `mapstructure:"api"`
	Stub StubConfig `mapstructure:"stub"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

// APIConfig points the client at the remote Wallet Service.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
	Token   string        `mapstructure:"token"` // bearer token from a prior login (WALLET_API_TOKEN)
}

// StubConfig governs the local stand-in Wallet Service.
type StubConfig struct {
	Port             string `mapstructure:"port"`
	DefaultPIN       string `mapstructure:"default_pin"`
	SeedBalance      string `mapstructure:"seed_balance"`
	MaxTransferLimit string `mapstructure:"max_transfer_limit"`
	FeePercentage    string `mapstructure:"fee_percentage"`
}

var Global Config

func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetEnvPrefix("wallet")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("Warning: Config file not found, using defaults and environment variables")
		} else {
			log.Fatalf("Fatal error config file: %s \n", err)
		}
	}

	if err := viper.Unmarshal(&Global); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("app.env", "development")

	viper.SetDefault("api.base_url", "http://localhost:8080")
	viper.SetDefault("api.timeout", 15*time.Second)
	viper.SetDefault("api.token", "")

	viper.SetDefault("stub.port", "8080")
	viper.SetDefault("stub.default_pin", "123456")
	viper.SetDefault("stub.seed_balance", "1000")
	viper.SetDefault("stub.max_transfer_limit", "10000")
	viper.SetDefault("stub.fee_percentage", "2")
}

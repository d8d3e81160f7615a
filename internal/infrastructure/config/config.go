package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds the process configuration, loaded from an optional app.env file
// with environment variables taking precedence.
type Config struct {
	ServerAddress          string        `mapstructure:"SERVER_ADDRESS"`
	AWSRegion              string        `mapstructure:"AWS_REGION"`
	AWSAccessKeyID         string        `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey     string        `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint       string        `mapstructure:"DYNAMODB_ENDPOINT"`
	DraftsTable            string        `mapstructure:"DRAFTS_TABLE"`
	AutosaveInterval       time.Duration `mapstructure:"AUTOSAVE_INTERVAL"`
	MercadoPagoAccessToken string        `mapstructure:"MERCADOPAGO_ACCESS_TOKEN"`
}

// Load reads app.env from path (if present) and the environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DRAFTS_TABLE", "offer_drafts")
	v.SetDefault("AUTOSAVE_INTERVAL", 2*time.Second)
	// Register optional keys so AutomaticEnv can populate them.
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("MERCADOPAGO_ACCESS_TOKEN", "")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Missing file is fine; env vars and defaults carry the config.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

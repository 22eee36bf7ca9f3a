package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	ProjectID     string
	Port          string
	LogLevel      string
	AdminPasscode string
	SeedOnStart   bool
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	// A .env file is a local-dev convenience; in deployment everything
	// comes from the environment.
	_ = viper.ReadInConfig()
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("LOGLEVEL", "info")
	viper.SetDefault("SEEDONSTART", true)

	return &Config{
		ProjectID:     viper.GetString("PROJECTID"),
		Port:          viper.GetString("PORT"),
		LogLevel:      viper.GetString("LOGLEVEL"),
		AdminPasscode: viper.GetString("ADMINPASSCODE"),
		SeedOnStart:   viper.GetBool("SEEDONSTART"),
	}
}

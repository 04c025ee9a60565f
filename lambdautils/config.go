package lambdautils

import (
	"github.com/spf13/viper"
)

// Config holds the settings of the function read from its environment.
type Config struct {
	LogLevel  string
	LogFormat string
}

// LoadConfig reads the configuration from the environment.
//
//	LOG_LEVEL   logrus level name (default "info")
//	LOG_FORMAT  "json" or "text" (default "json")
func LoadConfig() Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	return Config{
		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),
	}
}

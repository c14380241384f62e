package configs

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	OpenWeatherKey  string
}

// Load reads an optional .env file, then the process environment. A missing OWM_API_KEY is not an
// error here: the provider rejects the calls and every city degrades to its placeholder.
func Load(dotenvFiles ...string) (*EnvConfig, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	return &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "weather-page"),
		OpenWeatherKey:  viper.GetString("OWM_API_KEY"),
	}, nil
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}

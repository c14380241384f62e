package resource

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

const defaultPropertiesPath = "configs/application.yml"

var properties map[string]any
var envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)

// Load reads the properties file named by PROPERTIES_FILE_PATH, or configs/application.yml.
func Load() error {
	value, ok := os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		value = defaultPropertiesPath
	}
	return Init(value)
}

// Init loads application properties from YAML, resolving ${ENV:default} placeholders.
func Init(filepath string) error {
	viper.SetConfigFile(filepath)
	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("fail to read properties %s: %w", filepath, err)
	}

	properties = make(map[string]any)
	parsePropertiesMap("", viper.AllSettings(), properties)

	if err := viper.MergeConfigMap(properties); err != nil {
		return fmt.Errorf("fail to merge properties %s: %w", filepath, err)
	}
	return nil
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			if resolved, ok := resolveEnvVariable(v); ok {
				result[fullKey] = resolved
			}
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		}
	}
}

// resolveEnvVariable resolves a ${NAME:default} value. ok is false when the value is not a placeholder
// or when neither the variable nor a default is set.
func resolveEnvVariable(value string) (string, bool) {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return "", false
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue, true
	}
	if matches[2] != "" {
		return matches[2], true
	}
	return "", true
}

func GetString(key string) string {
	return viper.GetString(key)
}

func GetBool(key string) bool {
	return viper.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

func GetInt(key string) int {
	return viper.GetInt(key)
}

func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

// UnmarshalKey decodes a nested block, such as a list of maps, into target using mapstructure tags.
func UnmarshalKey(key string, target any) error {
	return viper.UnmarshalKey(key, target)
}

package cli

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the CLI's runtime configuration. Values resolve in order:
// defaults, then the YAML config file, then environment variables. A .env
// file in the working directory is folded into the environment first.
type Config struct {
	Profile      string `yaml:"profile"`
	DeviceID     string `yaml:"device_id"`
	PhoneNumber  string `yaml:"phone_number"`
	DatabaseFile string `yaml:"database_file"`
	APIBaseURL   string `yaml:"api_base_url"`
	LogLevel     string `yaml:"log_level"`
	LogFormat    string `yaml:"log_format"`
}

// LoadConfig resolves the CLI configuration. The config file path comes
// from $BEREAL_CONFIG, falling back to ~/.config/bereal/config.yaml; a
// missing file is fine.
func LoadConfig() (Config, error) {
	_ = godotenv.Load() // optional .env; absence is not an error

	cfg := Config{
		Profile:      "default",
		DatabaseFile: defaultDatabaseFile(),
		LogLevel:     "info",
		LogFormat:    "text",
	}

	if path := configFilePath(); path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, err
			}
		case !os.IsNotExist(err):
			return Config{}, err
		}
	}

	overrideFromEnv(&cfg.Profile, "BEREAL_PROFILE")
	overrideFromEnv(&cfg.DeviceID, "BEREAL_DEVICE_ID")
	overrideFromEnv(&cfg.PhoneNumber, "BEREAL_PHONE_NUMBER")
	overrideFromEnv(&cfg.DatabaseFile, "BEREAL_DATABASE_FILE")
	overrideFromEnv(&cfg.APIBaseURL, "BEREAL_API_BASE_URL")
	overrideFromEnv(&cfg.LogLevel, "LOG_LEVEL")
	overrideFromEnv(&cfg.LogFormat, "LOG_FORMAT")

	return cfg, nil
}

func configFilePath() string {
	if path := os.Getenv("BEREAL_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "bereal", "config.yaml")
}

func defaultDatabaseFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "bereal.db"
	}
	return filepath.Join(home, ".config", "bereal", "bereal.db")
}

func overrideFromEnv(target *string, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}

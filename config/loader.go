package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	paths := []string{"config.yml", "./configs/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}
	// named databases are optional; if present validate each
	for _, d := range cfg.Databases {
		if err := v.Struct(d); err != nil {
			return err
		}
	}
	Config = cfg
	if Config.Server.Port == 0 {
		Config.Server.Port = 16250
	}
	return nil
}

// SelectDatabase chooses a database by name; fallback to first; if none, use top-level Database.
func SelectDatabase(name string) DatabaseConfig {
	if name != "" {
		for _, d := range Config.Databases {
			if d.Name == name {
				return d.Database
			}
		}
	}
	if len(Config.Databases) > 0 {
		return Config.Databases[0].Database
	}
	return Config.Database
}

package subwayinsights

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type APIConfig struct {
	BaseURL   string `yaml:"baseURL" validate:"omitempty,url"`
	Key       string `yaml:"key" validate:"omitempty"`
	Username  string `yaml:"username" validate:"omitempty"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
}

type RealtimeConfig struct {
	VehiclePositionsURL string `yaml:"vehiclePositionsURL" validate:"omitempty,url"`
}

type AppConfig struct {
	API      APIConfig      `yaml:"api"`
	Realtime RealtimeConfig `yaml:"realtime"`
}

var Config AppConfig

// LoadAppConfig loads and validates the application configuration.
// With an empty path the default config.yml is optional: the MBTA v3 API
// accepts keyless requests at a reduced rate limit, so the tool runs with
// built-in defaults when no file is present. An explicitly given path
// must exist.
func LoadAppConfig(path string) error {
	var cfg AppConfig
	if path == "" {
		data, err := os.ReadFile("config.yml")
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return err
			}
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return err
		}
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	if cfg.API.Key == "" {
		cfg.API.Key = os.Getenv("MBTA_API_KEY")
	}
	if cfg.API.Username == "" {
		cfg.API.Username = os.Getenv("MBTA_USERNAME")
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultBaseURL
	}
	if cfg.API.TimeoutMS == 0 {
		cfg.API.TimeoutMS = 10000
	}
	if cfg.Realtime.VehiclePositionsURL == "" {
		cfg.Realtime.VehiclePositionsURL = DefaultVehiclePositionsURL
	}
	Config = cfg
	return nil
}

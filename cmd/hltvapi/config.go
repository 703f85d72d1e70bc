package main

import (
	"errors"
	"fmt"
	"hltvapi-backend/internal/components/telemetry"
	"hltvapi-backend/internal/scrapers/hltv"
	"hltvapi-backend/lib/configutil"
	"log/slog"
	"os"
	"strconv"
)

type HltvConfig struct {
	BaseUrl        string `json:"base_url"`
	UserAgent      string `json:"user_agent"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

type Config struct {
	Port      int              `json:"port"`
	Hltv      HltvConfig       `json:"hltv"`
	Telemetry telemetry.Config `json:"telemetry"`
}

var defaultConfig = Config{
	Port: 8000,
	Hltv: HltvConfig{
		BaseUrl:        hltv.DefaultBaseUrl,
		UserAgent:      hltv.DefaultUserAgent,
		TimeoutSeconds: 30,
	},
}

// ReadConfig reads the config file at path, if path is empty config.json5 is
// searched for from the cwd upwards. A missing file leaves the defaults in
// place. HLTVAPI_PORT overrides the port.
func ReadConfig(path string) (Config, error) {
	var cfg Config
	var err error
	if path == "" {
		path = "config.json5"
		cfg, err = configutil.ReadRecursively(path, defaultConfig)
	} else {
		cfg, err = configutil.ReadConfig(path, defaultConfig)
	}
	if errors.Is(err, os.ErrNotExist) {
		slog.Info("no config file found, using defaults", "path", path)
		cfg = defaultConfig
	} else if err != nil {
		return Config{}, err
	}

	port := os.Getenv("HLTVAPI_PORT")
	if port != "" {
		cfg.Port, err = strconv.Atoi(port)
		if err != nil {
			return Config{}, fmt.Errorf("parse HLTVAPI_PORT: %w", err)
		}
	}
	return cfg, nil
}

package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/pricekeeper/internal/flagx"
)

// JsonConfig is the on-disk shape of the JSON config file.
type JsonConfig struct {
	DatabasePath string `json:"database_path"`
	ExportPath   string `json:"export_path"`
	LogLevel     string `json:"log_level"`
	LogFormat    string `json:"log_format"`
}

// parseJson overlays cfg with the non-empty values of the JSON file passed
// with -c/-config. Without the flag nothing happens.
func parseJson(cfg *Config) error {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", jsonConfigFile, err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.ExportPath != "" {
		cfg.ExportPath = jc.ExportPath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
	return nil
}

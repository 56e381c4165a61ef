package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/pricekeeper/internal/flagx"
	"github.com/joho/godotenv"
)

const (
	envDatabase  = "CATALOG_DB"
	envExport    = "CATALOG_EXPORT"
	envLogLevel  = "CATALOG_LOG_LEVEL"
	envLogFormat = "CATALOG_LOG_FORMAT"
)

// parseEnv overlays cfg with CATALOG_* variables. Values come from the dotenv
// file named by -env (a missing file is fine) and from the process
// environment, whose non-empty values take precedence.
func parseEnv(cfg *Config) error {
	path := flagx.EnvFileFlag()
	vars, err := godotenv.Read(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read env file %s: %w", path, err)
	}
	applyEnv(cfg, func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return vars[key]
	})
	return nil
}

func applyEnv(cfg *Config, lookup func(string) string) {
	for key, dst := range map[string]*string{
		envDatabase:  &cfg.DatabasePath,
		envExport:    &cfg.ExportPath,
		envLogLevel:  &cfg.LogLevel,
		envLogFormat: &cfg.LogFormat,
	} {
		if v := lookup(key); v != "" {
			*dst = v
		}
	}
}

package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/dmitrijs2005/pricekeeper/internal/flagx"
)

// parseFlags populates Config fields from -d, -e and -l. Other arguments are
// filtered out first so the JSON and dotenv flags do not clash.
func parseFlags(cfg *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-e", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "catalog database file")
	fs.StringVar(&cfg.ExportPath, "e", cfg.ExportPath, "default CSV export path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}

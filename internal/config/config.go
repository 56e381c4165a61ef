package config

// Config holds runtime settings for the catalog CLI.
type Config struct {
	DatabasePath string
	ExportPath   string
	LogLevel     string
	LogFormat    string
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "infra_items.db"
	c.ExportPath = "catalogo.csv"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config from defaults, then overlays the
// environment, a JSON file and command-line flags, in that order. A
// malformed dotenv file, an unreadable JSON file or a bad flag is returned
// as an error.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Package config loads runtime configuration for the catalog CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A dotenv file (-env, default ".env", optional) and the process
//     environment; real environment variables win over the file.
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags, which override everything before them.
//
// Environment variables
//
//	CATALOG_DB          path of the SQLite database file
//	CATALOG_EXPORT      default CSV export path
//	CATALOG_LOG_LEVEL   debug | info | warn | error
//	CATALOG_LOG_FORMAT  text | json
//
// Supported flags
//
//	-d string   database file
//	-e string   default export path
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "database_path": "infra_items.db",
//	  "export_path": "catalogo.csv",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config

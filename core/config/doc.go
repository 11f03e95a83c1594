// Package config provides configuration management for the collection adapter service.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP port, API key and body limit
//   - Log: logging level and format
//   - Adapter: stash size, pool capacity, debug checks, shared pool and offsets
//   - Database: optional MySQL connection for refresh history
//   - Storage: S3/MinIO bucket holding scenario files
//
// Environment variables map to nested keys by replacing dots with underscores,
// e.g. ADAPTER_STASH_SIZE sets adapter.stash_size.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Adapter.StashSize)
package config

// Package config provides configuration management for the capability service.
//
// Settings come from environment variables, optionally seeded from a .env
// file. Every field carries its default in a struct tag, so the zero
// environment yields a runnable file-backed configuration.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key and read timeout
//   - Log: logging level and format
//   - Dataset: source kind (file, storage, database) and its location
//   - Storage: S3/MinIO credentials and bucket for the storage source
//   - Database: MySQL or SQLite connection for the database source
//   - Lookup: result cache TTL and size
//
// Nested keys map to upper-case variables with '.' replaced by '_', e.g.
// DATASET_SOURCE or LOOKUP_CACHE_TTL_SECONDS.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Dataset.Path)
package config

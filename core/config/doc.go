// Package config provides configuration management for the datastore service.
//
// It utilizes Viper for loading configuration from environment variables,
// an optional config.yaml and a .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, exposed tables)
//   - Database: driver, connection parameters or URL, pool and synchronize settings
//   - Storage: S3/MinIO credentials and bucket for table exports
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Database.Driver)
package config

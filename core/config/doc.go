// Package config provides configuration management for kml-smoke.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults live in `default` struct tags next to each field,
// so running with no configuration at all targets a local development stack.
//
// # Configuration Structure
//
//   - Target: backend base URL, frontend candidate URLs, per-target timeouts
//   - Sample: where the sample KML file is read from (working directory or bucket)
//   - Storage: S3/MinIO credentials and bucket, used by the bucket sample source
//   - Server: serve mode port, API key, background schedule
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Target.BackendURL)
package config

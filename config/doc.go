// Package config provides application configuration management.
//
// The config package handles loading and validation of the tool's own
// configuration from YAML files. It supports configuration for the run mode,
// the renderer, the init wizard and logging.
//
// Usage:
//
//	cfg, err := config.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Run mode: %s\n", cfg.Run.Mode)
package config

// Package config loads typed configuration from the environment.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct tags. Each configuration type is
// parsed once per process and cached by its type name, so every package can
// declare its own Config struct and load it independently:
//
//	if err := config.LoadEnv(".env.local"); err != nil {
//	    return err
//	}
//
//	var cfg conformance.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// ResetCache and ForceReloadConfig exist for tests and for commands that
// change the environment after startup, e.g. from CLI flags.
package config

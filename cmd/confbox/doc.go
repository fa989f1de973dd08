// Package main is the entry point for the confbox configuration tool.
//
// Confbox renders YAML (and YAML-compatible JSON) configuration files,
// expanding ${NAME} environment variable references against the process
// environment, and bootstraps new projects through an interactive wizard
// with validated prompts.
//
// The application uses Uber's fx framework for dependency injection and
// lifecycle management, with zap for structured logging and viper for
// configuration.
package main

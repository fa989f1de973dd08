// Package main is the entry point for the confbox configuration tool.
//
// Confbox renders YAML (and YAML-compatible JSON) configuration files,
// expanding ${NAME} environment variable references, and bootstraps new
// projects through an interactive wizard. The run mode is selected through
// the tool's own configuration file.
//
// The application uses Uber's fx framework for dependency injection and
// lifecycle management, with zap for structured logging and viper for
// configuration.
package main

import (
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/isdmx/confbox/config"
	"github.com/isdmx/confbox/logger"
	"github.com/isdmx/confbox/renderer"
	"github.com/isdmx/confbox/wizard"
)

func main() {
	app := fx.New(
		// Provide dependencies
		fx.Provide(
			// Config
			config.New,

			// Logger with configuration
			logger.NewFromConfig,

			// Renderer for the render mode
			renderer.New,

			// Wizard for the init mode
			wizard.New,
		),

		// Run the configured mode, then shut the app down
		fx.Invoke(
			func(cfg *config.Config, r *renderer.Renderer, w *wizard.Wizard, log *zap.Logger, shutdowner fx.Shutdowner) {
				go func() {
					defer func() {
						_ = shutdowner.Shutdown()
					}()

					switch cfg.Run.Mode {
					case "render":
						if cfg.Render.ToTempFile {
							path, err := r.RenderToTempFile(cfg.Render.Input)
							if err != nil {
								log.Error("render failed", zap.Error(err))
								return
							}
							fmt.Println(path)
							return
						}
						out, err := r.Render(cfg.Render.Input)
						if err != nil {
							log.Error("render failed", zap.Error(err))
							return
						}
						fmt.Print(out)
					case "init":
						path, err := w.Run()
						if err != nil {
							log.Error("init failed", zap.Error(err))
							return
						}
						log.Info("project initialized", zap.String("config", path))
					default:
						log.Error("unsupported run mode", zap.String("mode", cfg.Run.Mode))
					}
				}()
			},
		),

		// Use the application logger for fx logs
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
	)

	// Start the application
	app.Run()
}

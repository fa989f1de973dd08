package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/isdmx/confbox/config"
	"github.com/isdmx/confbox/logger"
	"github.com/isdmx/confbox/renderer"
	"github.com/isdmx/confbox/wizard"
)

// TestIntegrationConfigLoggerRenderer tests the integration between the
// config, logger and renderer packages
func TestIntegrationConfigLoggerRenderer(t *testing.T) {
	t.Run("ConfigAndLoggerIntegration", func(t *testing.T) {
		cfg := &config.Config{
			Run: config.RunConfig{
				Mode: "render",
			},
			Render: config.RenderConfig{
				Input:   "config.yml",
				RootDir: ".",
				Format:  "yaml",
			},
			Wizard: config.WizardConfig{
				OutputDir:         ".",
				AllowedExtensions: []string{".yml", ".yaml"},
			},
			Logging: config.LoggingConfig{
				Mode:  "development",
				Level: "debug",
			},
		}

		testLogger, err := logger.New(cfg.Logging.Mode, cfg.Logging.Level)
		require.NoError(t, err)
		require.NotNil(t, testLogger)

		testLogger.Info("Integration test started")
		_ = testLogger.Sync()
	})

	t.Run("RenderPipeline", func(t *testing.T) {
		t.Setenv("SERVICE_NAME", "orders")
		t.Setenv("SERVICE_PORT", "8080")

		rootDir := t.TempDir()
		source := filepath.Join(rootDir, "app.yml")
		content := "service: ${SERVICE_NAME}\nendpoint: ${SERVICE_NAME}:${SERVICE_PORT}\n"
		require.NoError(t, os.WriteFile(source, []byte(content), 0o644))

		cfg := &config.Config{
			Run: config.RunConfig{
				Mode: "render",
			},
			Render: config.RenderConfig{
				Input:   source,
				RootDir: rootDir,
				Format:  "yaml",
			},
			Logging: config.LoggingConfig{
				Mode:  "development",
				Level: "info",
			},
		}

		testLogger := zaptest.NewLogger(t)

		r := renderer.New(cfg, testLogger)
		doc, err := r.Load(source)
		require.NoError(t, err)
		assert.Equal(t, "orders", doc["service"])
		assert.Equal(t, "orders:8080", doc["endpoint"])

		out, err := r.Render(source)
		require.NoError(t, err)
		assert.Contains(t, out, "endpoint: orders:8080")
	})

	t.Run("WizardOutputRendersCleanly", func(t *testing.T) {
		rootDir := t.TempDir()

		cfg := &config.Config{
			Run: config.RunConfig{
				Mode: "init",
			},
			Render: config.RenderConfig{
				RootDir: rootDir,
				Format:  "yaml",
			},
			Wizard: config.WizardConfig{
				OutputDir:         rootDir,
				AllowedExtensions: []string{".yml", ".yaml"},
			},
			Logging: config.LoggingConfig{
				Mode:  "development",
				Level: "info",
			},
		}

		testLogger := zaptest.NewLogger(t)

		w := wizard.New(cfg, testLogger)
		path, err := w.Write(&wizard.Answers{
			FileName:    "starter.yml",
			ProjectName: "starter",
			Description: "integration fixture",
		})
		require.NoError(t, err)

		// The wizard's starter config must load through the renderer
		r := renderer.New(cfg, testLogger)
		doc, err := r.Load(path)
		require.NoError(t, err)

		project, ok := doc["project"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "starter", project["name"])
	})
}

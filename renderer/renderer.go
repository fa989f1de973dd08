package renderer

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/isdmx/confbox/confio"
	"github.com/isdmx/confbox/config"
)

// Renderer loads configuration files and re-emits the rendered document
type Renderer struct {
	config *config.Config
	logger *zap.Logger
}

// New creates a new Renderer
func New(cfg *config.Config, logger *zap.Logger) *Renderer {
	logger.Info("renderer configured",
		zap.String("render.root_dir", cfg.Render.RootDir),
		zap.String("render.format", cfg.Render.Format),
		zap.Bool("render.to_temp_file", cfg.Render.ToTempFile))

	return &Renderer{
		config: cfg,
		logger: logger,
	}
}

// Load reads and parses the config file at path. Paths outside the configured
// project root are rejected before any file access happens.
func (r *Renderer) Load(path string) (map[string]any, error) {
	if !r.inRoot(path) {
		return nil, fmt.Errorf("path %s is outside the project root %s", path, r.config.Render.RootDir)
	}

	text, err := confio.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := confio.ReadYAML(text)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", path, err)
	}

	r.logger.Info("config loaded",
		zap.String("path", path),
		zap.Int("top_level_keys", len(doc)))

	return doc, nil
}

// Render loads the config file at path and returns the rendered document in
// the configured output format.
func (r *Renderer) Render(path string) (string, error) {
	doc, err := r.Load(path)
	if err != nil {
		return "", err
	}
	return r.marshal(doc)
}

// RenderToTempFile loads the config file at path and writes the rendered
// document to a temporary file, returning its path. The caller owns cleanup.
func (r *Renderer) RenderToTempFile(path string) (string, error) {
	out, err := r.Render(path)
	if err != nil {
		return "", err
	}

	tmp, err := confio.CreateTemporaryFile(out)
	if err != nil {
		return "", err
	}

	r.logger.Info("rendered config written",
		zap.String("source", path),
		zap.String("output", tmp))

	return tmp, nil
}

// inRoot reports whether path resolves to a location under the project root.
// The containment check itself is lexical; both sides are made absolute first
// so relative inputs compare against the same base.
func (r *Renderer) inRoot(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	root, err := filepath.Abs(r.config.Render.RootDir)
	if err != nil {
		return false
	}
	return confio.IsSubdirectory(abs, root)
}

func (r *Renderer) marshal(doc map[string]any) (string, error) {
	switch r.config.Render.Format {
	case "json":
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal document as JSON: %w", err)
		}
		return string(out), nil
	default:
		out, err := yaml.Marshal(doc)
		if err != nil {
			return "", fmt.Errorf("failed to marshal document as YAML: %w", err)
		}
		return string(out), nil
	}
}

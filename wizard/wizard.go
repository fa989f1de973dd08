package wizard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/isdmx/confbox/config"
	"github.com/isdmx/confbox/validators"
)

// Answers holds the values collected from the user
type Answers struct {
	FileName    string
	ProjectName string
	Description string
}

// Wizard drives the interactive project bootstrap prompt
type Wizard struct {
	config *config.Config
	logger *zap.Logger
}

// New creates a new Wizard
func New(cfg *config.Config, logger *zap.Logger) *Wizard {
	logger.Info("wizard configured",
		zap.String("wizard.output_dir", cfg.Wizard.OutputDir),
		zap.Strings("wizard.allowed_extensions", cfg.Wizard.AllowedExtensions))

	return &Wizard{
		config: cfg,
		logger: logger,
	}
}

// Run prompts the user for project details and writes the starter config
// file, returning its path.
func (w *Wizard) Run() (string, error) {
	answers, err := w.prompt()
	if err != nil {
		return "", err
	}
	return w.Write(answers)
}

// Validators returns the input validators used by the prompt form, in field
// order: file name, project name, description.
func (w *Wizard) Validators() []validators.Validator {
	extensions := w.config.Wizard.AllowedExtensions
	return []validators.Validator{
		validators.FileType(extensions,
			fmt.Sprintf("file name must end in one of: %s", strings.Join(extensions, ", "))),
		validators.NotEmpty("project name must not be empty"),
		validators.New(func(input string) bool {
			return !strings.Contains(input, "\n")
		}, "description must be a single line"),
	}
}

func (w *Wizard) prompt() (*Answers, error) {
	var answers Answers
	checks := w.Validators()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Config file name").
				Placeholder("confbox.yml").
				Value(&answers.FileName).
				Validate(checks[0].Validate),
			huh.NewInput().
				Title("Project name").
				Value(&answers.ProjectName).
				Validate(checks[1].Validate),
			huh.NewInput().
				Title("Short description").
				Value(&answers.Description).
				Validate(checks[2].Validate),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("prompt aborted: %w", err)
	}

	return &answers, nil
}

// Write materializes the starter config for the given answers and returns
// the path of the written file.
func (w *Wizard) Write(answers *Answers) (string, error) {
	out, err := yaml.Marshal(StarterConfig(answers))
	if err != nil {
		return "", fmt.Errorf("failed to marshal starter config: %w", err)
	}

	path := filepath.Join(w.config.Wizard.OutputDir, answers.FileName)
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	w.logger.Info("starter config written", zap.String("path", path))

	return path, nil
}

// StarterConfig returns the document written for a freshly initialized
// project.
func StarterConfig(answers *Answers) map[string]any {
	return map[string]any{
		"project": map[string]any{
			"name":        answers.ProjectName,
			"description": answers.Description,
		},
		"run": map[string]any{
			"mode": "render",
		},
		"render": map[string]any{
			"input":    answers.FileName,
			"root_dir": ".",
			"format":   "yaml",
		},
		"logging": map[string]any{
			"mode":  "production",
			"level": "info",
		},
	}
}

package wizard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/isdmx/confbox/confio"
	"github.com/isdmx/confbox/config"
)

func testConfig(outputDir string) *config.Config {
	return &config.Config{
		Wizard: config.WizardConfig{
			OutputDir:         outputDir,
			AllowedExtensions: []string{".yml", ".yaml"},
		},
		Logging: config.LoggingConfig{
			Mode:  "development",
			Level: "debug",
		},
	}
}

func TestWizardValidators(t *testing.T) {
	w := New(testConfig(t.TempDir()), zaptest.NewLogger(t))

	checks := w.Validators()
	require.Len(t, checks, 3)
	fileName, projectName, description := checks[0], checks[1], checks[2]

	t.Run("FileName", func(t *testing.T) {
		assert.NoError(t, fileName.Validate("domain.yml"))
		assert.NoError(t, fileName.Validate("lala.yaml"))

		for _, input := range []string{"", "notes.md", "config"} {
			err := fileName.Validate(input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "must end in one of")
		}
	})

	t.Run("ProjectName", func(t *testing.T) {
		assert.NoError(t, projectName.Validate("greet"))

		for _, input := range []string{"", "   ", "\t"} {
			err := projectName.Validate(input)
			require.Error(t, err)
			assert.Equal(t, "project name must not be empty", err.Error())
		}
	})

	t.Run("Description", func(t *testing.T) {
		assert.NoError(t, description.Validate("a single line"))
		assert.Error(t, description.Validate("two\nlines"))
	})
}

func TestWizardWrite(t *testing.T) {
	outputDir := t.TempDir()
	w := New(testConfig(outputDir), zaptest.NewLogger(t))

	path, err := w.Write(&Answers{
		FileName:    "demo.yml",
		ProjectName: "demo",
		Description: "a demo project",
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outputDir, "demo.yml"), path)

	text, err := confio.ReadFile(path)
	require.NoError(t, err)

	doc, err := confio.ReadYAML(text)
	require.NoError(t, err)

	project, ok := doc["project"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "demo", project["name"])
	assert.Equal(t, "a demo project", project["description"])

	run, ok := doc["run"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "render", run["mode"])
}

func TestWizardWriteFailure(t *testing.T) {
	outputDir := t.TempDir()
	w := New(testConfig(filepath.Join(outputDir, "missing")), zaptest.NewLogger(t))

	_, err := w.Write(&Answers{FileName: "demo.yml", ProjectName: "demo"})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

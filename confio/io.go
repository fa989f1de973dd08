package confio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUndefinedVariable is returned when configuration text references an
// environment variable that is not set.
var ErrUndefinedVariable = errors.New("undefined environment variable")

// envVarPattern matches ${NAME} references. The name is everything up to the
// first closing brace; nesting and escaping are not supported.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// ExpandEnv replaces every ${NAME} reference in text with the value of the
// environment variable NAME. Literal text around a reference is preserved and
// multiple references per line are expanded independently. If any referenced
// variable is unset the whole expansion fails and no partial result is
// returned.
func ExpandEnv(text string) (string, error) {
	var missing string
	expanded := envVarPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := match[2 : len(match)-1]
		value, ok := os.LookupEnv(name)
		if !ok {
			if missing == "" {
				missing = name
			}
			return match
		}
		return value
	})
	if missing != "" {
		return "", fmt.Errorf("%w: %s", ErrUndefinedVariable, missing)
	}
	return expanded, nil
}

// ReadYAML parses text as YAML after expanding environment variable
// references. JSON input is accepted as a YAML subset. Quoted scalars are
// never coerced, so values like "yes" or "True" stay strings.
func ReadYAML(text string) (map[string]any, error) {
	expanded, err := ExpandEnv(text)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := yaml.Unmarshal([]byte(expanded), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return doc, nil
}

// ReadFile reads the file at path as UTF-8 text.
func ReadFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(content), nil
}

// CreateTemporaryFile writes text to a newly created temporary file and
// returns its path. The file is not deleted automatically; cleanup is owned
// by the caller. If writing fails the partially written file is removed.
func CreateTemporaryFile(text string) (string, error) {
	f, err := os.CreateTemp("", "confbox-*.yml")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}

	if _, err := f.WriteString(text); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to close temporary file: %w", err)
	}

	return f.Name(), nil
}

// IsSubdirectory reports whether path is equal to or nested under ancestor.
// The comparison is lexical, on cleaned paths. An empty path is never
// contained in anything.
func IsSubdirectory(path, ancestor string) bool {
	if path == "" {
		return false
	}

	path = filepath.Clean(path)
	ancestor = filepath.Clean(ancestor)

	if path == ancestor {
		return true
	}
	return strings.HasPrefix(path, ancestor+string(filepath.Separator))
}

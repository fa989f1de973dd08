package validators

import "strings"

// ValidationError is returned when user input is rejected. The message is the
// one supplied by the caller at construction time, intended for display back
// to the user.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validator checks a single line of user input. Validate returns nil when the
// input is accepted and a *ValidationError otherwise.
type Validator interface {
	Validate(input string) error
}

type funcValidator struct {
	valid   func(string) bool
	message string
}

func (v funcValidator) Validate(input string) error {
	if v.valid(input) {
		return nil
	}
	return &ValidationError{Message: v.message}
}

// New adapts an arbitrary predicate to the Validator contract.
func New(valid func(string) bool, message string) Validator {
	return funcValidator{valid: valid, message: message}
}

// FileType accepts non-empty input ending in one of the given extensions.
// The suffix match is case-sensitive.
func FileType(extensions []string, message string) Validator {
	return New(func(input string) bool {
		if input == "" {
			return false
		}
		for _, ext := range extensions {
			if strings.HasSuffix(input, ext) {
				return true
			}
		}
		return false
	}, message)
}

// NotEmpty accepts input that is non-empty after trimming whitespace.
func NotEmpty(message string) Validator {
	return New(func(input string) bool {
		return strings.TrimSpace(input) != ""
	}, message)
}

package config

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error with context
type ValidationError struct {
	FilePath string
	Field    string
	Message  string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field '%s': %s", e.FilePath, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

// SyntaxError reports a settings file that is not a JSON object.
type SyntaxError struct {
	FilePath string
	Err      error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: malformed JSON: %v", e.FilePath, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// ValidateJSONSyntax checks that data holds a single JSON object.
// Empty content is reported as malformed since the file is always written with all keys.
func ValidateJSONSyntax(data []byte, filePath string) error {
	if len(strings.TrimSpace(string(data))) == 0 {
		return &SyntaxError{FilePath: filePath, Err: fmt.Errorf("file is empty")}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return &SyntaxError{FilePath: filePath, Err: err}
	}
	if obj == nil {
		return &SyntaxError{FilePath: filePath, Err: fmt.Errorf("expected a JSON object")}
	}
	return nil
}

// Validate checks the configuration values.
func (c *Configuration) Validate() error {
	return c.validate("")
}

func (c *Configuration) validate(filePath string) error {
	if !c.Source.Valid() {
		return &ValidationError{
			FilePath: filePath,
			Field:    "source",
			Message:  fmt.Sprintf("must be %q or %q, got %q", SourceFile, SourceTag, c.Source),
		}
	}

	required := []struct {
		field string
		value string
	}{
		{"date_format", c.DateFormat},
		{"diff_format", c.DiffFormat},
		{"commit_detail_page_format", c.CommitDetailPageFormat},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{FilePath: filePath, Field: r.field, Message: "must not be empty"}
		}
	}

	if c.LastGeneration < 0 {
		return &ValidationError{FilePath: filePath, Field: "last_generation", Message: "must not be negative"}
	}

	return nil
}

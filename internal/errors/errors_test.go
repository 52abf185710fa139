// Package errors_test tests structured CLI errors and their formatting.
// Related: internal/errors/errors.go, internal/errors/format.go
// Tags: errors, cli, formatting

package errors

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errCause = errors.New("cause")

func TestErrorCategory_String(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		category ErrorCategory
		want     string
	}{
		"argument":      {category: Argument, want: "Argument Error"},
		"configuration": {category: Configuration, want: "Configuration Error"},
		"prerequisite":  {category: Prerequisite, want: "Prerequisite Error"},
		"runtime":       {category: Runtime, want: "Runtime Error"},
		"unknown":       {category: ErrorCategory(99), want: "Error"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.category.String())
		})
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Wrap(nil, Runtime))
	assert.Nil(t, WrapWithMessage(nil, Runtime, "msg"))

	wrapped := WrapWithMessage(errCause, Configuration, "loading", "retry")
	assert.Equal(t, "loading: cause", wrapped.Error())
	assert.Equal(t, Configuration, wrapped.Category)
	assert.Equal(t, []string{"retry"}, wrapped.Remediation)
	assert.ErrorIs(t, wrapped, errCause)

	plain := Wrap(errCause, Runtime)
	assert.Equal(t, "cause", plain.Error())
	assert.ErrorIs(t, plain, errCause)
}

func TestAsCLIError(t *testing.T) {
	t.Parallel()

	cliErr := NewPrerequisiteError("missing")
	chained := fmt.Errorf("outer: %w", cliErr)

	assert.Same(t, cliErr, AsCLIError(chained))
	assert.Nil(t, AsCLIError(errCause))
	assert.Nil(t, AsCLIError(nil))
}

func TestMessages(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err          *CLIError
		wantCategory ErrorCategory
		wantMessage  string
	}{
		"not a repository": {
			err:          NotARepository("/tmp/x", errCause),
			wantCategory: Prerequisite,
			wantMessage:  "/tmp/x is not inside a git repository",
		},
		"empty history": {
			err:          EmptyHistory(errCause),
			wantCategory: Prerequisite,
			wantMessage:  "no commits found",
		},
		"template failure": {
			err:          TemplateFailure(errCause, ".changelog/changelog.config", []string{"repositoryUri", "commit"}),
			wantCategory: Configuration,
			wantMessage:  "link format",
		},
		"config unreadable": {
			err:          ConfigUnreadable("cfg", errCause),
			wantCategory: Configuration,
			wantMessage:  "cannot read configuration cfg",
		},
		"config invalid": {
			err:          ConfigInvalid("cfg", errCause),
			wantCategory: Configuration,
			wantMessage:  "invalid configuration",
		},
		"draft write failed": {
			err:          DraftWriteFailed("changelog_DRAFT.md", errCause),
			wantCategory: Runtime,
			wantMessage:  "writing changelog_DRAFT.md failed",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.NotNil(t, tt.err)
			assert.Equal(t, tt.wantCategory, tt.err.Category)
			assert.Contains(t, tt.err.Error(), tt.wantMessage)
			assert.NotEmpty(t, tt.err.Remediation)
			assert.ErrorIs(t, tt.err, errCause)
		})
	}
}

func TestTemplateFailure_ListsVariables(t *testing.T) {
	t.Parallel()

	err := TemplateFailure(errCause, "cfg", []string{"repositoryUri", "base", "latest"})
	assert.Contains(t, err.Remediation[1], "repositoryUri, base, latest")
}

func TestFormatErrorPlain(t *testing.T) {
	t.Parallel()

	out := FormatErrorPlain(NewConfigError("bad template", "fix it", "or reset"))
	assert.Equal(t, "Error [Configuration Error]: bad template\n\nTo fix this:\n  • fix it\n  • or reset\n", out)

	assert.Equal(t, "Error [Runtime Error]: boom\n", FormatErrorPlain(NewRuntimeError("boom")))
	assert.Empty(t, FormatErrorPlain(nil))
	assert.Empty(t, FormatError(nil))
}

func TestFprintError(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want string
	}{
		"plain error becomes runtime": {
			err:  errCause,
			want: "Error [Runtime Error]: cause\n",
		},
		"wrapped cli error keeps category": {
			err:  fmt.Errorf("run: %w", NewPrerequisiteError("no repo")),
			want: "Error [Prerequisite Error]: no repo\n",
		},
		"nil prints nothing": {
			err:  nil,
			want: "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			FprintError(&buf, tt.err, true)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

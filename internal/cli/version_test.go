package cli

import (
	"testing"

	"github.com/ariel-frischer/changelog/internal/build"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	tests := map[string]struct {
		args     []string
		contains []string
	}{
		"plain": {
			args:     []string{"version", "--plain"},
			contains: []string{build.Current().String()},
		},
		"pretty": {
			args:     []string{"version"},
			contains: []string{"Version", build.Version, "Platform"},
		},
		"alias": {
			args:     []string{"v", "--plain"},
			contains: []string{"changelog " + build.Version},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stdout, _, err := executeCLI(t, tt.args...)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, stdout, want)
			}
		})
	}
}

func TestTruncateCommit(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		commit string
		want   string
	}{
		"long hash":  {commit: "0123456789abcdef", want: "01234567"},
		"short hash": {commit: "abc", want: "abc"},
		"unknown":    {commit: "unknown", want: "unknown"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, truncateCommit(tt.commit))
		})
	}
}

package config

const (
	// DefaultDateFormat renders the draft date as ISO 8601.
	DefaultDateFormat = "%Y-%m-%d"

	// DefaultDiffFormat links to an Azure DevOps branch comparison between two commits.
	DefaultDiffFormat = "{{.repositoryUri}}/branchCompare?baseVersion=GC{{.base}}&targetVersion=GC{{.latest}}&_a=files"

	// DefaultCommitDetailPageFormat links to a single commit.
	DefaultCommitDetailPageFormat = "{{.repositoryUri}}/commit/{{.commit}}"
)

// GetDefaults returns the default configuration values keyed by their file keys.
func GetDefaults() map[string]any {
	return map[string]any{
		"source":                    string(SourceFile),
		"last_generation":           int64(0),
		"date_format":               DefaultDateFormat,
		"diff_format":               DefaultDiffFormat,
		"commit_detail_page_format": DefaultCommitDetailPageFormat,
	}
}

// Defaults returns the configuration written when no settings file exists.
func Defaults() *Configuration {
	return &Configuration{
		Source:                 SourceFile,
		LastGeneration:         0,
		DateFormat:             DefaultDateFormat,
		DiffFormat:             DefaultDiffFormat,
		CommitDetailPageFormat: DefaultCommitDetailPageFormat,
	}
}

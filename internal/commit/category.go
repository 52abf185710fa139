package commit

// Category is the conventional-commit bucket a commit falls into.
type Category int

const (
	// Other covers commits that follow no recognized convention.
	Other Category = iota
	// Feature is a "feat:" commit.
	Feature
	// Fix is a "fix:" commit.
	Fix
	// Breaking is any commit marked with "!:" or carrying a BREAKING CHANGE footer.
	Breaking
)

// String returns the category name used in logs.
func (c Category) String() string {
	switch c {
	case Feature:
		return "Feature"
	case Fix:
		return "Fix"
	case Breaking:
		return "Breaking"
	default:
		return "Other"
	}
}

// Categories returns all categories in rendering priority order.
func Categories() []Category {
	return []Category{Breaking, Feature, Fix, Other}
}

package commit

import "regexp"

// rule maps a subject-line pattern to the category it implies.
type rule struct {
	pattern  *regexp.Regexp
	category Category
}

// subjectRules are evaluated top to bottom; the first match wins.
var subjectRules = []rule{
	{pattern: regexp.MustCompile(`^.+!:`), category: Breaking},
	{pattern: regexp.MustCompile(`^feat(\([^)]*\))?!?:`), category: Feature},
	{pattern: regexp.MustCompile(`^fix(\([^)]*\))?!?:`), category: Fix},
}

// breakingFooter matches a "BREAKING CHANGE:" line anywhere in the message body.
var breakingFooter = regexp.MustCompile(`(?mi)^breaking change:`)

// Classify maps a raw subject line and full commit message to a Category.
// A BREAKING CHANGE footer in the message always forces Breaking.
func Classify(summary, message string) Category {
	category := Other
	for _, r := range subjectRules {
		if r.pattern.MatchString(summary) {
			category = r.category
			break
		}
	}

	if breakingFooter.MatchString(message) {
		category = Breaking
	}

	return category
}

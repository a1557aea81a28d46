package domain

import "fmt"

// IssueKind classifies diagnostics produced by a registry run.
type IssueKind string

const (
	IssueInvalidFrontMatter IssueKind = "invalid-front-matter"
	IssueMalformedID        IssueKind = "malformed-id"
	IssueReadError          IssueKind = "read-error"
	IssueUnknownCategory    IssueKind = "unknown-category"
	IssueDuplicateID        IssueKind = "duplicate-id"
	IssueFamilyExhausted    IssueKind = "family-range-exhausted"
	IssueCategoryExhausted  IssueKind = "category-range-exhausted"
)

// Issue is one diagnostic collected during a scan or aggregation run.
// Warnings leave the registry usable; errors are correctness violations
// that strict mode refuses to publish.
type Issue struct {
	Kind    IssueKind
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Kind, i.Message)
}

// NewIssue builds an issue with a formatted message.
func NewIssue(kind IssueKind, format string, args ...any) Issue {
	return Issue{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IssueStrings renders issues for serialization and display.
func IssueStrings(issues []Issue) []string {
	if len(issues) == 0 {
		return nil
	}
	out := make([]string, len(issues))
	for i, issue := range issues {
		out[i] = issue.String()
	}
	return out
}

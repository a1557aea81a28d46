package domain

import (
	"fmt"
	"strings"
	"time"
)

// PageTemplate generates the Markdown content for a new component page.
// The header carries the fields the registry scanner reads back.
func PageTemplate(id, name string) string {
	now := time.Now()
	dateStr := now.Format("2006-01-02")

	return fmt.Sprintf(`---
id: %s
name: %s
created: %s
---

# %s %s

%s.
`, id, name, dateStr, id, name, formatNameSentence(name))
}

// formatNameSentence creates a descriptive sentence from the component name
func formatNameSentence(name string) string {
	if name == "" {
		return "Description pending"
	}

	// Capitalize first letter
	sentence := strings.ToUpper(name[:1]) + name[1:]

	// Remove trailing period if present (we'll add our own)
	sentence = strings.TrimSuffix(sentence, ".")

	return sentence
}

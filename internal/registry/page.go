package registry

import (
	"fmt"
	"strings"
)

// PageOptions controls the rendered summary document.
type PageOptions struct {
	// Source names the snapshot the page was generated from; empty hides
	// the provenance line.
	Source string
}

// RenderPage renders the registry summary as a Markdown document: a
// categories table, a families table, and a notice block whenever the run
// produced warnings or errors.
func RenderPage(snap *Snapshot, opts PageOptions) string {
	var b strings.Builder

	b.WriteString("---\n")
	b.WriteString("title: ID Registry\n")
	b.WriteString("hide:\n")
	b.WriteString("  - toc\n")
	b.WriteString("---\n\n")
	b.WriteString("# Component ID Registry\n\n")
	if opts.Source != "" {
		fmt.Fprintf(&b, "_This page is generated from `%s`._  \n", opts.Source)
	}
	fmt.Fprintf(&b, "**Generated:** %s\n\n", snap.GeneratedAt)

	b.WriteString("## Categories\n")
	b.WriteString("| Code | Title | Count | Next ID | Next by family |\n")
	b.WriteString("|---|---|---:|---|---|\n")
	for _, cat := range snap.Categories {
		fmt.Fprintf(&b, "| `%s` | %s | %d | %s | %s |\n",
			cat.Code, cat.Title, cat.Count, idCell(cat.NextAny), nextByFamilyCell(cat.NextByFamily))
	}

	b.WriteString("\n## Families\n")
	b.WriteString("| Family | Alias | Anchor | Members |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, fam := range snap.Families {
		fmt.Fprintf(&b, "| `%s` | %s | `%s` | %s |\n",
			fam.Key, fam.Alias, fam.Anchor, memberCell(fam.Members))
	}

	if len(snap.Errors) > 0 || len(snap.Warnings) > 0 {
		b.WriteString("\n## Notices\n")
		writeAdmonition(&b, "danger", "Errors", snap.Errors)
		writeAdmonition(&b, "warning", "Warnings", snap.Warnings)
	}

	b.WriteString("\n")
	return b.String()
}

func idCell(id string) string {
	if id == "" {
		return ""
	}
	return "`" + id + "`"
}

func nextByFamilyCell(pairs []FamilyNextPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf("%s → `%s`", p.Family, p.ID)
	}
	return strings.Join(parts, "<br/>")
}

func memberCell(members []string) string {
	if len(members) == 0 {
		return ""
	}
	parts := make([]string, len(members))
	for i, m := range members {
		parts[i] = "`" + m + "`"
	}
	return strings.Join(parts, ", ")
}

func writeAdmonition(b *strings.Builder, kind, title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(b, "\n!!! %s \"%s\"\n\n", kind, title)
	for _, line := range lines {
		fmt.Fprintf(b, "    - %s\n", line)
	}
}

package styles

import "github.com/charmbracelet/lipgloss"

// Palette. Colors stay unexported; views style text through the styles
// below or CategoryColor.
var (
	primary   = lipgloss.Color("#0891B2") // Cyan
	secondary = lipgloss.Color("#16A34A") // Green
	muted     = lipgloss.Color("#737373") // Gray
	errorRed  = lipgloss.Color("#DC2626")
	white     = lipgloss.Color("#FFFFFF")

	// Category accent palette, assigned by code so a category keeps its
	// color across runs.
	categoryPalette = []lipgloss.Color{
		"#2563EB", // Blue
		"#9333EA", // Purple
		"#DB2777", // Pink
		"#EA580C", // Orange
		"#0D9488", // Teal
		"#CA8A04", // Yellow
		"#4F46E5", // Indigo
		"#65A30D", // Lime
	}
)

// Frame and headings.
var (
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(muted).
			Italic(true)
)

// Catalog tree.
var (
	NodeCategory = lipgloss.NewStyle().
			Bold(true)

	NodeFamily = lipgloss.NewStyle().
			Foreground(secondary)

	NodeComponent = lipgloss.NewStyle()

	NodeSelected = lipgloss.NewStyle().
			Background(primary).
			Foreground(white).
			Bold(true)

	NodeAnnotation = lipgloss.NewStyle().
			Foreground(muted).
			Italic(true)

	TreeBranch    = lipgloss.NewStyle().Foreground(muted)
	TreeExpanded  = "▼ "
	TreeCollapsed = "▶ "
	TreeLeaf      = "  "
)

// Input fields.
var (
	InputLabel = lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondary).
			Padding(0, 1)
)

// Help footer and status messages.
var (
	HelpKey = lipgloss.NewStyle().
		Foreground(primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(muted).
			SetString(" • ")

	Success = lipgloss.NewStyle().
		Foreground(secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(errorRed).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(muted)
)

// CategoryColor returns the accent color for a category code.
func CategoryColor(code string) lipgloss.Color {
	if code == "" {
		return primary
	}
	sum := 0
	for _, r := range code {
		sum += int(r)
	}
	return categoryPalette[sum%len(categoryPalette)]
}

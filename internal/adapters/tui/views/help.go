package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"partdex/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

type helpEntry struct {
	key  string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

// helpSections is the static content of the help screen.
var helpSections = []helpSection{
	{
		title: "Navigation",
		entries: []helpEntry{
			{"j / k / ↑ / ↓", "Move up/down"},
			{"h / ←", "Collapse / go to parent"},
			{"l / →", "Expand"},
			{"Enter", "Open component / toggle group"},
		},
	},
	{
		title: "Actions",
		entries: []helpEntry{
			{"n", "New component in selected category/family"},
			{"e", "Edit selected page in $EDITOR"},
			{"y", "Copy ID (next free ID on a group)"},
			{"/", "Search"},
			{"r", "Reload catalog"},
		},
	},
	{
		title: "General",
		entries: []helpEntry{
			{"?", "Toggle help"},
			{"q / Ctrl+C", "Quit"},
		},
	},
}

// idStructure explains the three levels of a component ID.
var idStructure = []string{
	"  Category  : AC (2-3 uppercase letters)",
	"  Family    : AC2xx (reserved suffix block, e.g. 200-299)",
	"  Component : AC204 (category code + 3-digit suffix)",
}

// HelpModel is the model for the help view
type HelpModel struct {
	width  int
	height int
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Partdex Help"))
	b.WriteString("\n\n")
	b.WriteString(styles.Subtitle.Render("Component ID Registry"))
	b.WriteString("\n\n")

	for _, section := range helpSections {
		b.WriteString(styles.InputLabel.Render(section.title))
		b.WriteString("\n")
		for _, entry := range section.entries {
			b.WriteString(helpLine(entry.key, entry.desc))
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.InputLabel.Render("Component ID Structure"))
	b.WriteString("\n")
	for _, line := range idStructure {
		b.WriteString(styles.MutedText.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"partdex/internal/adapters/tui/styles"
	"partdex/internal/application/commands"
	"partdex/internal/ports"
)

var searchHelpKeys = []key.Binding{
	key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "navigate")),
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "copy ID and open")),
	key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
}

// SearchModel is the model for the search view
type SearchModel struct {
	ViewState
	repo      ports.CatalogRepository
	input     textinput.Model
	results   []commands.SearchResult
	paginator *Paginator
	lastQuery string
}

// NewSearchModel creates a new search model
func NewSearchModel(repo ports.CatalogRepository) *SearchModel {
	ti := textinput.New()
	ti.Placeholder = "Search by ID, name, or text..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 50

	return &SearchModel{
		repo:      repo,
		input:     ti,
		paginator: NewPaginator(10),
	}
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	m.input.SetValue("")
	m.input.Focus()
	m.results = nil
	m.lastQuery = ""
	m.paginator.Reset()
	m.ClearMessage()
	return textinput.Blink
}

func (m *SearchModel) runSearch(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := commands.NewSearchCommand(m.repo, query).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return searchResultsMsg{query: query, results: results}
	}
}

type searchResultsMsg struct {
	query   string
	results []commands.SearchResult
}

// SearchSelectMsg is emitted when a result is chosen
type SearchSelectMsg struct {
	Result commands.SearchResult
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case searchResultsMsg:
		// Ignore stale responses from superseded queries
		if msg.query != m.input.Value() {
			return m, nil
		}
		m.results = msg.results
		m.paginator.SetTotal(len(msg.results))
		return m, nil

	case errMsg:
		m.Fail(msg.err.Error())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}

		case "up":
			m.paginator.CursorUp()
			return m, nil

		case "down":
			m.paginator.CursorDown()
			return m, nil

		case "pgup":
			m.paginator.PrevPage()
			return m, nil

		case "pgdown":
			m.paginator.NextPage()
			return m, nil

		case "enter":
			if result, ok := m.selectedResult(); ok {
				if err := clipboard.WriteAll(result.ID); err == nil {
					m.Notify("Copied " + result.ID)
				}
				return m, func() tea.Msg {
					return SearchSelectMsg{Result: result}
				}
			}
			return m, nil
		}
	}

	// Update text input and re-run the search when the query changed
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	query := m.input.Value()
	if query != m.lastQuery {
		m.lastQuery = query
		m.paginator.Reset()
		if len(query) >= 2 {
			return m, tea.Batch(cmd, m.runSearch(query))
		}
		m.results = nil
		m.paginator.SetTotal(0)
	}

	return m, cmd
}

func (m *SearchModel) selectedResult() (commands.SearchResult, bool) {
	idx := m.paginator.Cursor()
	if idx >= 0 && idx < len(m.results) {
		return m.results[idx], true
	}
	return commands.SearchResult{}, false
}

// View renders the search view
func (m *SearchModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Search"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	query := m.input.Value()
	switch {
	case len(query) < 2:
		b.WriteString(styles.MutedText.Render("Type at least 2 characters to search"))
	case len(m.results) == 0:
		b.WriteString(styles.MutedText.Render("No results"))
	default:
		start, end := m.paginator.VisibleRange()
		for i := start; i < end; i++ {
			b.WriteString(m.renderResult(m.results[i], i == m.paginator.Cursor()))
			b.WriteString("\n")
		}
		if m.paginator.TotalPages() > 1 {
			b.WriteString("\n")
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("Page %d/%d (%d results)",
				m.paginator.CurrentPage(), m.paginator.TotalPages(), len(m.results))))
		}
	}

	if m.HasMessage() {
		b.WriteString("\n\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
	}

	b.WriteString("\n\n")
	b.WriteString(RenderHelpLine(searchHelpKeys...))

	return styles.App.Render(b.String())
}

func (m *SearchModel) renderResult(result commands.SearchResult, selected bool) string {
	id := result.ID
	name := result.Name
	if name == "" {
		name = result.Title
	}

	line := fmt.Sprintf("%s  %s", id, name)
	if result.MatchedText != "" && result.MatchedText != name {
		line += styles.NodeAnnotation.Render("  " + truncate(result.MatchedText, 48))
	}

	if selected {
		return styles.NodeSelected.Render("> ") + line
	}
	return "  " + line
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

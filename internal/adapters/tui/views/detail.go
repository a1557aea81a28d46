package views

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"partdex/internal/application/commands"
	"partdex/internal/domain"
	"partdex/internal/ports"
)

const detailChromeHeight = 7 // title, path, help line and surrounding blanks

var detailHelpKeys = []key.Binding{
	key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
	key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy ID")),
	key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
}

// DetailModel shows a single component page rendered as Markdown
type DetailModel struct {
	ViewState
	repo      ports.CatalogRepository
	id        string
	component *domain.Component
	content   string
	viewport  viewport.Model
	ready     bool
}

// NewDetailModel creates a new detail model
func NewDetailModel(repo ports.CatalogRepository) *DetailModel {
	return &DetailModel{
		repo: repo,
	}
}

// SetComponent selects which component page to load
func (m *DetailModel) SetComponent(id string) {
	m.id = id
	m.component = nil
	m.content = ""
	m.ready = false
	m.ClearMessage()
}

// Init initializes the detail view
func (m *DetailModel) Init() tea.Cmd {
	return m.loadPage
}

func (m *DetailModel) loadPage() tea.Msg {
	result, err := commands.NewShowCommand(m.repo, m.id).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return pageLoadedMsg{component: result.Component, content: result.Content}
}

type pageLoadedMsg struct {
	component *domain.Component
	content   string
}

// Update handles messages for the detail view
func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		if m.ready {
			m.viewport.Width = msg.Width
			m.viewport.Height = m.viewportHeight()
			m.viewport.SetContent(m.renderMarkdown())
		}
		return m, nil

	case pageLoadedMsg:
		m.component = msg.component
		m.content = msg.content
		m.viewport = viewport.New(m.Width, m.viewportHeight())
		m.viewport.SetContent(m.renderMarkdown())
		m.ready = true
		return m, nil

	case errMsg:
		m.Fail(msg.err.Error())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}

		case "e":
			if m.component != nil {
				path := m.repo.AbsPath(m.component.Path)
				return m, func() tea.Msg {
					return OpenEditorMsg{Path: path}
				}
			}
			return m, nil

		case "y":
			if m.component != nil {
				if err := clipboard.WriteAll(m.component.ID); err != nil {
					m.Failf("clipboard: %v", err)
				} else {
					m.Notify("Copied " + m.component.ID)
				}
			}
			return m, nil
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *DetailModel) viewportHeight() int {
	h := m.Height - detailChromeHeight
	if h < 5 {
		h = 5
	}
	return h
}

// renderMarkdown renders the page through glamour, falling back to the raw
// Markdown when the terminal renderer cannot be built.
func (m *DetailModel) renderMarkdown() string {
	width := m.Width - 4
	if width < 20 {
		width = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return m.content
	}

	out, err := renderer.Render(m.content)
	if err != nil {
		return m.content
	}
	return out
}

// View renders the detail view
func (m *DetailModel) View() string {
	v := NewViewBuilder()

	if m.component == nil {
		v.Title("Component")
		if m.HasMessage() {
			v.Message(m.Message, m.MessageErr)
		} else {
			v.Muted("Loading " + m.id + "...")
		}
		v.BlankLine().Help(detailHelpKeys...)
		return v.String()
	}

	v.Title(fmt.Sprintf("%s %s", m.component.ID, m.component.Name))
	v.Muted(m.component.Path)
	if m.ready {
		v.Line(m.viewport.View())
	}
	v.Message(m.Message, m.MessageErr)
	v.BlankLine().Help(detailHelpKeys...)

	return v.String()
}

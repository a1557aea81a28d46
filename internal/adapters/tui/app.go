package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"partdex/internal/adapters/tui/views"
	"partdex/internal/ports"
	"partdex/internal/registry"
)

var errNoEditor = errors.New("no editor configured, set editor.command or $EDITOR")

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewSearch
	ViewDetail
	ViewCreate
	ViewHelp
)

// App is the main TUI application model
type App struct {
	repo   ports.CatalogRepository
	rules  *registry.Ruleset
	editor ports.EditorOpener

	state   ViewState
	browser *views.BrowserModel
	search  *views.SearchModel
	detail  *views.DetailModel
	create  *views.CreateModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(repo ports.CatalogRepository, rules *registry.Ruleset, ed ports.EditorOpener) *App {
	return &App{
		repo:    repo,
		rules:   rules,
		editor:  ed,
		state:   ViewBrowser,
		browser: views.NewBrowserModel(repo, rules),
		search:  views.NewSearchModel(repo),
		detail:  views.NewDetailModel(repo),
		create:  views.NewCreateModel(repo, rules),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.search.SetSize(msg.Width, msg.Height)
		a.detail.SetSize(msg.Width, msg.Height)
		a.create.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToCreateMsg:
		a.state = ViewCreate
		a.create.SetTarget(msg.Target)
		return a, a.create.Init()

	case views.SwitchToDetailMsg:
		a.state = ViewDetail
		a.detail.SetComponent(msg.ID)
		return a, a.detail.Init()

	case views.SwitchToSearchMsg:
		a.state = ViewSearch
		return a, a.search.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, nil

	// Search view messages
	case views.SearchSelectMsg:
		a.state = ViewDetail
		a.detail.SetComponent(msg.Result.ID)
		return a, a.detail.Init()

	// Create view messages
	case views.CreateSuccessMsg:
		a.state = ViewBrowser
		a.browser.Notify(msg.Result.Message)
		return a, a.browser.Reload()

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			a.state = ViewBrowser
			a.browser.Fail("editor: " + msg.err.Error())
			return a, nil
		}
		// Pick up edits made outside the program
		if a.state == ViewDetail {
			return a, a.detail.Init()
		}
		a.state = ViewBrowser
		return a, a.browser.Reload()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewDetail:
		_, cmd = a.detail.Update(msg)
	case ViewCreate:
		_, cmd = a.create.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: errNoEditor}
		}
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewSearch:
		return a.search.View()
	case ViewDetail:
		return a.detail.View()
	case ViewCreate:
		return a.create.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}

package views

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"partdex/internal/application/commands"
	"partdex/internal/ports"
	"partdex/internal/registry"
)

const (
	createFieldTarget = 0
	createFieldName   = 1
)

// CreateModel is the model for the new-component form
type CreateModel struct {
	ViewState
	repo     ports.CatalogRepository
	rules    *registry.Ruleset
	form     *InputForm
	creating bool
}

// NewCreateModel creates a new create model
func NewCreateModel(repo ports.CatalogRepository, rules *registry.Ruleset) *CreateModel {
	form := NewInputForm(
		NewInputField("Target (category or family)", "AC or AC2xx", 10),
		NewInputField("Name", "bme280 breakout", 120),
	)

	return &CreateModel{
		repo:  repo,
		rules: rules,
		form:  form,
	}
}

// SetTarget prefills the allocation target, usually from the browser's
// selected node, and moves focus to the name field.
func (m *CreateModel) SetTarget(target string) {
	m.form.Reset()
	m.creating = false
	m.ClearMessage()

	if target != "" {
		m.form.SetValue(createFieldTarget, target)
		m.form.SetFocus(createFieldName)
	}
}

// Init initializes the create view
func (m *CreateModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *CreateModel) create() tea.Msg {
	target := m.form.Value(createFieldTarget)
	name := m.form.Value(createFieldName)

	result, err := commands.NewCreateComponentCommand(m.repo, m.rules, target, name).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return CreateSuccessMsg{Result: result}
}

// CreateSuccessMsg is emitted after a new component page has been written
type CreateSuccessMsg struct {
	Result *commands.CreateComponentResult
}

// Update handles messages for the create view
func (m *CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case errMsg:
		m.creating = false
		m.Fail(msg.err.Error())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}

		case "enter":
			if m.creating {
				return m, nil
			}
			if m.form.Value(createFieldTarget) == "" {
				m.Fail("category or family is required")
				m.form.SetFocus(createFieldTarget)
				return m, nil
			}
			if m.form.Value(createFieldName) == "" {
				m.Fail("name is required")
				m.form.SetFocus(createFieldName)
				return m, nil
			}
			m.creating = true
			m.ClearMessage()
			return m, m.create
		}
	}

	handled, cmd := m.form.Update(msg)
	if handled {
		m.ClearMessage()
	}
	return m, cmd
}

// View renders the create view
func (m *CreateModel) View() string {
	v := NewViewBuilder()
	v.Title("New Component")

	v.Line(m.form.Render())
	v.BlankLine()

	if m.creating {
		v.Muted("Creating...")
		v.BlankLine()
	}
	v.Message(m.Message, m.MessageErr)
	v.Raw(m.form.RenderHelp("create"))

	return v.String()
}

package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"partdex/internal/adapters/tui/styles"
)

// InputFormKeyMap defines key bindings for input forms
type InputFormKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Next   key.Binding
	Prev   key.Binding
}

// DefaultInputFormKeys returns the default input form key bindings
var DefaultInputFormKeys = InputFormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
}

// InputField pairs a label with its text input.
type InputField struct {
	Label string
	Input textinput.Model
}

// NewInputField creates a labeled input with a placeholder and optional
// character limit.
func NewInputField(label, placeholder string, charLimit int) InputField {
	input := textinput.New()
	input.Placeholder = placeholder
	if charLimit > 0 {
		input.CharLimit = charLimit
	}
	return InputField{
		Label: label,
		Input: input,
	}
}

// InputForm holds an ordered list of fields and tracks which one has focus.
type InputForm struct {
	fields  []InputField
	focused int
	keys    InputFormKeyMap
}

// NewInputForm creates a form with focus on the first field.
func NewInputForm(fields ...InputField) *InputForm {
	form := &InputForm{
		fields: fields,
		keys:   DefaultInputFormKeys,
	}
	if f := form.field(0); f != nil {
		f.Input.Focus()
	}
	return form
}

// field returns a pointer to the field at index, or nil when out of range.
func (f *InputForm) field(index int) *InputField {
	if index < 0 || index >= len(f.fields) {
		return nil
	}
	return &f.fields[index]
}

// Init returns the blink command for the focused input
func (f *InputForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the input form.
// Returns (handled, cmd) where handled is true if the key was processed.
func (f *InputForm) Update(msg tea.Msg) (bool, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, f.keys.Next):
			f.shiftFocus(1)
			return true, nil
		case key.Matches(keyMsg, f.keys.Prev):
			f.shiftFocus(-1)
			return true, nil
		}
	}

	var cmd tea.Cmd
	if field := f.field(f.focused); field != nil {
		field.Input, cmd = field.Input.Update(msg)
	}
	return false, cmd
}

func (f *InputForm) shiftFocus(delta int) {
	if len(f.fields) <= 1 {
		return
	}
	f.fields[f.focused].Input.Blur()
	f.focused = (f.focused + delta + len(f.fields)) % len(f.fields)
	f.fields[f.focused].Input.Focus()
}

// SetFocus moves focus to a specific field.
func (f *InputForm) SetFocus(index int) {
	target := f.field(index)
	if target == nil {
		return
	}
	if current := f.field(f.focused); current != nil {
		current.Input.Blur()
	}
	f.focused = index
	target.Input.Focus()
}

// Value returns the trimmed value of a field, or "" when out of range.
func (f *InputForm) Value(index int) string {
	field := f.field(index)
	if field == nil {
		return ""
	}
	return strings.TrimSpace(field.Input.Value())
}

// SetValue sets the value of a field by index
func (f *InputForm) SetValue(index int, value string) {
	if field := f.field(index); field != nil {
		field.Input.SetValue(value)
	}
}

// Reset clears all field values and resets focus to the first field
func (f *InputForm) Reset() {
	for i := range f.fields {
		f.fields[i].Input.SetValue("")
		f.fields[i].Input.Blur()
	}
	f.focused = 0
	if field := f.field(0); field != nil {
		field.Input.Focus()
	}
}

// Render renders all fields in order, separated by blank lines. The
// focused field gets the highlighted border.
func (f *InputForm) Render() string {
	rendered := make([]string, 0, len(f.fields))
	for i, field := range f.fields {
		box := styles.InputField
		if i == f.focused {
			box = styles.InputFocused
		}
		rendered = append(rendered, styles.InputLabel.Render(field.Label)+"\n"+box.Render(field.Input.View()))
	}
	return strings.Join(rendered, "\n\n")
}

// RenderHelp renders the help text for the form
func (f *InputForm) RenderHelp(submitText string) string {
	var parts []string

	if len(f.fields) > 1 {
		parts = append(parts, RenderKeyHelp(f.keys.Next))
	}
	parts = append(parts, styles.HelpKey.Render("enter")+" "+styles.HelpDesc.Render(submitText))
	parts = append(parts, RenderKeyHelp(f.keys.Cancel))

	return strings.Join(parts, styles.HelpSeparator.String())
}

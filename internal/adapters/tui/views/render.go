package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"partdex/internal/adapters/tui/styles"
)

// RenderKeyHelp renders a single key binding as "key action".
func RenderKeyHelp(binding key.Binding) string {
	help := binding.Help()
	return styles.HelpKey.Render(help.Key) + " " + styles.HelpDesc.Render(help.Desc)
}

// RenderHelpLine joins key bindings into a footer line.
func RenderHelpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		parts = append(parts, RenderKeyHelp(binding))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a transient status message, styled by severity.
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// ViewBuilder accumulates styled lines for a full-screen view.
type ViewBuilder struct {
	b strings.Builder
}

// NewViewBuilder creates an empty view builder.
func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{}
}

// Line appends text followed by a newline.
func (v *ViewBuilder) Line(text string) *ViewBuilder {
	v.b.WriteString(text)
	v.b.WriteString("\n")
	return v
}

// BlankLine appends an empty line.
func (v *ViewBuilder) BlankLine() *ViewBuilder {
	v.b.WriteString("\n")
	return v
}

// Raw appends text without a trailing newline.
func (v *ViewBuilder) Raw(text string) *ViewBuilder {
	v.b.WriteString(text)
	return v
}

// Title appends a styled title and a blank separator line.
func (v *ViewBuilder) Title(title string) *ViewBuilder {
	return v.Line(styles.Title.Render(title)).BlankLine()
}

// Muted appends a line of muted text.
func (v *ViewBuilder) Muted(text string) *ViewBuilder {
	return v.Line(styles.MutedText.Render(text))
}

// Message appends a status message block when the message is non-empty.
func (v *ViewBuilder) Message(message string, isError bool) *ViewBuilder {
	if message == "" {
		return v
	}
	return v.Line(RenderMessage(message, isError)).BlankLine()
}

// Help appends the footer help line.
func (v *ViewBuilder) Help(bindings ...key.Binding) *ViewBuilder {
	return v.Raw(RenderHelpLine(bindings...))
}

// String returns the accumulated view wrapped in the app frame.
func (v *ViewBuilder) String() string {
	return styles.App.Render(v.b.String())
}

package views

import "fmt"

// ViewState is embedded by the view models. It carries the window
// geometry and the transient status line rendered under the content.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize records the window dimensions from a resize message.
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// Notify shows text as a neutral status message.
func (s *ViewState) Notify(text string) {
	s.Message = text
	s.MessageErr = false
}

// Fail shows text as an error status message.
func (s *ViewState) Fail(text string) {
	s.Message = text
	s.MessageErr = true
}

// Failf formats and shows an error status message.
func (s *ViewState) Failf(format string, args ...any) {
	s.Fail(fmt.Sprintf(format, args...))
}

// ClearMessage drops the current status message.
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// HasMessage reports whether a status message is pending.
func (s *ViewState) HasMessage() bool {
	return s.Message != ""
}

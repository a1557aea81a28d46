package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Opener implements ports.EditorOpener
type Opener struct {
	command string // configured editor command, may carry arguments
}

// NewOpener creates an editor opener. A non-empty command wins over the
// $EDITOR and $VISUAL environment variables.
func NewOpener(command string) *Opener {
	return &Opener{command: command}
}

// OpenFile opens a file in the user's preferred editor
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a file in the editor
// This is useful for integrating with bubbletea's ExecProcess
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	argv := o.findEditor()
	if len(argv) == 0 {
		return nil, fmt.Errorf("no editor found: set editor.command or $EDITOR")
	}

	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// findEditor returns the editor argv to use
func (o *Opener) findEditor() []string {
	// Configured command first
	if fields := strings.Fields(o.command); len(fields) > 0 {
		return fields
	}

	// Check $EDITOR
	if editor := os.Getenv("EDITOR"); editor != "" {
		return strings.Fields(editor)
	}

	// Check $VISUAL
	if visual := os.Getenv("VISUAL"); visual != "" {
		return strings.Fields(visual)
	}

	// Try common editors
	editors := []string{"nvim", "vim", "vi", "nano", "code"}
	for _, editor := range editors {
		if path, err := exec.LookPath(editor); err == nil {
			return []string{path}
		}
	}

	return nil
}

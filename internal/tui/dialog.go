package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var dialogBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("62")).
	Padding(1, 2)

var dialogTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

// ShowError reports a fatal error on stderr, boxed when stderr is a
// terminal.
func ShowError(title string, err error) {
	WriteError(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), title, err)
}

// WriteError writes the error report to w. styled selects the boxed form.
func WriteError(w io.Writer, styled bool, title string, err error) {
	if !styled {
		fmt.Fprintf(w, "%s: %v\n", title, err)
		return
	}
	body := lipgloss.JoinVertical(lipgloss.Left, dialogTitle.Render(title), "", err.Error())
	fmt.Fprintln(w, dialogBox.Render(body))
}

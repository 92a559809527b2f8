// Package tui holds the terminal side of startup: the file picker and the
// error report.
package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

var (
	// ErrCancelled is returned when the user leaves the picker without
	// choosing a file.
	ErrCancelled = errors.New("file selection cancelled")
	// ErrNoTerminal is returned when stdin or stdout is not a terminal.
	ErrNoTerminal = errors.New("file picker requires an interactive terminal")
)

// ImageExtensions lists the file types offered by the picker.
var ImageExtensions = []string{
	".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp",
}

// IsImageFile reports whether path has one of ImageExtensions.
func IsImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range ImageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// PickImage lets the user browse from dir and choose an image file. It
// returns ErrCancelled on abort and ErrNoTerminal when there is no TTY.
func PickImage(dir string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return "", ErrNoTerminal
	}
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		}
	}

	var path string
	form := newPickerForm(dir, &path)
	form.SubmitCmd = tea.Quit
	form.CancelCmd = tea.Quit

	if _, err := tea.NewProgram(form).Run(); err != nil {
		return "", fmt.Errorf("file picker failed: %w", err)
	}
	if form.State != huh.StateCompleted || path == "" {
		return "", ErrCancelled
	}
	return path, nil
}

func newPickerForm(dir string, value *string) *huh.Form {
	picker := huh.NewFilePicker().
		Title("Open image").
		Description("Enter to open, Esc to go up, Ctrl+C to cancel").
		CurrentDirectory(dir).
		AllowedTypes(ImageExtensions).
		FileAllowed(true).
		DirAllowed(false).
		Picking(true).
		Height(15).
		Value(value)
	return huh.NewForm(huh.NewGroup(picker)).WithShowHelp(true)
}

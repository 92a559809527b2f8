// Package clipboard loads the image to show from an X selection.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/1broseidon/showimg/internal/config"
	"github.com/1broseidon/showimg/internal/imageload"
	"github.com/1broseidon/showimg/internal/x11"
	sysclip "github.com/atotto/clipboard"
)

// ErrNoImage means neither image data nor a usable path was found.
var ErrNoImage = errors.New("clipboard holds no image")

// DefaultTimeout bounds the wait on the selection owner.
const DefaultTimeout = 2 * time.Second

// selectionTargets are requested in order of preference.
var selectionTargets = []string{"image/png", "text/uri-list", "UTF8_STRING"}

// SelectionReader reads the first available target of a selection.
type SelectionReader func(ctx context.Context, selection string, targets []string) ([]byte, string, error)

// Source reads an image from the selection chosen by the clipboard mode.
type Source struct {
	Selection SelectionReader
	// Text is the plain-text fallback used in "yes" mode.
	Text     func() (string, error)
	LoadFile func(path string) (*imageload.Image, error)
	Timeout  time.Duration

	log *slog.Logger
}

// NewSource returns a Source reading the X selections directly, with the
// system clipboard tools as text fallback.
func NewSource(logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{
		Selection: x11.ReadSelection,
		Text:      sysclip.ReadAll,
		LoadFile:  imageload.Load,
		Timeout:   DefaultTimeout,
		log:       logger,
	}
}

// selectionFor maps a clipboard mode to the X selection it reads.
func selectionFor(mode config.ClipboardMode) (string, bool) {
	switch mode {
	case config.ClipboardPrimary:
		return "PRIMARY", true
	case config.ClipboardYes:
		return "CLIPBOARD", true
	}
	return "", false
}

// Load returns the clipboard image. When the clipboard held a path rather
// than pixels, the path is returned too.
func (s *Source) Load(ctx context.Context, mode config.ClipboardMode) (*imageload.Image, string, error) {
	selection, ok := selectionFor(mode)
	if !ok {
		return nil, "", fmt.Errorf("clipboard mode %q reads nothing", mode)
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	data, target, err := s.Selection(ctx, selection, selectionTargets)
	switch {
	case err != nil:
		s.log.Debug("selection read failed", "selection", selection, "error", err)
	case target == "image/png":
		img, err := imageload.DecodeBytes(data)
		if err != nil {
			return nil, "", fmt.Errorf("clipboard image: %w", err)
		}
		return img, "", nil
	default:
		if img, path, ok := s.loadPath(string(data)); ok {
			return img, path, nil
		}
	}

	if mode == config.ClipboardYes && s.Text != nil {
		text, err := s.Text()
		if err != nil {
			s.log.Debug("clipboard text read failed", "error", err)
		} else if img, path, ok := s.loadPath(text); ok {
			return img, path, nil
		}
	}
	return nil, "", ErrNoImage
}

func (s *Source) loadPath(text string) (*imageload.Image, string, bool) {
	path, ok := PathFromText(text)
	if !ok {
		return nil, "", false
	}
	img, err := s.LoadFile(path)
	if err != nil {
		s.log.Debug("clipboard path is not an image", "path", path, "error", err)
		return nil, "", false
	}
	return img, path, true
}

// PathFromText extracts a file path from clipboard text: the first line
// that is not blank or a uri-list comment, as a plain path or a file://
// URI. A leading "~/" expands to the home directory.
func PathFromText(text string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return pathFromLine(line)
	}
	return "", false
}

func pathFromLine(line string) (string, bool) {
	if strings.Contains(line, "://") {
		u, err := url.Parse(line)
		if err != nil || u.Scheme != "file" || u.Path == "" {
			return "", false
		}
		if u.Host != "" && u.Host != "localhost" {
			return "", false
		}
		return u.Path, true
	}
	if rest, ok := strings.CutPrefix(line, "~/"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		return filepath.Join(home, rest), true
	}
	return line, true
}

package clipboard

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/1broseidon/showimg/internal/config"
	"github.com/1broseidon/showimg/internal/imageload"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

type selectionCall struct {
	selection string
	targets   []string
}

func newTestSource(read SelectionReader) *Source {
	s := NewSource(nil)
	s.Selection = read
	s.Text = func() (string, error) { return "", errors.New("no clipboard tool") }
	return s
}

func TestLoad_ImageData(t *testing.T) {
	var calls []selectionCall
	s := newTestSource(func(ctx context.Context, selection string, targets []string) ([]byte, string, error) {
		calls = append(calls, selectionCall{selection, targets})
		return pngBytes(t, 6, 3), "image/png", nil
	})

	img, path, err := s.Load(context.Background(), config.ClipboardYes)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if img.Width != 6 || img.Height != 3 || path != "" {
		t.Fatalf("unexpected result %dx%d %q", img.Width, img.Height, path)
	}
	if len(calls) != 1 || calls[0].selection != "CLIPBOARD" {
		t.Fatalf("expected one CLIPBOARD read, got %+v", calls)
	}
	if calls[0].targets[0] != "image/png" {
		t.Fatalf("expected image/png preferred, got %v", calls[0].targets)
	}
}

func TestLoad_PrimaryReadsPrimary(t *testing.T) {
	var got string
	s := newTestSource(func(ctx context.Context, selection string, targets []string) ([]byte, string, error) {
		got = selection
		return pngBytes(t, 1, 1), "image/png", nil
	})
	if _, _, err := s.Load(context.Background(), config.ClipboardPrimary); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "PRIMARY" {
		t.Fatalf("expected PRIMARY, got %q", got)
	}
}

func TestLoad_PathText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic.png")
	if err := os.WriteFile(path, pngBytes(t, 4, 2), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s := newTestSource(func(ctx context.Context, selection string, targets []string) ([]byte, string, error) {
		return []byte("file://" + path + "\r\n"), "text/uri-list", nil
	})

	img, gotPath, err := s.Load(context.Background(), config.ClipboardPrimary)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if gotPath != path || img.AspectRatio() != 2 {
		t.Fatalf("unexpected result %q ratio %v", gotPath, img.AspectRatio())
	}
}

func TestLoad_TextFallbackOnlyInYesMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic.png")
	if err := os.WriteFile(path, pngBytes(t, 2, 2), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	failing := func(ctx context.Context, selection string, targets []string) ([]byte, string, error) {
		return nil, "", errors.New("no display")
	}

	s := newTestSource(failing)
	s.Text = func() (string, error) { return path, nil }
	if _, got, err := s.Load(context.Background(), config.ClipboardYes); err != nil || got != path {
		t.Fatalf("expected fallback path %q, got %q (%v)", path, got, err)
	}
	if _, _, err := s.Load(context.Background(), config.ClipboardPrimary); !errors.Is(err, ErrNoImage) {
		t.Fatalf("expected ErrNoImage without fallback, got %v", err)
	}
}

func TestLoad_NoImage(t *testing.T) {
	s := newTestSource(func(ctx context.Context, selection string, targets []string) ([]byte, string, error) {
		return []byte("just some words"), "UTF8_STRING", nil
	})
	s.LoadFile = func(string) (*imageload.Image, error) { return nil, os.ErrNotExist }
	if _, _, err := s.Load(context.Background(), config.ClipboardYes); !errors.Is(err, ErrNoImage) {
		t.Fatalf("expected ErrNoImage, got %v", err)
	}
}

func TestLoad_BadImageData(t *testing.T) {
	s := newTestSource(func(ctx context.Context, selection string, targets []string) ([]byte, string, error) {
		return []byte("not a png"), "image/png", nil
	})
	if _, _, err := s.Load(context.Background(), config.ClipboardYes); err == nil || errors.Is(err, ErrNoImage) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestLoad_ModeNo(t *testing.T) {
	s := newTestSource(nil)
	if _, _, err := s.Load(context.Background(), config.ClipboardNo); err == nil {
		t.Fatalf("expected error for mode no")
	}
}

func TestLoad_AppliesTimeout(t *testing.T) {
	s := newTestSource(func(ctx context.Context, selection string, targets []string) ([]byte, string, error) {
		if _, ok := ctx.Deadline(); !ok {
			t.Fatalf("expected a deadline on the selection read")
		}
		return pngBytes(t, 1, 1), "image/png", nil
	})
	if _, _, err := s.Load(context.Background(), config.ClipboardYes); err != nil {
		t.Fatalf("load: %v", err)
	}
}

func TestPathFromText(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"/tmp/a.png", "/tmp/a.png", true},
		{"  /tmp/a.png\n/tmp/b.png", "/tmp/a.png", true},
		{"# comment\nfile:///tmp/with%20space.png", "/tmp/with space.png", true},
		{"file://localhost/tmp/a.png", "/tmp/a.png", true},
		{"file://otherhost/tmp/a.png", "", false},
		{"https://example.com/a.png", "", false},
		{"~/pics/a.png", filepath.Join(home, "pics/a.png"), true},
		{"\n\n", "", false},
	}
	for _, tt := range tests {
		got, ok := PathFromText(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Fatalf("%q: expected (%q, %v), got (%q, %v)", tt.in, tt.want, tt.wantOK, got, ok)
		}
	}
}

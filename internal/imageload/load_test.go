package imageload

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestLoad_PNGDimensionsAndRatio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.png")
	if err := os.WriteFile(path, encodePNG(t, 40, 10), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	img, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if img.Format != "png" {
		t.Fatalf("expected png, got %q", img.Format)
	}
	if img.Width != 40 || img.Height != 10 {
		t.Fatalf("expected 40x10, got %dx%d", img.Width, img.Height)
	}
	if img.AspectRatio() != 4 {
		t.Fatalf("expected ratio 4, got %v", img.AspectRatio())
	}
}

func TestDecodeBytes_BMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 3, 5))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	img, err := DecodeBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Format != "bmp" || img.Width != 3 || img.Height != 5 {
		t.Fatalf("unexpected image %s %dx%d", img.Format, img.Width, img.Height)
	}
}

func init() {
	// A format whose images are always empty, to exercise the dimension check.
	image.RegisterFormat("empty", "EMPTY!", func(io.Reader) (image.Image, error) {
		return image.NewRGBA(image.Rect(0, 0, 0, 7)), nil
	}, func(io.Reader) (image.Config, error) {
		return image.Config{ColorModel: color.RGBAModel, Width: 0, Height: 7}, nil
	})
}

func TestDecodeBytes_ZeroSizedImage(t *testing.T) {
	_, err := DecodeBytes([]byte("EMPTY!"))
	if errors.Cause(err) != ErrEmptyImage {
		t.Fatalf("expected ErrEmptyImage, got %v", err)
	}
}

func TestDecodeBytes_Garbage(t *testing.T) {
	_, err := DecodeBytes([]byte("definitely not an image"))
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if errors.Cause(err) != image.ErrFormat {
		t.Fatalf("expected image.ErrFormat cause, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	if !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("expected not-exist cause, got %v", err)
	}
}

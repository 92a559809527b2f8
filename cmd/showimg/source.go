package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/1broseidon/showimg/internal/clipboard"
	"github.com/1broseidon/showimg/internal/config"
	"github.com/1broseidon/showimg/internal/imageload"
	"github.com/1broseidon/showimg/internal/tui"
)

// loadedImage is the decoded image plus the path it came from, if any.
type loadedImage struct {
	*imageload.Image
	Path string
}

// imageSources are the places an image can come from.
type imageSources struct {
	File      func(path string) (*imageload.Image, error)
	Clipboard func(ctx context.Context, mode config.ClipboardMode) (*imageload.Image, string, error)
	Pick      func(dir string) (string, error)
}

func defaultImageSources(logger *slog.Logger) imageSources {
	return imageSources{
		File:      imageload.Load,
		Clipboard: clipboard.NewSource(logger).Load,
		Pick:      tui.PickImage,
	}
}

// selectImage resolves the image to show: an explicit file first, then the
// clipboard when enabled, then the interactive picker.
func selectImage(ctx context.Context, cfg *config.Config, src imageSources, logger *slog.Logger) (*loadedImage, error) {
	if cfg.File != "" {
		return loadFile(src, cfg.File)
	}

	if cfg.ClipboardMode != config.ClipboardNo {
		img, path, err := src.Clipboard(ctx, cfg.ClipboardMode)
		switch {
		case err == nil:
			return &loadedImage{Image: img, Path: path}, nil
		case errors.Is(err, clipboard.ErrNoImage):
			logger.Info("no image in clipboard, opening file picker")
		default:
			return nil, err
		}
	}

	path, err := src.Pick("")
	if err != nil {
		return nil, err
	}
	return loadFile(src, path)
}

func loadFile(src imageSources, path string) (*loadedImage, error) {
	img, err := src.File(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open image: %w", err)
	}
	return &loadedImage{Image: img, Path: path}, nil
}

// windowTitle is the configured title when set explicitly, else the file
// name, else the default title.
func windowTitle(res *config.LoadResult, img *loadedImage) string {
	if _, ok := res.Sources["title"]; ok {
		return res.Config.Title
	}
	if img.Path != "" {
		return filepath.Base(img.Path)
	}
	return config.DefaultTitle
}

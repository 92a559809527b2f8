// Package imageload decodes the image shown by the viewer.
package imageload

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrEmptyImage is returned for images with a zero dimension.
var ErrEmptyImage = errors.New("image has zero width or height")

// Image is a decoded image with known pixel dimensions.
type Image struct {
	Image  image.Image
	Format string
	Width  int
	Height int
}

// AspectRatio is width / height. Decode guarantees both are positive.
func (i *Image) AspectRatio() float64 {
	return float64(i.Width) / float64(i.Height)
}

// Decode reads an image in any registered format.
func Decode(r io.Reader) (*Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "decode image")
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, errors.Wrapf(ErrEmptyImage, "%s image %dx%d", format, b.Dx(), b.Dy())
	}
	return &Image{
		Image:  img,
		Format: format,
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

// DecodeBytes decodes an in-memory image, such as clipboard data.
func DecodeBytes(data []byte) (*Image, error) {
	return Decode(bytes.NewReader(data))
}

// Load opens and decodes the file at path.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open image")
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return img, nil
}

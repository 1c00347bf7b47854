package source

import (
	"image"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ThumbnailDPI is the resolution used when a PDF page becomes a thumbnail.
const ThumbnailDPI = 96

// Source is anything a thumbnail can be taken from.
type Source interface {
	PageCount() int
	GetPageDimensions(index int) (width, height float64, err error)
	RenderPage(index int, dpi int) (image.Image, error)
	Close() error
}

// Open picks the source implementation by file extension.
func Open(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return NewFitzPDFSource(path)
	case ".png", ".jpg", ".jpeg":
		return NewImageSource(path)
	default:
		return nil, errors.Errorf("unsupported thumbnail format: %s", path)
	}
}

// Load returns the first page of the file at path.
func Load(path string) (image.Image, error) {
	src, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if src.PageCount() == 0 {
		return nil, errors.Errorf("%s has no pages", path)
	}
	img, err := src.RenderPage(0, ThumbnailDPI)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to render %s", path)
	}
	return img, nil
}

// Package picture loads image files into renderable pictures and their
// thumbnail previews.
package picture

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

const (
	// PlaceholderWidth is the width of the image shown for files that failed to load.
	PlaceholderWidth = 320
	// PlaceholderHeight is the height of the image shown for files that failed to load.
	PlaceholderHeight = 240
	// DefaultThumbnailSize bounds both sides of a preview thumbnail.
	DefaultThumbnailSize = 150
)

var placeholderColor = color.NRGBA{R: 0x3c, G: 0x3c, B: 0x3c, A: 0xff}

// LoggerFunc defines a function signature for logging messages.
type LoggerFunc func(message string)

// Picture is one image loaded from a file path. It is immutable once built.
// A picture whose file could not be loaded carries a placeholder image and
// the load error, so it can always be rendered.
type Picture struct {
	path string
	img  image.Image
	info *Info
	err  error
}

// New wraps an already decoded image.
func New(path string, img image.Image, info *Info) *Picture {
	return &Picture{path: path, img: img, info: info}
}

// Failed builds the placeholder picture for a path that could not be loaded.
func Failed(path string, err error) *Picture {
	return &Picture{
		path: path,
		img:  imaging.New(PlaceholderWidth, PlaceholderHeight, placeholderColor),
		err:  err,
	}
}

// Path returns the source file path.
func (p *Picture) Path() string { return p.path }

// Image returns the decoded image, or the placeholder if loading failed.
func (p *Picture) Image() image.Image { return p.img }

// Info returns the file metadata. It is nil for failed pictures.
func (p *Picture) Info() *Info { return p.info }

// Err returns the error the picture failed to load with, if any.
func (p *Picture) Err() error { return p.err }

// IsPlaceholder reports whether Image is the placeholder.
func (p *Picture) IsPlaceholder() bool { return p.err != nil }

// Preview is a Picture meant for the thumbnail strip. It carries the same
// data as the Picture it was built from plus a downscaled thumbnail.
type Preview struct {
	Picture
	thumb image.Image
}

// NewPreview builds the preview of p with a thumbnail no larger than
// maxSize on either side.
func NewPreview(p *Picture, maxSize uint) *Preview {
	if maxSize == 0 {
		maxSize = DefaultThumbnailSize
	}
	return &Preview{
		Picture: *p,
		thumb:   resize.Thumbnail(maxSize, maxSize, p.img, resize.Lanczos3),
	}
}

// Thumbnail returns the downscaled image.
func (p *Preview) Thumbnail() image.Image { return p.thumb }

// Loader decodes files into pictures and previews.
type Loader struct {
	thumbSize uint
	logger    LoggerFunc
}

// NewLoader creates a Loader producing thumbnails bounded by thumbSize.
// A nil logger falls back to the standard log package.
func NewLoader(thumbSize int, logger LoggerFunc) *Loader {
	if thumbSize <= 0 {
		thumbSize = DefaultThumbnailSize
	}
	return &Loader{thumbSize: uint(thumbSize), logger: logger}
}

func (l *Loader) logMessage(format string, args ...interface{}) {
	if l.logger != nil {
		l.logger(fmt.Sprintf(format, args...))
	} else {
		log.Printf(format, args...)
	}
}

// LoadPicture decodes path. Failures are logged and yield a placeholder picture.
func (l *Loader) LoadPicture(path string) *Picture {
	info, img, err := Decode(path)
	if err != nil {
		l.logMessage("Error loading %s: %v", path, err)
		return Failed(path, fmt.Errorf("loading %s: %w", path, err))
	}
	return New(path, img, info)
}

// Load decodes path once and returns the picture and its preview.
func (l *Loader) Load(path string) (*Picture, *Preview) {
	pic := l.LoadPicture(path)
	return pic, NewPreview(pic, l.thumbSize)
}

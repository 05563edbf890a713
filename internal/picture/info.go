package picture

import (
	"fmt"
	"image"
	"io"
	"os"
	"time"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// exifFields are the EXIF tags copied into Info.EXIFData when present.
var exifFields = []exif.FieldName{
	exif.DateTime, exif.Model, exif.Make, exif.ExposureTime, exif.FNumber, exif.ISOSpeedRatings, exif.FocalLength,
}

// Info holds metadata about an image file.
type Info struct {
	Width    int
	Height   int
	Size     int64
	ModTime  time.Time
	EXIFData map[string]string
}

// readEXIF extracts a few common EXIF fields. Not all images carry EXIF, so a
// reader without it yields a nil map rather than an error.
func readEXIF(r io.Reader) map[string]string {
	x, err := exif.Decode(r)
	if err != nil {
		return nil
	}
	result := make(map[string]string)
	for _, field := range exifFields {
		tag, err := x.Get(field)
		if err == nil && tag != nil {
			result[string(field)] = tag.String()
		}
	}
	return result
}

// Decode opens path, reads its metadata and decodes it, applying the EXIF
// orientation so that rotated camera shots display upright.
func Decode(path string) (*Info, image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to stat image file: %w", err)
	}

	exifData := readEXIF(f)

	if _, err = f.Seek(0, io.SeekStart); err != nil {
		return nil, nil, fmt.Errorf("failed to seek in image file: %w", err)
	}

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	return &Info{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Size:     fi.Size(),
		ModTime:  fi.ModTime(),
		EXIFData: exifData,
	}, img, nil
}

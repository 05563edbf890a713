package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// tappableImage is a thumbnail in the preview strip that reacts to taps.
type tappableImage struct {
	widget.BaseWidget
	image    *canvas.Image
	onTapped func()
}

func newTappableImage(img image.Image, onTapped func()) *tappableImage {
	ti := &tappableImage{
		image:    canvas.NewImageFromImage(img),
		onTapped: onTapped,
	}
	ti.image.FillMode = canvas.ImageFillContain
	ti.ExtendBaseWidget(ti)
	return ti
}

// CreateRenderer is a mandatory method for a Fyne widget.
func (t *tappableImage) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.image)
}

// Tapped is called when the widget is tapped.
func (t *tappableImage) Tapped(_ *fyne.PointEvent) {
	if t.onTapped != nil {
		t.onTapped()
	}
}

// SetMinSize sets the minimum size of the thumbnail.
func (t *tappableImage) SetMinSize(size fyne.Size) {
	t.image.SetMinSize(size)
}

var _ fyne.Tappable = (*tappableImage)(nil)

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// About is the "Information" dialog.
type About struct {
	title     string
	parent    fyne.Window
	container *fyne.Container
	d         dialog.Dialog
}

// NewAbout builds the dialog; call Show to display it.
func NewAbout(parent fyne.Window, title string, icon fyne.Resource) *About {
	a := &About{
		title:  title,
		parent: parent,
	}

	img := canvas.NewImageFromResource(icon)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(96, 96))

	text := container.NewVBox(
		widget.NewLabelWithStyle(appTitle, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Browse pictures, run a slide show, zoom and go fullscreen."),
		widget.NewLabel("See View > Keyboard Shortcuts for the keys."),
	)

	ok := container.NewHBox(
		layout.NewSpacer(),
		widget.NewButton("OK", func() { a.Hide() }),
		layout.NewSpacer(),
	)

	a.container = container.NewBorder(nil, ok, nil, nil, container.NewVBox(img, text))
	return a
}

// Hide closes the dialog.
func (a *About) Hide() {
	if a.d != nil {
		a.d.Hide()
	}
}

// Show displays the dialog over the parent window.
func (a *About) Show() {
	a.d = dialog.NewCustomWithoutButtons(a.title, a.container, a.parent)
	a.d.Show()
}

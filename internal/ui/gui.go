package ui

import (
	"fmt"
	"runtime"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/dustin/go-humanize"

	"photoviewer/internal/scan"
	"photoviewer/internal/slideshow"
)

const (
	zoomSliderMin     = 0
	zoomSliderMax     = 100
	zoomSliderInitial = 25
)

// openFileDialog lets the user pick a picture to load. The slide show is
// paused while the dialog is open.
func (a *App) openFileDialog() {
	a.slideshowManager.Pause(true)
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		defer a.slideshowManager.ResumeAfterOperation()
		if err != nil {
			dialog.ShowError(err, a.UI.MainWin)
			return
		}
		if reader == nil { // cancelled
			return
		}
		path := reader.URI().Path()
		reader.Close()
		a.loadPictures([]string{path})
	}, a.UI.MainWin)
	fd.SetFilter(storage.NewExtensionFileFilter(scan.Extensions))
	fd.Show()
}

// openFolderDialog loads every picture of a folder.
func (a *App) openFolderDialog() {
	a.slideshowManager.Pause(true)
	dialog.ShowFolderOpen(func(dir fyne.ListableURI, err error) {
		defer a.slideshowManager.ResumeAfterOperation()
		if err != nil {
			dialog.ShowError(err, a.UI.MainWin)
			return
		}
		if dir == nil {
			return
		}
		a.loadPictures([]string{dir.Path()})
	}, a.UI.MainWin)
}

// updatePreviewView rebuilds the thumbnail strip from the collection.
func (a *App) updatePreviewView() {
	a.UI.previewBox.RemoveAll()
	size := float32(a.cfg.ThumbnailSize)
	for i, p := range a.pictures.Previews() {
		idx := i
		thumb := newTappableImage(p.Thumbnail(), func() { a.showByIndex(idx) })
		thumb.SetMinSize(fyne.NewSize(size, size))
		a.UI.previewBox.Add(thumb)
	}
	a.UI.previewBox.Refresh()
}

// showPictureDetails shows the metadata of the current picture.
func (a *App) showPictureDetails() {
	if a.current == nil {
		a.showNoPicturesLoadedWarning()
		return
	}
	md := fmt.Sprintf("## %s\n\n", a.current.Path())
	info := a.current.Info()
	if info == nil {
		md += fmt.Sprintf("Picture could not be loaded: %v\n", a.current.Err())
	} else {
		md += fmt.Sprintf("**Size:** %s (%s bytes)\n\n**Width:** %d px\n\n**Height:** %d px\n\n**Last modified:** %s\n\n",
			humanize.Bytes(uint64(info.Size)), humanize.Comma(info.Size),
			info.Width, info.Height, info.ModTime.Format("2006-01-02 15:04:05"))
		md += "---\n## EXIF Data\n"
		if len(info.EXIFData) == 0 {
			md += "(not available)\n"
		} else {
			keys := make([]string, 0, len(info.EXIFData))
			for k := range info.EXIFData {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				md += fmt.Sprintf("- **%s**: %s\n", k, strings.Trim(info.EXIFData[k], `"`))
			}
		}
	}
	text := widget.NewRichTextFromMarkdown(md)
	text.Wrapping = fyne.TextWrapWord
	d := dialog.NewCustom("Picture Details", "Ok", container.NewVScroll(text), a.UI.MainWin)
	d.Resize(fyne.NewSize(480, 420))
	d.Show()
}

func (a *App) buildStatusBar() fyne.CanvasObject {
	a.UI.statusPathLabel = widget.NewLabel("")
	a.UI.statusPathLabel.Truncation = fyne.TextTruncateEllipsis
	a.UI.statusLogLabel = widget.NewLabel("")
	a.UI.statusLogUpBtn = widget.NewButtonWithIcon("", theme.MoveUpIcon(), func() { a.logUIManager.ShowPreviousLogMessage() })
	a.UI.statusLogDownBtn = widget.NewButtonWithIcon("", theme.MoveDownIcon(), func() { a.logUIManager.ShowNextLogMessage() })
	a.logUIManager = NewLogUIManager(a.UI.statusLogLabel, a.UI.statusLogUpBtn, a.UI.statusLogDownBtn, a.cfg.MaxLogMessages)
	a.logUIManager.UpdateLogDisplay()

	return container.NewBorder(nil, nil, nil,
		container.NewHBox(a.UI.statusLogLabel, a.UI.statusLogUpBtn, a.UI.statusLogDownBtn),
		a.UI.statusPathLabel,
	)
}

func (a *App) buildControls() fyne.CanvasObject {
	openBtn := widget.NewButtonWithIcon("Open Pictures", theme.FolderOpenIcon(), a.openFileDialog)

	a.UI.zoomSlider = widget.NewSlider(zoomSliderMin, zoomSliderMax)
	a.UI.zoomSlider.Value = zoomSliderInitial
	a.zoom.FollowSlider(zoomSliderInitial)
	a.UI.zoomSlider.OnChanged = func(v float64) {
		if a.zoom.FollowSlider(v) {
			a.applyZoom()
		}
	}

	prevBtn := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), a.showPrevious)
	nextBtn := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), a.showNext)
	a.UI.slideshowBtn = widget.NewButton("Slide Show", a.toggleSlideshow)

	a.UI.speedSlider = widget.NewSlider(slideshow.MinInterval.Seconds(), slideshow.MaxInterval.Seconds())
	a.UI.speedSlider.Step = 0.5
	a.UI.speedSlider.Value = a.slideshowManager.Interval().Seconds()
	a.UI.speedSlider.OnChanged = a.setSlideshowSpeed

	a.UI.fullScreenBtn = widget.NewButtonWithIcon("Fullscreen", theme.ViewFullScreenIcon(), a.toggleFullScreen)

	left := container.NewBorder(nil, nil, container.NewHBox(openBtn, widget.NewLabel("Zoom:")), nil, a.UI.zoomSlider)
	mid := container.NewHBox(prevBtn, a.UI.slideshowBtn, nextBtn)
	right := container.NewBorder(nil, nil, widget.NewLabel("Speed:"), a.UI.fullScreenBtn, a.UI.speedSlider)
	return container.NewGridWithColumns(3, left, container.NewCenter(mid), right)
}

func (a *App) buildMainMenu() *fyne.MainMenu {
	a.UI.slideshowMenuItem = fyne.NewMenuItem("Slide Show", a.toggleSlideshow)
	// Fyne adds its own Quit item to the first menu.
	file := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Picture...", a.openFileDialog),
		fyne.NewMenuItem("Open Folder...", a.openFolderDialog),
		fyne.NewMenuItem("Close all", a.clearViewer),
		fyne.NewMenuItemSeparator(),
		a.UI.slideshowMenuItem,
	)
	view := fyne.NewMenu("View",
		fyne.NewMenuItem("Next Picture", a.showNext),
		fyne.NewMenuItem("Previous Picture", a.showPrevious),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Zoom In", a.zoomIn),
		fyne.NewMenuItem("Zoom Out", a.zoomOut),
		fyne.NewMenuItem("Reset Zoom", a.resetZoom),
		fyne.NewMenuItem("Fullscreen", a.toggleFullScreen),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Picture Details", a.showPictureDetails),
		fyne.NewMenuItem("Keyboard Shortcuts", a.showShortcuts),
	)
	about := fyne.NewMenu("About",
		fyne.NewMenuItem("Information", func() {
			NewAbout(a.UI.MainWin, "About this program", theme.FileImageIcon()).Show()
		}),
	)
	return fyne.NewMainMenu(file, view, about)
}

func (a *App) buildMainUI() fyne.CanvasObject {
	a.UI.MainWin.SetMaster()
	// set main mod key to super on darwin hosts, else set it to ctrl
	if runtime.GOOS == "darwin" {
		a.UI.mainModKey = fyne.KeyModifierSuper
	} else {
		a.UI.mainModKey = fyne.KeyModifierControl
	}

	a.UI.mainMenu = a.buildMainMenu()
	a.UI.MainWin.SetMainMenu(a.UI.mainMenu)

	a.UI.image = &canvas.Image{}
	a.UI.image.FillMode = canvas.ImageFillContain
	a.UI.image.ScaleMode = canvas.ImageScaleSmooth
	a.UI.imageScroll = container.NewScroll(container.NewCenter(a.UI.image))
	a.applyZoom()

	a.UI.previewBox = container.NewHBox()
	previewScroll := container.NewHScroll(a.UI.previewBox)
	previewScroll.SetMinSize(fyne.NewSize(0, float32(a.cfg.ThumbnailSize)+theme.Padding()*2))

	status := a.buildStatusBar()
	controls := a.buildControls()
	a.buildKeyboardShortcuts()

	bottom := container.NewVBox(
		previewScroll,
		widget.NewSeparator(),
		controls,
		layout.NewSpacer(),
		status,
	)
	return container.NewBorder(nil, bottom, nil, nil, a.UI.imageScroll)
}

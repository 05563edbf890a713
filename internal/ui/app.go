// Package ui  Setup for the Photo Viewer Application
package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"photoviewer/internal/collection"
	"photoviewer/internal/config"
	"photoviewer/internal/picture"
	"photoviewer/internal/scan"
	"photoviewer/internal/slideshow"
	"photoviewer/internal/zoom"
)

const appTitle = "Photo Viewer"

// App represents the whole application with all its windows, widgets and functions
type App struct {
	app fyne.App
	UI  UI
	cfg config.Config

	pictures         *collection.PictureCollection
	current          *picture.Picture
	slideshowManager *slideshow.SlideshowManager
	stopSlideshow    context.CancelFunc // nil while no slideshow runs
	zoom             *zoom.Zoom

	logUIManager *LogUIManager
}

// UI holds the widgets the App updates after building them.
type UI struct {
	MainWin    fyne.Window
	mainModKey fyne.KeyModifier

	mainMenu          *fyne.MainMenu
	slideshowMenuItem *fyne.MenuItem

	image       *canvas.Image
	imageScroll *container.Scroll
	previewBox  *fyne.Container

	slideshowBtn  *widget.Button
	fullScreenBtn *widget.Button
	zoomSlider    *widget.Slider
	speedSlider   *widget.Slider

	statusPathLabel  *widget.Label
	statusLogLabel   *widget.Label
	statusLogUpBtn   *widget.Button
	statusLogDownBtn *widget.Button
}

// addLogMessage adds a message to the console and the status log. It must
// run on the Fyne thread; use logFromGoroutine elsewhere.
func (a *App) addLogMessage(message string) {
	log.Printf("[photoviewer] %s", message)
	if a.logUIManager != nil {
		a.logUIManager.AddLogMessage(message)
	}
}

func (a *App) logFromGoroutine(message string) {
	fyne.Do(func() { a.addLogMessage(message) })
}

// loadPictures expands paths, loads them into the collection in the
// background and shows the first picture once done.
func (a *App) loadPictures(paths []string) {
	a.UI.statusPathLabel.SetText(fmt.Sprintf("Loading %d item(s)...", len(paths)))
	go func() {
		start := time.Now()
		files := scan.Expand(paths, a.logFromGoroutine)
		a.pictures.Load(files)
		msg := fmt.Sprintf("Loaded %d pictures in %s", len(files), time.Since(start).Round(time.Millisecond))
		fyne.Do(func() {
			a.addLogMessage(msg)
			a.updatePreviewView()
			a.navigate(a.pictures.Next)
		})
	}()
}

// navigate moves through the collection with step and shows the result.
// An empty collection produces the "no pictures" warning.
func (a *App) navigate(step func() (*picture.Picture, error)) {
	pic, err := step()
	if err != nil {
		if errors.Is(err, collection.ErrEmptyCollection) {
			a.showNoPicturesLoadedWarning()
			return
		}
		dialog.ShowError(err, a.UI.MainWin)
		return
	}
	a.showPicture(pic)
}

func (a *App) showNext()     { a.navigate(a.pictures.Next) }
func (a *App) showPrevious() { a.navigate(a.pictures.Previous) }

func (a *App) showByIndex(i int) {
	a.navigate(func() (*picture.Picture, error) { return a.pictures.MoveTo(i) })
}

// showPicture displays pic in the main view.
func (a *App) showPicture(pic *picture.Picture) {
	a.current = pic
	a.UI.image.Image = pic.Image()
	a.applyZoom()
	a.UI.MainWin.SetTitle(fmt.Sprintf("%s - %s", appTitle, filepath.Base(pic.Path())))
	a.updateStatusBar()
}

// clearViewer empties the collection, the preview strip and the main view.
func (a *App) clearViewer() {
	a.endSlideshow()
	a.pictures.Clear()
	a.current = nil
	a.UI.image.Image = nil
	a.UI.image.Refresh()
	a.updatePreviewView()
	a.UI.MainWin.SetTitle(appTitle)
	a.updateStatusBar()
}

// updateStatusBar updates the text of the status bar.
func (a *App) updateStatusBar() {
	if a.UI.statusPathLabel == nil {
		return
	}
	statusText := "No pictures loaded"
	if a.current != nil {
		statusText = fmt.Sprintf("%s  |  Picture %d / %d", a.current.Path(), a.pictures.Index()+1, a.pictures.Len())
		if info := a.current.Info(); info != nil {
			statusText += fmt.Sprintf("  |  %dx%d", info.Width, info.Height)
		} else if a.current.IsPlaceholder() {
			statusText += "  |  failed to load"
		}
	}
	if a.stopSlideshow != nil {
		statusText += fmt.Sprintf("  |  Slide show every %.1fs", a.slideshowManager.Interval().Seconds())
	}
	a.UI.statusPathLabel.SetText(statusText)
}

// toggleSlideshow starts the slide show on first use and stops it on the next.
func (a *App) toggleSlideshow() {
	if a.stopSlideshow != nil {
		a.endSlideshow()
		a.addLogMessage("Slide show stopped.")
		return
	}
	// Showing the next picture first surfaces an empty collection right away.
	pic, err := a.pictures.Next()
	if err != nil {
		a.showNoPicturesLoadedWarning()
		return
	}
	a.showPicture(pic)

	if a.slideshowManager.IsPaused() {
		a.slideshowManager.TogglePlayPause()
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.stopSlideshow = cancel
	go a.slideshowManager.Run(ctx, func() {
		fyne.Do(func() {
			// A stop between the timer firing and this closure must not move the cursor.
			if ctx.Err() != nil {
				return
			}
			pic, err := a.pictures.Next()
			if err != nil {
				a.endSlideshow()
				a.showNoPicturesLoadedWarning()
				return
			}
			a.showPicture(pic)
		})
	})
	a.setSlideshowLabels("Stop Slide Show")
	a.updateStatusBar()
	a.addLogMessage("Slide show started.")
}

// endSlideshow stops a running slide show; it is a no-op otherwise.
func (a *App) endSlideshow() {
	if a.stopSlideshow == nil {
		return
	}
	a.stopSlideshow()
	a.stopSlideshow = nil
	a.setSlideshowLabels("Slide Show")
	a.updateStatusBar()
}

func (a *App) setSlideshowLabels(label string) {
	a.UI.slideshowBtn.SetText(label)
	a.UI.slideshowMenuItem.Label = label
	a.UI.mainMenu.Refresh()
}

func (a *App) setSlideshowSpeed(seconds float64) {
	a.slideshowManager.SetInterval(time.Duration(seconds * float64(time.Second)))
	a.updateStatusBar()
}

// applyZoom resizes the main image to the current zoom level.
func (a *App) applyZoom() {
	w, h := a.zoom.Size()
	a.UI.image.SetMinSize(fyne.NewSize(w, h))
	a.UI.image.Refresh()
	if a.UI.imageScroll != nil {
		a.UI.imageScroll.Refresh()
	}
}

func (a *App) zoomIn() {
	a.zoom.In()
	a.applyZoom()
}

func (a *App) zoomOut() {
	a.zoom.Out()
	a.applyZoom()
}

func (a *App) resetZoom() {
	a.zoom.Reset()
	a.applyZoom()
}

func (a *App) toggleFullScreen() {
	full := !a.UI.MainWin.FullScreen()
	a.UI.MainWin.SetFullScreen(full)
	if full {
		a.UI.fullScreenBtn.SetText("Exit Fullscreen")
	} else {
		a.UI.fullScreenBtn.SetText("Fullscreen")
	}
}

// showNoPicturesLoadedWarning informs the user that the action needs pictures.
func (a *App) showNoPicturesLoadedWarning() {
	dialog.ShowInformation("No pictures loaded",
		"No pictures have been loaded.\nPlease select pictures via the menu or via the open button to view them.",
		a.UI.MainWin)
}

// CreateApplication is the GUI entrypoint. Paths given on the command line
// are loaded once the application has started.
func CreateApplication(cfg config.Config, paths []string) {
	a := app.NewWithID("com.github.photoviewer")
	a.SetIcon(theme.FileImageIcon())

	ui := &App{
		app:              a,
		cfg:              cfg,
		slideshowManager: slideshow.NewSlideshowManager(cfg.SlideshowInterval()),
		zoom:             zoom.New(cfg.ZoomLevel, cfg.ZoomStep),
	}
	loader := picture.NewLoader(cfg.ThumbnailSize, ui.logFromGoroutine)
	ui.pictures = collection.New(loader)

	ui.UI.MainWin = a.NewWindow(appTitle)
	ui.UI.MainWin.SetCloseIntercept(func() {
		ui.endSlideshow()
		ui.UI.MainWin.Close()
	})
	ui.UI.MainWin.SetContent(ui.buildMainUI())
	ui.UI.MainWin.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	ui.UI.MainWin.CenterOnScreen()
	if cfg.Fullscreen {
		ui.toggleFullScreen()
	}
	ui.updateStatusBar()

	a.Lifecycle().SetOnStarted(func() {
		if len(paths) > 0 {
			ui.loadPictures(paths)
		}
	})
	ui.UI.MainWin.ShowAndRun()
}

// Package ui  Shortcuts for keyboard actions
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

type shortcut struct {
	keys        string
	description string
}

var shortcutHelp = []shortcut{
	{"Ctrl+Q", "Quit application"},
	{"Ctrl+O", "Open picture"},
	{"Arrow Right or D", "Next picture"},
	{"Arrow Left or A", "Previous picture"},
	{"Space or P", "Start/stop slide show"},
	{"= / -", "Zoom in / out"},
	{"0", "Reset zoom"},
	{"F11 or F", "Toggle fullscreen"},
	{"I", "Picture details"},
	{"Esc", "Close dialog or leave fullscreen"},
}

func (a *App) buildKeyboardShortcuts() {
	canvas := a.UI.MainWin.Canvas()

	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyQ,
		Modifier: a.UI.mainModKey,
	}, func(_ fyne.Shortcut) { a.app.Quit() })
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyO,
		Modifier: a.UI.mainModKey,
	}, func(_ fyne.Shortcut) { a.openFileDialog() })

	canvas.SetOnTypedKey(func(key *fyne.KeyEvent) {
		switch key.Name {
		case fyne.KeyRight, fyne.KeyD:
			a.showNext()
		case fyne.KeyLeft, fyne.KeyA:
			a.showPrevious()
		case fyne.KeySpace, fyne.KeyP:
			a.toggleSlideshow()
		case fyne.KeyEqual:
			a.zoomIn()
		case fyne.KeyMinus:
			a.zoomOut()
		case fyne.Key0:
			a.resetZoom()
		case fyne.KeyF11, fyne.KeyF:
			a.toggleFullScreen()
		case fyne.KeyI:
			a.showPictureDetails()
		case fyne.KeyEscape:
			if top := canvas.Overlays().Top(); top != nil {
				top.Hide()
			} else if a.UI.MainWin.FullScreen() {
				a.toggleFullScreen()
			}
		}
	})
}

func (a *App) showShortcuts() {
	win := a.app.NewWindow("Keyboard Shortcuts")
	table := widget.NewTable(
		func() (int, int) { return len(shortcutHelp) + 1, 2 }, // +1 for header row
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			if id.Row == 0 {
				label.TextStyle.Bold = true
				label.SetText([]string{"Shortcut", "Description"}[id.Col])
				return
			}
			label.TextStyle.Bold = false
			s := shortcutHelp[id.Row-1]
			if id.Col == 0 {
				label.SetText(s.keys)
			} else {
				label.SetText(s.description)
			}
		},
	)
	table.SetColumnWidth(0, 180)
	table.SetColumnWidth(1, 280)
	win.SetContent(table)
	win.Resize(fyne.NewSize(480, 360))
	win.Show()
}

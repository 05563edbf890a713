package ui

import (
	"fmt"

	"fyne.io/fyne/v2/widget"
)

// DefaultMaxLogMessages bounds the status log when no limit is configured.
const DefaultMaxLogMessages = 100

// LogUIManager keeps the recent log messages and shows one of them in the
// status bar, with buttons to scroll through older ones. Fyne thread only.
type LogUIManager struct {
	messages []string
	shown    int
	limit    int

	label   *widget.Label
	upBtn   *widget.Button
	downBtn *widget.Button
}

// NewLogUIManager creates a manager driving the given widgets.
func NewLogUIManager(label *widget.Label, upBtn, downBtn *widget.Button, limit int) *LogUIManager {
	if limit <= 0 {
		limit = DefaultMaxLogMessages
	}
	return &LogUIManager{
		messages: make([]string, 0, limit),
		shown:    -1,
		limit:    limit,
		label:    label,
		upBtn:    upBtn,
		downBtn:  downBtn,
	}
}

// AddLogMessage appends message, drops the oldest beyond the limit and
// shows the newest.
func (lm *LogUIManager) AddLogMessage(message string) {
	lm.messages = append(lm.messages, message)
	if over := len(lm.messages) - lm.limit; over > 0 {
		lm.messages = lm.messages[over:]
	}
	lm.shown = len(lm.messages) - 1
	lm.UpdateLogDisplay()
}

// UpdateLogDisplay refreshes the label and the enabled state of the buttons.
func (lm *LogUIManager) UpdateLogDisplay() {
	if lm.label == nil || lm.upBtn == nil || lm.downBtn == nil {
		return
	}
	n := len(lm.messages)
	if n == 0 {
		lm.label.SetText("")
		lm.upBtn.Disable()
		lm.downBtn.Disable()
		return
	}
	lm.shown = max(0, min(lm.shown, n-1))

	lm.label.SetText(fmt.Sprintf("[%d/%d] %s", lm.shown+1, n, lm.messages[lm.shown]))
	setEnabled(lm.upBtn, lm.shown > 0)
	setEnabled(lm.downBtn, lm.shown < n-1)
}

func setEnabled(b *widget.Button, on bool) {
	if on {
		b.Enable()
	} else {
		b.Disable()
	}
}

// ShowPreviousLogMessage shows the message before the current one.
func (lm *LogUIManager) ShowPreviousLogMessage() {
	if lm.shown <= 0 {
		return
	}
	lm.shown--
	lm.UpdateLogDisplay()
}

// ShowNextLogMessage shows the message after the current one.
func (lm *LogUIManager) ShowNextLogMessage() {
	if lm.shown >= len(lm.messages)-1 {
		return
	}
	lm.shown++
	lm.UpdateLogDisplay()
}

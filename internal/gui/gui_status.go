package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	fpsLabel    *widget.Label
}

func NewStatusBar() *StatusBar {
	statusBar := &StatusBar{}
	statusBar.setupStatusBar()
	return statusBar
}

func (sb *StatusBar) setupStatusBar() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.fpsLabel = widget.NewLabel("FPS: --")

	sb.container = container.NewBorder(
		nil, nil,
		sb.statusLabel,
		sb.fpsLabel,
	)
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	fyne.Do(func() {
		sb.statusLabel.SetText(status)
	})
}

// SetFrameRate shows the polled engine frame rate. Called from the poller
// goroutine.
func (sb *StatusBar) SetFrameRate(fps float64) {
	fyne.Do(func() {
		sb.fpsLabel.SetText(fmt.Sprintf("FPS: %.0f", fps))
	})
}

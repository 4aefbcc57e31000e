package gui

import (
	"image"

	"fyne.io/fyne/v2"
)

// MainInterface is the UI facade the application wires against.
type MainInterface struct {
	window fyne.Window
	layout *LayoutManager

	// Callbacks
	onGreet func(string)
}

func NewMainInterface(window fyne.Window, onGreet func(string)) *MainInterface {
	gui := &MainInterface{
		window:  window,
		onGreet: onGreet,
	}
	gui.layout = NewLayoutManager(onGreet)
	return gui
}

func (gui *MainInterface) GetMainContainer() *fyne.Container {
	return gui.layout.GetMainContainer()
}

// SetFrame publishes the latest engine frame to the viewport.
func (gui *MainInterface) SetFrame(img image.Image) {
	gui.layout.SetFrame(img)
}

// SetFrameRate publishes the latest polled frame-rate reading.
func (gui *MainInterface) SetFrameRate(fps float64) {
	gui.layout.SetFrameRate(fps)
}

// SetGreeting publishes the latest greet reply.
func (gui *MainInterface) SetGreeting(text string) {
	gui.layout.SetGreeting(text)
}

func (gui *MainInterface) UpdateStatus(status string) {
	gui.layout.UpdateStatus(status)
}

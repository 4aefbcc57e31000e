package gui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// LayoutManager coordinates the main application layout: the engine viewport
// on top, the greet panel with the emblem row in the center, and the status
// bar along the bottom.
type LayoutManager struct {
	mainContainer *fyne.Container
	viewport      *Viewport
	greetPanel    *GreetPanel
	emblemRow     *EmblemRow
	statusBar     *StatusBar
}

func NewLayoutManager(onGreet func(string)) *LayoutManager {
	viewport := NewViewport()
	greetPanel := NewGreetPanel(onGreet)
	emblemRow := NewEmblemRow()
	statusBar := NewStatusBar()

	center := container.NewVBox(
		emblemRow.GetContainer(),
		greetPanel.GetContainer(),
	)

	mainContainer := container.NewBorder(
		viewport.GetContainer(),  // top
		statusBar.GetContainer(), // bottom
		nil,                      // left
		nil,                      // right
		center,
	)

	return &LayoutManager{
		mainContainer: mainContainer,
		viewport:      viewport,
		greetPanel:    greetPanel,
		emblemRow:     emblemRow,
		statusBar:     statusBar,
	}
}

func (lm *LayoutManager) GetMainContainer() *fyne.Container {
	return lm.mainContainer
}

func (lm *LayoutManager) SetFrame(img image.Image) {
	lm.viewport.SetFrame(img)
}

func (lm *LayoutManager) SetFrameRate(fps float64) {
	lm.statusBar.SetFrameRate(fps)
}

func (lm *LayoutManager) SetGreeting(text string) {
	lm.greetPanel.SetReply(text)
}

func (lm *LayoutManager) UpdateStatus(status string) {
	lm.statusBar.SetStatus(status)
}

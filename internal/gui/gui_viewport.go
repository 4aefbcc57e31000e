package gui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const (
	ViewportWidth  = 640
	ViewportHeight = 480
)

// Viewport shows the engine's rendered frames.
type Viewport struct {
	container *fyne.Container
	frame     *canvas.Image
}

func NewViewport() *Viewport {
	vp := &Viewport{}
	vp.frame = canvas.NewImageFromImage(nil)
	vp.frame.FillMode = canvas.ImageFillContain
	vp.frame.SetMinSize(fyne.NewSize(ViewportWidth, ViewportHeight))

	vp.container = container.NewPadded(vp.frame)
	return vp
}

func (vp *Viewport) GetContainer() *fyne.Container {
	return vp.container
}

// SetFrame swaps in the next frame. Called from the engine goroutine, so the
// canvas update is funneled through fyne.Do.
func (vp *Viewport) SetFrame(img image.Image) {
	if img == nil {
		return
	}

	fyne.Do(func() {
		vp.frame.Image = img
		vp.frame.Refresh()
	})
}

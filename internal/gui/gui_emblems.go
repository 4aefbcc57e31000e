package gui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/gg"
)

const emblemSize = 96

// EmblemRow shows the template's emblem images: the window shell and the
// render engine. Both are drawn once at startup with the same canvas library
// the engine renders with, so the template carries no binary assets.
type EmblemRow struct {
	container *fyne.Container
}

func NewEmblemRow() *EmblemRow {
	row := &EmblemRow{}

	shell := canvas.NewImageFromImage(renderShellEmblem())
	shell.FillMode = canvas.ImageFillContain
	shell.SetMinSize(fyne.NewSize(emblemSize, emblemSize))

	engine := canvas.NewImageFromImage(renderEngineEmblem())
	engine.FillMode = canvas.ImageFillContain
	engine.SetMinSize(fyne.NewSize(emblemSize, emblemSize))

	row.container = container.NewHBox(
		widget.NewLabel(""), // spacer keeps the row centered with HBox
		container.NewCenter(shell),
		container.NewCenter(engine),
		widget.NewLabel(""),
	)
	return row
}

func (er *EmblemRow) GetContainer() *fyne.Container {
	return er.container
}

// renderShellEmblem draws the window-shell emblem: a window outline with a
// title bar.
func renderShellEmblem() image.Image {
	dc := gg.NewContext(emblemSize, emblemSize)
	defer dc.Close()

	dc.Clear()

	dc.SetRGB(0.35, 0.55, 0.95)
	dc.SetLineWidth(4)
	dc.DrawRoundedRectangle(10, 14, 76, 68, 8)
	dc.Stroke()

	dc.DrawLine(10, 32, 86, 32)
	dc.Stroke()

	dc.SetRGB(0.35, 0.55, 0.95)
	dc.DrawCircle(20, 23, 3)
	dc.Fill()
	dc.DrawCircle(31, 23, 3)
	dc.Fill()

	return dc.Image()
}

// renderEngineEmblem draws the render-engine emblem: a planet with an orbit
// ring and satellite, matching the live scene.
func renderEngineEmblem() image.Image {
	dc := gg.NewContext(emblemSize, emblemSize)
	defer dc.Close()

	dc.Clear()

	const cx, cy = emblemSize / 2, emblemSize / 2

	dc.SetRGBA(1, 1, 1, 0.35)
	dc.SetLineWidth(2)
	dc.DrawEllipse(cx, cy, 40, 18)
	dc.Stroke()

	dc.SetRGB(0.8, 0.7, 0.6)
	dc.DrawCircle(cx, cy, 18)
	dc.Fill()

	dc.SetRGB(0.3, 0.9, 0.3)
	dc.DrawRectangle(cx+32, cy-14, 9, 9)
	dc.Fill()

	return dc.Image()
}

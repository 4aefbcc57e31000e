package gui

import (
	"image"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreetPanelSubmitsEntryText(t *testing.T) {
	_ = test.NewApp()
	defer test.NewApp()

	var greeted []string
	panel := NewGreetPanel(func(name string) {
		greeted = append(greeted, name)
	})

	panel.nameEntry.SetText("Ada")
	test.Tap(panel.greetButton)

	require.Equal(t, []string{"Ada"}, greeted, "tap submits the captured entry text once")

	// Typing alone never submits.
	panel.nameEntry.SetText("Grace")
	assert.Len(t, greeted, 1)

	panel.nameEntry.OnSubmitted("Grace")
	assert.Equal(t, []string{"Ada", "Grace"}, greeted)
}

func TestGreetPanelShowsReply(t *testing.T) {
	_ = test.NewApp()
	defer test.NewApp()

	panel := NewGreetPanel(nil)
	panel.SetReply("Hello, Ada!")

	assert.Equal(t, "Hello, Ada!", panel.replyLabel.Text)
}

func TestStatusBarFormatsFrameRate(t *testing.T) {
	_ = test.NewApp()
	defer test.NewApp()

	sb := NewStatusBar()
	assert.Equal(t, "FPS: --", sb.fpsLabel.Text)

	sb.SetFrameRate(59.6)
	assert.Equal(t, "FPS: 60", sb.fpsLabel.Text)

	sb.SetStatus("Running")
	assert.Equal(t, "Running", sb.statusLabel.Text)
}

func TestViewportAcceptsFrames(t *testing.T) {
	_ = test.NewApp()
	defer test.NewApp()

	vp := NewViewport()
	vp.SetFrame(nil)
	assert.Nil(t, vp.frame.Image)

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	vp.SetFrame(img)
	assert.Equal(t, img, vp.frame.Image)
}

func TestEmblemsRender(t *testing.T) {
	for name, render := range map[string]func() image.Image{
		"shell":  renderShellEmblem,
		"engine": renderEngineEmblem,
	} {
		img := render()
		require.NotNil(t, img, name)
		assert.Equal(t, emblemSize, img.Bounds().Dx(), name)
		assert.Equal(t, emblemSize, img.Bounds().Dy(), name)

		// At least one pixel must be opaque.
		opaque := false
		bounds := img.Bounds()
		for y := bounds.Min.Y; y < bounds.Max.Y && !opaque; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
					opaque = true
					break
				}
			}
		}
		assert.True(t, opaque, "%s emblem is blank", name)
	}
}

func TestMainInterfaceWiring(t *testing.T) {
	a := test.NewApp()
	defer test.NewApp()
	w := a.NewWindow("test")

	var got string
	gui := NewMainInterface(w, func(name string) { got = name })
	require.NotNil(t, gui.GetMainContainer())

	gui.layout.greetPanel.nameEntry.SetText("Lin")
	test.Tap(gui.layout.greetPanel.greetButton)
	assert.Equal(t, "Lin", got)

	gui.SetGreeting("Hello, Lin!")
	assert.Equal(t, "Hello, Lin!", gui.layout.greetPanel.replyLabel.Text)

	gui.SetFrameRate(30)
	assert.Equal(t, "FPS: 30", gui.layout.statusBar.fpsLabel.Text)
}

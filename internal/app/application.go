// Package app wires the window shell, the embedded render engine, and the
// bridge-facing components into one application.
package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"orbiter/internal/bridge"
	"orbiter/internal/engine"
	"orbiter/internal/gui"
	"orbiter/internal/invoker"
	"orbiter/internal/logger"
	"orbiter/internal/poller"
	"orbiter/internal/shutdown"
)

const (
	AppName = "Orbiter"
	AppID   = "com.orbiter.shell"
)

// Config carries the entry-point choices into the wiring.
type Config struct {
	// Software selects the CPU rasterizer instead of the GPU path.
	Software bool
	// TargetFPS caps the engine frame loop. Zero means the engine default.
	TargetFPS int
}

// Application owns every long-lived component and their teardown order.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	log     logger.Logger

	mainGUI  *gui.MainInterface
	bridge   *bridge.Bridge
	engine   *engine.Engine
	poller   *poller.FrameRatePoller
	invoker  *invoker.Invoker
	shutdown *shutdown.Manager
}

func New(cfg Config, log logger.Logger) (*Application, error) {
	fyneApp := fyneapp.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(960, 760))
	window.CenterOnScreen()

	app := &Application{
		fyneApp: fyneApp,
		window:  window,
		log:     log,
	}

	app.bridge = bridge.New(log)
	app.engine = engine.New(engine.Options{
		Width:     gui.ViewportWidth,
		Height:    gui.ViewportHeight,
		TargetFPS: cfg.TargetFPS,
		Software:  cfg.Software,
	}, log)

	if err := RegisterCommands(app.bridge, app.engine); err != nil {
		return nil, fmt.Errorf("app: registering commands: %w", err)
	}

	app.mainGUI = gui.NewMainInterface(window, app.handleGreet)
	app.engine.SetOnFrame(app.mainGUI.SetFrame)

	app.invoker = invoker.New(app.bridge, app.mainGUI.SetGreeting, log)

	frPoller, err := poller.New(poller.Config{
		Bridge:    app.bridge,
		OnReading: app.mainGUI.SetFrameRate,
		Log:       log,
	})
	if err != nil {
		return nil, fmt.Errorf("app: building poller: %w", err)
	}
	app.poller = frPoller

	// Teardown in reverse registration order: window first, engine last.
	app.shutdown = shutdown.NewManager(log)
	app.shutdown.Register("engine", app.engine.Stop)
	app.shutdown.Register("invoker", app.invoker.Close)
	app.shutdown.Register("poller", app.poller.Stop)
	app.shutdown.Register("window", func() {
		fyne.Do(window.Close)
	})

	window.SetContent(app.mainGUI.GetMainContainer())
	window.SetCloseIntercept(app.shutdown.Shutdown)

	return app, nil
}

// Run starts the engine and the poller, then blocks in the shell event loop
// until the window closes.
func (app *Application) Run() error {
	if err := app.engine.Start(); err != nil {
		return fmt.Errorf("app: starting engine: %w", err)
	}
	if err := app.poller.Start(); err != nil {
		app.engine.Stop()
		return fmt.Errorf("app: starting poller: %w", err)
	}

	app.shutdown.Listen()

	app.log.Info("app", "application running", map[string]interface{}{
		"name": AppName,
	})
	app.mainGUI.UpdateStatus("Running")

	app.window.ShowAndRun()

	// The window is gone; make sure the background components follow even
	// when the close bypassed the intercept.
	app.shutdown.Shutdown()
	return nil
}

// handleGreet is the greet form callback. It returns immediately; the reply
// comes back through the invoker.
func (app *Application) handleGreet(name string) {
	app.invoker.Submit(name)
}

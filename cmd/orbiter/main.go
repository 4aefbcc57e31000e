package main

import (
	"flag"
	"log"
	"runtime"

	"orbiter/internal/app"
	"orbiter/internal/logger"
)

func main() {
	software := flag.Bool("software", false, "force the CPU rasterizer instead of the GPU-accelerated renderer")
	fpsCap := flag.Int("fps-cap", 0, "engine frame rate cap (0 uses the 60 FPS default)")
	flag.Parse()

	appLogger := logger.NewConsoleLogger(logger.LevelFromEnv())
	appLogger.Info("main", "starting", map[string]interface{}{
		"go_version": runtime.Version(),
		"software":   *software,
	})

	application, err := app.New(app.Config{
		Software:  *software,
		TargetFPS: *fpsCap,
	}, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}

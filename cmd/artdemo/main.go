// Command artdemo renders a YAML scene through a SurfaceView into a PNG.
package main

import (
	_ "embed"
	"flag"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/ggart"
	"github.com/gogpu/ggart/artview"
	"github.com/gogpu/ggart/cmd/artdemo/internal/scene"
	"github.com/gogpu/ggart/frame"
	"github.com/gogpu/ggart/surface"
)

//go:embed default.yaml
var defaultScene []byte

func main() {
	var (
		scenePath = flag.String("scene", "", "scene file (YAML); built-in scene when empty")
		output    = flag.String("output", "artdemo.png", "output file")
		verbose   = flag.Bool("v", false, "log lifecycle and frame events")
	)
	flag.Parse()

	if *verbose {
		ggart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	sc, err := loadScene(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	view := artview.New(artview.WithClearColor(sc.BackgroundColor()))
	if err := sc.Build(view); err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	host := surface.NewHost()
	host.AddCallback(view)
	// Create draws the first frame right away.
	if err := host.Create(sc.Width, sc.Height); err != nil {
		log.Fatalf("Failed to create surface: %v", err)
	}

	batch := frame.NewBatch()
	for i := 1; i < sc.Frames; i++ {
		view.CollectExtraUpdates(batch)
	}
	ggart.Logger().Debug("frames collected", "updates", len(batch.Drain()))

	img := host.ImageSurface().Snapshot()
	posted := host.ImageSurface().Frames()
	if err := host.Destroy(); err != nil {
		log.Fatalf("Failed to destroy surface: %v", err)
	}
	// Ticks after destroy are dropped without touching the surface.
	view.CollectExtraUpdates(batch)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Scene saved to %s (%dx%d, %d frames posted)\n", *output, sc.Width, sc.Height, posted)
}

func loadScene(path string) (*scene.File, error) {
	if path == "" {
		return scene.Parse(defaultScene)
	}
	return scene.Load(path)
}

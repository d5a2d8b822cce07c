package main

import (
	"log"

	"github.com/Carmen-Shannon/oxy-carousel/config"
	"github.com/Carmen-Shannon/oxy-carousel/engine"
	"github.com/Carmen-Shannon/oxy-carousel/engine/camera"
	"github.com/Carmen-Shannon/oxy-carousel/engine/carousel"
	"github.com/Carmen-Shannon/oxy-carousel/engine/loader"
	"github.com/Carmen-Shannon/oxy-carousel/engine/renderer"
	"github.com/Carmen-Shannon/oxy-carousel/engine/window"
)

func main() {
	// ── Config ──────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}
	background, err := cfg.Background()
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}

	// ── Assets ──────────────────────────────────────────────────────────
	ld := loader.NewLoader(loader.WithWorkers(cfg.GetWorkers()))
	entries, err := ld.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}
	items, err := ld.LoadItems(entries)
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}

	// ── Window ──────────────────────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
		window.WithMinSize(cfg.Window.MinWidth, cfg.Window.MinHeight),
	)

	// ── Camera ──────────────────────────────────────────────────────────
	// The engine swaps in the mobile profile on its first resize if the window is narrow.
	cam := camera.NewCamera(
		camera.WithProfile(cfg.Camera.Desktop),
		camera.WithNear(cfg.Camera.Near),
		camera.WithFar(cfg.Camera.Far),
		camera.WithAspect(float32(win.Width())/float32(win.Height())),
	)

	// ── Renderer ────────────────────────────────────────────────────────
	// Items draw as their model bounds until a mesh pipeline takes over the hook.
	boxes := renderer.NewDebugBoxes(func(ref string) (lo, hi [3]float32, ok bool) {
		info, found := ld.Get(ref)
		if !found || info.Bounds.Empty() {
			return lo, hi, false
		}
		return info.Bounds.Min, info.Bounds.Max, true
	})
	r, err := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithBackground(background),
		renderer.WithPresentMode(renderer.PresentModeFor(cfg.Renderer.VSync)),
		renderer.WithDrawHook(boxes.Draw),
		renderer.WithHookRelease(boxes.Release),
	)
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}

	// ── Carousel ────────────────────────────────────────────────────────
	car, err := carousel.NewCarousel(
		carousel.WithItems(items...),
		carousel.WithTuning(cfg.Carousel),
		carousel.WithSelectionListener(func(index int, meta carousel.Metadata) {
			log.Printf("[Carousel] %d %s | %s | %s", index, meta.DisplayLabel(), meta.DisplayRole(), meta.DisplayDescription())
		}),
	)
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}

	// ── Engine ──────────────────────────────────────────────────────────
	eng, err := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithCamera(cam),
		engine.WithCarousel(car),
		engine.WithCameraProfiles(cfg.Camera.Desktop, cfg.Camera.Mobile),
		engine.WithProfiling(cfg.Profiling),
	)
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}

	eng.Run()
}

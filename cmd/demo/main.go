package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/screenkit/internal/application/game"
	"github.com/younwookim/screenkit/internal/application/input"
	"github.com/younwookim/screenkit/internal/application/manager"
	"github.com/younwookim/screenkit/internal/application/screen"
	"github.com/younwookim/screenkit/internal/application/screen/menu"
	"github.com/younwookim/screenkit/internal/application/screen/play"
	"github.com/younwookim/screenkit/internal/application/screen/sandbox"
	"github.com/younwookim/screenkit/internal/application/transition"
	"github.com/younwookim/screenkit/internal/domain/camera"
	"github.com/younwookim/screenkit/internal/infrastructure/assets"
	"github.com/younwookim/screenkit/internal/infrastructure/audio"
	"github.com/younwookim/screenkit/internal/infrastructure/graphics"
	"github.com/younwookim/screenkit/internal/infrastructure/typeset"
)

const fontSize = 18

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Load app.json from this directory instead of the embedded one")
	lang := flag.String("lang", "en", "Menu language (e.g., -lang ko)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay input from a recording")
	shotDir := flag.String("screenshots", ".", "Directory F12 screenshots are written to")
	flag.Parse()

	loader, cfg, err := loadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	catalog := loadCatalog(*lang)

	worldW, worldH := cfg.Display.WorldWidth, cfg.Display.WorldHeight
	windowW := int(float64(worldW) * cfg.Display.WindowScale)
	windowH := int(float64(worldH) * cfg.Display.WindowScale)

	backend := graphics.NewEbitenBackend(windowW, windowH)
	cam := camera.NewOrthographic(float64(worldW), float64(worldH))
	vp := newViewport(cfg.Camera.Viewport, worldW, worldH, cam)
	mgr := manager.New(backend, cam, vp, worldW, worldH)

	registry := assets.NewRegistry(loader.FS())
	if err := loadAssets(registry, cfg); err != nil {
		log.Fatalf("Failed to load assets: %v", err)
	}
	defer registry.Dispose()

	actx := audio.Context(cfg.Audio.SampleRate)
	sounds := audio.NewSounds(actx, loader.FS())
	defer sounds.Close()
	loadSounds(sounds, cfg)
	music := audio.NewMusic(actx, loader.FS())
	defer music.Close()
	loadMusic(music, cfg)

	fontSource, err := typeset.DefaultSource()
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	face := typeset.NewFace(fontSource, fontSize)

	motion, err := transition.ParseMotion(cfg.Transitions.SlideMotion)
	if err != nil {
		log.Fatalf("Failed to parse slide motion: %v", err)
	}

	var newMenu, newPlay, newSandbox screen.Factory
	newMenu = func() screen.Screen {
		return menu.New(menu.Options{
			Switcher:    mgr,
			Viewport:    vp,
			Face:        face,
			Translator:  catalog,
			Sounds:      sounds,
			Play:        newPlay,
			Sandbox:     newSandbox,
			WorldWidth:  worldW,
			WorldHeight: worldH,
			Motion:      motion,
			SlideLerp:   cfg.Transitions.SlideLerp,
			FadeSpeed:   cfg.Transitions.FadeSpeed,
		})
	}
	newPlay = func() screen.Screen {
		return play.New(play.Options{
			Switcher:    mgr,
			Viewport:    vp,
			Camera:      cam,
			Regions:     registry,
			Back:        newMenu,
			WorldWidth:  worldW,
			WorldHeight: worldH,
			FollowLerp:  cfg.Camera.FollowLerp,
			FadeSpeed:   cfg.Transitions.FadeSpeed,
		})
	}
	newSandbox = func() screen.Screen {
		return sandbox.New(sandbox.Options{
			Switcher:    mgr,
			Viewport:    vp,
			Back:        newMenu,
			Sounds:      sounds,
			Physics:     physicsConfig(cfg.Physics),
			WorldWidth:  worldW,
			WorldHeight: worldH,
			FadeSpeed:   cfg.Transitions.FadeSpeed,
		})
	}
	mgr.SwitchTo(newMenu())

	// Input: live, recorded, or replayed
	var source input.Source = input.NewEbitenSource()
	var recorder *input.Recorder
	switch {
	case *replayFlag != "":
		rec, err := input.LoadRecording(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		source = input.NewReplayer(*rec)
		log.Printf("Replaying: %s (%d frames)", *replayFlag, len(rec.Frames))
	case *recordFlag != "":
		recorder = input.NewRecorder("demo")
		source = input.Tee(source, recorder)
		log.Printf("Recording enabled: %s", *recordFlag)
	}

	opts := game.Options{
		Clear:         clearColor(cfg.Display.ClearColor),
		Source:        source,
		Screenshot:    screenshotFiles(*shotDir),
		ScreenshotKey: ebiten.KeyF12,
	}
	if cfg.Profiler.Enabled {
		opts.Profile = os.Stdout
		opts.ReportEvery = cfg.Profiler.ReportEvery
	}
	g := game.New(mgr, backend, opts)
	g.SetDT(1.0 / float64(cfg.Display.TPS))

	// Set up ebiten
	ebiten.SetWindowSize(windowW, windowH)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Display.TPS)

	// Run game
	runErr := ebiten.RunGame(g)
	g.Close()

	if recorder != nil {
		recorder.Stop()
		if err := recorder.Save(*recordFlag); err != nil {
			log.Printf("Failed to save recording: %v", err)
		} else {
			log.Printf("Recording saved: %s (%d frames)", *recordFlag, recorder.FrameCount())
		}
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}

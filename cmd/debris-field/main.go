package main

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/debris-field/audio"
	"github.com/lixenwraith/debris-field/config"
	"github.com/lixenwraith/debris-field/core"
	"github.com/lixenwraith/debris-field/engine"
	"github.com/lixenwraith/debris-field/game"
	"github.com/lixenwraith/debris-field/input"
	"github.com/lixenwraith/debris-field/render"
	"github.com/lixenwraith/debris-field/status"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "debris-field: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.HideCursor()
	// Crash reports must restore the terminal before printing
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	reg := status.NewRegistry()

	var player audio.Player = audio.NopPlayer{}
	if cfg.AudioEnabled {
		sm := audio.NewSoundManager(cfg.Volume)
		if err := sm.Initialize(); err != nil {
			log.Printf("audio: %v (continuing without audio)", err)
		} else {
			defer sm.Cleanup()
			player = sm
		}
	}

	controller := input.NewController(input.DefaultKeyTable(), cfg.HoldWindow, nil)
	g := game.New(game.Options{
		Width:    cfg.FieldWidth,
		Height:   cfg.FieldHeight,
		Seed:     cfg.Seed,
		Player:   player,
		Input:    controller,
		Registry: reg,
	})
	term := render.NewTerminal(screen, cfg.FieldWidth, cfg.FieldHeight, reg)
	if cfg.Debug {
		term.ToggleDebug()
	}
	g.InitializeEntities()

	// Intents cross from the event goroutine to the frame goroutine, which owns the game
	intents := make(chan input.Intent, 16)
	var resized atomic.Bool
	frameMs := reg.Floats.Get("frame.ms")

	scheduler := engine.NewClockScheduler(cfg.FrameInterval(), func() {
		start := time.Now()
		for drained := false; !drained; {
			select {
			case intent := <-intents:
				apply(intent, g, term, controller)
			default:
				drained = true
			}
		}
		if resized.Swap(false) {
			screen.Sync()
		}

		term.Begin()
		g.Frame(term)
		term.End()
		frameMs.Smooth(float64(time.Since(start).Microseconds())/1000, 0.1)
	})
	scheduler.Start()
	defer scheduler.Stop()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			resized.Store(true)
		case *tcell.EventKey:
			switch intent := controller.HandleEvent(ev); intent {
			case input.IntentQuit:
				log.Printf("quit requested")
				return
			case input.IntentNone:
			default:
				select {
				case intents <- intent:
				default:
					log.Printf("input: dropped %s, queue full", intent)
				}
			}
		}
	}
}

// apply executes a session intent on the frame goroutine
// Keys held across a pause or a new round are dropped
func apply(intent input.Intent, g *game.Game, term *render.Terminal, controller *input.Controller) {
	switch intent {
	case input.IntentPause:
		controller.Release()
		term.SetPaused(g.TogglePause())
	case input.IntentRestart:
		controller.Release()
		g.Restart()
		term.SetPaused(false)
	case input.IntentDebug:
		term.ToggleDebug()
	}
}

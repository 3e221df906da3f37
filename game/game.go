package game

import (
	"log"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/debris-field/audio"
	"github.com/lixenwraith/debris-field/constant"
	"github.com/lixenwraith/debris-field/engine"
	"github.com/lixenwraith/debris-field/input"
	"github.com/lixenwraith/debris-field/physics"
	"github.com/lixenwraith/debris-field/status"
)

// Options configures a Game; zero fields take defaults
type Options struct {
	Width    float64
	Height   float64
	Seed     uint64 // 0 = time based
	Clock    engine.TimeProvider
	Player   audio.Player
	Input    input.Source
	Registry *status.Registry
	Physics  *physics.Engine
}

// Game owns one session: the clock, the world, scores and the round lifecycle
// All methods must be called from the tick goroutine
type Game struct {
	width  float64
	height float64

	clock  *engine.PausableClock
	world  *engine.World
	timers *engine.Timers
	rng    *rand.Rand

	player audio.Player
	source input.Source
	input  input.State

	now     time.Duration
	restart engine.TimerHandle

	Score       int
	HiScore     int
	HiScoreName string

	statRounds *atomic.Int64
	statPaused *atomic.Bool
}

// New creates a session; call InitializeEntities to start the first round
func New(opts Options) *Game {
	if opts.Width <= 0 {
		opts.Width = constant.FieldWidth
	}
	if opts.Height <= 0 {
		opts.Height = constant.FieldHeight
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	if opts.Player == nil {
		opts.Player = audio.NopPlayer{}
	}
	if opts.Input == nil {
		opts.Input = &input.Static{}
	}
	if opts.Registry == nil {
		opts.Registry = status.NewRegistry()
	}

	clock := engine.NewPausableClock(opts.Clock)
	return &Game{
		width:       opts.Width,
		height:      opts.Height,
		clock:       clock,
		world:       engine.NewWorld(opts.Physics, opts.Registry),
		timers:      engine.NewTimers(),
		rng:         rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
		player:      opts.Player,
		source:      opts.Input,
		now:         clock.Now(),
		HiScoreName: constant.HudNamePlaceholder,
		statRounds:  opts.Registry.Ints.Get("game.rounds"),
		statPaused:  opts.Registry.Bools.Get("game.paused"),
	}
}

// InitializeEntities starts a fresh round: empties the world, resumes the clock
// and adds the HUD, the ship and the spawner in that order
func (g *Game) InitializeEntities() {
	g.clock.Resume()
	g.statPaused.Store(false)
	g.now = g.clock.Now()
	// Timers belong to the round they were scheduled in
	g.timers.Clear()
	g.restart = 0

	g.world.Reset(g.now)
	g.world.Add(NewHud(g))
	g.world.Add(NewShip(g))
	g.world.Add(NewSpawner(g))

	n := g.statRounds.Add(1)
	log.Printf("game: round %d started at %v", n, g.now)
}

// Restart abandons the current round; a pending automatic restart is cancelled
func (g *Game) Restart() {
	if g.restart != 0 && g.timers.Pending(g.restart) {
		log.Printf("game: manual restart cancels scheduled restart")
	}
	g.InitializeEntities()
}

// TogglePause flips the pause state and returns true if now paused
func (g *Game) TogglePause() bool {
	paused := g.clock.Toggle()
	g.statPaused.Store(paused)
	log.Printf("game: paused=%t", paused)
	return paused
}

// Paused reports whether game time is frozen
func (g *Game) Paused() bool {
	return g.clock.IsPaused()
}

// Frame runs one tick and draws it onto c
// While paused the world is drawn without advancing
func (g *Game) Frame(c engine.Canvas) {
	if g.clock.IsPaused() {
		g.world.Render(c, g.now)
		return
	}
	g.now = g.clock.Now()
	g.timers.Run(g.now)
	g.input = g.source.Poll()
	g.world.Tick(g.now, c)
}

// Now returns the game time of the current tick
func (g *Game) Now() time.Duration { return g.now }

// World exposes the entity collection
func (g *Game) World() *engine.World { return g.world }

// Input returns the snapshot polled for the current tick
func (g *Game) Input() input.State { return g.input }

// Size returns the logical field size
func (g *Game) Size() (w, h float64) { return g.width, g.height }

// RestartPending reports whether an automatic restart is scheduled
func (g *Game) RestartPending() bool {
	return g.restart != 0 && g.timers.Pending(g.restart)
}

// spawn adds e to the world; during a tick it is drawn now and updated next tick
func (g *Game) spawn(e engine.Entity) {
	g.world.Add(e)
}

// ship returns the live ship, if any
func (g *Game) ship() *Ship {
	s, _ := g.world.Find(engine.KindShip).(*Ship)
	if s == nil || s.Finished() {
		return nil
	}
	return s
}

// scheduleRestart queues the next round after the restart delay
func (g *Game) scheduleRestart(now time.Duration) {
	g.timers.Cancel(g.restart)
	g.restart = g.timers.After(now, constant.RestartDelay, func() {
		g.restart = 0
		g.InitializeEntities()
	})
}

// addScore credits points for destroying other
func (g *Game) addScore(other engine.Entity) {
	switch o := other.(type) {
	case *Ufo:
		g.Score += constant.ScoreUfo
	case *Debris:
		if o.Magnetic() {
			g.Score += constant.ScoreMagneticDebris
		} else {
			g.Score += constant.ScoreDebris
		}
	}
}

// play forwards a cue to the audio player; player failures never reach the simulation
func (g *Game) play(c audio.Cue) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("audio: cue %s panicked: %v", c, r)
		}
	}()
	g.player.Play(c)
}

// color picks a random palette entry
func (g *Game) color() engine.Color {
	return engine.DebrisPalette[g.rng.IntN(len(engine.DebrisPalette))]
}

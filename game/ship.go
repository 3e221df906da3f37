package game

import (
	"log"
	"math"
	"time"

	"github.com/lixenwraith/debris-field/audio"
	"github.com/lixenwraith/debris-field/constant"
	"github.com/lixenwraith/debris-field/engine"
	"github.com/lixenwraith/debris-field/engine/fsm"
	"github.com/lixenwraith/debris-field/physics"
	"github.com/lixenwraith/debris-field/vmath"
)

// ShipState is the shield and weapon cycle of the ship
type ShipState uint8

const (
	ShipReady ShipState = iota
	ShipCharging
	ShipDepleted
	ShipExploding
)

var shipStateNames = [...]string{
	ShipReady:     "Ready",
	ShipCharging:  "Charging",
	ShipDepleted:  "Depleted",
	ShipExploding: "Exploding",
}

func (s ShipState) String() string {
	if int(s) < len(shipStateNames) {
		return shipStateNames[s]
	}
	return "Unknown"
}

// Ship events
const (
	evFire fsm.Event = iota + 1
	evHit
)

// Ship is the player: it fires bullet volleys, absorbs one hit with its shield
// and explodes when hit while the shield is down
type Ship struct {
	engine.EntityBase
	g   *Game
	fsm *fsm.Machine[ShipState, *Ship]

	bulletsRemaining int
	charge           float64
	fireHeld         bool
	gunAngle         float64
	gunPort          vmath.Vec2 // bullet spawn offset from the ship centre

	lastUpdated time.Duration
	lastFired   time.Duration
	lastMoveCue time.Duration
	windowFrame int
	windowAt    time.Duration
	dimmed      int
	dimmedAt    time.Duration
	blast       *Explosion
}

// NewShip places a ready ship in the middle of the field
func NewShip(g *Game) *Ship {
	now := g.now
	w, h := g.Size()
	s := &Ship{
		EntityBase: engine.NewEntityBase(engine.KindShip, &physics.Body{
			Mass:       constant.ShipMass,
			Position:   vmath.V(w/2, h/2),
			Attraction: physics.AttractNone(),
			Shape:      shieldShape(false),
		}),
		g:           g,
		fsm:         newShipMachine(),
		lastUpdated: now,
		lastFired:   now,
		lastMoveCue: now,
		windowAt:    now,
		dimmedAt:    now,
	}
	s.fsm.Init(s, now)
	return s
}

// newShipMachine wires the shield cycle; the Exploding timeout is handled in Update
func newShipMachine() *fsm.Machine[ShipState, *Ship] {
	m := fsm.NewMachine[ShipState, *Ship](ShipReady)

	m.OnEnter(ShipReady, func(s *Ship, now time.Duration) { s.charge = constant.ShipFullCharge })
	m.OnEnter(ShipExploding, func(s *Ship, now time.Duration) {
		s.Body.Mass = 0
		log.Printf("ship: shield down, exploding at %v", now)
	})

	fire := func(s *Ship, now time.Duration) { s.deplete(constant.ShipMaxBullets) }
	m.AddTransition(ShipReady, fsm.Transition[ShipState, *Ship]{Target: ShipDepleted, Event: evFire, Action: fire})
	m.AddTransition(ShipCharging, fsm.Transition[ShipState, *Ship]{Target: ShipDepleted, Event: evFire, Action: fire})

	m.AddTransition(ShipDepleted, fsm.Transition[ShipState, *Ship]{
		Target: ShipCharging,
		Guard: func(s *Ship, elapsed time.Duration) bool {
			return !s.fireHeld && elapsed >= constant.ShipDepletionDuration
		},
	})
	m.AddTransition(ShipCharging, fsm.Transition[ShipState, *Ship]{
		Target: ShipReady,
		Guard: func(s *Ship, elapsed time.Duration) bool {
			return elapsed >= constant.ShipChargingDuration
		},
	})

	// A hit on a ready shield leaves no volley
	m.AddTransition(ShipReady, fsm.Transition[ShipState, *Ship]{
		Target: ShipDepleted,
		Event:  evHit,
		Action: func(s *Ship, now time.Duration) { s.deplete(0) },
	})
	m.AddTransition(ShipDepleted, fsm.Transition[ShipState, *Ship]{Target: ShipExploding, Event: evHit})
	m.AddTransition(ShipCharging, fsm.Transition[ShipState, *Ship]{Target: ShipExploding, Event: evHit})

	return m
}

// State returns the active shield state
func (s *Ship) State() ShipState { return s.fsm.State() }

// BulletsRemaining returns the bullets left in the current volley
func (s *Ship) BulletsRemaining() int { return s.bulletsRemaining }

// Charge returns the shield charge in percent
func (s *Ship) Charge() float64 { return s.charge }

func (s *Ship) deplete(bullets int) {
	s.bulletsRemaining = bullets
	s.charge = 0
}

func (s *Ship) Update(now time.Duration) {
	in := s.g.Input()
	elapsed := now - s.lastUpdated
	moving := !in.Direction.IsZero()

	if moving && now-s.lastMoveCue > constant.ShipMoveCueInterval {
		s.g.play(audio.CueMove)
		s.lastMoveCue = now
	}
	if moving && elapsed > 0 {
		w, h := s.g.Size()
		dist := constant.ShipSpeed * constant.MoveScale * elapsed.Seconds()
		s.Body.Position = vmath.Move(s.Body.Position, in.Direction, dist)
		physics.ClampToBounds(s.Body, w, h)
		s.gunAngle = math.Mod(s.gunAngle+constant.ShipGunRotationSpeed*elapsed.Seconds(), 360)
	}
	s.gunPort = gunPort(s.gunAngle)

	if s.bulletsRemaining > 0 && now-s.lastFired > constant.ShipBulletInterval {
		s.bulletsRemaining--
		s.lastFired = now
		s.g.play(audio.CueLaser)
		s.g.spawn(NewBullet(s.g, s.Body.Position.Add(s.gunPort), s.gunPort))
	}

	if now-s.windowAt > constant.ShipWindowInterval {
		s.windowAt = now
		s.windowFrame = (s.windowFrame + 1) % constant.ShipWindowFrames
	}

	s.fireHeld = in.Fire
	if !in.Fire || !s.fsm.Handle(s, evFire, now) {
		if s.fsm.Is(ShipCharging) {
			s.charge = min(float64(s.fsm.Elapsed(now))/float64(constant.ShipChargingDuration)*constant.ShipFullCharge, constant.ShipFullCharge)
		}
		s.fsm.Update(s, now)
	}

	if s.fsm.Is(ShipExploding) {
		s.explode(now)
	}

	if now-s.dimmedAt > constant.ShipDimmedInterval {
		s.dimmedAt = now
		s.dimmed--
		if s.dimmed < 0 {
			s.dimmed = constant.ShipShieldElements
		}
	}

	if !s.fsm.Is(ShipExploding) && !s.Finished() {
		s.g.react(s, now)
	}

	s.Body.Shape = shieldShape(s.fsm.Is(ShipDepleted, ShipCharging))
	s.lastUpdated = now
}

// explode keeps a looping explosion on the ship and ends the ship after the exploding period
func (s *Ship) explode(now time.Duration) {
	if s.Finished() {
		return
	}
	if s.blast == nil || s.blast.Finished() {
		s.blast = NewShipExplosion(s.g, s.Body.Position)
		s.g.spawn(s.blast)
	}
	s.blast.position = s.Body.Position

	if s.fsm.Elapsed(now) >= constant.ShipExplodingDuration {
		s.blast.duration = constant.ShipFinalBlastDuration
		s.Finish()
		g := s.g
		if g.Score >= g.HiScore {
			g.HiScore = g.Score
			g.HiScoreName = constant.HudNamePlaceholder
		}
		g.scheduleRestart(now)
		log.Printf("ship: destroyed, score=%d hiscore=%d", g.Score, g.HiScore)
	}
}

// struck handles a debris, UFO or laser touching the shield
func (s *Ship) struck(other engine.Entity, now time.Duration) {
	s.g.addScore(other)
	other.Base().Finish()
	s.g.spawn(NewBlast(s.g, other.Base().Body.Position))
	s.fsm.Handle(s, evHit, now)
}

// gunPort returns the offset of the gun element on the shield ring
func gunPort(gunAngle float64) vmath.Vec2 {
	p := vmath.Rotate(vmath.Vec2{}, vmath.V(0, constant.ShipShieldDiameter), gunAngle)
	p = vmath.Rotate(vmath.Vec2{}, p, 360.0/constant.ShipShieldElements)
	return vmath.V(p.X-2.5, p.Y/constant.ShipShieldEllipseFactor)
}

// shieldShape is half size while the shield is down
func shieldShape(down bool) physics.Shape {
	d := constant.ShipShieldDiameter
	if down {
		d /= 2
	}
	return physics.Ellipse{H: d, V: d / constant.ShipShieldEllipseFactor}
}

func (s *Ship) Render(c engine.Canvas, now time.Duration) {
	color := engine.ColorRed
	if s.fsm.Is(ShipExploding) {
		color = engine.ColorWhite
	}
	c.Draw(engine.Visual{
		Kind:     engine.KindShip,
		Position: s.Body.Position,
		Shape:    s.Body.Shape,
		Color:    color,
		Angle:    s.gunAngle,
		State:    s.fsm.State().String(),
		Charge:   s.charge,
		Ammo:     s.bulletsRemaining,
		Frame:    s.windowFrame,
		Dimmed:   s.dimmed,
	})
}

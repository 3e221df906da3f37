package game

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/debris-field/audio"
	"github.com/lixenwraith/debris-field/engine"
	"github.com/lixenwraith/debris-field/input"
	"github.com/lixenwraith/debris-field/physics"
	"github.com/lixenwraith/debris-field/vmath"
)

func TestDebrisMerge(t *testing.T) {
	g, rec := newTestGame()
	a := NewDebris(g, vmath.V(100, 100), vmath.V(2, 0), engine.ColorRed)
	b := NewDebris(g, vmath.V(105, 100), vmath.V(0, 2), engine.ColorBlue)
	g.World().Add(a)
	g.World().Add(b)

	tick(g, 0, &frameRecorder{})

	if a.Finished() || !b.Finished() {
		t.Fatalf("finished: a=%t b=%t, want only b", a.Finished(), b.Finished())
	}
	if !a.Magnetic() {
		t.Error("survivor should be magnetic")
	}
	if a.Body.Velocity != vmath.V(1, 1) {
		t.Errorf("velocity = %v, want averaged (1,1)", a.Body.Velocity)
	}
	if !a.Body.Attraction.Matches(engine.KindShip) || a.Body.Attraction.Matches(engine.KindDebris) {
		t.Error("magnetic debris must be pulled by the ship only")
	}
	if rec.Count(audio.CueCollision) != 1 || rec.Count(audio.CueExplosion) != 0 {
		t.Errorf("cues = %v, want one collision", rec.Cues)
	}
	if countKind(g.World(), engine.KindExplosion) != 1 || countKind(g.World(), engine.KindBullet) != 0 {
		t.Error("impact explosion must not spray bullets")
	}
}

func TestDebrisShotDown(t *testing.T) {
	g, rec := newTestGame()
	d := NewDebris(g, vmath.V(200, 200), vmath.V(1, 0), engine.ColorRed)
	b := NewBullet(g, vmath.V(204, 200), vmath.V(1, 0))
	g.World().Add(d)
	g.World().Add(b)

	tick(g, 0, &frameRecorder{})
	if !d.Finished() || !b.Finished() {
		t.Fatal("debris and bullet should both finish")
	}
	if g.Score != 1 {
		t.Errorf("score = %d, want 1", g.Score)
	}
	if rec.Count(audio.CueExplosion) != 1 {
		t.Error("missing explosion cue")
	}
}

func TestBulletHitsOnlyOnce(t *testing.T) {
	g, _ := newTestGame()
	d1 := NewDebris(g, vmath.V(200, 200), vmath.V(1, 0), engine.ColorRed)
	u := NewUfo(g, vmath.V(200, 222), vmath.V(1, 1), engine.ColorRed)
	b := NewBullet(g, vmath.V(200, 209), vmath.V(1, 0))
	g.World().Add(d1)
	g.World().Add(u)
	g.World().Add(b)

	tick(g, 0, &frameRecorder{})
	if g.Score != 1 {
		t.Errorf("score = %d, want 1 (bullet consumed by first target)", g.Score)
	}
	if u.Finished() {
		t.Error("second target must survive a spent bullet")
	}
}

func TestDebrisSpinAndEscape(t *testing.T) {
	g, _ := newTestGame()
	d := NewDebris(g, vmath.V(-50, 100), vmath.V(-1, 0), engine.ColorRed)
	d.Update(350 * ms)
	if got := d.angle; math.Abs(got+180) > 1e-6 {
		t.Errorf("angle after half a spin period = %v, want -180", got)
	}
	if !d.Finished() {
		t.Error("debris beyond the margin moving outward should finish")
	}

	inbound := NewDebris(g, vmath.V(-50, 100), vmath.V(1, 0), engine.ColorRed)
	inbound.Update(10 * ms)
	if inbound.Finished() {
		t.Error("inbound debris outside the field must survive")
	}
}

func TestUfoRammedByDebris(t *testing.T) {
	g, rec := newTestGame()
	u := NewUfo(g, vmath.V(300, 300), vmath.V(-1, 1), engine.ColorCyan)
	d := NewDebris(g, vmath.V(305, 300), vmath.V(1, 0), engine.ColorRed)
	g.World().Add(u)
	g.World().Add(d)

	tick(g, 0, &frameRecorder{})
	if !u.Finished() || d.Finished() {
		t.Errorf("finished: ufo=%t debris=%t", u.Finished(), d.Finished())
	}
	if g.Score != 0 {
		t.Errorf("score = %d, want 0", g.Score)
	}
	if rec.Count(audio.CueCollision) != 1 {
		t.Error("missing collision cue")
	}
}

func TestUfoShotDown(t *testing.T) {
	g, _ := newTestGame()
	u := NewUfo(g, vmath.V(300, 300), vmath.V(1, 1), engine.ColorCyan)
	g.World().Add(u)
	g.World().Add(NewBullet(g, vmath.V(300, 300), vmath.V(0, 1)))
	tick(g, 0, &frameRecorder{})
	if !u.Finished() || g.Score != 10 {
		t.Errorf("ufo finished=%t score=%d", u.Finished(), g.Score)
	}
}

func TestUfoVelocity(t *testing.T) {
	g, _ := newTestGame()
	u := NewUfo(g, vmath.V(0, 0), vmath.V(-0.3, 0.01), engine.ColorCyan)
	if u.Body.Velocity != vmath.V(-12, 12) {
		t.Errorf("velocity = %v, want (-12,12)", u.Body.Velocity)
	}
}

func TestUfoAim(t *testing.T) {
	tests := []struct {
		name string
		ufo  vmath.Vec2
		vel  vmath.Vec2
		ship vmath.Vec2
		ok   bool
		dir  vmath.Vec2
	}{
		{"ship on path", vmath.V(100, 100), vmath.V(12, 12), vmath.V(200, 200), true, vmath.V(1, 1)},
		{"crossing near ufo", vmath.V(100, 100), vmath.V(12, 12), vmath.V(80, 180), true, vmath.V(-1, 1)},
		{"far from both", vmath.V(100, 100), vmath.V(12, 12), vmath.V(300, 100), false, vmath.Vec2{}},
		{"stationary", vmath.V(100, 100), vmath.V(0, 0), vmath.V(100, 110), false, vmath.Vec2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, ok := aim(&physics.Body{Position: tt.ufo, Velocity: tt.vel}, &physics.Body{Position: tt.ship})
			if ok != tt.ok || dir != tt.dir {
				t.Errorf("aim = %v %t, want %v %t", dir, ok, tt.dir, tt.ok)
			}
		})
	}
}

func TestUfoFiresLaser(t *testing.T) {
	g, rec := newTestGame()
	ship := NewShip(g)
	g.World().Add(ship)
	// ship at (400,300), ufo heading straight at it from the upper right
	u := NewUfo(g, vmath.V(500, 200), vmath.V(-1, 1), engine.ColorCyan)
	g.World().Add(u)

	g.now = 250 * ms
	u.Update(g.now)
	muzzle := u.Body.Position.X - 25
	if countKind(g.World(), engine.KindLaser) != 1 {
		t.Fatal("ufo should fire at the ship")
	}
	var laser *Laser
	for _, e := range g.World().Entities() {
		if l, ok := e.(*Laser); ok {
			laser = l
		}
	}
	if laser.Body.Position.X != muzzle || laser.Body.Position.Y != 200 {
		t.Errorf("laser starts at %v, want muzzle left of the ufo", laser.Body.Position)
	}
	if laser.Body.Velocity != vmath.V(-36, 36) {
		t.Errorf("laser velocity = %v", laser.Body.Velocity)
	}
	if rec.Count(audio.CueLaser) != 1 || rec.Count(audio.CueUfo) != 1 {
		t.Errorf("cues = %v", rec.Cues)
	}

	u.Update(300 * ms)
	if countKind(g.World(), engine.KindLaser) != 1 {
		t.Error("ufo fired again inside its interval")
	}
}

func TestWobbleIsBounded(t *testing.T) {
	for now := time.Duration(0); now < 10*time.Second; now += 7 * ms {
		if w := wobble(now); math.Abs(w) > 0.5 {
			t.Fatalf("wobble(%v) = %v", now, w)
		}
	}
}

func TestLaserReactions(t *testing.T) {
	t.Run("escapes", func(t *testing.T) {
		g, _ := newTestGame()
		l := NewLaser(g, vmath.V(900, 300), vmath.V(1, -1))
		l.Update(0)
		if !l.Finished() {
			t.Error("laser outside the field moving out should finish")
		}
	})
	t.Run("debris", func(t *testing.T) {
		g, rec := newTestGame()
		l := NewLaser(g, vmath.V(300, 300), vmath.V(1, 1))
		d := NewDebris(g, vmath.V(300, 300), vmath.V(1, 0), engine.ColorRed)
		g.World().Add(l)
		g.World().Add(d)
		tick(g, 0, &frameRecorder{})
		if !l.Finished() || d.Finished() || rec.Count(audio.CueCollision) != 1 {
			t.Errorf("laser=%t debris=%t cues=%v", l.Finished(), d.Finished(), rec.Cues)
		}
	})
	t.Run("bullet", func(t *testing.T) {
		g, rec := newTestGame()
		l := NewLaser(g, vmath.V(300, 300), vmath.V(1, 1))
		b := NewBullet(g, vmath.V(300, 300), vmath.V(1, 0))
		g.World().Add(l)
		g.World().Add(b)
		tick(g, 0, &frameRecorder{})
		if !l.Finished() || !b.Finished() || rec.Count(audio.CueExplosion) != 1 || g.Score != 0 {
			t.Errorf("laser=%t bullet=%t cues=%v score=%d", l.Finished(), b.Finished(), rec.Cues, g.Score)
		}
	})
}

func TestBulletRange(t *testing.T) {
	g, _ := newTestGame()
	b := NewBullet(g, vmath.V(100, 100), vmath.V(3, 4))
	b.Update(100 * ms)
	want := vmath.V(100+36*0.6, 100+36*0.8)
	if vmath.Dist(b.Body.Position, want) > 1e-9 {
		t.Errorf("position = %v, want %v", b.Body.Position, want)
	}
	if b.Finished() {
		t.Fatal("bullet finished inside its range")
	}
	b.Update(500 * ms)
	if !b.Finished() {
		t.Error("bullet beyond range should finish")
	}
}

func TestExplosionLifetime(t *testing.T) {
	g, rec := newTestGame()
	e := NewImpact(g, vmath.V(50, 50), engine.ColorOrange)
	if len(e.pieces) != 13 || e.duration != 110*ms || rec.Count(audio.CueCollision) != 1 {
		t.Fatalf("impact preset = %d pieces %v", len(e.pieces), e.duration)
	}
	for _, p := range e.pieces {
		if p.X < -1 || p.X > 1 || p.Y < -1 || p.Y > 1 {
			t.Fatalf("piece %v outside the unit box", p)
		}
	}

	if e.Offsets(0) != nil {
		t.Error("nothing to draw at the start instant")
	}
	off := e.Offsets(5 * ms)
	if got, want := off[0], vmath.V(e.pieces[0].X-5, e.pieces[0].Y-5); vmath.Dist(got, want) > 1e-9 {
		t.Errorf("offset = %v, want %v", got, want)
	}

	e.Update(110 * ms)
	if e.Finished() {
		t.Error("finished at exactly its duration")
	}
	e.Update(111 * ms)
	if !e.Finished() {
		t.Error("should finish after its duration")
	}
}

func TestBlastSpraysBullets(t *testing.T) {
	g, _ := newTestGame()
	NewBlast(g, vmath.V(10, 10))
	var dirs []vmath.Vec2
	for _, e := range g.World().Entities() {
		if b, ok := e.(*Bullet); ok {
			dirs = append(dirs, b.direction)
		}
	}
	if len(dirs) != 3 {
		t.Fatalf("bullets = %d, want 3", len(dirs))
	}
	if vmath.Dist(dirs[0], vmath.V(0, 1)) > 1e-9 {
		t.Errorf("first bullet heads %v, want straight down", dirs[0])
	}
}

func TestSpawner(t *testing.T) {
	g, _ := newTestGame()
	s := NewSpawner(g)

	s.Update(0)
	if g.World().Len() != 1 {
		t.Fatalf("first update spawned %d", g.World().Len())
	}
	body := g.World().Entities()[0].Base().Body
	p, v := body.Position, body.Velocity
	onBorder := p.X == -30 || p.X == 830 || p.Y == -30 || p.Y == 630
	if !onBorder || p.X < -30 || p.X > 830 || p.Y < -30 || p.Y > 630 {
		t.Errorf("spawn point %v not on the expanded border", p)
	}
	if v.X == 0 || v.Y == 0 || !v.IsFinite() {
		t.Errorf("direction %v must have two finite non-zero components", v)
	}

	if s.next < 200*ms || s.next > 400*ms {
		t.Errorf("next spawn at %v, want within [200ms,400ms]", s.next)
	}
	s.Update(s.next - time.Millisecond)
	if g.World().Len() != 1 {
		t.Error("spawned before the interval elapsed")
	}
}

func TestSpawnerAtMostOneUfo(t *testing.T) {
	g, _ := newTestGame()
	s := NewSpawner(g)
	now := time.Duration(0)
	for range 600 {
		s.Update(now)
		now += 400 * ms
	}
	if got := countKind(g.World(), engine.KindUfo); got != 1 {
		t.Errorf("live ufos = %d, want exactly 1", got)
	}
	if got := countKind(g.World(), engine.KindDebris); got != 599 {
		t.Errorf("debris = %d, want 599", got)
	}
}

func TestHudText(t *testing.T) {
	g, _ := newTestGame()
	h := NewHud(g)
	g.HiScore = 120
	g.Score = 7
	if got, want := h.Text(), "00120>?????? 00007"; got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestHudNameEntry(t *testing.T) {
	g, _ := newTestGame()
	h := NewHud(g)

	g.input = input.State{Typed: []rune("ab")}
	h.Update(0)
	if g.HiScoreName != "ab????" {
		t.Fatalf("name = %q, want ab????", g.HiScoreName)
	}
	g.input = input.State{Typed: []rune("cdefgh")}
	h.Update(0)
	if g.HiScoreName != "abcdeh" {
		t.Errorf("name = %q, want abcdeh (last slot overwritten)", g.HiScoreName)
	}

	// a new hiscore resets the entry cursor
	g.HiScoreName = "??????"
	g.input = input.State{Typed: []rune("z")}
	h.Update(0)
	if g.HiScoreName != "z?????" {
		t.Errorf("name = %q, want z?????", g.HiScoreName)
	}
}

func TestHudResumesPartialName(t *testing.T) {
	g, _ := newTestGame()
	g.HiScoreName = "ab????"
	h := NewHud(g)
	g.input = input.State{Typed: []rune("c")}
	h.Update(0)
	if g.HiScoreName != "abc???" {
		t.Errorf("name = %q, want abc???", g.HiScoreName)
	}
}

func TestHudGameOverSweep(t *testing.T) {
	g, _ := newTestGame()
	h := NewHud(g)
	var blanks []int
	for now := time.Duration(0); now <= 400*ms; now += 51 * ms {
		h.Update(now)
		blanks = append(blanks, h.blank)
	}
	want := []int{5, 5, 6, 7, 8, 9, 10, 11}
	if len(blanks) != len(want) {
		t.Fatalf("blanks = %v", blanks)
	}
	for i := range want {
		if blanks[i] != want[i] {
			t.Fatalf("blanks = %v, want %v", blanks, want)
		}
	}
	h.Update(460 * ms)
	if h.blank != 5 {
		t.Errorf("sweep should wrap to 5, got %d", h.blank)
	}

	g.World().Add(NewShip(g))
	h.Update(500 * ms)
	if h.blank != -1 {
		t.Errorf("blank = %d while a ship is alive", h.blank)
	}
}

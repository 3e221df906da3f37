package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/debris-field/physics"
	"github.com/lixenwraith/debris-field/status"
)

// World is the ordered entity collection and the per-tick lifecycle driver
//
// A tick runs, in order: physics over the current collection, Update for the
// entities present when the update phase starts, a flush of entities added
// during that phase, Render for every entity, then removal of finished ones.
// Entities spawned during update are therefore drawn in the tick they are
// born and first updated on the next one.
type World struct {
	entities []Entity
	pending  []Entity
	updating bool

	physics  *physics.Engine
	lastStep time.Duration
	bodies   []*physics.Body

	statTicks    *atomic.Int64
	statEntities *atomic.Int64
	statSpawned  *atomic.Int64
	statReaped   *atomic.Int64
}

// NewWorld creates an empty world stepping bodies with eng
func NewWorld(eng *physics.Engine, reg *status.Registry) *World {
	if eng == nil {
		eng = physics.NewEngine()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &World{
		physics:      eng,
		statTicks:    reg.Ints.Get("engine.ticks"),
		statEntities: reg.Ints.Get("engine.entities"),
		statSpawned:  reg.Ints.Get("engine.spawned"),
		statReaped:   reg.Ints.Get("engine.reaped"),
	}
}

// Add appends e; during the update phase it is queued until the phase ends
func (w *World) Add(e Entity) {
	w.statSpawned.Add(1)
	if w.updating {
		w.pending = append(w.pending, e)
		return
	}
	w.entities = append(w.entities, e)
	w.statEntities.Store(int64(len(w.entities)))
}

// Reset drops every entity and restarts the physics clock at now
func (w *World) Reset(now time.Duration) {
	clear(w.entities)
	clear(w.pending)
	w.entities = w.entities[:0]
	w.pending = w.pending[:0]
	w.lastStep = now
	w.statEntities.Store(0)
}

// Tick runs one full lifecycle step at game time now
func (w *World) Tick(now time.Duration, c Canvas) {
	w.step(now)
	w.update(now)
	w.Render(c, now)
	w.reap()
	w.statTicks.Add(1)
}

// Render draws every entity without advancing anything; used for paused frames
func (w *World) Render(c Canvas, now time.Duration) {
	for _, e := range w.entities {
		e.Render(c, now)
	}
}

// Find returns the first entity of kind, including ones queued this phase
func (w *World) Find(kind Kind) Entity {
	for _, e := range w.entities {
		if e.Kind() == kind {
			return e
		}
	}
	for _, e := range w.pending {
		if e.Kind() == kind {
			return e
		}
	}
	return nil
}

// Entities returns the live collection in order; callers must not modify it
func (w *World) Entities() []Entity {
	return w.entities
}

// Len returns the number of entities including queued ones
func (w *World) Len() int {
	return len(w.entities) + len(w.pending)
}

// step integrates bodies and hands every entity its collision set
func (w *World) step(now time.Duration) {
	dt := physics.DeltaUnits(now - w.lastStep)
	w.lastStep = now

	w.bodies = w.bodies[:0]
	for _, e := range w.entities {
		w.bodies = append(w.bodies, e.Base().Body)
	}

	sets := w.physics.Step(w.bodies, dt)
	for i, e := range w.entities {
		base := e.Base()
		base.collisions = base.collisions[:0]
		for _, j := range sets[i] {
			base.collisions = append(base.collisions, w.entities[j])
		}
	}
	clear(w.bodies)
}

func (w *World) update(now time.Duration) {
	w.updating = true
	n := len(w.entities)
	for i := 0; i < n; i++ {
		w.entities[i].Update(now)
	}
	w.updating = false

	w.entities = append(w.entities, w.pending...)
	clear(w.pending)
	w.pending = w.pending[:0]
	w.statEntities.Store(int64(len(w.entities)))
}

// reap removes finished entities, keeping survivors in order
func (w *World) reap() {
	kept := w.entities[:0]
	for _, e := range w.entities {
		if e.Base().Finished() {
			w.statReaped.Add(1)
			continue
		}
		kept = append(kept, e)
	}
	clear(w.entities[len(kept):])
	w.entities = kept
	w.statEntities.Store(int64(len(w.entities)))
}

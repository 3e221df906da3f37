package engine

import (
	"time"

	"github.com/lixenwraith/debris-field/physics"
)

// Kind identifies the entity type behind a body and drives reaction lookup
type Kind = physics.Kind

const (
	KindNone Kind = iota
	KindShip
	KindDebris
	KindUfo
	KindBullet
	KindLaser
	KindExplosion
	KindSpawner
	KindHud
)

var kindNames = [...]string{
	KindNone:      "none",
	KindShip:      "ship",
	KindDebris:    "debris",
	KindUfo:       "ufo",
	KindBullet:    "bullet",
	KindLaser:     "laser",
	KindExplosion: "explosion",
	KindSpawner:   "spawner",
	KindHud:       "hud",
}

// KindName returns a lowercase label for logs and metrics
func KindName(k Kind) string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Entity is anything the World drives through a tick
type Entity interface {
	Kind() Kind
	Base() *EntityBase
	Update(now time.Duration)
	Render(c Canvas, now time.Duration)
}

// EntityBase holds the lifecycle state every entity shares
// Embed it and construct with NewEntityBase
type EntityBase struct {
	kind       Kind
	Body       *physics.Body // nil for bodiless entities
	finished   bool
	collisions []Entity
}

// NewEntityBase tags body with kind and wraps it
func NewEntityBase(kind Kind, body *physics.Body) EntityBase {
	if body != nil {
		body.Kind = kind
	}
	return EntityBase{kind: kind, Body: body}
}

func (b *EntityBase) Kind() Kind           { return b.kind }
func (b *EntityBase) Base() *EntityBase    { return b }
func (b *EntityBase) Finished() bool       { return b.finished }
func (b *EntityBase) Collisions() []Entity { return b.collisions }

// Finish marks the entity for removal at the next reap point; irreversible
func (b *EntityBase) Finish() {
	b.finished = true
}

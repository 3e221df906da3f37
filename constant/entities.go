package constant

import "time"

// Debris
const (
	DebrisMass   = 200
	DebrisRadius = 10.0

	// Spin in degrees per second; acceleration speeds it up
	DebrisSpin          = -360 / 0.7
	DebrisMagneticSpin  = -360 / 0.4
	DebrisSpinAccelGain = 4.0
)

// UFO
const (
	UfoMass         = 200
	UfoRadius       = 10.0
	UfoSpeed        = 12.0
	UfoFireInterval = 200 * time.Millisecond
	UfoCueInterval  = 200 * time.Millisecond

	// UfoAimRange is how close the predicted crossing must be to the UFO
	UfoAimRange = 100.0

	// UfoAimTolerance is how close the predicted crossing must be to the ship
	UfoAimTolerance = 20.0

	// UfoMuzzleOffset is the horizontal distance from the UFO to a new laser
	UfoMuzzleOffset = 25.0
)

// Projectiles
const (
	BulletMass   = 200
	BulletRadius = 5.0
	BulletSpeed  = 10.0
	BulletRange  = 150.0

	LaserMass   = 200
	LaserRadius = 10.0
	LaserSpeed  = 36.0
)

// Explosions
const (
	ExplosionDuration = 150 * time.Millisecond
	ExplosionPieces   = 24
	ExplosionBullets  = 3

	// ExplosionPieceStep is the game time for a piece to travel one unit of its offset
	ExplosionPieceStep   = 5 * time.Millisecond
	ExplosionPieceOffset = 5.0

	ImpactDuration = 110 * time.Millisecond
	ImpactPieces   = 13
)

// Spawner
const (
	SpawnMinInterval    = 200 * time.Millisecond
	SpawnRandomInterval = 200 * time.Millisecond

	// SpawnBorder is how far outside the field new entities appear
	SpawnBorder = 30.0

	// A UFO appears when a SpawnUfoOdds sided die shows SpawnUfoFace
	SpawnUfoOdds = 25
	SpawnUfoFace = 6

	// SpawnDirectionScale divides the sampled inward direction
	SpawnDirectionScale = 100.0
)

// HUD
const (
	HudNameLength      = 6
	HudNamePlaceholder = "??????"
	HudSweepInterval   = 50 * time.Millisecond
	HudSweepFirst      = 5
	HudSweepLast       = 11
)

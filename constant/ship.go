package constant

import "time"

// Ship body and movement
const (
	ShipMass  = 1200
	ShipSpeed = 4

	// ShipShieldDiameter is the horizontal radius of the full shield ellipse
	ShipShieldDiameter = 32.0

	// ShipShieldEllipseFactor squashes the shield vertically
	ShipShieldEllipseFactor = 1.6
	ShipShieldElements      = 8

	// ShipGunRotationSpeed is degrees per second while the ship moves
	ShipGunRotationSpeed = -360.0
)

// Weapon and shield cycle
const (
	ShipMaxBullets        = 6
	ShipBulletInterval    = 75 * time.Millisecond
	ShipDepletionDuration = 900 * time.Millisecond
	ShipChargingDuration  = 600 * time.Millisecond
	ShipFullCharge        = 100.0
)

// Animation and audio cadence
const (
	ShipWindowFrames       = 8
	ShipWindowInterval     = 100 * time.Millisecond
	ShipDimmedInterval     = 30 * time.Millisecond
	ShipMoveCueInterval    = 200 * time.Millisecond
	ShipExplodingDuration  = 5000 * time.Millisecond
	ShipFinalBlastDuration = 400 * time.Millisecond
)

// Score awarded per destroyed kind
const (
	ScoreUfo            = 10
	ScoreMagneticDebris = 3
	ScoreDebris         = 1
)

package parameter

import "math"

// Vision: three probe circles ahead of each ant
const (
	// VisionRadius is the radius of each probe circle (m)
	VisionRadius = 0.01

	// VisionDistance is the distance from ant to each probe center (m)
	VisionDistance = 0.02

	// VisionAngle is the bearing of the side probes relative to heading (rad)
	VisionAngle = math.Pi / 4
)

// Steering
const (
	// AvoidSideAngle is added per blocked side probe, sign steers away (rad)
	AvoidSideAngle = math.Pi / 6

	// AvoidAheadAngle is the turn when only the center probe is blocked (rad)
	AvoidAheadAngle = math.Pi / 2

	// AvoidAheadMultiplier scales the side bias when ahead is also blocked
	AvoidAheadMultiplier = 4.0

	// PheromoneSteerAngle is the angular offset assigned to each side probe (rad)
	PheromoneSteerAngle = math.Pi / 6

	// WanderStdDev is the standard deviation of per-tick random turning (rad)
	WanderStdDev = math.Pi / 50
)

// Movement and trail laying
const (
	// AntSpeed is the initial speed given to scattered ants (m/s)
	AntSpeed = 0.1

	// PheromoneReleasePeriod is the time between two trail particles (s)
	PheromoneReleasePeriod = 0.05
)

package colony

import (
	"fmt"

	"github.com/lixenwraith/ant-colony/parameter"
)

// Behavior holds the steering and sensing constants shared by every ant
type Behavior struct {
	// Sensing
	VisionRadius   float64 `toml:"vision_radius"`
	VisionDistance float64 `toml:"vision_distance"`
	VisionAngle    float64 `toml:"vision_angle"`

	// Obstacle avoidance
	AvoidSideAngle       float64 `toml:"avoid_side_angle"`
	AvoidAheadAngle      float64 `toml:"avoid_ahead_angle"`
	AvoidAheadMultiplier float64 `toml:"avoid_ahead_multiplier"`

	// Trail following and noise
	PheromoneSteerAngle float64 `toml:"pheromone_steer_angle"`
	WanderStdDev        float64 `toml:"wander_stddev"`

	// Trail laying
	ReleasePeriod float64 `toml:"release_period"`

	// Speed given to ants created by ScatterAround
	Speed float64 `toml:"speed"`
}

func DefaultBehavior() Behavior {
	return Behavior{
		VisionRadius:         parameter.VisionRadius,
		VisionDistance:       parameter.VisionDistance,
		VisionAngle:          parameter.VisionAngle,
		AvoidSideAngle:       parameter.AvoidSideAngle,
		AvoidAheadAngle:      parameter.AvoidAheadAngle,
		AvoidAheadMultiplier: parameter.AvoidAheadMultiplier,
		PheromoneSteerAngle:  parameter.PheromoneSteerAngle,
		WanderStdDev:         parameter.WanderStdDev,
		ReleasePeriod:        parameter.PheromoneReleasePeriod,
		Speed:                parameter.AntSpeed,
	}
}

// Validate checks the constraints every ant update relies on
func (b Behavior) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"vision_radius", b.VisionRadius},
		{"release_period", b.ReleasePeriod},
		{"speed", b.Speed},
	}
	for _, p := range positive {
		if !(p.v > 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidBehavior, p.name, p.v)
		}
	}

	nonNegative := []struct {
		name string
		v    float64
	}{
		{"vision_distance", b.VisionDistance},
		{"wander_stddev", b.WanderStdDev},
	}
	for _, p := range nonNegative {
		if p.v < 0 {
			return fmt.Errorf("%w: %s must be non-negative, got %v", ErrInvalidBehavior, p.name, p.v)
		}
	}
	return nil
}

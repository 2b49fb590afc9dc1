package environment

import "errors"

var (
	ErrIntensityRange  = errors.New("environment: pheromone intensity out of range [0, 100]")
	ErrNegativeAmount  = errors.New("environment: amount must be non-negative")
	ErrNegativeElapsed = errors.New("environment: elapsed time must be non-negative")
	ErrNegativeCount   = errors.New("environment: count must be non-negative")
	ErrCountTooLarge   = errors.New("environment: food cluster count exceeds the limit")
	ErrClusterBlocked  = errors.New("environment: food circle intersects an obstacle")
	ErrInvalidPeriod   = errors.New("environment: evaporation period must be positive")
)

package colony

import "errors"

var (
	ErrZeroVelocity    = errors.New("colony: ant velocity can't be zero")
	ErrPolarity        = errors.New("colony: pheromone field has the wrong polarity")
	ErrIncomplete      = errors.New("colony: surroundings are missing a field")
	ErrInvalidBehavior = errors.New("colony: invalid behavior parameter")
)

package environment

import (
	"fmt"
	"iter"
	"slices"

	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/vmath"
)

// PheromoneKind is the polarity of a trail field
type PheromoneKind uint8

const (
	// ToAnthill is laid by ants searching for food and leads back to the nest
	ToAnthill PheromoneKind = iota
	// ToFood is laid by ants carrying food and leads to the food
	ToFood
)

func (k PheromoneKind) String() string {
	switch k {
	case ToAnthill:
		return "to_anthill"
	case ToFood:
		return "to_food"
	default:
		return fmt.Sprintf("PheromoneKind(%d)", uint8(k))
	}
}

// PheromoneParticle is a decaying point of trail, intensity stays in [0, 100]
type PheromoneParticle struct {
	position  vmath.Vec2
	intensity int
}

func NewPheromoneParticle(position vmath.Vec2, intensity int) (PheromoneParticle, error) {
	if intensity < 0 || intensity > parameter.PheromoneMaxIntensity {
		return PheromoneParticle{}, fmt.Errorf("%w: got %d", ErrIntensityRange, intensity)
	}
	return PheromoneParticle{position: position, intensity: intensity}, nil
}

func (p PheromoneParticle) Position() vmath.Vec2 { return p.position }
func (p PheromoneParticle) Intensity() int       { return p.intensity }

// Decrease lowers intensity by amount, flooring at 0
func (p *PheromoneParticle) Decrease(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeAmount, amount)
	}
	p.decrease(amount)
	return nil
}

func (p *PheromoneParticle) decrease(amount int) {
	p.intensity -= amount
	if p.intensity < 0 {
		p.intensity = 0
	}
}

func (p PheromoneParticle) Evaporated() bool {
	return p.intensity == 0
}

// Evaporation is the fixed-rate decay schedule of a pheromone field
type Evaporation struct {
	Period float64 `toml:"period"` // seconds between batches
	Step   int     `toml:"step"`   // intensity removed per batch
}

func DefaultEvaporation() Evaporation {
	return Evaporation{
		Period: parameter.EvaporationPeriod,
		Step:   parameter.EvaporationStep,
	}
}

func (e Evaporation) Validate() error {
	if !(e.Period > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidPeriod, e.Period)
	}
	if e.Step < 0 {
		return fmt.Errorf("evaporation step: %w: got %d", ErrNegativeAmount, e.Step)
	}
	return nil
}

// Pheromones is one trail field: a polarity tag and its decaying particles
type Pheromones struct {
	kind       PheromoneKind
	particles  []PheromoneParticle
	evap       Evaporation
	sinceBatch float64
}

// NewPheromones creates an empty field with the default evaporation schedule
func NewPheromones(kind PheromoneKind) *Pheromones {
	return &Pheromones{kind: kind, evap: DefaultEvaporation()}
}

// NewPheromonesWith creates an empty field with a custom evaporation schedule
func NewPheromonesWith(kind PheromoneKind, evap Evaporation) (*Pheromones, error) {
	if err := evap.Validate(); err != nil {
		return nil, err
	}
	return &Pheromones{kind: kind, evap: evap}, nil
}

func (p *Pheromones) Kind() PheromoneKind      { return p.kind }
func (p *Pheromones) Evaporation() Evaporation { return p.evap }
func (p *Pheromones) Len() int                 { return len(p.particles) }

// Add lays a particle of given intensity at position
func (p *Pheromones) Add(position vmath.Vec2, intensity int) error {
	particle, err := NewPheromoneParticle(position, intensity)
	if err != nil {
		return err
	}
	p.particles = append(p.particles, particle)
	return nil
}

// AddDefault lays a full-strength particle at position
func (p *Pheromones) AddDefault(position vmath.Vec2) {
	p.particles = append(p.particles, PheromoneParticle{
		position:  position,
		intensity: parameter.PheromoneDefaultIntensity,
	})
}

// AddParticle appends an already validated particle
func (p *Pheromones) AddParticle(particle PheromoneParticle) {
	p.particles = append(p.particles, particle)
}

// IntensityInCircle sums intensities of particles inside c (inclusive boundary)
func (p *Pheromones) IntensityInCircle(c vmath.Circle) int {
	sum := 0
	for _, particle := range p.particles {
		if c.Contains(particle.position) {
			sum += particle.intensity
		}
	}
	return sum
}

// Evaporate advances the decay clock by dt
// Once a full period has accumulated, one batch runs: every particle loses Step
// and evaporated ones are dropped. At most one batch runs per call.
func (p *Pheromones) Evaporate(dt float64) error {
	if dt < 0 {
		return fmt.Errorf("%w: got %v", ErrNegativeElapsed, dt)
	}

	p.sinceBatch += dt
	if p.sinceBatch < p.evap.Period {
		return nil
	}
	p.sinceBatch -= p.evap.Period

	for i := range p.particles {
		p.particles[i].decrease(p.evap.Step)
	}
	p.particles = slices.DeleteFunc(p.particles, PheromoneParticle.Evaporated)
	return nil
}

// Particles yields the live particles in laying order
func (p *Pheromones) Particles() iter.Seq[PheromoneParticle] {
	return slices.Values(p.particles)
}

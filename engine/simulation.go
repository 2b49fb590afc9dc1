package engine

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/ant-colony/colony"
	"github.com/lixenwraith/ant-colony/config"
	"github.com/lixenwraith/ant-colony/environment"
	"github.com/lixenwraith/ant-colony/persistence"
	"github.com/lixenwraith/ant-colony/status"
)

// Simulation owns one world and steps it
// Not safe for concurrent Step calls; the registry may be read from any goroutine
type Simulation struct {
	colony    *colony.Colony
	food      *environment.Food
	toAnthill *environment.Pheromones
	toFood    *environment.Pheromones
	anthill   *environment.Anthill
	obstacles *environment.Obstacles

	ticks   int64
	elapsed float64

	registry *status.Registry

	// Cached metric pointers
	statTicks     *atomic.Int64
	statTime      *status.AtomicFloat
	statAnts      *atomic.Int64
	statCarrying  *atomic.Int64
	statNest      *atomic.Int64
	statFood      *atomic.Int64
	statToAnthill *atomic.Int64
	statToFood    *atomic.Int64
}

// New builds a world from scene and scatters cfg.Simulation.Ants ants around the nest
// The scene is only read
func New(cfg *config.Config, scene *persistence.Scene) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	toAnthill, err := environment.NewPheromonesWith(environment.ToAnthill, cfg.Evaporation)
	if err != nil {
		return nil, err
	}
	toFood, err := environment.NewPheromonesWith(environment.ToFood, cfg.Evaporation)
	if err != nil {
		return nil, err
	}
	c, err := colony.New(cfg.Simulation.Seed, cfg.Behavior)
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		colony:    c,
		food:      environment.NewFood(cfg.Simulation.FoodSeed),
		toAnthill: toAnthill,
		toFood:    toFood,
		anthill:   environment.DefaultAnthill(),
		obstacles: environment.NewObstacles(),
		registry:  status.NewRegistry(),
	}
	if err := scene.Populate(s.World()); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if err := c.ScatterAround(s.anthill.Circle(), cfg.Simulation.Ants); err != nil {
		return nil, err
	}

	s.statTicks = s.registry.Ints.Get(status.SimTicks)
	s.statTime = s.registry.Floats.Get(status.SimTime)
	s.statAnts = s.registry.Ints.Get(status.AntsCount)
	s.statCarrying = s.registry.Ints.Get(status.AntsCarrying)
	s.statNest = s.registry.Ints.Get(status.NestFood)
	s.statFood = s.registry.Ints.Get(status.FoodParticles)
	s.statToAnthill = s.registry.Ints.Get(status.PheromoneToAnthill)
	s.statToFood = s.registry.Ints.Get(status.PheromoneToFood)
	s.publish()

	log.Printf("engine: world ready seed=%d obstacles=%d food=%d ants=%d",
		cfg.Simulation.Seed, s.obstacles.Len(), s.food.Len(), c.Len())
	return s, nil
}

func (s *Simulation) surroundings() colony.Surroundings {
	return colony.Surroundings{
		Food:      s.food,
		ToAnthill: s.toAnthill,
		ToFood:    s.toFood,
		Anthill:   s.anthill,
		Obstacles: s.obstacles,
	}
}

// Step runs one tick: every ant in order, then both trail fields evaporate
// A rejected dt leaves the world unchanged
func (s *Simulation) Step(dt float64) error {
	if err := s.colony.Update(s.surroundings(), dt); err != nil {
		return err
	}
	if err := s.toAnthill.Evaporate(dt); err != nil {
		return err
	}
	if err := s.toFood.Evaporate(dt); err != nil {
		return err
	}
	s.ticks++
	s.elapsed += dt
	s.publish()
	return nil
}

// Run steps ticks times, stopping early when ctx is done
func (s *Simulation) Run(ctx context.Context, ticks int, dt float64) error {
	for i := 0; i < ticks; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := s.Step(dt); err != nil {
			return fmt.Errorf("tick %d: %w", s.ticks, err)
		}
	}
	return nil
}

func (s *Simulation) publish() {
	s.statTicks.Store(s.ticks)
	s.statTime.Set(s.elapsed)
	s.statAnts.Store(int64(s.colony.Len()))
	s.statCarrying.Store(int64(s.colony.Carrying()))
	s.statNest.Store(int64(s.anthill.Food()))
	s.statFood.Store(int64(s.food.Len()))
	s.statToAnthill.Store(int64(s.toAnthill.Len()))
	s.statToFood.Store(int64(s.toFood.Len()))
}

// World exposes the persistent part of the simulation for saving
func (s *Simulation) World() persistence.World {
	return persistence.World{Obstacles: s.obstacles, Food: s.food, Anthill: s.anthill}
}

func (s *Simulation) Colony() *colony.Colony             { return s.colony }
func (s *Simulation) Food() *environment.Food            { return s.food }
func (s *Simulation) ToAnthill() *environment.Pheromones { return s.toAnthill }
func (s *Simulation) ToFood() *environment.Pheromones    { return s.toFood }
func (s *Simulation) Anthill() *environment.Anthill      { return s.anthill }
func (s *Simulation) Obstacles() *environment.Obstacles  { return s.obstacles }
func (s *Simulation) Registry() *status.Registry         { return s.registry }
func (s *Simulation) Ticks() int64                       { return s.ticks }
func (s *Simulation) Elapsed() float64                   { return s.elapsed }

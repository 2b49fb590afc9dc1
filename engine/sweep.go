package engine

import (
	"context"
	"log"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/ant-colony/config"
	"github.com/lixenwraith/ant-colony/persistence"
)

// Result summarizes one finished run
type Result struct {
	Seed      uint64
	Ticks     int64
	Delivered int // food counted in the nest
	Carrying  int // ants holding food at the end
	FoodLeft  int // particles still in the field
}

// Sweep runs one simulation per colony seed concurrently
// The map, food seed and every other parameter come from cfg and scene.
// Each run owns its random sources, so results are independent of scheduling
// and returned in seed order. The first failure cancels the remaining runs.
func Sweep(ctx context.Context, cfg *config.Config, scene *persistence.Scene, seeds []uint64, ticks int) ([]Result, error) {
	results := make([]Result, len(seeds))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, seed := range seeds {
		runCfg := *cfg
		runCfg.Simulation.Seed = seed
		g.Go(func() error {
			sim, err := New(&runCfg, scene)
			if err != nil {
				return err
			}
			if err := sim.Run(ctx, ticks, runCfg.Simulation.Dt); err != nil {
				return err
			}
			results[i] = Result{
				Seed:      seed,
				Ticks:     sim.Ticks(),
				Delivered: sim.Anthill().Food(),
				Carrying:  sim.Colony().Carrying(),
				FoodLeft:  sim.Food().Len(),
			}
			log.Printf("engine: sweep seed=%d delivered=%d", seed, results[i].Delivered)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

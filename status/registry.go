package status

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Metric names published by the simulation
const (
	SimTicks           = "sim.ticks"
	SimTime            = "sim.time"
	AntsCount          = "ants.count"
	AntsCarrying       = "ants.carrying"
	NestFood           = "nest.food"
	FoodParticles      = "food.particles"
	PheromoneToAnthill = "pheromone.to_anthill"
	PheromoneToFood    = "pheromone.to_food"
)

// Registry holds the counters and gauges of one simulation
// The stepping goroutine writes, viewers and reporters read
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

func (r *Registry) Len() int {
	return r.Ints.Len() + r.Floats.Len()
}

// Snapshot copies every metric value, floats and ints in one map
func (r *Registry) Snapshot() map[string]float64 {
	out := make(map[string]float64, r.Len())
	for k, v := range r.Ints.All() {
		out[k] = float64(v.Load())
	}
	for k, v := range r.Floats.All() {
		out[k] = v.Get()
	}
	return out
}

// String renders "key=value" pairs, ints first, each group in key order
func (r *Registry) String() string {
	var b strings.Builder
	for k, v := range r.Ints.All() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%d", k, v.Load())
	}
	for k, v := range r.Floats.All() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%s", k, strconv.FormatFloat(v.Get(), 'f', 3, 64))
	}
	return b.String()
}

package environment

import (
	"fmt"
	"iter"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/vmath"
)

// FoodParticle is one collectible unit of food
type FoodParticle struct {
	position vmath.Vec2
}

func NewFoodParticle(position vmath.Vec2) FoodParticle {
	return FoodParticle{position: position}
}

func (f FoodParticle) Position() vmath.Vec2 { return f.position }

// FoodCluster is a batch of food particles generated inside one circle
// The circle never intersects an obstacle at creation time
type FoodCluster struct {
	circle    vmath.Circle
	particles []FoodParticle
}

// newFoodCluster scatters count particles around the circle center
// Angle is uniform, radial offset is half-normal with sigma = r/3 clamped to r
func newFoodCluster(circle vmath.Circle, count int, obstacles *Obstacles, rng *rand.Rand) (FoodCluster, error) {
	if count < 0 {
		return FoodCluster{}, fmt.Errorf("%w: got %d", ErrNegativeCount, count)
	}
	if count > parameter.FoodMaxClusterCount {
		return FoodCluster{}, fmt.Errorf("%w: got %d, max %d", ErrCountTooLarge, count, parameter.FoodMaxClusterCount)
	}
	if obstacles.AnyInCircle(circle) {
		return FoodCluster{}, ErrClusterBlocked
	}

	radius := circle.Radius()
	sigma := radius / parameter.FoodSigmaDivisor
	up := vmath.V2(0, 1)

	particles := make([]FoodParticle, 0, min(count, 1024))
	for range count {
		angle := rng.Float64() * 2 * math.Pi
		offset := math.Abs(rng.NormFloat64() * sigma)
		if offset > radius {
			offset = radius
		}
		pos := circle.Center().Add(up.Rotate(angle).Scale(offset))
		particles = append(particles, FoodParticle{position: pos})
	}

	return FoodCluster{circle: circle, particles: particles}, nil
}

func (c *FoodCluster) Circle() vmath.Circle { return c.circle }
func (c *FoodCluster) Len() int             { return len(c.particles) }
func (c *FoodCluster) HasFood() bool        { return len(c.particles) > 0 }

// Particles yields the cluster's particles in generation order
func (c *FoodCluster) Particles() iter.Seq[FoodParticle] {
	return slices.Values(c.particles)
}

// removeOneInCircle removes the first particle inside query
func (c *FoodCluster) removeOneInCircle(query vmath.Circle) bool {
	i := slices.IndexFunc(c.particles, func(f FoodParticle) bool {
		return query.Contains(f.position)
	})
	if i < 0 {
		return false
	}
	c.particles = slices.Delete(c.particles, i, i+1)
	return true
}

// Food is the food field: ordered clusters plus the generator that places them
// One generator for every placement keeps a seeded field reproducible
type Food struct {
	clusters []FoodCluster
	rng      *rand.Rand
}

func NewFood(seed uint64) *Food {
	return &Food{rng: vmath.NewRand(seed)}
}

// GenerateInCircle adds a cluster of count particles inside circle
// Returns false without adding anything if circle touches an obstacle
// A zero count succeeds and adds nothing; a negative count or one above
// parameter.FoodMaxClusterCount is an error
func (f *Food) GenerateInCircle(circle vmath.Circle, count int, obstacles *Obstacles) (bool, error) {
	if count < 0 {
		return false, fmt.Errorf("%w: got %d", ErrNegativeCount, count)
	}
	if count > parameter.FoodMaxClusterCount {
		return false, fmt.Errorf("%w: got %d, max %d", ErrCountTooLarge, count, parameter.FoodMaxClusterCount)
	}
	if obstacles.AnyInCircle(circle) {
		return false, nil
	}
	if count == 0 {
		return true, nil
	}

	cluster, err := newFoodCluster(circle, count, obstacles, f.rng)
	if err != nil {
		return false, err
	}
	f.clusters = append(f.clusters, cluster)
	return true, nil
}

// RemoveOneInCircle removes at most one particle lying inside query
// Only clusters whose circle intersects query are scanned; emptied clusters are dropped
// Invalidates any in-flight Particles traversal when it returns true
func (f *Food) RemoveOneInCircle(query vmath.Circle) bool {
	for i := range f.clusters {
		cluster := &f.clusters[i]
		if !vmath.CirclesIntersect(query, cluster.circle) {
			continue
		}
		if !cluster.removeOneInCircle(query) {
			continue
		}
		if !cluster.HasFood() {
			f.clusters = slices.Delete(f.clusters, i, i+1)
		}
		return true
	}
	return false
}

// HasFood reports whether any particle is left
func (f *Food) HasFood() bool {
	return len(f.clusters) > 0
}

// Len returns the total number of particles across clusters
func (f *Food) Len() int {
	n := 0
	for i := range f.clusters {
		n += len(f.clusters[i].particles)
	}
	return n
}

// Clear drops every cluster, the generator state is kept
func (f *Food) Clear() {
	f.clusters = nil
}

// Clusters yields read-only views of the clusters in creation order
func (f *Food) Clusters() iter.Seq[*FoodCluster] {
	return func(yield func(*FoodCluster) bool) {
		for i := range f.clusters {
			if !yield(&f.clusters[i]) {
				return
			}
		}
	}
}

// Particles flattens clusters then particles into one sequence
// Mutating the field during traversal is not supported
func (f *Food) Particles() iter.Seq[FoodParticle] {
	return func(yield func(FoodParticle) bool) {
		for i := range f.clusters {
			for _, p := range f.clusters[i].particles {
				if !yield(p) {
					return
				}
			}
		}
	}
}

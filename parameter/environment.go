package parameter

// Pheromone particles
const (
	// PheromoneMaxIntensity is the upper bound of a particle intensity
	PheromoneMaxIntensity = 100

	// PheromoneDefaultIntensity is the intensity of a freshly laid particle
	PheromoneDefaultIntensity = 100

	// EvaporationPeriod is the time between two evaporation batches (s)
	EvaporationPeriod = 0.2

	// EvaporationStep is the intensity removed from every particle per batch
	EvaporationStep = 1
)

// Food clusters
const (
	// FoodSigmaDivisor sets radial sigma = radius / FoodSigmaDivisor (99.7% inside)
	FoodSigmaDivisor = 3.0

	// FoodMaxClusterCount caps the particles generated for one cluster
	FoodMaxClusterCount = 1_000_000
)

// Anthill
const (
	// AnthillDefaultRadius is used when no radius is supplied (m)
	AnthillDefaultRadius = 1.0
)

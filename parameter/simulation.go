package parameter

// Simulation defaults
const (
	// DefaultDeltaTime is the elapsed time per tick (s)
	DefaultDeltaTime = 0.01

	// DefaultSeed seeds the colony random source
	DefaultSeed = 1

	// DefaultFoodSeed seeds the food placement random source
	DefaultFoodSeed = 2

	// DefaultAntCount is the number of ants scattered around the nest
	DefaultAntCount = 50

	// DefaultTicks is the tick budget of a headless run
	DefaultTicks = 10000
)

// Viewer defaults
const (
	// ViewerCellsPerMeter is the horizontal zoom (terminal cells per metre)
	ViewerCellsPerMeter = 20.0

	// ViewerCellAspect is cell height over cell width, rows are squeezed by it
	ViewerCellAspect = 2.0

	// ViewerFPS is the redraw rate of the interactive viewer
	ViewerFPS = 30

	// ViewerMaxFPS bounds viewer.fps so the frame interval stays positive
	ViewerMaxFPS = 240

	// ViewerTicksPerFrame is the simulation ticks advanced per frame
	ViewerTicksPerFrame = 4

	// CueFrequency is the delivery tone pitch (Hz)
	CueFrequency = 880

	// CueDurationMs is the delivery tone length
	CueDurationMs = 40

	// CueSampleRate is the speaker sample rate
	CueSampleRate = 44100
)

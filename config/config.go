package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/ant-colony/colony"
	"github.com/lixenwraith/ant-colony/environment"
	"github.com/lixenwraith/ant-colony/parameter"
)

var (
	ErrUnknownKey = errors.New("config: unknown key")
	ErrInvalid    = errors.New("config: invalid value")
)

// Simulation holds run-level settings
type Simulation struct {
	Seed     uint64  `toml:"seed"`      // colony random source
	FoodSeed uint64  `toml:"food_seed"` // food placement random source
	Dt       float64 `toml:"dt"`        // seconds per tick
	Ticks    int     `toml:"ticks"`     // headless tick budget
	Ants     int     `toml:"ants"`      // ants scattered around the nest
}

// Scene points at a directory saved by persistence.Manager
// Empty directory selects the built-in demo map
type Scene struct {
	Dir string `toml:"dir"`
}

// Viewer holds interactive terminal settings
type Viewer struct {
	CellsPerMeter float64 `toml:"cells_per_meter"`
	FPS           int     `toml:"fps"`
	TicksPerFrame int     `toml:"ticks_per_frame"`
	Sound         bool    `toml:"sound"`
}

// Config is the full effective configuration of a run
type Config struct {
	Simulation  Simulation              `toml:"simulation"`
	Behavior    colony.Behavior         `toml:"behavior"`
	Evaporation environment.Evaporation `toml:"evaporation"`
	Scene       Scene                   `toml:"scene"`
	Viewer      Viewer                  `toml:"viewer"`
}

// Default returns the built-in parameters
func Default() *Config {
	return &Config{
		Simulation: Simulation{
			Seed:     parameter.DefaultSeed,
			FoodSeed: parameter.DefaultFoodSeed,
			Dt:       parameter.DefaultDeltaTime,
			Ticks:    parameter.DefaultTicks,
			Ants:     parameter.DefaultAntCount,
		},
		Behavior:    colony.DefaultBehavior(),
		Evaporation: environment.DefaultEvaporation(),
		Viewer: Viewer{
			CellsPerMeter: parameter.ViewerCellsPerMeter,
			FPS:           parameter.ViewerFPS,
			TicksPerFrame: parameter.ViewerTicksPerFrame,
			Sound:         true,
		},
	}
}

// Load reads a TOML file over the defaults
// Keys the file sets override defaults; unknown keys are an error
func Load(path string) (*Config, error) {
	conf := Default()
	md, err := toml.DecodeFile(path, conf)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return conf, nil
}

// Decode is Load over an in-memory document
func Decode(r io.Reader) (*Config, error) {
	conf := Default()
	md, err := toml.NewDecoder(r).Decode(conf)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
}

// Validate checks every section
func (c *Config) Validate() error {
	if !(c.Simulation.Dt > 0) {
		return fmt.Errorf("%w: simulation.dt must be positive, got %v", ErrInvalid, c.Simulation.Dt)
	}
	if c.Simulation.Ticks < 0 {
		return fmt.Errorf("%w: simulation.ticks must be non-negative, got %d", ErrInvalid, c.Simulation.Ticks)
	}
	if c.Simulation.Ants < 0 {
		return fmt.Errorf("%w: simulation.ants must be non-negative, got %d", ErrInvalid, c.Simulation.Ants)
	}
	if err := c.Behavior.Validate(); err != nil {
		return fmt.Errorf("behavior: %w", err)
	}
	if err := c.Evaporation.Validate(); err != nil {
		return fmt.Errorf("evaporation: %w", err)
	}
	if !(c.Viewer.CellsPerMeter > 0) {
		return fmt.Errorf("%w: viewer.cells_per_meter must be positive, got %v", ErrInvalid, c.Viewer.CellsPerMeter)
	}
	if c.Viewer.FPS <= 0 || c.Viewer.FPS > parameter.ViewerMaxFPS {
		return fmt.Errorf("%w: viewer.fps must be in [1, %d], got %d", ErrInvalid, parameter.ViewerMaxFPS, c.Viewer.FPS)
	}
	if c.Viewer.TicksPerFrame <= 0 {
		return fmt.Errorf("%w: viewer.ticks_per_frame must be positive, got %d", ErrInvalid, c.Viewer.TicksPerFrame)
	}
	return nil
}

// Write encodes the configuration as TOML
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

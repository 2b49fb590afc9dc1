package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"text/tabwriter"

	"github.com/lixenwraith/ant-colony/config"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/persistence"
)

// options mirrors the command line
type options struct {
	configPath string
	sceneDir   string
	seed       uint64
	seedSet    bool
	ticks      int
	ticksSet   bool
	headless   bool
	sweep      int
	saveScene  string
	dumpConfig bool
	debug      bool
	mute       bool
}

func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	o := &options{}
	fs.StringVar(&o.configPath, "config", "", "TOML configuration file")
	fs.StringVar(&o.sceneDir, "scene", "", "scene directory (obstacles.txt, food.txt, anthill.txt)")
	fs.Uint64Var(&o.seed, "seed", 0, "colony random seed")
	fs.IntVar(&o.ticks, "ticks", 0, "ticks to run in headless mode")
	fs.BoolVar(&o.headless, "headless", false, "run without the viewer and print metrics")
	fs.IntVar(&o.sweep, "sweep", 0, "run N seeds in parallel and print a summary")
	fs.StringVar(&o.saveScene, "save-scene", "", "save the final world to this directory")
	fs.BoolVar(&o.dumpConfig, "dump-config", false, "print the effective configuration and exit")
	fs.BoolVar(&o.debug, "debug", false, "write logs to "+logDir+"/"+logFileName)
	fs.BoolVar(&o.mute, "mute", false, "disable the delivery sound")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			o.seedSet = true
		case "ticks":
			o.ticksSet = true
		}
	})
	if o.sweep < 0 {
		return nil, fmt.Errorf("-sweep must be non-negative, got %d", o.sweep)
	}
	return o, nil
}

// loadConfig reads the file if any and applies flag overrides
func loadConfig(o *options) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return nil, err
		}
	}
	if o.seedSet {
		cfg.Simulation.Seed = o.seed
	}
	if o.ticksSet {
		cfg.Simulation.Ticks = o.ticks
	}
	if o.sceneDir != "" {
		cfg.Scene.Dir = o.sceneDir
	}
	if o.mute {
		cfg.Viewer.Sound = false
	}
	return cfg, cfg.Validate()
}

func sweepSeeds(base uint64, n int) []uint64 {
	seeds := make([]uint64, n)
	for i := range seeds {
		seeds[i] = base + uint64(i)
	}
	return seeds
}

func main() {
	o, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(o.debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(o); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(o *options) error {
	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}
	if o.dumpConfig {
		return cfg.Write(os.Stdout)
	}

	scene, err := engine.LoadScene(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if o.sweep > 0 {
		return runSweep(ctx, os.Stdout, cfg, scene, o.sweep)
	}

	sim, err := engine.New(cfg, scene)
	if err != nil {
		return err
	}

	if o.headless {
		err = runHeadless(ctx, os.Stdout, sim, cfg)
	} else {
		err = runViewer(sim, cfg)
	}
	if err != nil {
		return err
	}

	if o.saveScene != "" {
		if err := persistence.NewManager(o.saveScene).Save(sim.World()); err != nil {
			return fmt.Errorf("save scene: %w", err)
		}
		log.Printf("antsim: scene saved to %s", o.saveScene)
	}
	return nil
}

func runHeadless(ctx context.Context, w io.Writer, sim *engine.Simulation, cfg *config.Config) error {
	err := sim.Run(ctx, cfg.Simulation.Ticks, cfg.Simulation.Dt)
	fmt.Fprintln(w, sim.Registry().String())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runSweep(ctx context.Context, w io.Writer, cfg *config.Config, scene *persistence.Scene, n int) error {
	results, err := engine.Sweep(ctx, cfg, scene, sweepSeeds(cfg.Simulation.Seed, n), cfg.Simulation.Ticks)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "seed\tticks\tdelivered\tcarrying\tfood_left")
	total := 0
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\n", r.Seed, r.Ticks, r.Delivered, r.Carrying, r.FoodLeft)
		total += r.Delivered
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "mean delivered: %.1f\n", float64(total)/float64(len(results)))
	return nil
}

// crashed restores the terminal before reporting a panic
func crashed(reset func(), r any) {
	reset()
	fmt.Fprintf(os.Stderr, "\nANTSIM CRASHED: %v\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Exit(1)
}

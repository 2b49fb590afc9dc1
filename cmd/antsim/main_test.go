package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ant-colony/config"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/terminal"
)

func parse(t *testing.T, args ...string) *options {
	t.Helper()
	o, err := parseFlags(flag.NewFlagSet("antsim", flag.ContinueOnError), args)
	if err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return o
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	o := parse(t, "-seed", "0", "-ticks", "20", "-scene", "maps/a", "-mute")
	cfg, err := loadConfig(o)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Simulation.Seed != 0 || cfg.Simulation.Ticks != 20 {
		t.Errorf("expected explicit seed 0 and 20 ticks, got %+v", cfg.Simulation)
	}
	if cfg.Scene.Dir != "maps/a" || cfg.Viewer.Sound {
		t.Errorf("expected scene and mute applied, got %+v %+v", cfg.Scene, cfg.Viewer)
	}

	def, err := loadConfig(parse(t))
	if err != nil {
		t.Fatal(err)
	}
	if *def != *config.Default() {
		t.Error("expected defaults without flags")
	}
}

func TestLoadConfig_FileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "antsim.toml")
	if err := os.WriteFile(path, []byte("[simulation]\nseed = 5\nants = 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(parse(t, "-config", path, "-seed", "9"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Simulation.Seed != 9 || cfg.Simulation.Ants != 3 {
		t.Errorf("expected flag seed over file, got %+v", cfg.Simulation)
	}

	if _, err := loadConfig(parse(t, "-ticks", "-1")); err == nil {
		t.Error("expected negative ticks to fail validation")
	}
}

func TestParseFlags_RejectsNegativeSweep(t *testing.T) {
	if _, err := parseFlags(flag.NewFlagSet("antsim", flag.ContinueOnError), []string{"-sweep", "-2"}); err == nil {
		t.Error("expected error")
	}
}

func TestSweepSeeds(t *testing.T) {
	if got := sweepSeeds(7, 3); !slices.Equal(got, []uint64{7, 8, 9}) {
		t.Errorf("expected [7 8 9], got %v", got)
	}
}

func TestRunHeadless_PrintsMetrics(t *testing.T) {
	cfg := config.Default()
	cfg.Simulation.Ticks = 5
	sim, err := engine.New(cfg, engine.DefaultScene())
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := runHeadless(context.Background(), &out, sim, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "sim.ticks=5") {
		t.Errorf("expected tick count in %q", out.String())
	}
}

func TestRunSweep_Table(t *testing.T) {
	cfg := config.Default()
	cfg.Simulation.Ticks = 10
	cfg.Simulation.Ants = 5
	var out bytes.Buffer
	if err := runSweep(context.Background(), &out, cfg, engine.DefaultScene(), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, two rows and a mean, got %q", out.String())
	}
	if !strings.HasPrefix(lines[1], "1 ") || !strings.HasPrefix(lines[2], "2 ") {
		t.Errorf("expected rows in seed order, got %q", lines[1:3])
	}
}

func newTestViewer(t *testing.T) *viewer {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

	cfg := config.Default()
	sim, err := engine.New(cfg, engine.DefaultScene())
	if err != nil {
		t.Fatal(err)
	}
	return &viewer{sim: sim, cfg: cfg, renderer: terminal.NewRenderer(screen, cfg.Viewer.CellsPerMeter)}
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestViewer_PauseAndStep(t *testing.T) {
	v := newTestViewer(t)

	if err := v.frame(); err != nil {
		t.Fatal(err)
	}
	if got := v.sim.Ticks(); got != int64(v.cfg.Viewer.TicksPerFrame) {
		t.Errorf("expected %d ticks per frame, got %d", v.cfg.Viewer.TicksPerFrame, got)
	}

	v.handleKey(key(' '))
	_ = v.frame()
	if got := v.sim.Ticks(); got != int64(v.cfg.Viewer.TicksPerFrame) {
		t.Errorf("expected paused frame to hold, got %d ticks", got)
	}

	v.handleKey(key('.'))
	_ = v.frame()
	if got := v.sim.Ticks(); got != int64(v.cfg.Viewer.TicksPerFrame)+1 {
		t.Errorf("expected single step, got %d ticks", got)
	}
}

func TestViewer_ZoomAndQuit(t *testing.T) {
	v := newTestViewer(t)
	before := v.renderer.Converter().CellsPerMeter()
	v.handleKey(key('+'))
	if v.renderer.Converter().CellsPerMeter() <= before {
		t.Error("expected zoom in")
	}
	v.handleKey(key('-'))
	if got := v.renderer.Converter().CellsPerMeter(); got < before-1e-9 || got > before+1e-9 {
		t.Errorf("expected zoom restored to %v, got %v", before, got)
	}

	v.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if !v.quit {
		t.Error("expected Esc to quit")
	}
}

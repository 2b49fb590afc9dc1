package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ant-colony/audio"
	"github.com/lixenwraith/ant-colony/config"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/terminal"
)

const zoomStep = 1.25

// viewer holds the interactive loop state
type viewer struct {
	sim      *engine.Simulation
	cfg      *config.Config
	renderer *terminal.Renderer
	cue      *audio.Cue
	paused   bool
	step     bool
	quit     bool
}

// handleKey applies one key press
func (v *viewer) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.quit = true
		return
	}
	switch ev.Rune() {
	case 'q':
		v.quit = true
	case ' ':
		v.paused = !v.paused
	case '.':
		if v.paused {
			v.step = true
		}
	case '+', '=':
		v.renderer.Converter().Zoom(zoomStep)
	case '-':
		v.renderer.Converter().Zoom(1 / zoomStep)
	case 'm':
		if v.cue != nil {
			v.cue.SetMuted(!v.cue.IsMuted())
		}
	}
}

// frame advances the world for one redraw and sounds the cue on delivery
func (v *viewer) frame() error {
	ticks := v.cfg.Viewer.TicksPerFrame
	if v.paused {
		if !v.step {
			return nil
		}
		v.step = false
		ticks = 1
	}

	before := v.sim.Anthill().Food()
	for range ticks {
		if err := v.sim.Step(v.cfg.Simulation.Dt); err != nil {
			return err
		}
	}
	if v.cue != nil && v.sim.Anthill().Food() > before {
		v.cue.Play()
	}
	return nil
}

func runViewer(sim *engine.Simulation, cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			crashed(screen.Fini, r)
		}
	}()
	defer screen.Fini()
	screen.HideCursor()

	v := &viewer{
		sim:      sim,
		cfg:      cfg,
		renderer: terminal.NewRenderer(screen, cfg.Viewer.CellsPerMeter),
	}
	if cfg.Viewer.Sound {
		cue := audio.NewCue()
		if err := cue.Initialize(); err != nil {
			log.Printf("antsim: audio unavailable: %v", err)
		} else {
			v.cue = cue
			defer cue.Close()
		}
	}

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Viewer.FPS))
	defer ticker.Stop()

	v.renderer.Draw(sim, v.paused)
	for !v.quit {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				v.handleKey(ev)
			case *tcell.EventResize:
				v.renderer.Resize()
				screen.Sync()
			}
		case <-ticker.C:
			if err := v.frame(); err != nil {
				return err
			}
			v.renderer.Draw(sim, v.paused)
		}
	}
	log.Printf("antsim: viewer closed at tick %d, nest food %d", sim.Ticks(), sim.Anthill().Food())
	return nil
}

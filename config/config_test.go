package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/ant-colony/colony"
	"github.com/lixenwraith/ant-colony/environment"
)

func TestDefault_Valid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestDecode_Overrides(t *testing.T) {
	doc := `
[simulation]
seed = 42
ants = 7

[behavior]
wander_stddev = 0.0

[evaporation]
step = 3
`
	conf, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conf.Simulation.Seed != 42 || conf.Simulation.Ants != 7 {
		t.Errorf("expected seed 42 and 7 ants, got %+v", conf.Simulation)
	}
	if conf.Behavior.WanderStdDev != 0 {
		t.Errorf("expected wander disabled, got %v", conf.Behavior.WanderStdDev)
	}
	if conf.Evaporation.Step != 3 {
		t.Errorf("expected step 3, got %d", conf.Evaporation.Step)
	}

	def := Default()
	if conf.Simulation.Dt != def.Simulation.Dt {
		t.Errorf("expected default dt %v kept, got %v", def.Simulation.Dt, conf.Simulation.Dt)
	}
	if conf.Behavior.VisionRadius != def.Behavior.VisionRadius {
		t.Errorf("expected default vision radius kept, got %v", conf.Behavior.VisionRadius)
	}
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown key", "[simulation]\nspeed = 1.0\n", ErrUnknownKey},
		{"unknown section", "[weather]\nrain = true\n", ErrUnknownKey},
		{"zero dt", "[simulation]\ndt = 0.0\n", ErrInvalid},
		{"negative ants", "[simulation]\nants = -1\n", ErrInvalid},
		{"zero fps", "[viewer]\nfps = 0\n", ErrInvalid},
		{"fps above limit", "[viewer]\nfps = 10000000000\n", ErrInvalid},
		{"bad behavior", "[behavior]\nspeed = 0.0\n", colony.ErrInvalidBehavior},
		{"bad evaporation", "[evaporation]\nperiod = -1.0\n", environment.ErrInvalidPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := Decode(strings.NewReader("[simulation\n")); err == nil {
		t.Error("expected syntax error")
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "antsim.toml")
	if err := os.WriteFile(path, []byte("[scene]\ndir = \"maps/demo\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	conf, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conf.Scene.Dir != "maps/demo" {
		t.Errorf("expected scene dir maps/demo, got %q", conf.Scene.Dir)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	conf := Default()
	conf.Simulation.Seed = 99
	conf.Viewer.Sound = false

	var buf bytes.Buffer
	if err := conf.Write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), "[behavior]") {
		t.Errorf("expected behavior section in output:\n%s", buf.String())
	}

	back, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if *back != *conf {
		t.Errorf("expected %+v, got %+v", conf, back)
	}
}

package environment

import (
	"errors"
	"testing"

	"github.com/lixenwraith/ant-colony/vmath"
)

func TestAnthill_Construction(t *testing.T) {
	def := DefaultAnthill()
	if def.Center() != vmath.V2(0, 0) || def.Radius() != 1 || def.Food() != 0 {
		t.Errorf("unexpected default anthill: %v r=%v food=%d", def.Center(), def.Radius(), def.Food())
	}

	a, err := NewAnthill(vmath.MustCircle(vmath.V2(10.5, 3.4), 2.5), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Center() != vmath.V2(10.5, 3.4) || a.Radius() != 2.5 || a.Food() != 5 {
		t.Errorf("unexpected anthill: %v r=%v food=%d", a.Center(), a.Radius(), a.Food())
	}

	if _, err := NewAnthill(vmath.MustCircle(vmath.V2(0, 0), 1), -1); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("expected ErrNegativeAmount, got %v", err)
	}
}

func TestAnthill_Contains(t *testing.T) {
	def := DefaultAnthill()
	a, _ := NewAnthill(vmath.MustCircle(vmath.V2(10.5, 3.4), 2.5), 5)

	tests := []struct {
		hill *Anthill
		p    vmath.Vec2
		want bool
	}{
		{def, vmath.V2(0.5, 0.2), true},
		{def, vmath.V2(1, 0), true},
		{def, vmath.V2(0.9, 0.9), false},
		{a, vmath.V2(11, 2), true},
		{a, vmath.V2(11, 0.9), false},
		{a, vmath.V2(10.5, 0.9), true},
	}
	for i, tt := range tests {
		if got := tt.hill.Contains(tt.p); got != tt.want {
			t.Errorf("case %d: expected %v, got %v", i, tt.want, got)
		}
	}
}

func TestAnthill_AddFood(t *testing.T) {
	a, _ := NewAnthill(vmath.MustCircle(vmath.V2(10.5, 3.4), 2.5), 5)
	if err := a.AddFood(43); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Food() != 48 {
		t.Errorf("expected 48, got %d", a.Food())
	}
	if err := a.AddFood(-8); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("expected ErrNegativeAmount, got %v", err)
	}
	if a.Food() != 48 {
		t.Errorf("rejected add changed counter to %d", a.Food())
	}
}

func TestAnthill_Set(t *testing.T) {
	a := DefaultAnthill()
	if err := a.Set(vmath.MustCircle(vmath.V2(1, 1), 0.5), -3); err == nil {
		t.Error("expected negative counter to be rejected")
	}
	if a.Radius() != 1 {
		t.Error("rejected Set changed the circle")
	}
	if err := a.Set(vmath.MustCircle(vmath.V2(1, 1), 0.5), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Food() != 3 || a.Center() != vmath.V2(1, 1) {
		t.Errorf("Set not applied: %v food=%d", a.Center(), a.Food())
	}
}

package persistence

import (
	"fmt"

	"github.com/lixenwraith/ant-colony/environment"
	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/vmath"
)

// Scene is a declarative map: what a scene directory holds once parsed
type Scene struct {
	Obstacles   []vmath.Rect
	Food        []FoodRecord
	Anthill     vmath.Circle
	AnthillFood int
}

// World is the set of live structures a scene is loaded into or saved from
type World struct {
	Obstacles *environment.Obstacles
	Food      *environment.Food
	Anthill   *environment.Anthill
}

// Validate checks the cross-file constraints a parse alone can't see
func (s *Scene) Validate() error {
	if s.AnthillFood < 0 {
		return fmt.Errorf("anthill food counter: %w: got %d", environment.ErrNegativeAmount, s.AnthillFood)
	}
	if s.Anthill.Radius() <= 0 {
		return fmt.Errorf("anthill: %w", vmath.ErrNonPositiveRadius)
	}
	for i, rec := range s.Food {
		if rec.Count < 0 {
			return fmt.Errorf("cluster %d: %w: got %d", i, environment.ErrNegativeCount, rec.Count)
		}
		if rec.Count > parameter.FoodMaxClusterCount {
			return fmt.Errorf("cluster %d: %w: got %d", i, environment.ErrCountTooLarge, rec.Count)
		}
	}
	return checkFood(s.Food, environment.NewObstacles(s.Obstacles...))
}

// Populate replaces the contents of w with the scene
// The scene is validated first so a refused scene leaves w untouched
func (s *Scene) Populate(w World) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := w.Anthill.Set(s.Anthill, s.AnthillFood); err != nil {
		return err
	}
	w.Obstacles.Replace(s.Obstacles)
	return applyFood(w.Food, s.Food, w.Obstacles)
}

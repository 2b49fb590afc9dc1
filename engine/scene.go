package engine

import (
	"github.com/lixenwraith/ant-colony/config"
	"github.com/lixenwraith/ant-colony/persistence"
	"github.com/lixenwraith/ant-colony/vmath"
)

// DefaultScene is the demo map: a walled 4x2 m arena, one block, four food
// clusters of 500 particles and a small nest right of center
func DefaultScene() *persistence.Scene {
	food := func(x, y float64) persistence.FoodRecord {
		return persistence.FoodRecord{Circle: vmath.MustCircle(vmath.V2(x, y), 0.1), Count: 500}
	}
	return &persistence.Scene{
		Obstacles: []vmath.Rect{
			vmath.MustRect(vmath.V2(-2, 1), 4, 0.02),
			vmath.MustRect(vmath.V2(-2, 1), 0.02, 2),
			vmath.MustRect(vmath.V2(2, 1), 0.02, 2),
			vmath.MustRect(vmath.V2(-2, -1), 4, 0.02),
			vmath.MustRect(vmath.V2(-0.5, -0.5), 0.5, 0.2),
		},
		Food: []persistence.FoodRecord{
			food(0, 0.5),
			food(-1.2, 0.3),
			food(1.3, -0.4),
			food(-0.5, -0.85),
		},
		Anthill: vmath.MustCircle(vmath.V2(0.3, 0), 0.05),
	}
}

// LoadScene returns the scene the configuration points at
// An empty scene directory selects DefaultScene
func LoadScene(cfg *config.Config) (*persistence.Scene, error) {
	if cfg.Scene.Dir == "" {
		return DefaultScene(), nil
	}
	return persistence.NewManager(cfg.Scene.Dir).Load()
}

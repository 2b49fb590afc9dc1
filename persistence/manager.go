package persistence

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Scene file names inside a manager directory
const (
	ObstaclesFile = "obstacles.txt"
	FoodFile      = "food.txt"
	AnthillFile   = "anthill.txt"
)

// Manager handles save/load of whole scenes under one directory
type Manager struct {
	basePath string
}

// NewManager creates a manager with the given base directory
func NewManager(basePath string) *Manager {
	return &Manager{basePath: basePath}
}

// FilePath returns the path of a scene file
func (m *Manager) FilePath(name string) string {
	return filepath.Join(m.basePath, name)
}

// Exists reports whether all three scene files are present
func (m *Manager) Exists() bool {
	for _, name := range []string{ObstaclesFile, FoodFile, AnthillFile} {
		if _, err := os.Stat(m.FilePath(name)); err != nil {
			return false
		}
	}
	return true
}

// Save writes the world to the three scene files
func (m *Manager) Save(w World) error {
	if err := os.MkdirAll(m.basePath, 0755); err != nil {
		return err
	}

	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{ObstaclesFile, func(out io.Writer) error { return WriteObstacles(out, w.Obstacles) }},
		{FoodFile, func(out io.Writer) error { return WriteFood(out, w.Food) }},
		{AnthillFile, func(out io.Writer) error { return WriteAnthill(out, w.Anthill) }},
	}
	for _, f := range files {
		var buf bytes.Buffer
		if err := f.write(&buf); err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		if err := os.WriteFile(m.FilePath(f.name), buf.Bytes(), 0644); err != nil {
			return err
		}
	}
	return nil
}

// Load parses and validates all three files
// Nothing is returned unless every file is well formed and the food
// clusters clear the loaded obstacles
func (m *Manager) Load() (*Scene, error) {
	scene, err := m.load()
	if err != nil {
		log.Printf("persistence: refusing scene %s: %v", m.basePath, err)
		return nil, err
	}
	return scene, nil
}

func (m *Manager) load() (*Scene, error) {
	var scene Scene

	data, err := os.ReadFile(m.FilePath(ObstaclesFile))
	if err != nil {
		return nil, err
	}
	if scene.Obstacles, err = parseObstacles(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%s: %w", ObstaclesFile, err)
	}

	if data, err = os.ReadFile(m.FilePath(FoodFile)); err != nil {
		return nil, err
	}
	if scene.Food, err = parseFood(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%s: %w", FoodFile, err)
	}

	if data, err = os.ReadFile(m.FilePath(AnthillFile)); err != nil {
		return nil, err
	}
	if scene.Anthill, scene.AnthillFood, err = parseAnthill(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%s: %w", AnthillFile, err)
	}

	if err := scene.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return &scene, nil
}

// LoadInto loads the scene and replaces the world contents with it
// On error the world is left unchanged
func (m *Manager) LoadInto(w World) error {
	scene, err := m.Load()
	if err != nil {
		return err
	}
	return scene.Populate(w)
}

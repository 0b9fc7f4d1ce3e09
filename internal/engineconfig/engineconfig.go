package engineconfig

import (
	"encoding/json"
	"os"
	"path/filepath"

	"plane-geometry/internal/primitives"
)

// EngineConfigPath is the path to the viewer config file, relative to the process working directory.
const EngineConfigPath = "config/engine.json"

// EnginePrefs holds viewer preferences (overlays, grid, wireframe, plane definition). Persisted across runs.
type EnginePrefs struct {
	ShowFPS     bool   `json:"show_fps"`
	ShowStats   bool   `json:"show_stats"`
	GridVisible bool   `json:"grid_visible"`
	Wireframe   bool   `json:"wireframe"`
	PlaneDef    string `json:"plane_def,omitempty"`
}

// Default returns default preferences (stats and grid on, FPS and wireframe off).
func Default() EnginePrefs {
	return EnginePrefs{
		ShowFPS:     false,
		ShowStats:   true,
		GridVisible: true,
		Wireframe:   false,
		PlaneDef:    primitives.DefaultPlaneDefPath,
	}
}

// Load reads preferences from path. If the file is missing or invalid,
// returns Default() and does not create a file.
func Load(path string) (EnginePrefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p EnginePrefs) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// DefaultLevel is loaded when no level is named.
const DefaultLevel = "slingshot.json"

// Level describes one playfield. Coordinates are world pixels, y down.
type Level struct {
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	Pivot    Point    `json:"pivot"`
	Launcher string   `json:"launcher,omitempty"`
	Entities []Entity `json:"entities,omitempty"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Entity places a prefab in the level.
type Entity struct {
	Prefab string  `json:"prefab"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

func LoadLevelFromFS(name string) (*Level, error) {
	name = normalizeName(name)
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("level %s: bounds must be positive, got %vx%v", name, lvl.Width, lvl.Height)
	}
	return &lvl, nil
}

// Names lists the embedded levels.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() && path.Ext(e.Name()) == ".json" {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out
}

func normalizeName(name string) string {
	if name == "" {
		return DefaultLevel
	}
	name = strings.TrimPrefix(name, "levels/")
	if path.Ext(name) == "" {
		name += ".json"
	}
	return name
}

package gamedata

import (
	"encoding/json"
	"fmt"
)

// Load reads and unmarshals one embedded definition file.
func Load[T any](filename string) (T, error) {
	var defs T

	content, err := defsFS.ReadFile(filename)
	if err != nil {
		return defs, fmt.Errorf("reading game data %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &defs); err != nil {
		return defs, fmt.Errorf("parsing game data %s: %w", filename, err)
	}

	return defs, nil
}

// MustLoad reads and unmarshals one embedded definition file, panicking
// on error. The ship, theme, and cue definitions ship inside the binary;
// failing to load one is a build defect, not a runtime condition.
func MustLoad[T any](filename string) T {
	defs, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return defs
}

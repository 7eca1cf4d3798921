package gamedata

// CueDef defines a named audio cue loaded from JSON.
//
// The terminal audio player maps cues onto the bell; richer hosts can map
// the same IDs onto sampled sounds.
type CueDef struct {
	ID         string `json:"id"`         // Cue identifier (e.g., "hit")
	Label      string `json:"label"`      // Human-readable description
	Bell       bool   `json:"bell"`       // Ring the terminal bell when played
	DurationMS int    `json:"durationMs"` // Nominal cue length, drives IsPlaying
}

// CuesFile represents the structure of cues.json.
type CuesFile struct {
	Cues []CueDef `json:"cues"`
}

// LoadCues loads the audio cue definitions from the embedded cues.json.
func LoadCues() ([]CueDef, error) {
	file, err := Load[CuesFile]("cues.json")
	if err != nil {
		return nil, err
	}
	return file.Cues, nil
}

// MustLoadCues loads cue definitions, panicking on error.
func MustLoadCues() []CueDef {
	cues, err := LoadCues()
	if err != nil {
		panic(err)
	}
	return cues
}

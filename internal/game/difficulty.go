package game

// Difficulty selects the computer opponent's targeting strategy. It is
// process-wide, set from the settings phase, and takes effect at the next
// StartGame; it never changes a session already in progress.
type Difficulty int

const (
	// DifficultyEasy is the default. There is no easy targeting mode;
	// easy falls through to the hard strategy.
	DifficultyEasy Difficulty = iota
	// DifficultyMedium uses the medium strategy.
	DifficultyMedium
	// DifficultyHard uses the hard strategy.
	DifficultyHard
)

// String returns a machine-readable difficulty name.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

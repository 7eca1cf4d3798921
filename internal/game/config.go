package game

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation: fleet placement and AI targeting.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// GridSize is the board edge length. Zero means the classic 10x10.
	GridSize int
}

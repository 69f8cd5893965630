package config

// DuplicateConfig holds settings for detecting replayed games that end in
// the same position.
type DuplicateConfig struct {
	// Report marks results whose final position was reached by an earlier game
	Report bool

	// ExactMatch also requires the same number of moves
	ExactMatch bool
}

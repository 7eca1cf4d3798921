// Package highscore persists match results to a small JSON file.
package highscore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Entry is one recorded match.
type Entry struct {
	Name  string    `json:"name"`
	Shots int       `json:"shots"` // shots the player fired over the match
	Won   bool      `json:"won"`
	When  time.Time `json:"when"`
}

// Store holds score entries backed by a JSON file.
type Store struct {
	path    string
	entries []Entry
}

// DefaultPath returns the score file location: the BROADSIDE_SCORES
// environment variable if set, otherwise scores.json under the user
// config directory.
func DefaultPath() string {
	if p := os.Getenv("BROADSIDE_SCORES"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "broadside-scores.json"
	}
	return filepath.Join(dir, "broadside", "scores.json")
}

// New creates an empty store backed by path. Use it to start fresh when
// the existing score file cannot be read.
func New(path string) *Store {
	return &Store{path: path}
}

// Open loads the store at path. A missing or empty file yields an empty
// store.
func Open(path string) (*Store, error) {
	s := New(path)

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading score file %s: %w", path, err)
	}
	if len(content) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(content, &s.entries); err != nil {
		return nil, fmt.Errorf("parsing score file %s: %w", path, err)
	}
	return s, nil
}

// Add records an entry. Call Save to persist.
func (s *Store) Add(e Entry) {
	s.entries = append(s.entries, e)
}

// Len returns the number of recorded entries.
func (s *Store) Len() int { return len(s.entries) }

// Top returns up to n winning entries, fewest shots first; ties go to the
// earlier match.
func (s *Store) Top(n int) []Entry {
	var wins []Entry
	for _, e := range s.entries {
		if e.Won {
			wins = append(wins, e)
		}
	}
	sort.Slice(wins, func(i, j int) bool {
		if wins[i].Shots != wins[j].Shots {
			return wins[i].Shots < wins[j].Shots
		}
		return wins[i].When.Before(wins[j].When)
	})
	if len(wins) > n {
		wins = wins[:n]
	}
	return wins
}

// Save writes the entries back to the score file, creating parent
// directories as needed.
func (s *Store) Save() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating score directory %s: %w", dir, err)
		}
	}
	content, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding scores: %w", err)
	}
	if err := os.WriteFile(s.path, content, 0o644); err != nil {
		return fmt.Errorf("writing score file %s: %w", s.path, err)
	}
	return nil
}

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Profile is the player's saved progress.
type Profile struct {
	Name       string    `json:"name"`
	BestLap    float64   `json:"best_lap"` // seconds, 0 when no lap has been finished
	Laps       int       `json:"laps"`
	Created    time.Time `json:"created"`
	LastPlayed time.Time `json:"last_played"`
}

// NewProfile creates a new empty profile.
func NewProfile(name string) *Profile {
	now := time.Now()
	return &Profile{
		Name:       name,
		Created:    now,
		LastPlayed: now,
	}
}

// Improve stores seconds as the best lap if it is faster, or if there is no
// best yet.
func (p *Profile) Improve(seconds float64) bool {
	if seconds <= 0 {
		return false
	}
	if p.BestLap == 0 || seconds < p.BestLap {
		p.BestLap = seconds
		return true
	}
	return false
}

// SaveToFile saves the profile to a JSON file, creating its directory.
func (p *Profile) SaveToFile(filename string) error {
	p.LastPlayed = time.Now()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
	}
	return os.WriteFile(filename, data, 0644)
}

// LoadProfile loads a profile from a JSON file.
func LoadProfile(filename string) (*Profile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", filename, err)
	}
	if p.BestLap < 0 {
		p.BestLap = 0
	}
	return &p, nil
}

// LoadOrCreate loads the profile at filename, or returns a new one named
// name when the file does not exist yet.
func LoadOrCreate(filename, name string) (*Profile, error) {
	p, err := LoadProfile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return NewProfile(name), nil
	}
	return p, err
}

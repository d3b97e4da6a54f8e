package models

import (
	"github.com/golangdaddy/roadrush/log"
)

// ProfileSink keeps a Profile up to date from race readings and writes it
// out whenever the best lap improves.
type ProfileSink struct {
	Profile *Profile
	Path    string
}

// NewProfileSink creates a new sink saving p to path. An empty path keeps
// the profile in memory only.
func NewProfileSink(p *Profile, path string) *ProfileSink {
	return &ProfileSink{Profile: p, Path: path}
}

func (s *ProfileSink) CurrentLap(float64) {}
func (s *ProfileSink) Speed(float64)      {}

func (s *ProfileSink) LapCompleted(seconds float64) {
	s.Profile.Laps++
}

func (s *ProfileSink) BestLap(seconds float64) {
	if s.Profile.Improve(seconds) {
		s.Save()
	}
}

// Save writes the profile, logging instead of failing so a read-only home
// directory never stops a race.
func (s *ProfileSink) Save() {
	if s.Path == "" {
		return
	}
	if err := s.Profile.SaveToFile(s.Path); err != nil {
		log.Error("profile not saved", log.String("path", s.Path), log.ErrorField(err))
		return
	}
	log.Debug("profile saved", log.String("path", s.Path), log.Float64("bestLap", s.Profile.BestLap))
}

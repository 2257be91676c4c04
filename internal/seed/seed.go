package seed

import (
	"encoding/json"
	"math/rand"
	"os"
	"time"

	"PaperFund/internal/model"

	"github.com/sirupsen/logrus"
)

// Source resolves the optional chart-seed and user-directory documents.
// Both are cosmetic: absence or corruption degrades to generated demo
// values and never blocks startup.
type Source struct {
	chartPath string
	usersPath string
	rng       *rand.Rand
	log       *logrus.Entry
}

// NewSource returns a Source. Empty paths disable the corresponding
// document entirely.
func NewSource(chartPath, usersPath string, rng *rand.Rand, log *logrus.Entry) *Source {
	return &Source{chartPath: chartPath, usersPath: usersPath, rng: rng, log: log}
}

// ChartSeed loads the precomputed chart document, falling back to a
// generated demo seed when the file is missing or malformed.
func (s *Source) ChartSeed() *model.ChartSeed {
	if s.chartPath != "" {
		var cs model.ChartSeed
		if s.readJSON(s.chartPath, &cs) && len(cs.Points) > 0 {
			return &cs
		}
	}
	return Demo(s.rng, 24)
}

// Greeting resolves a personalized greeting name from the user
// directory, or "trader" when the directory or ID is unavailable.
func (s *Source) Greeting(userID string) string {
	if s.usersPath != "" && userID != "" {
		var dir model.UserDirectory
		if s.readJSON(s.usersPath, &dir) {
			if name, ok := dir.Users[userID]; ok && name != "" {
				return name
			}
		}
	}
	return "trader"
}

func (s *Source) readJSON(path string, v any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.WithError(err).WithField("path", path).Warn("read seed document")
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.log.WithError(err).WithField("path", path).Warn("malformed seed document, using demo data")
		return false
	}
	return true
}

// Demo fabricates a plausible chart seed: a gentle upward random walk
// ending at the present, with summary stats filled in.
func Demo(rng *rand.Rand, points int) *model.ChartSeed {
	if points <= 0 {
		points = 24
	}

	cs := &model.ChartSeed{Points: make([]model.SeedPoint, points)}
	value := 1.0
	now := time.Now()
	sum := 0.0
	cs.Min = value
	cs.Max = value

	for i := 0; i < points; i++ {
		value *= 1 + (rng.Float64()-0.45)*0.02
		cs.Points[i] = model.SeedPoint{
			Time:  now.Add(-time.Duration(points-i) * time.Hour),
			Value: value,
		}
		sum += value
		if value < cs.Min {
			cs.Min = value
		}
		if value > cs.Max {
			cs.Max = value
		}
	}
	cs.Mean = sum / float64(points)
	return cs
}

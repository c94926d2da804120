// Package analyzer defines the image-analysis seam. The store layer only
// depends on the Analyzer interface, so a real inference backend can replace
// the mock without touching store code.
package analyzer

import (
	"context"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/ntndev/skinscan/internal/catalog"
	"github.com/ntndev/skinscan/internal/models"
)

// Analyzer turns a captured image reference into a ranked list of probable
// condition matches. Implementations must honor context cancellation.
type Analyzer interface {
	Analyze(ctx context.Context, imageURI string) ([]models.Detection, error)
}

const mockResultCount = 3

// Mock is a stand-in analyzer: it never looks at the image and instead
// returns a random subset of the condition catalog with random probabilities
// in [0.3, 1.0), after a configurable delay representing inference time.
type Mock struct {
	delay time.Duration
}

func NewMock(delay time.Duration) *Mock {
	return &Mock{delay: delay}
}

func (m *Mock) Analyze(ctx context.Context, imageURI string) ([]models.Detection, error) {
	if m.delay > 0 {
		timer := time.NewTimer(m.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	conditions := catalog.All()
	rand.Shuffle(len(conditions), func(i, j int) {
		conditions[i], conditions[j] = conditions[j], conditions[i]
	})

	n := mockResultCount
	if n > len(conditions) {
		n = len(conditions)
	}

	results := make([]models.Detection, 0, n)
	for _, c := range conditions[:n] {
		results = append(results, models.Detection{
			ConditionID: c.ID,
			Name:        c.Name,
			Probability: 0.3 + rand.Float64()*0.7,
		})
	}

	// rank by descending confidence
	sort.Slice(results, func(i, j int) bool {
		return results[i].Probability > results[j].Probability
	})
	return results, nil
}

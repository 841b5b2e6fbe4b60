package chord

import (
	"fmt"
	"strings"

	"github.com/jsphweid/composer/interval"
	"github.com/jsphweid/composer/logging"
	"github.com/jsphweid/composer/scale"
	"golang.org/x/exp/slices"
)

// CreateChordKey joins MIDI keys in ascending order, e.g. "57-61-64".
// The input is left untouched.
func CreateChordKey(keys []uint8) string {
	sorted := append([]uint8(nil), keys...)
	slices.Sort(sorted)

	parts := make([]string, len(sorted))
	for i, key := range sorted {
		parts[i] = fmt.Sprintf("%v", key)
	}
	return strings.Join(parts, "-")
}

// GetBuilder returns a builder for the quality's triad relative to the
// root. Extensions are passed to Build separately.
func GetBuilder(q Quality, t *interval.Temperament) (*scale.Builder, []interval.Interval, error) {
	if t == nil {
		t = interval.EqualTemperament
	}
	base, extensions, err := q.Intervals(t)
	if err != nil {
		return nil, nil, err
	}
	return scale.NewIntervalBuilder(base, scale.RelativeToStart), extensions, nil
}

// Get builds the chord named by quality on root, e.g. Get(440, "augM7b13#4", nil).
// The frequencies are sorted ascending. A nil temperament means equal
// temperament.
func Get(root float64, quality string, t *interval.Temperament) ([]float64, error) {
	q, err := Parse(quality)
	if err != nil {
		return nil, err
	}

	builder, extensions, err := GetBuilder(q, t)
	if err != nil {
		return nil, err
	}

	chord, err := builder.Build(root, extensions...)
	if err != nil {
		return nil, err
	}
	slices.Sort(chord)

	logging.Debug("built chord", logging.Fields{
		"root":       root,
		"base":       q.Base,
		"extensions": q.Extensions,
		"size":       len(chord),
	})
	return chord, nil
}

// Slide returns chord followed by one transposition per step, counted in
// semitones of t. Each step applies to the previous chord, so steps
// {1, -1, -1} yields chord, chord+1, chord, chord-1.
func Slide(chord []float64, t *interval.Temperament, steps ...int) [][]float64 {
	if t == nil {
		t = interval.EqualTemperament
	}
	progression := make([][]float64, 0, len(steps)+1)
	progression = append(progression, append([]float64(nil), chord...))

	current := chord
	for _, step := range steps {
		next := make([]float64, len(current))
		for i, f := range current {
			next[i] = t.Sharpen(f, step)
		}
		progression = append(progression, next)
		current = next
	}
	return progression
}

package scale

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/composer/interval"
)

var ErrUnknownMode = errors.New("unknown scale mode")

type Mode string

const (
	Major         Mode = "major"
	Minor         Mode = "minor"
	Chromatic     Mode = "chromatic"
	HarmonicMinor Mode = "harmonic_minor"
	Ionian        Mode = "ionian"
	Dorian        Mode = "dorian"
	Phrygian      Mode = "phrygian"
	Lydian        Mode = "lydian"
	Mixolydian    Mode = "mixolydian"
	Aeolian       Mode = "aeolian"
	Locrian       Mode = "locrian"
)

var diatonic = map[Mode][]interval.Degree{
	Major:         {interval.Unison, interval.MajorSecond, interval.MajorThird, interval.PerfectFourth, interval.PerfectFifth, interval.MajorSixth, interval.MajorSeventh},
	Minor:         {interval.Unison, interval.MajorSecond, interval.MinorThird, interval.PerfectFourth, interval.PerfectFifth, interval.MinorSixth, interval.MinorSeventh},
	HarmonicMinor: {interval.Unison, interval.MajorSecond, interval.MinorThird, interval.PerfectFourth, interval.PerfectFifth, interval.MinorSixth, interval.MajorSeventh},
	Dorian:        {interval.Unison, interval.MajorSecond, interval.MinorThird, interval.PerfectFourth, interval.PerfectFifth, interval.MajorSixth, interval.MinorSeventh},
	Phrygian:      {interval.Unison, interval.MinorSecond, interval.MinorThird, interval.PerfectFourth, interval.PerfectFifth, interval.MinorSixth, interval.MinorSeventh},
	Lydian:        {interval.Unison, interval.MajorSecond, interval.MajorThird, interval.AugmentedFourth, interval.PerfectFifth, interval.MajorSixth, interval.MajorSeventh},
	Mixolydian:    {interval.Unison, interval.MajorSecond, interval.MajorThird, interval.PerfectFourth, interval.PerfectFifth, interval.MajorSixth, interval.MinorSeventh},
	Locrian:       {interval.Unison, interval.MinorSecond, interval.MinorThird, interval.PerfectFourth, interval.DiminishedFifth, interval.MinorSixth, interval.MinorSeventh},
}

func init() {
	diatonic[Ionian] = diatonic[Major]
	diatonic[Aeolian] = diatonic[Minor]
}

// Modes lists every supported mode.
func Modes() []Mode {
	return []Mode{Major, Minor, Chromatic, HarmonicMinor, Ionian, Dorian, Phrygian, Lydian, Mixolydian, Aeolian, Locrian}
}

func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
	return m, nil
}

func (m Mode) Valid() bool {
	if m == Chromatic {
		return true
	}
	_, ok := diatonic[m]
	return ok
}

// BuilderFor returns the builder for mode in temperament t. Diatonic modes
// run from the root to its octave, chromatic chains 12 semitones.
func BuilderFor(mode Mode, t *interval.Temperament) (*Builder, error) {
	if t == nil {
		t = interval.EqualTemperament
	}

	if mode == Chromatic {
		intervals := []interval.Interval{t.At(interval.Unison)}
		for i := 0; i < interval.NumDegrees; i++ {
			intervals = append(intervals, t.Semitone())
		}
		return NewIntervalBuilder(intervals, RelativeToPrevious), nil
	}

	degrees, ok := diatonic[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	intervals := make([]interval.Interval, 0, len(degrees)+1)
	for _, d := range degrees {
		intervals = append(intervals, t.At(d))
	}
	intervals = append(intervals, t.Octave())
	return NewIntervalBuilder(intervals, RelativeToStart), nil
}

// Get builds the scale of mode from root. A nil temperament means equal
// temperament.
func Get(root float64, mode Mode, t *interval.Temperament) ([]float64, error) {
	b, err := BuilderFor(mode, t)
	if err != nil {
		return nil, err
	}
	return b.Build(root)
}

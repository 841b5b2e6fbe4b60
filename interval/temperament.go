package interval

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jsphweid/composer/util"
	"golang.org/x/exp/slices"
)

var (
	ErrIntervalCount      = errors.New("temperament needs exactly 12 intervals")
	ErrUnknownInterval    = errors.New("unknown interval")
	ErrUnknownTemperament = errors.New("unknown temperament")
)

// Octave is the 2:1 ratio shared by every temperament.
var Octave = MustNew(2)

// Temperament is a tuning system: 12 intervals indexed by Degree plus an
// alias table for chord extensions. It is read-only after construction.
type Temperament struct {
	name      string
	intervals [NumDegrees]Interval
	aliases   map[string]Interval
}

func NewTemperament(name string, intervals []Interval) (*Temperament, error) {
	if len(intervals) != NumDegrees {
		return nil, fmt.Errorf("%w: got %d", ErrIntervalCount, len(intervals))
	}

	t := &Temperament{name: name}
	for i, iv := range intervals {
		if iv.IsZero() {
			return nil, fmt.Errorf("%w: degree %v is unset", ErrNonPositiveInterval, Degree(i))
		}
		t.intervals[i] = iv
	}
	t.aliases = t.buildAliases()
	return t, nil
}

func mustTemperament(name string, intervals []Interval) *Temperament {
	t, err := NewTemperament(name, intervals)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Temperament) buildAliases() map[string]Interval {
	at := t.At
	octave := t.Octave()

	return map[string]Interval{
		"P1": at(Unison),
		"1":  at(Unison),
		"m2": at(MinorSecond),
		"b2": at(MinorSecond),
		"M2": at(MajorSecond),
		"2":  at(MajorSecond),
		"m3": at(MinorThird),
		"b3": at(MinorThird),
		"M3": at(MajorThird),
		"3":  at(MajorThird),
		"P4": at(PerfectFourth),
		"4":  at(PerfectFourth),
		"A4": at(AugmentedFourth),
		"#4": at(AugmentedFourth),
		"D5": at(DiminishedFifth),
		"b5": at(DiminishedFifth),
		"P5": at(PerfectFifth),
		"5":  at(PerfectFifth),
		"#5": at(MinorSixth),
		"m6": at(MinorSixth),
		"b6": at(MinorSixth),
		"M6": at(MajorSixth),
		"6":  at(MajorSixth),
		"m7": at(MinorSeventh),
		"b7": at(MinorSeventh),
		"7":  at(MinorSeventh),
		"M7": at(MajorSeventh),
		"P8": octave,
		"8":  octave,

		// compound intervals, one octave up
		"b9":  octave.Compose(at(MinorSecond)),
		"M9":  octave.Compose(at(MajorSecond)),
		"9":   octave.Compose(at(MajorSecond)),
		"#9":  octave.Compose(at(MinorThird)),
		"M11": octave.Compose(at(PerfectFourth)),
		"11":  octave.Compose(at(PerfectFourth)),
		"#11": octave.Compose(at(Tritone)),
		"b13": octave.Compose(at(MinorSixth)),
		"M13": octave.Compose(at(MajorSixth)),
		"13":  octave.Compose(at(MajorSixth)),
	}
}

func (t *Temperament) Name() string {
	return t.name
}

// At returns the interval for a degree. Out of range degrees wrap.
func (t *Temperament) At(d Degree) Interval {
	idx := ((int(d) % NumDegrees) + NumDegrees) % NumDegrees
	return t.intervals[idx]
}

// Intervals returns a copy of the 12 intervals in degree order.
func (t *Temperament) Intervals() []Interval {
	res := make([]Interval, NumDegrees)
	copy(res, t.intervals[:])
	return res
}

func (t *Temperament) Octave() Interval {
	return Octave
}

func (t *Temperament) Semitone() Interval {
	return t.At(SemitoneStep)
}

// Named resolves a degree name such as "MAJOR_THIRD" or "tritone".
func (t *Temperament) Named(name string) (Interval, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	if key == "OCTAVE" {
		return t.Octave(), nil
	}
	for d, n := range degreeNames {
		if n == key {
			return t.intervals[d], nil
		}
	}
	if d, ok := degreeSynonyms[key]; ok {
		return t.At(d), nil
	}
	return Interval{}, fmt.Errorf("%w: %q in %s", ErrUnknownInterval, name, t.name)
}

// Aliased resolves a short extension token such as "m3", "#11" or "b13".
// Tokens are case sensitive: "M7" and "m7" differ.
func (t *Temperament) Aliased(token string) (Interval, error) {
	iv, ok := t.aliases[token]
	if !ok {
		return Interval{}, fmt.Errorf("%w: alias %q in %s", ErrUnknownInterval, token, t.name)
	}
	return iv, nil
}

// Aliases lists the alias tokens in sorted order.
func (t *Temperament) Aliases() []string {
	keys := util.GetKeys(t.aliases)
	slices.Sort(keys)
	return keys
}

func (t *Temperament) Sharpen(frequency float64, count int) float64 {
	return Sharpen(frequency, t.Semitone(), count)
}

func (t *Temperament) Flatten(frequency float64, count int) float64 {
	return Flatten(frequency, t.Semitone(), count)
}

func (t *Temperament) String() string {
	return fmt.Sprintf("Temperament<%s>", t.name)
}

func equalSteps() []Interval {
	res := make([]Interval, NumDegrees)
	for i := range res {
		res[i] = MustNew(math.Pow(2, float64(i)/NumDegrees))
	}
	return res
}

// EqualTemperament divides the octave into 12 equal log-steps of 2^(1/12).
var EqualTemperament = mustTemperament("equal", equalSteps())

// JustIntonation uses small-integer ratios.
var JustIntonation = mustTemperament("just", []Interval{
	MustNew(1),
	MustNew(25.0 / 24),
	MustNew(9.0 / 8),
	MustNew(6.0 / 5),
	MustNew(5.0 / 4),
	MustNew(4.0 / 3),
	MustNew(45.0 / 32),
	MustNew(3.0 / 2),
	MustNew(8.0 / 5),
	MustNew(5.0 / 3),
	MustNew(9.0 / 5),
	MustNew(15.0 / 8),
})

var temperaments = map[string]*Temperament{
	EqualTemperament.name: EqualTemperament,
	JustIntonation.name:   JustIntonation,
}

// ByName looks up one of the canonical temperaments ("equal" or "just").
// An empty name selects equal temperament.
func ByName(name string) (*Temperament, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return EqualTemperament, nil
	}
	t, ok := temperaments[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemperament, name)
	}
	return t, nil
}

package pitch

import (
	"fmt"
	"math"

	"github.com/jsphweid/composer/interval"
)

// DefaultTolerance is a quarter of an equal-tempered semitone, in octaves.
const DefaultTolerance = 1.0 / 48

// Pitch is a complete PitchInfo: class, accidental, register and
// frequency are always set.
type Pitch struct {
	PitchInfo
}

// FromFrequency names the chromatic pitch nearest to frequency. The pitch
// keeps the exact frequency it was built from.
func FromFrequency(frequency float64) (Pitch, error) {
	info, err := PitchInfoFromFrequency(frequency)
	if err != nil {
		return Pitch{}, err
	}
	return Pitch{info}, nil
}

// Parse builds a pitch from a string such as "C4" or "Ab5". A missing
// register means DefaultRegister.
func Parse(s string) (Pitch, error) {
	info, err := ParsePitchInfo(s)
	if err != nil {
		return Pitch{}, err
	}
	if info.Register == NoRegister {
		return New(info.PitchClass, info.Accidental, DefaultRegister)
	}
	return Pitch{info}, nil
}

// New builds a pitch from explicit fields. An empty accidental means
// natural.
func New(pc PitchClass, accidental Accidental, register int) (Pitch, error) {
	info, err := resolveNamed(PitchInfo{PitchClass: pc, Accidental: accidental, Register: register})
	if err != nil {
		return Pitch{}, err
	}
	return Pitch{info}, nil
}

// FromInfo completes a partial PitchInfo. A complete info is taken as is,
// otherwise a set frequency wins over the symbolic fields.
func FromInfo(info PitchInfo) (Pitch, error) {
	switch {
	case info.Complete():
		return Pitch{info}, nil
	case info.Frequency > 0:
		return FromFrequency(info.Frequency)
	case info.Register == NoRegister:
		return New(info.PitchClass, info.Accidental, DefaultRegister)
	default:
		return New(info.PitchClass, info.Accidental, info.Register)
	}
}

// Matches reports whether other is the same pitch class as p in any
// octave, within DefaultTolerance.
func (p Pitch) Matches(other Pitch) bool {
	return p.MatchesWithin(other, DefaultTolerance)
}

// MatchesWithin is Matches with a tolerance in octaves. Ratios just short
// of a whole number of octaves match as well as those just above.
func (p Pitch) MatchesWithin(other Pitch, tolerance float64) bool {
	octaves := math.Abs(math.Log2(other.Frequency / p.Frequency))
	frac := octaves - math.Floor(octaves)
	return frac <= tolerance || 1-frac <= tolerance
}

// AtInterval returns the pitch i above p.
func (p Pitch) AtInterval(i interval.Interval) (Pitch, error) {
	return FromFrequency(i.Apply(p.Frequency))
}

func (p Pitch) String() string {
	return fmt.Sprintf("Pitch<%v,%s,%d,%s>", p.Frequency, p.PitchClass, p.Register, p.Accidental)
}

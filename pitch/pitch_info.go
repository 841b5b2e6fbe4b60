package pitch

import (
	"errors"
	"fmt"
	"math"

	"github.com/jsphweid/composer/util"
)

var (
	ErrNoEnharmonic       = errors.New("pitch has no enharmonic equivalent")
	ErrUnknownPitch       = errors.New("no chromatic pitch matches")
	ErrNoReference        = errors.New("chromatic table has no complete reference pitch")
	ErrInvalidFrequency   = errors.New("frequency must be positive")
	ErrInvalidPitchString = errors.New("invalid pitch string")
	ErrInvalidKey         = errors.New("invalid key signature")
)

type PitchClass string

const (
	A PitchClass = "A"
	B PitchClass = "B"
	C PitchClass = "C"
	D PitchClass = "D"
	E PitchClass = "E"
	F PitchClass = "F"
	G PitchClass = "G"
)

var pitchClasses = []PitchClass{A, B, C, D, E, F, G}

// PitchClasses lists the seven letters starting from start. An empty
// start begins at A.
func PitchClasses(start PitchClass) []PitchClass {
	return util.Rotate(pitchClasses, start)
}

func (pc PitchClass) Valid() bool {
	switch pc {
	case A, B, C, D, E, F, G:
		return true
	}
	return false
}

// Next returns the following letter, G wraps to A.
func (pc PitchClass) Next() PitchClass {
	next, _ := util.NextWrap(pc, pitchClasses, 0)
	return next
}

// Previous returns the preceding letter, A wraps to G.
func (pc PitchClass) Previous() PitchClass {
	prev, _ := util.PrevWrap(pc, pitchClasses, 0)
	return prev
}

type Accidental string

const (
	Flat    Accidental = "flat"
	Natural Accidental = "natural"
	Sharp   Accidental = "sharp"
)

func (a Accidental) Valid() bool {
	switch a {
	case Flat, Natural, Sharp:
		return true
	}
	return false
}

// Symbol is the pitch-string token: "#", "b" or "".
func (a Accidental) Symbol() string {
	switch a {
	case Sharp:
		return "#"
	case Flat:
		return "b"
	}
	return ""
}

// NoRegister marks a PitchInfo whose register is not known.
const NoRegister = math.MinInt32

// DefaultRegister is used when a pitch is built without one.
const DefaultRegister = 4

// PitchInfo is a possibly partial pitch description. A zero Frequency
// and NoRegister mean "unset".
type PitchInfo struct {
	Frequency            float64
	PitchClass           PitchClass
	Accidental           Accidental
	Register             int
	EnharmonicPitchClass PitchClass
	EnharmonicAccidental Accidental
}

func (p PitchInfo) Complete() bool {
	return p.PitchClass != "" && p.Accidental != "" && p.Frequency > 0 && p.Register != NoRegister
}

func (p PitchInfo) HasEnharmonic() bool {
	return p.EnharmonicPitchClass != "" && p.EnharmonicAccidental != ""
}

// SwapEnharmonic returns a copy with the primary and enharmonic names
// exchanged.
func (p PitchInfo) SwapEnharmonic() (PitchInfo, error) {
	if !p.HasEnharmonic() {
		return p, fmt.Errorf("%w: %s", ErrNoEnharmonic, p.Name())
	}
	p.PitchClass, p.EnharmonicPitchClass = p.EnharmonicPitchClass, p.PitchClass
	p.Accidental, p.EnharmonicAccidental = p.EnharmonicAccidental, p.Accidental
	return p, nil
}

// Name renders the pitch class and accidental, e.g. "G#" or "Ab".
func (p PitchInfo) Name() string {
	return string(p.PitchClass) + p.Accidental.Symbol()
}

func (p PitchInfo) String() string {
	reg := "?"
	if p.Register != NoRegister {
		reg = fmt.Sprint(p.Register)
	}
	return fmt.Sprintf("PitchInfo<%v,%s,%s,%s>", p.Frequency, p.PitchClass, reg, p.Accidental)
}

// IsEnharmonicMatch reports whether a and b name the same pitch through an
// enharmonic twin. Naturals have no twin and never match this way.
func IsEnharmonicMatch(a, b PitchInfo) bool {
	if a.EnharmonicPitchClass != "" {
		if a.EnharmonicPitchClass == b.PitchClass && a.EnharmonicAccidental == b.Accidental {
			return true
		}
		if a.EnharmonicPitchClass == b.EnharmonicPitchClass && a.EnharmonicAccidental == b.EnharmonicAccidental {
			return true
		}
	}
	return b.EnharmonicPitchClass != "" && a.PitchClass == b.EnharmonicPitchClass && a.Accidental == b.EnharmonicAccidental
}

func IsMatchingPitchInfo(a, b PitchInfo) bool {
	return (a.PitchClass != "" && a.PitchClass == b.PitchClass && a.Accidental == b.Accidental) || IsEnharmonicMatch(a, b)
}

// chromaticTable covers one chromatic octave from A4 to G#5. Exactly one
// entry is complete and anchors all frequency arithmetic.
var chromaticTable = [12]PitchInfo{
	{PitchClass: A, Accidental: Natural, Register: 4, Frequency: 440},
	{PitchClass: A, Accidental: Sharp, EnharmonicPitchClass: B, EnharmonicAccidental: Flat, Register: 4},
	{PitchClass: B, Accidental: Natural, Register: 4},
	{PitchClass: C, Accidental: Natural, Register: 5},
	{PitchClass: C, Accidental: Sharp, EnharmonicPitchClass: D, EnharmonicAccidental: Flat, Register: 5},
	{PitchClass: D, Accidental: Natural, Register: 5},
	{PitchClass: D, Accidental: Sharp, EnharmonicPitchClass: E, EnharmonicAccidental: Flat, Register: 5},
	{PitchClass: E, Accidental: Natural, Register: 5},
	{PitchClass: F, Accidental: Natural, Register: 5},
	{PitchClass: F, Accidental: Sharp, EnharmonicPitchClass: G, EnharmonicAccidental: Flat, Register: 5},
	{PitchClass: G, Accidental: Natural, Register: 5},
	{PitchClass: G, Accidental: Sharp, EnharmonicPitchClass: A, EnharmonicAccidental: Flat, Register: 5},
}

// ChromaticPitches returns a copy of the chromatic reference table.
func ChromaticPitches() []PitchInfo {
	res := make([]PitchInfo, len(chromaticTable))
	copy(res, chromaticTable[:])
	return res
}

// CompletePitchInfo returns the first complete entry of table and its index.
func CompletePitchInfo(table []PitchInfo) (PitchInfo, int, error) {
	for i, p := range table {
		if p.Complete() {
			return p, i, nil
		}
	}
	return PitchInfo{}, -1, ErrNoReference
}

// MatchingPitchInfo returns the first entry of table naming the same pitch
// as p, directly or through an enharmonic twin.
func MatchingPitchInfo(p PitchInfo, table []PitchInfo) (PitchInfo, int, error) {
	for i, entry := range table {
		if IsMatchingPitchInfo(p, entry) {
			return entry, i, nil
		}
	}
	return PitchInfo{}, -1, fmt.Errorf("%w: %s", ErrUnknownPitch, p.Name())
}

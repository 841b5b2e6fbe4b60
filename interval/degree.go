package interval

// Degree is a semitone step from unison within one octave of a
// 12-tone temperament.
type Degree int

const (
	Unison Degree = iota
	MinorSecond
	MajorSecond
	MinorThird
	MajorThird
	PerfectFourth
	Tritone
	PerfectFifth
	MinorSixth
	MajorSixth
	MinorSeventh
	MajorSeventh
)

// Synonyms for degrees that share a slot.
const (
	DiminishedFifth = Tritone
	AugmentedFourth = Tritone
	Tone            = MajorSecond
	SemitoneStep    = MinorSecond
)

// NumDegrees is the number of intervals in a Temperament.
const NumDegrees = 12

var degreeNames = [NumDegrees]string{
	"UNISON",
	"MINOR_SECOND",
	"MAJOR_SECOND",
	"MINOR_THIRD",
	"MAJOR_THIRD",
	"PERFECT_FOURTH",
	"TRITONE",
	"PERFECT_FIFTH",
	"MINOR_SIXTH",
	"MAJOR_SIXTH",
	"MINOR_SEVENTH",
	"MAJOR_SEVENTH",
}

// degreeSynonyms are extra names accepted by Temperament.Named.
var degreeSynonyms = map[string]Degree{
	"DIMINISHED_FIFTH": DiminishedFifth,
	"AUGMENTED_FOURTH": AugmentedFourth,
	"TONE":             Tone,
	"SEMITONE":         SemitoneStep,
}

func (d Degree) Valid() bool {
	return d >= Unison && d <= MajorSeventh
}

func (d Degree) String() string {
	if !d.Valid() {
		return "UNKNOWN"
	}
	return degreeNames[d]
}

package pitch

import (
	"fmt"
	"math"

	"github.com/jsphweid/composer/interval"
	"github.com/jsphweid/composer/logging"
	"github.com/jsphweid/composer/util"
)

var (
	semitone = interval.EqualTemperament.Semitone().Value()
	octave   = interval.Octave.Value()
)

func logBase(x, base float64) float64 {
	return math.Log(x) / math.Log(base)
}

// IntervalBetween is the ratio that takes a to b.
func IntervalBetween(a, b float64) float64 {
	return b / a
}

// FrequencyFromPitchInfo computes the frequency of the pitch named by
// info's class, accidental and register. The octave shift is measured
// against the register of the matching chromatic entry.
func FrequencyFromPitchInfo(info PitchInfo) (float64, error) {
	table := chromaticTable[:]

	reference, referenceIdx, err := CompletePitchInfo(table)
	if err != nil {
		return 0, err
	}

	query := PitchInfo{PitchClass: info.PitchClass, Accidental: info.Accidental}
	if query.Accidental == "" {
		query.Accidental = Natural
	}
	matching, matchingIdx, err := MatchingPitchInfo(query, table)
	if err != nil {
		return 0, err
	}

	register := info.Register
	if register == NoRegister {
		register = matching.Register
	}

	semitones := matchingIdx - referenceIdx
	if semitones < 0 {
		semitones = -semitones
	}
	octaves := register - matching.Register

	base := reference.Frequency * math.Pow(semitone, float64(semitones))
	return base * math.Pow(octave, float64(octaves)), nil
}

// PitchInfoFromFrequency resolves a frequency to the nearest chromatic
// pitch. The returned info keeps the input frequency.
func PitchInfoFromFrequency(frequency float64) (PitchInfo, error) {
	if !(frequency > 0) || math.IsInf(frequency, 1) {
		return PitchInfo{}, fmt.Errorf("%w: %v", ErrInvalidFrequency, frequency)
	}

	table := chromaticTable[:]
	reference, referenceIdx, err := CompletePitchInfo(table)
	if err != nil {
		return PitchInfo{}, err
	}

	// whole octaves needed to bring frequency into (reference/2, reference]
	scale := int(math.Floor(logBase(reference.Frequency, octave) - logBase(frequency, octave)))
	normalized := frequency * math.Pow(octave, float64(scale))

	offset := int(math.Round(logBase(IntervalBetween(reference.Frequency, normalized), semitone)))
	position := referenceIdx + offset
	idx := util.Mod(position, len(table))

	found := table[idx]
	// the table ascends from the reference, so wrapping below it drops an octave
	found.Register = found.Register - scale + util.FloorDiv(position, len(table))
	found.Frequency = frequency

	logging.Debug("resolved frequency", logging.Fields{
		"frequency": frequency,
		"pitch":     found.Name(),
		"register":  found.Register,
	})
	return found, nil
}

package pitch

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// letter, then an accidental and a register in either order: C4, Ab5, A5b, F#3, C
var pitchStringRegex = regexp.MustCompile(`^([A-G])([#b]?)(-?\d+)?([#b]?)$`)

func parseAccidental(token string) Accidental {
	switch token {
	case "#":
		return Sharp
	case "b":
		return Flat
	}
	return Natural
}

// ParsePitchInfo parses a pitch string. Without a register the result is
// partial: pitch class and accidental only, with NoRegister and no
// frequency.
func ParsePitchInfo(s string) (PitchInfo, error) {
	s = strings.TrimSpace(s)
	m := pitchStringRegex.FindStringSubmatch(s)
	if m == nil {
		return PitchInfo{}, fmt.Errorf("%w: %q", ErrInvalidPitchString, s)
	}
	if m[2] != "" && m[4] != "" {
		return PitchInfo{}, fmt.Errorf("%w: %q has two accidentals", ErrInvalidPitchString, s)
	}

	query := PitchInfo{
		PitchClass: PitchClass(m[1]),
		Accidental: parseAccidental(m[2] + m[4]),
		Register:   NoRegister,
	}

	if m[3] != "" {
		register, err := strconv.Atoi(m[3])
		if err != nil {
			return PitchInfo{}, fmt.Errorf("%w: %q: %v", ErrInvalidPitchString, s, err)
		}
		query.Register = register
	}

	res, err := resolveNamed(query)
	if err != nil {
		return PitchInfo{}, fmt.Errorf("%w: %q: %v", ErrInvalidPitchString, s, err)
	}
	return res, nil
}

// resolveNamed fills in the enharmonic twin of query from the chromatic
// table and, when the register is known, its frequency. The result keeps
// the class and accidental that were asked for.
func resolveNamed(query PitchInfo) (PitchInfo, error) {
	if query.Accidental == "" {
		query.Accidental = Natural
	}
	if !query.PitchClass.Valid() || !query.Accidental.Valid() {
		return PitchInfo{}, fmt.Errorf("%w: %s", ErrUnknownPitch, query.Name())
	}

	matching, _, err := MatchingPitchInfo(query, chromaticTable[:])
	if err != nil {
		return PitchInfo{}, err
	}

	res := matching
	res.Register = query.Register
	res.Frequency = 0
	if res.Register != NoRegister {
		res.Frequency, err = FrequencyFromPitchInfo(res)
		if err != nil {
			return PitchInfo{}, err
		}
	}

	if res.PitchClass != query.PitchClass || res.Accidental != query.Accidental {
		return res.SwapEnharmonic()
	}
	return res, nil
}

package cmd

import (
	"strconv"
	"strings"

	"github.com/jsphweid/composer/chord"
	"github.com/jsphweid/composer/interval"
	"github.com/jsphweid/composer/midi"
	"github.com/jsphweid/composer/model"
	"github.com/jsphweid/composer/pitch"
	"github.com/jsphweid/composer/scale"
)

func BuildChord(root float64, quality string, t *interval.Temperament) (model.Chord, error) {
	frequencies, err := chord.Get(root, quality, t)
	if err != nil {
		return model.Chord{}, err
	}

	res := model.Chord{
		Root:        root,
		Quality:     quality,
		Temperament: t.Name(),
		Frequencies: frequencies,
	}
	if keys, err := midi.Keys(frequencies); err == nil {
		res.Notes = make(model.Notes, len(keys))
		for i, key := range keys {
			res.Notes[i] = int(key)
		}
		res.ChordKey = chord.CreateChordKey(keys)
	}
	return res, nil
}

func BuildScale(root float64, mode string, t *interval.Temperament) (model.Scale, error) {
	m, err := scale.ParseMode(mode)
	if err != nil {
		return model.Scale{}, err
	}
	rootPitch, err := pitch.FromFrequency(root)
	if err != nil {
		return model.Scale{}, err
	}

	key := pitch.NewKeySignature(rootPitch, m)
	key.Temperament = t
	pitches, err := key.Scale()
	if err != nil {
		return model.Scale{}, err
	}

	res := model.Scale{
		Root:        root,
		Mode:        string(m),
		Temperament: t.Name(),
		Frequencies: make([]float64, 0, len(pitches)),
		Pitches:     make([]model.Pitch, 0, len(pitches)),
	}
	for _, p := range pitches {
		res.Frequencies = append(res.Frequencies, p.Frequency)
		res.Pitches = append(res.Pitches, ToModelPitch(p))
	}
	return res, nil
}

// ResolvePitch reads identifier as a frequency when it is a number and as
// a pitch string otherwise.
func ResolvePitch(identifier string) (pitch.Pitch, error) {
	identifier = strings.TrimSpace(identifier)
	if f, err := strconv.ParseFloat(identifier, 64); err == nil {
		return pitch.FromFrequency(f)
	}
	return pitch.Parse(identifier)
}

func ToModelPitch(p pitch.Pitch) model.Pitch {
	return model.Pitch{
		Name:                 p.Name() + strconv.Itoa(p.Register),
		Frequency:            p.Frequency,
		PitchClass:           string(p.PitchClass),
		Accidental:           string(p.Accidental),
		Register:             p.Register,
		EnharmonicPitchClass: string(p.EnharmonicPitchClass),
		EnharmonicAccidental: string(p.EnharmonicAccidental),
	}
}

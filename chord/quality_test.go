package chord

import (
	"errors"
	"testing"

	"github.com/jsphweid/composer/interval"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input      string
		base       BaseQuality
		extensions []string
	}{
		{"M", Major, nil},
		{"m", Minor, nil},
		{"m7", Minor, []string{"7"}},
		{"M7", Major, []string{"7"}},
		{"MM7", Major, []string{"M7"}},
		{"sus2", Sus2, nil},
		{"sus4M9", Sus4, []string{"M9"}},
		{"dimb9", Diminished, []string{"b9"}},
		{"augM7b13#4", Augmented, []string{"M7", "b13", "#4"}},
		{"M13#11", Major, []string{"13", "#11"}},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			q, err := Parse(c.input)

			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(c.base, q.Base)
			assert.Equal(c.extensions, q.Extensions)
			assert.Equal(c.input, q.String())
		})
	}
}

func TestParseUnrecognizedQuality(t *testing.T) {
	for _, input := range []string{"", "x", "Sus2", "7"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.True(t, errors.Is(err, ErrUnrecognizedQuality), "%v", err)
		})
	}
}

func TestParseInvalidExtension(t *testing.T) {
	for _, input := range []string{"Mz9", "M9z", "m7 9", "augM", "Mb", "dim#", "major"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.True(t, errors.Is(err, ErrInvalidExtension), "%v", err)
		})
	}
}

func TestQualityIntervals(t *testing.T) {
	q, err := Parse("mM9")
	assert.NoError(t, err)

	base, extensions, err := q.Intervals(interval.JustIntonation)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(base, 3)
	assert.Equal(6.0/5, base[1].Value())
	assert.Len(extensions, 1)
	assert.Equal(2*9.0/8, extensions[0].Value())

	_, _, err = Quality{Base: Major, Extensions: []string{"z9"}}.Intervals(interval.EqualTemperament)
	assert.True(errors.Is(err, ErrUnrecognizedInterval))

	_, _, err = Quality{Base: "maj"}.Intervals(interval.EqualTemperament)
	assert.True(errors.Is(err, ErrUnrecognizedQuality))
}

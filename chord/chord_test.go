package chord

import (
	"errors"
	"math"
	"testing"

	"github.com/jsphweid/composer/interval"
	"github.com/stretchr/testify/assert"
)

func TestCreateChordKey(t *testing.T) {
	keys := []uint8{64, 57, 61}

	assert := assert.New(t)
	assert.Equal("57-61-64", CreateChordKey(keys))
	assert.Equal([]uint8{64, 57, 61}, keys)
	assert.Equal("60", CreateChordKey([]uint8{60}))
	assert.Equal("", CreateChordKey(nil))
}

func TestGetMajor(t *testing.T) {
	res, err := Get(440, "M", nil)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(res, 3)
	assert.InDelta(440.0, res[0], 1e-9)
	assert.InDelta(440*math.Pow(2, 4.0/12), res[1], 1e-9)
	assert.InDelta(440*math.Pow(2, 7.0/12), res[2], 1e-9)
}

func TestGetJustMajor(t *testing.T) {
	res, err := Get(440, "M", interval.JustIntonation)

	assert.NoError(t, err)
	assert.Equal(t, []float64{440, 550, 660}, res)
}

func TestGetTriads(t *testing.T) {
	cases := map[string][]float64{
		"m":    {0, 3, 7},
		"sus2": {0, 2, 7},
		"sus4": {0, 5, 7},
		"dim":  {0, 3, 6},
		"aug":  {0, 4, 8},
		"m7":   {0, 3, 7, 10},
		"MM7":  {0, 4, 7, 11},
		"M9":   {0, 4, 7, 14},
	}
	for quality, semitones := range cases {
		t.Run(quality, func(t *testing.T) {
			res, err := Get(220, quality, interval.EqualTemperament)
			assert.NoError(t, err)
			assert.Len(t, res, len(semitones))
			for i, s := range semitones {
				assert.InDelta(t, 220*math.Pow(2, s/12), res[i], 1e-9)
			}
		})
	}
}

func TestGetExtendedIsSortedAndDistinct(t *testing.T) {
	res, err := Get(440, "augM7b13#4", nil)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(res, 6)
	for i := 1; i < len(res); i++ {
		assert.Less(res[i-1], res[i])
	}
	assert.InDelta(440*math.Pow(2, 6.0/12), res[2], 1e-9)
	assert.InDelta(880*math.Pow(2, 8.0/12), res[5], 1e-9)
}

func TestGetErrors(t *testing.T) {
	_, err := Get(440, "Mz9", nil)
	assert.True(t, errors.Is(err, ErrInvalidExtension))

	_, err = Get(440, "q", nil)
	assert.True(t, errors.Is(err, ErrUnrecognizedQuality))

	_, err = Get(440, "M#12", nil)
	assert.True(t, errors.Is(err, ErrUnrecognizedInterval))

	_, err = Get(0, "M", nil)
	assert.Error(t, err)
}

func TestSlide(t *testing.T) {
	chord := []float64{440, 550}

	progression := Slide(chord, nil, 1, -1, -1)

	assert := assert.New(t)
	assert.Len(progression, 4)
	assert.Equal(chord, progression[0])
	assert.InDelta(440*math.Pow(2, 1.0/12), progression[1][0], 1e-9)
	assert.InDelta(440.0, progression[2][0], 1e-9)
	assert.InDelta(550.0, progression[2][1], 1e-9)
	assert.InDelta(440/math.Pow(2, 1.0/12), progression[3][0], 1e-9)
	assert.Equal([]float64{440, 550}, chord)

	octave := Slide([]float64{440}, interval.EqualTemperament, 12)
	assert.InDelta(880.0, octave[1][0], 1e-9)

	assert.Equal([][]float64{{440}}, Slide([]float64{440}, nil))
}

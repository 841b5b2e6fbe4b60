package pitch

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequencyFromPitchInfo(t *testing.T) {
	cases := []struct {
		info PitchInfo
		want float64
	}{
		{PitchInfo{PitchClass: A, Accidental: Natural, Register: 4}, 440},
		{PitchInfo{PitchClass: A, Accidental: Natural, Register: 5}, 880},
		{PitchInfo{PitchClass: A, Accidental: Natural, Register: 3}, 220},
		{PitchInfo{PitchClass: C, Accidental: Natural, Register: 4}, 261.63},
		{PitchInfo{PitchClass: C, Accidental: Natural, Register: 5}, 523.25},
		{PitchInfo{PitchClass: A, Accidental: Flat, Register: 5}, 830.61},
		{PitchInfo{PitchClass: G, Accidental: Sharp, Register: 4}, 415.30},
		{PitchInfo{PitchClass: A, Accidental: Sharp, Register: 5}, 932.33},
		{PitchInfo{PitchClass: B, Accidental: Natural, Register: 4}, 493.88},
		{PitchInfo{PitchClass: E, Register: 5}, 659.26},
	}
	for _, c := range cases {
		t.Run(c.info.String(), func(t *testing.T) {
			f, err := FrequencyFromPitchInfo(c.info)
			assert.NoError(t, err)
			assert.InDelta(t, c.want, f, 0.01)
		})
	}
}

func TestFrequencyFromPitchInfoWithoutRegister(t *testing.T) {
	f, err := FrequencyFromPitchInfo(PitchInfo{PitchClass: C, Accidental: Natural, Register: NoRegister})
	assert.NoError(t, err)
	assert.InDelta(t, 523.25, f, 0.01)
}

func TestFrequencyFromPitchInfoUnknown(t *testing.T) {
	_, err := FrequencyFromPitchInfo(PitchInfo{PitchClass: "H", Accidental: Natural, Register: 4})
	assert.True(t, errors.Is(err, ErrUnknownPitch))
}

func TestPitchInfoFromFrequency(t *testing.T) {
	cases := []struct {
		frequency  float64
		pitchClass PitchClass
		accidental Accidental
		register   int
	}{
		{440, A, Natural, 4},
		{880, A, Natural, 5},
		{220, A, Natural, 3},
		{27.5, A, Natural, 0},
		{261.63, C, Natural, 4},
		{523.25, C, Natural, 5},
		{466.16, A, Sharp, 4},
		{932.33, A, Sharp, 5},
		{415.30, G, Sharp, 4},
		{830.61, G, Sharp, 5},
		{493.88, B, Natural, 4},
		{445, A, Natural, 4},
		{435, A, Natural, 4},
	}
	for _, c := range cases {
		t.Run(fmt.Sprint(c.frequency), func(t *testing.T) {
			info, err := PitchInfoFromFrequency(c.frequency)

			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(c.pitchClass, info.PitchClass, "%v Hz", c.frequency)
			assert.Equal(c.accidental, info.Accidental, "%v Hz", c.frequency)
			assert.Equal(c.register, info.Register, "%v Hz", c.frequency)
			assert.Equal(c.frequency, info.Frequency)
		})
	}
}

func TestPitchInfoFromFrequencyInvalid(t *testing.T) {
	for _, f := range []float64{0, -440, math.NaN(), math.Inf(1)} {
		_, err := PitchInfoFromFrequency(f)
		assert.True(t, errors.Is(err, ErrInvalidFrequency), "%v", f)
	}
}

func TestRoundTrip(t *testing.T) {
	for register := 0; register <= 8; register++ {
		for _, entry := range ChromaticPitches() {
			query := PitchInfo{PitchClass: entry.PitchClass, Accidental: entry.Accidental, Register: register}
			f, err := FrequencyFromPitchInfo(query)
			assert.NoError(t, err)

			info, err := PitchInfoFromFrequency(f)
			assert.NoError(t, err)
			assert.Equal(t, entry.PitchClass, info.PitchClass, "%s%d", entry.Name(), register)
			assert.Equal(t, entry.Accidental, info.Accidental, "%s%d", entry.Name(), register)
			assert.Equal(t, register, info.Register, "%s%d", entry.Name(), register)
		}
	}
}

package pitch

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/jsphweid/composer/interval"
	"github.com/jsphweid/composer/scale"
	"github.com/stretchr/testify/assert"
)

func names(pitches []Pitch) []string {
	res := make([]string, len(pitches))
	for i, p := range pitches {
		res[i] = p.Name()
	}
	return res
}

func TestKeySignatureScale(t *testing.T) {
	key := NewKeySignature(mustFrequency(t, 440), scale.Major)

	pitches, err := key.Scale()

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{"A", "B", "C#", "D", "E", "F#", "G#", "A"}, names(pitches))
	assert.Equal(4, pitches[0].Register)
	assert.Equal(5, pitches[7].Register)

	pitches[0] = Pitch{}
	again, err := key.Scale()
	assert.NoError(err)
	assert.Equal(A, again[0].PitchClass)
}

func TestKeySignatureJustIntonation(t *testing.T) {
	key := NewKeySignature(mustFrequency(t, 440), scale.Major)
	key.Temperament = interval.JustIntonation

	pitches, err := key.Scale()

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(pitches, 8)
	assert.InDelta(550.0, pitches[2].Frequency, 1e-9)
	assert.Equal("C#", pitches[2].Name())
}

func TestKeySignatureInvalid(t *testing.T) {
	cases := map[string]*KeySignature{
		"nil":        nil,
		"empty root": NewKeySignature(Pitch{}, scale.Major),
		"bad mode":   NewKeySignature(Pitch{PitchInfo{Frequency: 440, PitchClass: A, Accidental: Natural, Register: 4}}, "blues"),
	}
	for name, key := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := key.Scale()
			assert.True(t, errors.Is(err, ErrInvalidKey))

			_, err = RandomPitch(key, nil)
			assert.True(t, errors.Is(err, ErrInvalidKey))
		})
	}
}

func TestRandomPitch(t *testing.T) {
	key := NewKeySignature(mustFrequency(t, 261.63), scale.Minor)
	pitches, err := key.Scale()
	assert.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		p, err := RandomPitch(key, rng)
		assert.NoError(t, err)
		assert.Contains(t, pitches, p)
	}
}

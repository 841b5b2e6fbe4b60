package pitch

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/jsphweid/composer/interval"
	"github.com/jsphweid/composer/scale"
)

// KeySignature is a root pitch and a scale mode. Its scale is derived on
// first use and cached.
type KeySignature struct {
	Root        Pitch
	Mode        scale.Mode
	Temperament *interval.Temperament

	once    sync.Once
	pitches []Pitch
	err     error
}

func NewKeySignature(root Pitch, mode scale.Mode) *KeySignature {
	return &KeySignature{Root: root, Mode: mode}
}

func (k *KeySignature) validate() error {
	if k == nil {
		return fmt.Errorf("%w: nil key", ErrInvalidKey)
	}
	if !k.Root.Complete() {
		return fmt.Errorf("%w: incomplete root %s", ErrInvalidKey, k.Root.PitchInfo)
	}
	if !k.Mode.Valid() {
		return fmt.Errorf("%w: mode %q", ErrInvalidKey, k.Mode)
	}
	return nil
}

// Scale returns the pitches of the key's scale in scale order. The
// returned slice is a copy.
func (k *KeySignature) Scale() ([]Pitch, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}
	k.once.Do(func() {
		k.pitches, k.err = k.buildScale()
	})
	if k.err != nil {
		return nil, k.err
	}
	return append([]Pitch(nil), k.pitches...), nil
}

func (k *KeySignature) buildScale() ([]Pitch, error) {
	frequencies, err := scale.Get(k.Root.Frequency, k.Mode, k.Temperament)
	if err != nil {
		return nil, err
	}
	pitches := make([]Pitch, 0, len(frequencies))
	for _, f := range frequencies {
		p, err := FromFrequency(f)
		if err != nil {
			return nil, err
		}
		pitches = append(pitches, p)
	}
	return pitches, nil
}

// RandomPitch picks a pitch from the key's scale. A nil rng uses the
// math/rand global source.
func RandomPitch(key *KeySignature, rng *rand.Rand) (Pitch, error) {
	pitches, err := key.Scale()
	if err != nil {
		return Pitch{}, err
	}
	var idx int
	if rng != nil {
		idx = rng.Intn(len(pitches))
	} else {
		idx = rand.Intn(len(pitches))
	}
	return pitches[idx], nil
}

package midi

import (
	"errors"
	"fmt"
	"math"

	gomidi "gitlab.com/gomidi/midi/v2"
)

var ErrKeyOutOfRange = errors.New("frequency outside the MIDI key range")

const (
	// A4 in equal temperament.
	ReferenceKey       = 69
	ReferenceFrequency = 440.0
	MaxKey             = 127
)

// Key returns the MIDI key nearest to frequency.
func Key(frequency float64) (uint8, error) {
	if !(frequency > 0) {
		return 0, fmt.Errorf("%w: %v Hz", ErrKeyOutOfRange, frequency)
	}
	key := ReferenceKey + math.Round(12*math.Log2(frequency/ReferenceFrequency))
	if key < 0 || key > MaxKey {
		return 0, fmt.Errorf("%w: %v Hz", ErrKeyOutOfRange, frequency)
	}
	return uint8(key), nil
}

// Frequency is the equal-tempered frequency of a MIDI key.
func Frequency(key uint8) float64 {
	return ReferenceFrequency * math.Pow(2, float64(int(key)-ReferenceKey)/12)
}

func Keys(frequencies []float64) ([]uint8, error) {
	keys := make([]uint8, 0, len(frequencies))
	for _, f := range frequencies {
		key, err := Key(f)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// NoteOns encodes one NoteOn message per frequency, in order.
func NoteOns(frequencies []float64, channel, velocity uint8) ([]gomidi.Message, error) {
	keys, err := Keys(frequencies)
	if err != nil {
		return nil, err
	}
	msgs := make([]gomidi.Message, 0, len(keys))
	for _, key := range keys {
		msgs = append(msgs, gomidi.NoteOn(channel, key, velocity))
	}
	return msgs, nil
}

// NoteOffs encodes one NoteOff message per frequency, in order.
func NoteOffs(frequencies []float64, channel uint8) ([]gomidi.Message, error) {
	keys, err := Keys(frequencies)
	if err != nil {
		return nil, err
	}
	msgs := make([]gomidi.Message, 0, len(keys))
	for _, key := range keys {
		msgs = append(msgs, gomidi.NoteOff(channel, key))
	}
	return msgs, nil
}

// PressedKeys returns the keys of the NoteOn messages in msgs. Other
// messages are skipped.
func PressedKeys(msgs []gomidi.Message) []uint8 {
	var keys []uint8
	for _, msg := range msgs {
		var channel, key, velocity uint8
		if msg.GetNoteOn(&channel, &key, &velocity) {
			keys = append(keys, key)
		}
	}
	return keys
}

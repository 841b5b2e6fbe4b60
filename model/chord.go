package model

// Notes are MIDI key numbers.
type Notes = []int

// Chord is a built chord as returned by the API and the CLI.
type Chord struct {
	Root        float64   `json:"root"`
	Quality     string    `json:"quality"`
	Temperament string    `json:"temperament"`
	Frequencies []float64 `json:"frequencies"`

	// NOTE: empty when a frequency falls outside the MIDI range
	Notes    Notes  `json:"notes,omitempty"`
	ChordKey string `json:"chord_key,omitempty"`
}

type Scale struct {
	Root        float64   `json:"root"`
	Mode        string    `json:"mode"`
	Temperament string    `json:"temperament"`
	Frequencies []float64 `json:"frequencies"`
	Pitches     []Pitch   `json:"pitches"`
}

type Pitch struct {
	Name                 string  `json:"name"`
	Frequency            float64 `json:"frequency"`
	PitchClass           string  `json:"pitch_class"`
	Accidental           string  `json:"accidental"`
	Register             int     `json:"register"`
	EnharmonicPitchClass string  `json:"enharmonic_pitch_class,omitempty"`
	EnharmonicAccidental string  `json:"enharmonic_accidental,omitempty"`
}

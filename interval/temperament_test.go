package interval

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ones(n int) []Interval {
	res := make([]Interval, n)
	for i := range res {
		res[i] = MustNew(1)
	}
	return res
}

func TestNewTemperamentNeedsTwelveIntervals(t *testing.T) {
	assert := assert.New(t)

	tm, err := NewTemperament("flat", ones(12))
	assert.NoError(err)
	assert.Len(tm.Intervals(), 12)

	for _, n := range []int{0, 3, 11, 13, 15} {
		_, err := NewTemperament("bad", ones(n))
		assert.True(errors.Is(err, ErrIntervalCount), "count %d", n)
	}

	_, err = NewTemperament("zero", append(ones(11), Interval{}))
	assert.True(errors.Is(err, ErrNonPositiveInterval))
}

func TestCanonicalTemperaments(t *testing.T) {
	assert := assert.New(t)
	assert.Len(EqualTemperament.Intervals(), 12)
	assert.Len(JustIntonation.Intervals(), 12)

	for d := Unison; d <= MajorSeventh; d++ {
		assert.InDelta(math.Pow(2, float64(d)/12), EqualTemperament.At(d).Value(), 1e-12, d.String())
	}

	assert.Equal(1.0, JustIntonation.At(Unison).Value())
	assert.Equal(5.0/4, JustIntonation.At(MajorThird).Value())
	assert.Equal(3.0/2, JustIntonation.At(PerfectFifth).Value())
	assert.Equal(15.0/8, JustIntonation.At(MajorSeventh).Value())
	assert.Equal(2.0, JustIntonation.Octave().Value())
	assert.Equal(2.0, EqualTemperament.Octave().Value())
}

func TestIntervalsReturnsCopy(t *testing.T) {
	ivs := EqualTemperament.Intervals()
	ivs[0] = MustNew(3)
	assert.Equal(t, 1.0, EqualTemperament.At(Unison).Value())
}

func TestNamed(t *testing.T) {
	cases := map[string]Degree{
		"UNISON":           Unison,
		"major_third":      MajorThird,
		"Perfect_Fifth":    PerfectFifth,
		"TRITONE":          Tritone,
		"DIMINISHED_FIFTH": Tritone,
		"AUGMENTED_FOURTH": Tritone,
		"TONE":             MajorSecond,
		"SEMITONE":         MinorSecond,
		"MAJOR_SEVENTH":    MajorSeventh,
	}
	for name, d := range cases {
		t.Run(name, func(t *testing.T) {
			iv, err := JustIntonation.Named(name)
			assert.NoError(t, err)
			assert.True(t, JustIntonation.At(d).Equal(iv))
		})
	}

	octave, err := EqualTemperament.Named("octave")
	assert.NoError(t, err)
	assert.Equal(t, 2.0, octave.Value())

	_, err = EqualTemperament.Named("MAJOR_FIFTH")
	assert.True(t, errors.Is(err, ErrUnknownInterval))
}

func TestAliasedExtensions(t *testing.T) {
	et := EqualTemperament
	cases := []struct {
		alias string
		want  Interval
	}{
		{"m3", et.At(MinorThird)},
		{"M3", et.At(MajorThird)},
		{"#4", et.At(Tritone)},
		{"M7", et.At(MajorSeventh)},
		{"m7", et.At(MinorSeventh)},
		{"7", et.At(MinorSeventh)},
		{"b9", Octave.Compose(et.At(MinorSecond))},
		{"M9", Octave.Compose(et.At(MajorSecond))},
		{"M11", Octave.Compose(et.At(PerfectFourth))},
		{"#11", Octave.Compose(et.At(Tritone))},
		{"M13", Octave.Compose(et.At(MajorSixth))},
		{"b13", Octave.Compose(et.At(MinorSixth))},
	}
	for _, c := range cases {
		t.Run(c.alias, func(t *testing.T) {
			iv, err := et.Aliased(c.alias)
			assert.NoError(t, err)
			assert.True(t, c.want.Equal(iv), "%v != %v", c.want, iv)
		})
	}
}

func TestAliasedMiss(t *testing.T) {
	for _, alias := range []string{"z9", "", "MAJOR_THIRD", "M8", "#12"} {
		_, err := JustIntonation.Aliased(alias)
		assert.True(t, errors.Is(err, ErrUnknownInterval), "alias %q", alias)
	}
}

func TestAliasesSorted(t *testing.T) {
	aliases := EqualTemperament.Aliases()

	assert := assert.New(t)
	assert.Contains(aliases, "b13")
	assert.Contains(aliases, "#11")
	for i := 1; i < len(aliases); i++ {
		assert.Less(aliases[i-1], aliases[i])
	}
}

func TestTemperamentSharpenUsesOwnSemitone(t *testing.T) {
	assert := assert.New(t)
	assert.InDelta(440*25.0/24, JustIntonation.Sharpen(440, 1), 1e-9)
	assert.InDelta(440/(25.0/24), JustIntonation.Flatten(440, 1), 1e-9)
	assert.InDelta(440*math.Pow(2, 1.0/12), EqualTemperament.Sharpen(440, 1), 1e-9)
}

func TestByName(t *testing.T) {
	assert := assert.New(t)

	tm, err := ByName("just")
	assert.NoError(err)
	assert.Same(JustIntonation, tm)

	tm, err = ByName(" Equal ")
	assert.NoError(err)
	assert.Same(EqualTemperament, tm)

	tm, err = ByName("")
	assert.NoError(err)
	assert.Same(EqualTemperament, tm)

	_, err = ByName("pythagorean")
	assert.True(errors.Is(err, ErrUnknownTemperament))
}

func TestDegreeString(t *testing.T) {
	assert.Equal(t, "MAJOR_THIRD", MajorThird.String())
	assert.Equal(t, "UNKNOWN", Degree(12).String())
	assert.Equal(t, Tritone, DiminishedFifth)
}

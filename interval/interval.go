package interval

import (
	"errors"
	"fmt"
	"math"
)

var ErrNonPositiveInterval = errors.New("interval must be positive")

// Interval is a multiplicative ratio between two frequencies.
type Interval struct {
	value   float64
	inverse float64
}

func New(value float64) (Interval, error) {
	if !(value > 0) || math.IsInf(value, 1) {
		return Interval{}, fmt.Errorf("%w: %v", ErrNonPositiveInterval, value)
	}
	return Interval{value: value, inverse: 1 / value}, nil
}

// MustNew is New for package-level constants. It panics on a bad value.
func MustNew(value float64) Interval {
	i, err := New(value)
	if err != nil {
		panic(err)
	}
	return i
}

func (i Interval) Value() float64 {
	return i.value
}

func (i Interval) Inverse() float64 {
	return i.inverse
}

// Compose stacks two intervals: the result is i.value * other.value.
func (i Interval) Compose(other Interval) Interval {
	v := i.value * other.value
	return Interval{value: v, inverse: 1 / v}
}

// Apply scales a frequency by the interval ratio.
func (i Interval) Apply(frequency float64) float64 {
	return frequency * i.value
}

func (i Interval) Invert() Interval {
	return Interval{value: i.inverse, inverse: i.value}
}

// Pow stacks the interval n times. Negative n stacks the inverse.
func (i Interval) Pow(n int) Interval {
	v := math.Pow(i.value, float64(n))
	return Interval{value: v, inverse: 1 / v}
}

// Equal compares ratios exactly, there is no epsilon.
func (i Interval) Equal(other Interval) bool {
	return i.value == other.value
}

// IsZero reports whether i is the zero value rather than a real ratio.
func (i Interval) IsZero() bool {
	return i.value == 0
}

// Cents is the size of the interval in cents (1200 per octave).
func (i Interval) Cents() float64 {
	return 1200 * math.Log2(i.value)
}

func (i Interval) String() string {
	return fmt.Sprintf("Interval:%v", i.value)
}

// Semitone is the equal-tempered semitone, the default transposition step.
var Semitone = MustNew(math.Pow(2, 1.0/12))

// Sharpen raises a frequency by amount^count.
func Sharpen(frequency float64, amount Interval, count int) float64 {
	return amount.Pow(count).Apply(frequency)
}

// Flatten lowers a frequency by amount^count.
func Flatten(frequency float64, amount Interval, count int) float64 {
	return amount.Pow(-count).Apply(frequency)
}

func SharpenInterval(i Interval, amount Interval, count int) Interval {
	return i.Compose(amount.Pow(count))
}

func FlattenInterval(i Interval, amount Interval, count int) Interval {
	return i.Compose(amount.Pow(-count))
}

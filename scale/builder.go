package scale

import (
	"errors"
	"fmt"
	"math"

	"github.com/jsphweid/composer/interval"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrInvalidFrequency = errors.New("start frequency must be positive")
	ErrEmptyTemplate    = errors.New("scale template is empty")
)

// Relation says what each template interval is measured from.
type Relation int

const (
	// RelativeToStart multiplies the start frequency by every interval.
	RelativeToStart Relation = iota
	// RelativeToPrevious chains each interval from the previous note.
	RelativeToPrevious
)

func (r Relation) String() string {
	switch r {
	case RelativeToStart:
		return "relative_to_start"
	case RelativeToPrevious:
		return "relative_to_previous"
	}
	return "unknown"
}

// Builder turns a template into frequencies. A builder is either a literal
// frequency list or an interval list with a Relation; its template is
// never modified by Build.
type Builder struct {
	frequencies []float64
	intervals   []interval.Interval
	relation    Relation
}

func NewFrequencyBuilder(frequencies []float64) *Builder {
	return &Builder{frequencies: append([]float64(nil), frequencies...)}
}

func NewIntervalBuilder(intervals []interval.Interval, relation Relation) *Builder {
	return &Builder{
		intervals: append([]interval.Interval(nil), intervals...),
		relation:  relation,
	}
}

func (b *Builder) Relation() Relation {
	return b.relation
}

// Intervals returns a copy of the base interval template.
func (b *Builder) Intervals() []interval.Interval {
	return append([]interval.Interval(nil), b.intervals...)
}

// Build returns the scale starting at start, in template order. Extended
// intervals are appended to the template before it is interpreted. A
// literal frequency list ignores both start and extensions.
func (b *Builder) Build(start float64, extended ...interval.Interval) ([]float64, error) {
	if len(b.frequencies) > 0 {
		return append([]float64(nil), b.frequencies...), nil
	}
	if !(start > 0) || math.IsInf(start, 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrequency, start)
	}

	values := make([]float64, 0, len(b.intervals)+len(extended))
	for _, iv := range b.intervals {
		values = append(values, iv.Value())
	}
	for _, iv := range extended {
		values = append(values, iv.Value())
	}
	if len(values) == 0 {
		return nil, ErrEmptyTemplate
	}

	switch b.relation {
	case RelativeToStart:
		floats.Scale(start, values)
	case RelativeToPrevious:
		floats.CumProd(values, values)
		floats.Scale(start, values)
	default:
		return nil, fmt.Errorf("unknown scale relation %d", b.relation)
	}
	return values, nil
}

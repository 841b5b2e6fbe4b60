package chord

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jsphweid/composer/interval"
)

var (
	ErrUnrecognizedQuality  = errors.New("unrecognized chord quality")
	ErrInvalidExtension     = errors.New("invalid chord extension")
	ErrUnrecognizedInterval = errors.New("unrecognized interval quality")
)

// BaseQuality is the triad a chord is built on.
type BaseQuality string

const (
	Major      BaseQuality = "M"
	Minor      BaseQuality = "m"
	Sus2       BaseQuality = "sus2"
	Sus4       BaseQuality = "sus4"
	Diminished BaseQuality = "dim"
	Augmented  BaseQuality = "aug"
)

// baseQualities is in prefix-match precedence order.
var baseQualities = []BaseQuality{Major, Minor, Sus2, Sus4, Diminished, Augmented}

var triads = map[BaseQuality][]interval.Degree{
	Major:      {interval.Unison, interval.MajorThird, interval.PerfectFifth},
	Minor:      {interval.Unison, interval.MinorThird, interval.PerfectFifth},
	Sus2:       {interval.Unison, interval.MajorSecond, interval.PerfectFifth},
	Sus4:       {interval.Unison, interval.PerfectFourth, interval.PerfectFifth},
	Diminished: {interval.Unison, interval.MinorThird, interval.DiminishedFifth},
	Augmented:  {interval.Unison, interval.MajorThird, interval.MinorSixth},
}

// an optional M/m/b/# flag followed by a scale degree number
var extensionRegex = regexp.MustCompile(`[Mmb#]?\d+`)

// Quality is a parsed quality string such as "augM7b13#4".
type Quality struct {
	Base       BaseQuality
	Extensions []string
}

func (q Quality) String() string {
	return string(q.Base) + strings.Join(q.Extensions, "")
}

// Intervals resolves the triad and the extensions in t.
func (q Quality) Intervals(t *interval.Temperament) ([]interval.Interval, []interval.Interval, error) {
	degrees, ok := triads[q.Base]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnrecognizedQuality, q.Base)
	}
	base := make([]interval.Interval, 0, len(degrees))
	for _, d := range degrees {
		base = append(base, t.At(d))
	}

	extensions := make([]interval.Interval, 0, len(q.Extensions))
	for _, token := range q.Extensions {
		iv, err := t.Aliased(token)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %v", ErrUnrecognizedInterval, token, err)
		}
		extensions = append(extensions, iv)
	}
	return base, extensions, nil
}

// Parse splits a quality string into its base triad and extension tokens.
func Parse(quality string) (Quality, error) {
	var q Quality
	for _, base := range baseQualities {
		if strings.HasPrefix(quality, string(base)) {
			q.Base = base
			break
		}
	}
	if q.Base == "" {
		return Quality{}, fmt.Errorf("%w: %q", ErrUnrecognizedQuality, quality)
	}

	rest := strings.TrimPrefix(quality, string(q.Base))
	tokens, err := tokenizeExtensions(rest)
	if err != nil {
		return Quality{}, err
	}
	q.Extensions = tokens
	return q, nil
}

func tokenizeExtensions(s string) ([]string, error) {
	var tokens []string
	pos := 0
	for _, loc := range extensionRegex.FindAllStringIndex(s, -1) {
		if loc[0] != pos {
			return nil, fmt.Errorf("%w: %q in %q", ErrInvalidExtension, s[pos:loc[0]], s)
		}
		tokens = append(tokens, s[loc[0]:loc[1]])
		pos = loc[1]
	}
	if pos != len(s) {
		return nil, fmt.Errorf("%w: %q in %q", ErrInvalidExtension, s[pos:], s)
	}
	return tokens, nil
}

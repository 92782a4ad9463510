package ranking

import (
	"fmt"
	"math"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Gain maps a relevance label to its contribution to cumulative gain.
type Gain int

const (
	// LinearGain uses the label itself.
	LinearGain Gain = iota
	// ExponentialGain uses 2^label - 1.
	ExponentialGain
)

func (g Gain) apply(label float64) float64 {
	if g == ExponentialGain {
		return math.Pow(2, label) - 1
	}
	return label
}

func (g Gain) String() string {
	switch g {
	case LinearGain:
		return "linear"
	case ExponentialGain:
		return "exponential"
	}
	return fmt.Sprintf("Gain(%d)", int(g))
}

func ParseGain(s string) (Gain, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear":
		return LinearGain, nil
	case "exponential", "exp":
		return ExponentialGain, nil
	}
	return LinearGain, pkgerrors.Errorf("unknown gain %q", s)
}

type options struct {
	gain Gain
}

type Option func(*options)

// WithGain selects the gain function. The default is LinearGain.
func WithGain(g Gain) Option {
	return func(o *options) {
		o.gain = g
	}
}

func newOptions(opts []Option) options {
	o := options{gain: LinearGain}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

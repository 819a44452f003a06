package kernel

import (
	"fmt"

	"foodmate/internal/pkg/errs"
)

const (
	// MinStars is the lowest star score a rating may carry.
	MinStars = 1
	// MaxStars is the highest star score a rating may carry.
	MaxStars = 5
)

// Stars is an integer star score between 1 and 5 inclusive.
type Stars int

// NewStars validates an integer star score.
// Returns a ValueIsOutOfRangeError when the score falls outside 1..5.
func NewStars(value int) (Stars, error) {
	if value < MinStars || value > MaxStars {
		return 0, newStarsOutOfRangeError(value)
	}
	return Stars(value), nil
}

// Validate checks the score is within 1..5.
func (s Stars) Validate() error {
	if s < MinStars || s > MaxStars {
		return newStarsOutOfRangeError(int(s))
	}
	return nil
}

func newStarsOutOfRangeError(value int) error {
	return newOutOfRange("stars", value, MinStars, MaxStars)
}

func newOutOfRange(param string, value, minValue, maxValue any) error {
	return errs.NewValueIsOutOfRangeError(param, value, minValue, maxValue)
}

// RunningAverage is an incremental mean of star scores updated one sample at
// a time without storing the full history.
//
// The fold rule, identical for restaurants, dishes, and delivery partners:
//
//	newAverage = (oldAverage × oldCount + score) / (oldCount + 1)
//	count += 1
//
// A count of zero means "no ratings yet" and is displayed as "N/A".
// RunningAverage is a value object; Fold returns the updated value.
type RunningAverage struct {
	average float64
	count   int
}

// NewRunningAverage seeds a running average. Entities that start with a
// plausible default (restaurants at 4.5, partners at 5.0) pass count 1;
// dishes pass average 0 and count 0 meaning "not rated yet".
func NewRunningAverage(average float64, count int) (RunningAverage, error) {
	if count < 0 {
		return RunningAverage{}, newOutOfRange("rating count", count, 0, "unbounded")
	}
	if average < 0 || average > MaxStars {
		return RunningAverage{}, newOutOfRange("rating average", average, 0, MaxStars)
	}
	if count == 0 && average != 0 {
		return RunningAverage{}, newOutOfRange("rating average", average, 0, 0)
	}
	return RunningAverage{average: average, count: count}, nil
}

// Fold incorporates one star score into the average.
func (r RunningAverage) Fold(score Stars) (RunningAverage, error) {
	if err := score.Validate(); err != nil {
		return RunningAverage{}, err
	}

	return RunningAverage{
		average: (r.average*float64(r.count) + float64(score)) / float64(r.count+1),
		count:   r.count + 1,
	}, nil
}

// Average returns the current mean. Meaningless when Count is zero.
func (r RunningAverage) Average() float64 {
	return r.average
}

// Count returns how many scores have been folded in, including any seed.
func (r RunningAverage) Count() int {
	return r.count
}

// HasRatings reports whether at least one score (or seed) is present.
func (r RunningAverage) HasRatings() bool {
	return r.count > 0
}

// String renders the average with one decimal place, or "N/A" before the
// first score arrives.
func (r RunningAverage) String() string {
	if r.count == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", r.average)
}

package ranking

import (
	"errors"
	"fmt"
)

var (
	ErrShape = errors.New("invalid shape")
	ErrRange = errors.New("cutoff out of range")
)

// ShapeError reports inputs whose dimensions cannot be evaluated together.
type ShapeError struct {
	Op      string
	Message string
}

func (e *ShapeError) Error() string {
	return e.Op + ": " + e.Message
}

func (e *ShapeError) Is(target error) bool {
	return target == ErrShape
}

// RangeError reports a cutoff that top-k selection cannot satisfy.
type RangeError struct {
	Op    string
	K     int
	Items int
}

func (e *RangeError) Error() string {
	if e.K <= 0 {
		return fmt.Sprintf("%s: cutoff k=%d must be positive", e.Op, e.K)
	}
	return fmt.Sprintf("%s: cutoff k=%d exceeds the number of items (%d)", e.Op, e.K, e.Items)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

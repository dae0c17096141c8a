package pie

import (
	"errors"
	"fmt"
	"math"
)

// StartAngle is the reference angle of the first segment (12 o'clock in
// screen coordinates, where angles grow clockwise).
const StartAngle = -math.Pi / 2

// EndAngle is where the last segment closes the circle.
const EndAngle = StartAngle + 2*math.Pi

var (
	errNoItems    = errors.New("no items")
	errEmptyTotal = errors.New("total value must be positive")
)

// InvalidInputError reports an item list that cannot be turned into segments.
type InvalidInputError struct {
	Index int // offending item, -1 when the list as a whole is invalid
	Err   error
}

func (e *InvalidInputError) Error() string {
	if e.Index < 0 {
		return "pie: invalid input: " + e.Err.Error()
	}
	return fmt.Sprintf("pie: invalid input: item %d: %v", e.Index, e.Err)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// Item is one weighted entry of the chart.
type Item struct {
	ID    string
	Value float64
}

// Segment is an item annotated with its share of the circle.
type Segment struct {
	ID         string
	Value      float64
	Percent    float64
	StartAngle float64
	EndAngle   float64
}

// Contains reports whether angle falls in [StartAngle, EndAngle).
func (s Segment) Contains(angle float64) bool {
	return angle >= s.StartAngle && angle < s.EndAngle
}

// ComputeSegments converts items into consecutive angular ranges starting at
// StartAngle, in input order.
func ComputeSegments(items []Item) ([]Segment, error) {
	if len(items) == 0 {
		return nil, &InvalidInputError{Index: -1, Err: errNoItems}
	}
	seen := make(map[string]struct{}, len(items))
	total := 0.0
	for i, item := range items {
		if item.ID == "" {
			return nil, &InvalidInputError{Index: i, Err: errors.New("empty id")}
		}
		if _, dup := seen[item.ID]; dup {
			return nil, &InvalidInputError{Index: i, Err: fmt.Errorf("duplicate id %q", item.ID)}
		}
		seen[item.ID] = struct{}{}
		if math.IsNaN(item.Value) || math.IsInf(item.Value, 0) || item.Value <= 0 {
			return nil, &InvalidInputError{Index: i, Err: fmt.Errorf("value %v must be a positive number", item.Value)}
		}
		total += item.Value
	}
	if total <= 0 || math.IsInf(total, 0) {
		return nil, &InvalidInputError{Index: -1, Err: errEmptyTotal}
	}

	segments := make([]Segment, 0, len(items))
	start := StartAngle
	for _, item := range items {
		percent := item.Value / total
		end := start + percent*2*math.Pi
		segments = append(segments, Segment{
			ID:         item.ID,
			Value:      item.Value,
			Percent:    percent,
			StartAngle: start,
			EndAngle:   end,
		})
		start = end
	}
	// Accumulated rounding must not leave a sliver uncovered before 3π/2.
	segments[len(segments)-1].EndAngle = EndAngle
	return segments, nil
}

// AngleOf returns the angle of (dx, dy) in [-π/2, 3π/2), measured from +X and
// growing clockwise with Y pointing down. The result is in the same frame as
// segment angles, so it can be compared against them directly.
func AngleOf(dx, dy float64) float64 {
	switch {
	case dy == 0:
		if dx > 0 {
			return 0
		}
		return math.Pi
	case dy > 0:
		return math.Pi/2 - radian(dx, dy)
	case dx >= 0:
		return -math.Pi/2 - radian(dx, dy)
	default:
		angle := 3*math.Pi/2 - radian(dx, dy)
		if angle >= EndAngle {
			// dx is too small to register; the ray sits on the reference angle.
			return StartAngle
		}
		return angle
	}
}

// RadiusOf returns the distance of (dx, dy) from the origin.
func RadiusOf(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}

// radian expects adjacent != 0.
func radian(opposite, adjacent float64) float64 {
	return math.Atan(opposite / adjacent)
}

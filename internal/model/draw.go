package model

import (
	"fmt"
	"slices"
	"time"
)

// Draw is the set of winning numbers, kept in ascending order.
type Draw []int

// NewDraw validates numbers and returns them as a sorted Draw.
func NewDraw(numbers []int) (Draw, error) {
	d := Draw(slices.Clone(numbers))
	slices.Sort(d)
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks that the draw has exactly DrawSize distinct numbers inside
// the universe. A nil draw is invalid.
func (d Draw) Validate() error {
	if len(d) != DrawSize {
		return fmt.Errorf("%w: expected %d numbers, got %d", ErrInvalidDraw, DrawSize, len(d))
	}

	seen := make(map[int]struct{}, len(d))
	for _, n := range d {
		if !InUniverse(n) {
			return fmt.Errorf("%w: number %d out of range %d-%d", ErrInvalidDraw, n, UniverseMin, UniverseMax)
		}
		if _, ok := seen[n]; ok {
			return fmt.Errorf("%w: number %d repeated", ErrInvalidDraw, n)
		}
		seen[n] = struct{}{}
	}
	return nil
}

func (d Draw) Contains(n int) bool {
	return slices.Contains(d, n)
}

// DrawResult is a draw published for a given date.
type DrawResult struct {
	Date    time.Time
	Numbers Draw
	Source  string
}

// DrawSource values.
const (
	DrawSourceScraped = "scraped"
	DrawSourceManual  = "manual"
)

// DrawZone is the time zone draws are published in.
var DrawZone = time.FixedZone("CST", 8*60*60)

// DrawDay returns midnight of t's calendar day in DrawZone.
func DrawDay(t time.Time) time.Time {
	y, m, d := t.In(DrawZone).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, DrawZone)
}

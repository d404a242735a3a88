package model

import "fmt"

const (
	// UniverseMin and UniverseMax bound the numbers that can be drawn.
	UniverseMin = 1
	UniverseMax = 39
	// DrawSize is how many numbers a draw contains.
	DrawSize = 5
)

// InUniverse reports whether n can appear in a draw.
func InUniverse(n int) bool {
	return n >= UniverseMin && n <= UniverseMax
}

// TailGroup returns every number in the universe ending in digit,
// i.e. {d, d+10, d+20, d+30} ∩ [1,39].
func TailGroup(digit int) (Group, error) {
	if digit < 0 || digit > 9 {
		return nil, fmt.Errorf("%w: tail digit %d must be between 0 and 9", ErrInvalidBet, digit)
	}

	g := make(Group, 0, 4)
	for n := digit; n <= UniverseMax; n += 10 {
		if InUniverse(n) {
			g = append(g, n)
		}
	}
	return g, nil
}

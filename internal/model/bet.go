package model

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// BetKind is the structure of a wager.
type BetKind string

const (
	// BetConnect is a single pool of numbers priced by binomial coefficients.
	BetConnect BetKind = "connect"
	// BetColumn splits numbers into disjoint columns; a touch takes one number
	// from each of k distinct columns.
	BetColumn BetKind = "column"
	// BetRide pays a flat prize per matched number.
	BetRide BetKind = "ride"
	// BetTail is a ride on every number ending in one digit.
	BetTail BetKind = "tail"
)

// Tiered reports whether the kind is priced and paid per tier.
func (k BetKind) Tiered() bool {
	return k == BetConnect || k == BetColumn
}

func (k BetKind) Valid() bool {
	switch k {
	case BetConnect, BetColumn, BetRide, BetTail:
		return true
	}
	return false
}

// MaxUnitAmount is the largest stake a single bet may carry.
const MaxUnitAmount int64 = 1_000_000_000

// Group is a set of numbers in ascending order.
type Group []int

// Bet is one validated wager. It is a value: the fields are unexported and
// every accessor returns a copy, so a Bet can be priced and settled
// concurrently without synchronisation.
type Bet struct {
	kind      BetKind
	groups    []Group
	tiers     []Tier
	unit      int64
	discount  decimal.Decimal
	tailDigit int
}

// NewConnectBet builds a connect bet on at least two numbers.
func NewConnectBet(numbers []int, tiers []Tier, unit int64, discount decimal.Decimal) (Bet, error) {
	b := Bet{
		kind:     BetConnect,
		groups:   []Group{sortedGroup(numbers)},
		tiers:    sortedTiers(tiers),
		unit:     unit,
		discount: discount,
	}
	if err := b.Validate(); err != nil {
		return Bet{}, err
	}
	return b, nil
}

// NewColumnBet builds a column bet on two or more pairwise disjoint groups.
func NewColumnBet(columns [][]int, tiers []Tier, unit int64, discount decimal.Decimal) (Bet, error) {
	groups := make([]Group, len(columns))
	for i, c := range columns {
		groups[i] = sortedGroup(c)
	}

	b := Bet{
		kind:     BetColumn,
		groups:   groups,
		tiers:    sortedTiers(tiers),
		unit:     unit,
		discount: discount,
	}
	if err := b.Validate(); err != nil {
		return Bet{}, err
	}
	return b, nil
}

// NewRideBet builds a ride bet on one or more numbers.
func NewRideBet(numbers []int, unit int64) (Bet, error) {
	b := Bet{
		kind:   BetRide,
		groups: []Group{sortedGroup(numbers)},
		unit:   unit,
	}
	if err := b.Validate(); err != nil {
		return Bet{}, err
	}
	return b, nil
}

// NewTailBet builds a ride on every number ending in digit.
func NewTailBet(digit int, unit int64) (Bet, error) {
	g, err := TailGroup(digit)
	if err != nil {
		return Bet{}, err
	}

	b := Bet{
		kind:      BetTail,
		groups:    []Group{g},
		unit:      unit,
		tailDigit: digit,
	}
	if err := b.Validate(); err != nil {
		return Bet{}, err
	}
	return b, nil
}

// Validate re-checks every structural rule. The zero Bet is invalid.
func (b Bet) Validate() error {
	if !b.kind.Valid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidBet, b.kind)
	}
	if b.unit <= 0 {
		return fmt.Errorf("%w: unit amount must be positive, got %d", ErrInvalidBet, b.unit)
	}
	if b.unit > MaxUnitAmount {
		return fmt.Errorf("%w: unit amount %d above %d", ErrInvalidBet, b.unit, MaxUnitAmount)
	}

	switch b.kind {
	case BetConnect:
		if len(b.groups) != 1 {
			return fmt.Errorf("%w: connect bet takes exactly one group", ErrInvalidBet)
		}
		if len(b.groups[0]) < 2 {
			return fmt.Errorf("%w: connect bet needs at least 2 numbers", ErrInvalidBet)
		}
	case BetColumn:
		if len(b.groups) < 2 {
			return fmt.Errorf("%w: column bet needs at least 2 columns, got %d", ErrInvalidBet, len(b.groups))
		}
	case BetRide:
		if len(b.groups) != 1 {
			return fmt.Errorf("%w: ride bet takes exactly one group", ErrInvalidBet)
		}
	case BetTail:
		want, err := TailGroup(b.tailDigit)
		if err != nil {
			return err
		}
		if len(b.groups) != 1 || !slices.Equal(b.groups[0], want) {
			return fmt.Errorf("%w: tail bet numbers do not match digit %d", ErrInvalidBet, b.tailDigit)
		}
	}

	seen := make(map[int]int, UniverseMax)
	for i, g := range b.groups {
		if len(g) == 0 {
			return fmt.Errorf("%w: group %d is empty", ErrInvalidBet, i+1)
		}
		for _, n := range g {
			if !InUniverse(n) {
				return fmt.Errorf("%w: number %d out of range %d-%d", ErrInvalidBet, n, UniverseMin, UniverseMax)
			}
			if prev, ok := seen[n]; ok {
				if prev == i {
					return fmt.Errorf("%w: number %d repeated in group %d", ErrInvalidBet, n, i+1)
				}
				return fmt.Errorf("%w: number %d appears in groups %d and %d", ErrInvalidBet, n, prev+1, i+1)
			}
			seen[n] = i
		}
	}

	if !b.kind.Tiered() {
		if len(b.tiers) != 0 {
			return fmt.Errorf("%w: %s bet has no tiers", ErrInvalidBet, b.kind)
		}
		return nil
	}

	if len(b.tiers) == 0 {
		return fmt.Errorf("%w: no tier selected", ErrInvalidBet)
	}
	for i, t := range b.tiers {
		if !t.Valid() {
			return fmt.Errorf("%w: unknown tier %d", ErrInvalidBet, t)
		}
		if i > 0 && b.tiers[i-1] == t {
			return fmt.Errorf("%w: tier %d selected twice", ErrInvalidBet, t)
		}
	}
	if !b.discount.IsPositive() || b.discount.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: discount rate %s must be in (0, 1]", ErrInvalidBet, b.discount)
	}

	return nil
}

// WithDiscount returns a copy of a connect or column bet priced at discount.
func (b Bet) WithDiscount(discount decimal.Decimal) (Bet, error) {
	if !b.kind.Tiered() {
		return Bet{}, fmt.Errorf("%w: %s bet has no discount", ErrInvalidBet, b.kind)
	}

	out := b
	out.discount = discount
	if err := out.Validate(); err != nil {
		return Bet{}, err
	}
	return out, nil
}

func (b Bet) Kind() BetKind { return b.kind }

func (b Bet) UnitAmount() int64 { return b.unit }

func (b Bet) DiscountRate() decimal.Decimal { return b.discount }

// TailDigit is only meaningful for tail bets.
func (b Bet) TailDigit() int { return b.tailDigit }

func (b Bet) Tiers() []Tier { return slices.Clone(b.tiers) }

func (b Bet) HasTier(t Tier) bool { return slices.Contains(b.tiers, t) }

// Groups returns a deep copy of the bet's groups.
func (b Bet) Groups() []Group {
	out := make([]Group, len(b.groups))
	for i, g := range b.groups {
		out[i] = slices.Clone(g)
	}
	return out
}

// GroupSizes returns the size of each group in order.
func (b Bet) GroupSizes() []int {
	sizes := make([]int, len(b.groups))
	for i, g := range b.groups {
		sizes[i] = len(g)
	}
	return sizes
}

// Numbers returns every number in the bet in ascending order.
func (b Bet) Numbers() []int {
	var all []int
	for _, g := range b.groups {
		all = append(all, g...)
	}
	slices.Sort(all)
	return all
}

func sortedGroup(numbers []int) Group {
	g := Group(slices.Clone(numbers))
	slices.Sort(g)
	return g
}

func sortedTiers(tiers []Tier) []Tier {
	t := slices.Clone(tiers)
	slices.Sort(t)
	return t
}

package model

import "errors"

var (
	// ErrInvalidBet is a structural violation in a bet: empty group, overlapping
	// columns, too few numbers or columns, missing tier selection.
	ErrInvalidBet = errors.New("invalid bet")
	// ErrInvalidDraw means the draw is not exactly 5 distinct numbers in 1..39.
	ErrInvalidDraw = errors.New("invalid draw")
	// ErrEmptyPortfolio is returned when settling an empty wager list.
	ErrEmptyPortfolio = errors.New("empty portfolio")
	// ErrInvalidRates is returned for an unusable rate table.
	ErrInvalidRates = errors.New("invalid rate table")

	ErrDrawNotFound = errors.New("draw not found")
	ErrBetNotFound  = errors.New("bet not found")
	ErrUserNotFound = errors.New("user not found")
	ErrLoginTaken   = errors.New("login already taken")
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidCredentials is a register request without login or password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidFilter      = errors.New("invalid filter")
)

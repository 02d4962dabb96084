package types

import "errors"

// Input validation errors. State is never modified when one is returned.
var (
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidRate      = errors.New("rate must not be negative")
	ErrInvalidName      = errors.New("name must not be empty")
	ErrInvalidPageCount = errors.New("page count must be a positive integer")
	ErrInvalidDistance  = errors.New("distance must be positive")
	ErrInvalidCupSize   = errors.New("invalid cup size")
	ErrInvalidPIN       = errors.New("PIN must be 4 to 8 digits")
)

// Precondition errors. State is never modified when one is returned.
var (
	ErrAccountClosed     = errors.New("account is closed")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNoFuel            = errors.New("insufficient fuel")
	ErrEngineOff         = errors.New("engine is not running")
	ErrPoweredOff        = errors.New("coffee maker is turned off")
	ErrInsufficientWater = errors.New("not enough water")
	ErrInsufficientBeans = errors.New("not enough coffee beans")
	ErrIncorrectPIN      = errors.New("incorrect PIN")
)

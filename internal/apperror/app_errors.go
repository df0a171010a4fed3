package apperror

import "errors"

var (
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")

	ErrTooManyParts     = errors.New("too many direction parts")
	ErrUnknownDirection = errors.New("unknown direction")
	ErrUnknownRow       = errors.New("unknown row direction")
	ErrUnknownColumn    = errors.New("unknown column direction")

	ErrNameTooShort = errors.New("name is too short")
	ErrNameTooLong  = errors.New("name is too long")

	ErrUnknownMode          = errors.New("unknown game mode")
	ErrInvariantViolation   = errors.New("game invariant violated")
	ErrInputSourceExhausted = errors.New("input source exhausted")
)

package apperror

import "errors"

var (
	ErrInvalidMove              = errors.New("invalid move")
	ErrInvalidCategorySelection = errors.New("invalid category selection")

	ErrWrongPhase   = errors.New("action is not allowed in current phase")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrEmptySymbol  = errors.New("symbol is empty")

	ErrInvalidTournamentSize = errors.New("tournament size must be 3, 5 or 7")
	ErrUnknownCategory       = errors.New("unknown emoji category")
	ErrUnknownPlayer         = errors.New("unknown player")

	ErrNotFound = errors.New("not found")
)

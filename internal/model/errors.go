package model

import "errors"

var (
	ErrUnknownRole            = errors.New("unknown role")
	ErrInvalidTransitionTable = errors.New("invalid transition table")

	ErrMissingOrderID = errors.New("order has no id")
	ErrMissingStatus  = errors.New("order has no status")

	ErrFoodNotInMenu   = errors.New("food is not in restaurant menu")
	ErrFoodUnavailable = errors.New("food is unavailable")
	ErrInvalidQuantity = errors.New("quantity is not positive")
	ErrEmptyCart       = errors.New("cart is empty")
)

package quote

import (
	"errors"
	"fmt"
)

var (
	ErrQuoteNotFound           = errors.New("quote not found")
	ErrQuoteNotEditable        = errors.New("quote is not editable")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrQuoteExpired            = errors.New("quote expired")
	ErrVersionNotFound         = errors.New("quote version not found")
)

func ErrInvalidTransition(from, to Status) error {
	return fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, from, to)
}

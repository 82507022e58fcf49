package game

import "errors"

// ErrInvalidVariant is returned when text names no member of a catalog.
var ErrInvalidVariant = errors.New("invalid variant")

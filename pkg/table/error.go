package table

import "errors"

// ErrCardIndex is returned when a card slot is out of range
var ErrCardIndex = errors.New("card index out of range")

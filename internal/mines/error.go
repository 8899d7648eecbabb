package mines

import "errors"

// ErrInvalidState is returned when a caller asks for the mine count of a
// cell that is not revealed.
var ErrInvalidState = errors.New("cell is not revealed")

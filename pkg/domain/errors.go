package domain

import "errors"

// ErrTaskNotFound is returned when a task UUID cannot be found by a
// message consumer (e.g. the parser or a draining destination).
var ErrTaskNotFound = errors.New("task not found")

package core

import "errors"

// ErrInvalidMove is returned by game engines for moves that break the rules.
// It is recoverable: the engine state is left untouched.
var ErrInvalidMove = errors.New("invalid move")

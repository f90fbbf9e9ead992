package uno

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tabletop/internal/core"
)

// Recoverable rejections. All of them match core.ErrInvalidMove.
var (
	ErrNotYourTurn = fmt.Errorf("%w: not your turn", core.ErrInvalidMove)
	ErrMustPlay    = fmt.Errorf("%w: you hold a playable card and must play it", core.ErrInvalidMove)
	ErrNeedColor   = fmt.Errorf("%w: a color must be chosen", core.ErrInvalidMove)
)

// ErrDeckExhausted is returned when the deck and discard pile together cannot
// supply a draw. It ends the game; every later call returns it again.
var ErrDeckExhausted = errors.New("uno: deck exhausted")

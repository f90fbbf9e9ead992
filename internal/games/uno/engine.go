package uno

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-tabletop/internal/core"
)

// Phase is the engine's state machine position.
type Phase uint8

const (
	AwaitingPlay        Phase = iota // Current player must play or draw
	AwaitingColorChoice              // A wild run is pending a color
	Terminal                         // A player has won or the deck ran dry
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case AwaitingPlay:
		return "awaiting_play"
	case AwaitingColorChoice:
		return "awaiting_color"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// TurnState is whose turn it is, which way play moves and the pending stack.
type TurnState struct {
	Current   int
	Direction int // +1 or -1
	Stack     StackState
}

// EffectKind identifies a card effect reported by a play.
type EffectKind uint8

const (
	EffectColorChosen EffectKind = iota // Wild run took a color
	EffectSkip                          // Next player lost their turn
	EffectReverse                       // Direction flipped
	EffectStack                         // Draw stack grew
)

// Effect describes one consequence of a committed run.
type Effect struct {
	Kind   EffectKind
	Card   Card
	Player int // Skipped player for EffectSkip
	Amount int // Stack increase for EffectStack
}

// PlayResult is the delta produced by a run.
type PlayResult struct {
	Player     int
	Played     []Card // In selection order, wilds recolored
	Top        Card
	StackDelta int
	Effects    []Effect
	Next       int
	Won        bool
	NeedsColor bool // Nothing was committed; call ChooseColor
}

// DrawResult is the delta produced by a draw.
type DrawResult struct {
	Player     int
	Cards      []Card
	Forced     bool // Drew a pending stack
	Reshuffled bool
	Next       int
}

// Options configures a new game.
type Options struct {
	Players  int
	HandSize int
}

// Setup describes an explicit table, used to replay or test positions.
type Setup struct {
	Deck      []Card // Last card is drawn first
	Discard   []Card // Last card is the top; must not be empty
	Hands     [][]Card
	Current   int
	Direction int // Zero means +1
	Stack     StackState
}

// Engine owns the full state of one UNO game.
type Engine struct {
	rng     *rand.Rand
	deck    *Deck
	discard DiscardPile
	hands   [][]Card
	turn    TurnState
	phase   Phase

	pending []int // Hand indices of a wild run awaiting a color
	winner  int
	fatal   error
}

// NewEngine shuffles a standard deck, deals opts.HandSize cards to each
// player and flips the first colored number card as the starting discard.
// Player 0 moves first.
func NewEngine(opts Options, rng *rand.Rand) (*Engine, error) {
	if opts.Players < 2 {
		return nil, fmt.Errorf("uno: need at least 2 players, got %d", opts.Players)
	}
	if opts.HandSize <= 0 || opts.Players*opts.HandSize >= DeckSize {
		return nil, fmt.Errorf("uno: cannot deal %d cards to %d players", opts.HandSize, opts.Players)
	}

	deck := NewDeck()
	deck.Shuffle(rng)

	e := &Engine{
		rng:    rng,
		deck:   deck,
		hands:  make([][]Card, opts.Players),
		turn:   TurnState{Direction: 1},
		winner: -1,
	}
	for p := range e.hands {
		e.hands[p] = make([]Card, 0, opts.HandSize)
		for range opts.HandSize {
			c, _ := deck.Draw()
			e.hands[p] = append(e.hands[p], c)
		}
	}

	// Action and wild cards go to the bottom until a number card turns up.
	for range deck.Len() {
		c, _ := deck.Draw()
		if c.IsWild() || c.Rank.IsAction() {
			deck.PutBottom(c)
			continue
		}
		e.discard.Push(c)
		return e, nil
	}
	return nil, fmt.Errorf("uno: no number card left to start the discard pile")
}

// Restore builds an engine from an explicit table.
func Restore(s Setup, rng *rand.Rand) *Engine {
	if len(s.Discard) == 0 {
		panic("uno: setup needs a starting discard")
	}
	if len(s.Hands) < 2 {
		panic("uno: setup needs at least two hands")
	}
	dir := s.Direction
	if dir == 0 {
		dir = 1
	}
	hands := make([][]Card, len(s.Hands))
	for i, h := range s.Hands {
		hands[i] = slices.Clone(h)
	}
	return &Engine{
		rng:     rng,
		deck:    NewDeckOf(s.Deck...),
		discard: DiscardPile{cards: slices.Clone(s.Discard)},
		hands:   hands,
		turn:    TurnState{Current: s.Current, Direction: dir, Stack: s.Stack},
		winner:  -1,
	}
}

// Players returns the number of seats.
func (e *Engine) Players() int { return len(e.hands) }

// Hand returns a copy of a player's hand.
func (e *Engine) Hand(player int) []Card { return slices.Clone(e.hands[player]) }

// HandSize returns the number of cards a player holds.
func (e *Engine) HandSize(player int) int { return len(e.hands[player]) }

// Top returns the top of the discard pile.
func (e *Engine) Top() Card { return e.discard.Top() }

// DeckLen returns the number of cards left to draw.
func (e *Engine) DeckLen() int { return e.deck.Len() }

// DiscardLen returns the size of the discard pile.
func (e *Engine) DiscardLen() int { return e.discard.Len() }

// Turn returns the current turn state.
func (e *Engine) Turn() TurnState { return e.turn }

// Phase returns the state machine position.
func (e *Engine) Phase() Phase { return e.phase }

// Pending returns the hand indices awaiting a color choice.
func (e *Engine) Pending() []int { return slices.Clone(e.pending) }

// Winner returns the winning player once the game is over.
func (e *Engine) Winner() (int, bool) { return e.winner, e.winner >= 0 }

// Err returns the fatal error that ended the game, if any.
func (e *Engine) Err() error { return e.fatal }

// TotalCards counts every card on the table. It is DeckSize for a standard
// game at all times.
func (e *Engine) TotalCards() int {
	n := e.deck.Len() + e.discard.Len()
	for _, h := range e.hands {
		n += len(h)
	}
	return n
}

// CheckWin reports whether player has emptied their hand.
func (e *Engine) CheckWin(player int) bool {
	return len(e.hands[player]) == 0
}

// IsPlayable reports whether a card in player's hand can start a run now.
func (e *Engine) IsPlayable(player, index int) bool {
	hand := e.hands[player]
	return IsPlayable(hand[index], e.discard.Top(), hand, e.turn.Stack)
}

// Playable returns the indices of every card player could lead with.
func (e *Engine) Playable(player int) []int {
	var out []int
	for i := range e.hands[player] {
		if e.IsPlayable(player, i) {
			out = append(out, i)
		}
	}
	return out
}

// checkTurn rejects moves outside the player's turn or after the game ended.
func (e *Engine) checkTurn(player int) error {
	if player < 0 || player >= len(e.hands) {
		panic(fmt.Sprintf("uno: player %d out of range", player))
	}
	if e.fatal != nil {
		return e.fatal
	}
	if e.phase == Terminal {
		return fmt.Errorf("%w: game is over", core.ErrInvalidMove)
	}
	if player != e.turn.Current {
		return ErrNotYourTurn
	}
	return nil
}

// Play plays the cards at indices, in that order, as one run. A run led by a
// wild is held until ChooseColor; the result then has NeedsColor set and
// nothing has changed.
func (e *Engine) Play(player int, indices []int) (PlayResult, error) {
	if err := e.checkTurn(player); err != nil {
		return PlayResult{}, err
	}
	if e.phase == AwaitingColorChoice {
		return PlayResult{}, ErrNeedColor
	}

	cards, err := e.selection(player, indices)
	if err != nil {
		return PlayResult{}, err
	}
	if err := ValidateRun(cards, e.discard.Top(), e.hands[player], e.turn.Stack); err != nil {
		return PlayResult{}, err
	}

	if cards[0].IsWild() {
		e.phase = AwaitingColorChoice
		e.pending = slices.Clone(indices)
		return PlayResult{Player: player, NeedsColor: true, Next: player}, nil
	}
	return e.commit(player, indices, Wild), nil
}

// ChooseColor completes a pending wild run with color.
func (e *Engine) ChooseColor(player int, color Color) (PlayResult, error) {
	if err := e.checkTurn(player); err != nil {
		return PlayResult{}, err
	}
	if e.phase != AwaitingColorChoice {
		return PlayResult{}, fmt.Errorf("%w: no wild card is waiting for a color", core.ErrInvalidMove)
	}
	if color == Wild || color > Blue {
		return PlayResult{}, fmt.Errorf("%w: %s is not a playable color", core.ErrInvalidMove, color)
	}
	indices := e.pending
	e.pending = nil
	e.phase = AwaitingPlay
	return e.commit(player, indices, color), nil
}

// selection resolves indices to cards, rejecting empty or repeated picks.
// Out-of-range indices are caller bugs and panic.
func (e *Engine) selection(player int, indices []int) ([]Card, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("%w: no cards selected", core.ErrInvalidMove)
	}
	hand := e.hands[player]
	seen := make(map[int]bool, len(indices))
	cards := make([]Card, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(hand) {
			panic(fmt.Sprintf("uno: card index %d out of range for a hand of %d", idx, len(hand)))
		}
		if seen[idx] {
			return nil, fmt.Errorf("%w: card %d selected twice", core.ErrInvalidMove, idx)
		}
		seen[idx] = true
		cards[i] = hand[idx]
	}
	return cards, nil
}

// commit applies a validated run. Cards leave the hand in selection order and
// every wild takes color. Draw cards before the last feed the stack; the last
// card's effect decides the next turn.
func (e *Engine) commit(player int, indices []int, color Color) PlayResult {
	hand := e.hands[player]
	played := make([]Card, len(indices))
	remove := make(map[int]bool, len(indices))
	for i, idx := range indices {
		c := hand[idx]
		if c.IsWild() {
			c.Color = color
		}
		played[i] = c
		remove[idx] = true
	}
	kept := make([]Card, 0, len(hand)-len(indices))
	for i, c := range hand {
		if !remove[i] {
			kept = append(kept, c)
		}
	}
	e.hands[player] = kept

	for _, c := range played {
		e.discard.Push(c)
	}

	res := PlayResult{Player: player, Played: played, Top: e.discard.Top()}
	if color != Wild {
		res.Effects = append(res.Effects, Effect{Kind: EffectColorChosen, Card: res.Top})
	}

	if e.CheckWin(player) {
		e.phase = Terminal
		e.winner = player
		res.Won = true
		res.Next = player
		return res
	}

	for _, c := range played[:len(played)-1] {
		if v := c.Rank.DrawValue(); v > 0 {
			e.turn.Stack.Total += v
			e.turn.Stack.Rank = c.Rank
			res.StackDelta += v
			res.Effects = append(res.Effects, Effect{Kind: EffectStack, Card: c, Amount: v})
		}
	}

	e.applyEffect(played[len(played)-1], &res)
	res.Next = e.turn.Current
	return res
}

// applyEffect moves the turn according to the last card of a run.
//
// Skip passes over the next player. Reverse flips direction; with two players
// that hands the turn straight back, exactly like Skip. Draw cards grow the
// stack and pass it to the next player.
func (e *Engine) applyEffect(c Card, res *PlayResult) {
	switch c.Rank {
	case Skip:
		res.Effects = append(res.Effects, Effect{Kind: EffectSkip, Card: c, Player: e.seat(1)})
		e.advance(2)
	case Reverse:
		e.turn.Direction = -e.turn.Direction
		res.Effects = append(res.Effects, Effect{Kind: EffectReverse, Card: c})
		if len(e.hands) == 2 {
			e.advance(2)
		} else {
			e.advance(1)
		}
	case DrawTwo, WildDrawFour:
		v := c.Rank.DrawValue()
		e.turn.Stack.Total += v
		e.turn.Stack.Rank = c.Rank
		res.StackDelta += v
		res.Effects = append(res.Effects, Effect{Kind: EffectStack, Card: c, Amount: v})
		e.advance(1)
	default:
		e.advance(1)
	}
}

// seat returns the player k steps away in the current direction.
func (e *Engine) seat(k int) int {
	return core.Wrap(e.turn.Current+e.turn.Direction*k, len(e.hands))
}

func (e *Engine) advance(k int) {
	e.turn.Current = e.seat(k)
}

// Draw takes cards for the current player and passes the turn. With a stack
// pending the player draws all of it and the stack clears. Otherwise drawing
// is only allowed when nothing in hand is playable, and yields one card.
func (e *Engine) Draw(player int) (DrawResult, error) {
	if err := e.checkTurn(player); err != nil {
		return DrawResult{}, err
	}
	if e.phase == AwaitingColorChoice {
		return DrawResult{}, ErrNeedColor
	}

	n := 1
	forced := e.turn.Stack.Active()
	if forced {
		n = e.turn.Stack.Total
	} else if len(e.Playable(player)) > 0 {
		return DrawResult{}, ErrMustPlay
	}

	// Cards under the top are all that a reshuffle can recover.
	if e.deck.Len()+e.discard.Len()-1 < n {
		return DrawResult{}, e.exhaust()
	}

	res := DrawResult{Player: player, Forced: forced}
	for range n {
		if e.deck.Len() == 0 {
			if err := e.reshuffle(); err != nil {
				return DrawResult{}, err
			}
			res.Reshuffled = true
		}
		c, _ := e.deck.Draw()
		e.hands[player] = append(e.hands[player], c)
		res.Cards = append(res.Cards, c)
	}

	e.turn.Stack = StackState{}
	e.advance(1)
	res.Next = e.turn.Current
	return res, nil
}

// reshuffle refills an empty deck from every discard except the top and
// shuffles it. Wild cards lose their chosen color. Fails with
// ErrDeckExhausted, ending the game, when that leaves the deck empty.
func (e *Engine) reshuffle() error {
	if e.fatal != nil {
		return e.fatal
	}
	if e.phase == Terminal {
		return fmt.Errorf("%w: game is over", core.ErrInvalidMove)
	}
	if e.deck.Len() > 0 {
		return fmt.Errorf("%w: deck still has %d cards", core.ErrInvalidMove, e.deck.Len())
	}
	under := e.discard.takeUnderTop()
	for i := range under {
		if under[i].IsWild() {
			under[i].Color = Wild
		}
	}
	e.deck.add(under)
	if e.deck.Len() == 0 {
		return e.exhaust()
	}
	e.deck.Shuffle(e.rng)
	return nil
}

func (e *Engine) exhaust() error {
	e.fatal = ErrDeckExhausted
	e.phase = Terminal
	e.pending = nil
	return e.fatal
}

// Resolution is the outcome of answering a draw stack.
type Resolution struct {
	Played bool
	Play   PlayResult
	Draw   DrawResult
}

// ResolveDrawStackOrPlay answers a pending stack for player: every card of
// the stacking rank is played as one run, compounding the stack, or the
// whole stack is drawn when there are none. color is used when the run is
// Wild Draw Four.
func (e *Engine) ResolveDrawStackOrPlay(player int, color Color) (Resolution, error) {
	if err := e.checkTurn(player); err != nil {
		return Resolution{}, err
	}
	if e.phase == AwaitingColorChoice {
		return Resolution{}, ErrNeedColor
	}
	if !e.turn.Stack.Active() {
		return Resolution{}, fmt.Errorf("%w: no draw stack to resolve", core.ErrInvalidMove)
	}

	var indices []int
	for i, c := range e.hands[player] {
		if c.Rank == e.turn.Stack.Rank {
			indices = append(indices, i)
		}
	}
	if len(indices) == 0 {
		d, err := e.Draw(player)
		return Resolution{Draw: d}, err
	}

	hand := e.hands[player]
	if hand[indices[0]].IsWild() && (color == Wild || color > Blue) {
		return Resolution{}, ErrNeedColor
	}
	cards, err := e.selection(player, indices)
	if err != nil {
		return Resolution{}, err
	}
	if err := ValidateRun(cards, e.discard.Top(), hand, e.turn.Stack); err != nil {
		return Resolution{}, err
	}
	if !cards[0].IsWild() {
		color = Wild
	}
	return Resolution{Played: true, Play: e.commit(player, indices, color)}, nil
}

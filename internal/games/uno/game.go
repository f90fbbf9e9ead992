package uno

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-tabletop/internal/config"
	"github.com/vovakirdan/tui-tabletop/internal/core"
	"github.com/vovakirdan/tui-tabletop/internal/registry"
)

// human is the local player's seat; every other seat is a bot.
const human = 0

// Game adapts the UNO engine to the tabletop platform.
type Game struct {
	rng    *rand.Rand
	cfg    config.UnoConfig
	engine *Engine
	bot    *Bot

	cursor      int   // Hand position under the cursor
	selection   []int // Hand indices in the order they were picked
	colorCursor int   // Position in Colors while choosing
	botWait     int   // Ticks the current bot has been thinking
	peekLeft    int   // Ticks the opponents' hands stay visible

	tick  uint64
	turns int // Committed plays and draws

	info    string // Message for the local player
	botInfo string // What the last bot did

	screenW  int
	screenH  int
	tooSmall bool
	paused   bool
}

// New creates a new UNO game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("uno", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "uno"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "UNO"
}

// Reset loads the config and deals a fresh game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.turns = 0
	g.cursor = 0
	g.selection = nil
	g.colorCursor = 0
	g.botWait = 0
	g.peekLeft = 0
	g.paused = false
	g.botInfo = ""
	g.info = "Your turn! Select cards with Space, play with Enter."

	unoCfg, err := config.LoadUno(cfg.ConfigPath)
	if err != nil {
		g.info = "config: " + err.Error()
	}
	g.cfg = unoCfg

	engine, err := NewEngine(Options{Players: unoCfg.Rules.Players, HandSize: unoCfg.Rules.HandSize}, g.rng)
	if err != nil {
		// Validated configs always deal; fall back to the defaults regardless.
		g.cfg = config.DefaultUnoConfig()
		engine, err = NewEngine(Options{Players: g.cfg.Rules.Players, HandSize: g.cfg.Rules.HandSize}, g.rng)
		if err != nil {
			panic(fmt.Sprintf("uno: default rules cannot deal: %v", err))
		}
	}
	g.engine = engine
	g.bot = NewBot(g.rng)

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout to a new terminal size without redealing.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minWidth || h < minHeight+g.engine.Players()-2
}

// Engine exposes the underlying turn engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.engine.Phase() != Terminal {
		g.paused = !g.paused
	}
	if g.paused || g.engine.Phase() == Terminal {
		return core.StepResult{State: g.State()}
	}

	if g.peekLeft > 0 {
		g.peekLeft--
	}

	if g.engine.Turn().Current != human {
		g.stepBot()
		return core.StepResult{State: g.State()}
	}

	if g.engine.Phase() == AwaitingColorChoice {
		g.stepColorChoice(in)
	} else {
		g.stepHand(in)
	}
	return core.StepResult{State: g.State()}
}

// stepBot lets the current bot move once it has thought for think_ticks.
func (g *Game) stepBot() {
	g.botWait++
	if g.botWait < g.cfg.Bot.ThinkTicks {
		return
	}
	g.botWait = 0

	player := g.engine.Turn().Current
	move, err := g.bot.TakeTurn(g.engine, player)
	if err != nil {
		g.reject(err)
		return
	}
	g.turns++
	g.botInfo = describeMove(player, move)
	if g.engine.Turn().Current == human {
		g.yourTurn()
	}
	g.afterMove()
}

// stepHand handles cursor movement, selection, play, draw and peek.
func (g *Game) stepHand(in core.InputFrame) {
	size := g.engine.HandSize(human)
	switch {
	case in.Has(core.ActionLeft):
		g.cursor = core.Wrap(g.cursor-1, size)
	case in.Has(core.ActionRight):
		g.cursor = core.Wrap(g.cursor+1, size)
	case in.Has(core.ActionSelect):
		g.toggleSelection(g.cursor)
	case in.Has(core.ActionConfirm):
		g.playSelection()
	case in.Has(core.ActionDraw):
		g.draw()
	case in.Has(core.ActionPeek):
		if g.peekLeft == 0 {
			g.peekLeft = g.cfg.Bot.PeekTicks
		}
	}
}

// stepColorChoice picks the color for a pending wild run.
func (g *Game) stepColorChoice(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft):
		g.colorCursor = core.Wrap(g.colorCursor-1, len(Colors))
	case in.Has(core.ActionRight):
		g.colorCursor = core.Wrap(g.colorCursor+1, len(Colors))
	case in.Has(core.ActionConfirm), in.Has(core.ActionSelect):
		color := Colors[g.colorCursor]
		res, err := g.engine.ChooseColor(human, color)
		if err != nil {
			g.reject(err)
			return
		}
		g.info = fmt.Sprintf("You chose %s.", color)
		g.committed(res)
	}
}

// toggleSelection adds or removes a hand index, keeping pick order.
func (g *Game) toggleSelection(idx int) {
	if i := slices.Index(g.selection, idx); i >= 0 {
		g.selection = slices.Delete(g.selection, i, i+1)
		return
	}
	g.selection = append(g.selection, idx)
}

// playSelection plays the picked cards, or the card under the cursor when
// nothing is picked.
func (g *Game) playSelection() {
	indices := g.selection
	if len(indices) == 0 {
		indices = []int{g.cursor}
	}
	res, err := g.engine.Play(human, indices)
	if err != nil {
		g.selection = nil
		g.reject(err)
		return
	}
	if res.NeedsColor {
		g.colorCursor = 0
		g.info = "Choose a color for your Wild card."
		return
	}
	g.committed(res)
}

func (g *Game) draw() {
	res, err := g.engine.Draw(human)
	if err != nil {
		g.reject(err)
		return
	}
	g.turns++
	g.selection = nil
	if res.Forced {
		g.info = fmt.Sprintf("You drew %d cards.", len(res.Cards))
	} else {
		g.info = fmt.Sprintf("You drew %s.", res.Cards[0])
	}
	g.afterMove()
}

// committed records a finished human run.
func (g *Game) committed(res PlayResult) {
	g.turns++
	g.selection = nil
	g.info = fmt.Sprintf("You played %s.", describeRun(res.Played))
	if res.Next == human {
		g.info += " Go again!"
	}
	g.afterMove()
}

// afterMove resets per-turn UI state and reports the game end.
func (g *Game) afterMove() {
	g.botWait = 0
	g.cursor = core.Clamp(g.cursor, 0, max(g.engine.HandSize(human)-1, 0))

	if winner, ok := g.engine.Winner(); ok {
		if winner == human {
			g.info = "You win!"
		} else {
			g.info = fmt.Sprintf("Bot %d wins!", winner)
		}
	}
}

// yourTurn prompts the local player when a bot hands the turn back.
func (g *Game) yourTurn() {
	if st := g.engine.Turn().Stack; st.Active() {
		g.info = fmt.Sprintf("Stack is at +%d! Play a %s or draw.", st.Total, st.Rank)
		return
	}
	g.info = "Your turn!"
}

// reject turns an engine error into a message. Exhaustion ends the game.
func (g *Game) reject(err error) {
	switch {
	case errors.Is(err, ErrDeckExhausted):
		g.info = "The deck ran out of cards. Nobody wins."
	case errors.Is(err, ErrMustPlay):
		g.info = "You have a playable card! You must play it."
	default:
		g.info = err.Error()
	}
}

// Peeking reports whether opponents' hands are visible.
func (g *Game) Peeking() bool {
	return g.peekLeft > 0
}

// score awards points for every card left in opponents' hands on a win.
func (g *Game) score() int {
	winner, ok := g.engine.Winner()
	if !ok || winner != human {
		return 0
	}
	cards := 0
	for p := 1; p < g.engine.Players(); p++ {
		cards += g.engine.HandSize(p)
	}
	return cards * g.cfg.Scoring.PointsPerCard
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	winner, _ := g.engine.Winner()
	return core.GameState{
		Score:    g.score(),
		GameOver: g.engine.Phase() == Terminal,
		Won:      winner == human,
		Paused:   g.paused || g.tooSmall,
	}
}

// describeRun names the cards of a run.
func describeRun(cards []Card) string {
	if len(cards) == 1 {
		return cards[0].String()
	}
	return fmt.Sprintf("%d× %s", len(cards), cards[0].Rank)
}

// describeMove summarises a bot move for the status line.
func describeMove(player int, m Move) string {
	if m.Kind == MoveDraw {
		if m.Draw.Forced {
			return fmt.Sprintf("Bot %d draws %d cards.", player, len(m.Draw.Cards))
		}
		return fmt.Sprintf("Bot %d drew a card.", player)
	}
	msg := fmt.Sprintf("Bot %d played %s", player, describeRun(m.Play.Played))
	if m.Play.Top.IsWild() {
		msg += fmt.Sprintf(" and chose %s", m.Play.Top.Color)
	}
	return msg + "."
}

package uno

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Turns     int
	Hands     [][]Card
	Top       Card
	DeckLen   int
	Discard   int
	Turn      TurnState
	Phase     Phase
	Winner    int
	Selection []int
	Cursor    int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	hands := make([][]Card, g.engine.Players())
	for p := range hands {
		hands[p] = g.engine.Hand(p)
	}
	winner, _ := g.engine.Winner()
	return Snapshot{
		Tick:      g.tick,
		Turns:     g.turns,
		Hands:     hands,
		Top:       g.engine.Top(),
		DeckLen:   g.engine.DeckLen(),
		Discard:   g.engine.DiscardLen(),
		Turn:      g.engine.Turn(),
		Phase:     g.engine.Phase(),
		Winner:    winner,
		Selection: append([]int(nil), g.selection...),
		Cursor:    g.cursor,
	}
}

package uno

import "math/rand"

// DeckSize is the number of cards in a standard deck.
const DeckSize = 108

// Deck is a face-down pile. Cards are drawn from the end of the slice and
// returned to the front.
type Deck struct {
	cards []Card
}

// NewDeck returns the standard 108-card deck in a fixed order: per color one
// 0 and two each of 1-9, Skip, Reverse and Draw Two, then four Wild and four
// Wild Draw Four.
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, c := range Colors {
		cards = append(cards, Card{Color: c, Rank: Zero})
		for r := One; r <= DrawTwo; r++ {
			cards = append(cards, Card{Color: c, Rank: r}, Card{Color: c, Rank: r})
		}
	}
	for range 4 {
		cards = append(cards, Card{Color: Wild, Rank: WildCard}, Card{Color: Wild, Rank: WildDrawFour})
	}
	return &Deck{cards: cards}
}

// NewDeckOf returns a deck holding cards; the last card is drawn first.
func NewDeckOf(cards ...Card) *Deck {
	return &Deck{cards: append([]Card(nil), cards...)}
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Shuffle permutes the deck with rng.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card. Reports false when the deck is empty.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, true
}

// PutBottom places a card at the bottom, to be drawn last.
func (d *Deck) PutBottom(c Card) {
	d.cards = append([]Card{c}, d.cards...)
}

// add places cards on top in the given order.
func (d *Deck) add(cards []Card) {
	d.cards = append(d.cards, cards...)
}

// DiscardPile is the face-up pile. The last card is the top.
type DiscardPile struct {
	cards []Card
}

// Len returns the number of discarded cards.
func (p *DiscardPile) Len() int {
	return len(p.cards)
}

// Top returns the most recently played card. Panics on an empty pile, which
// only happens before the starting card is flipped.
func (p *DiscardPile) Top() Card {
	return p.cards[len(p.cards)-1]
}

// Push lays a card on top.
func (p *DiscardPile) Push(c Card) {
	p.cards = append(p.cards, c)
}

// takeUnderTop removes and returns every card except the top.
func (p *DiscardPile) takeUnderTop() []Card {
	if len(p.cards) <= 1 {
		return nil
	}
	under := append([]Card(nil), p.cards[:len(p.cards)-1]...)
	p.cards = p.cards[len(p.cards)-1:]
	return under
}

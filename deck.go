package holdemeval

// UnshuffledSize is the unshuffled deck size.
const UnshuffledSize = 52

// unshuffled is an unshuffled set of cards.
var unshuffled = Unshuffled()

// Unshuffled generates an unshuffled set of standard playing cards.
func Unshuffled() []Card {
	v := make([]Card, UnshuffledSize)
	var i int
	for _, s := range []Suit{Spade, Heart, Club, Diamond} {
		for r := Two; r <= Ace; r++ {
			v[i] = New(r, s)
			i++
		}
	}
	return v
}

// Deck is a set of playing cards.
type Deck struct {
	i int
	v []Card
}

// NewDeck creates a new deck of cards. If no cards are provided, a deck is
// built from the standard unshuffled 52 cards.
func NewDeck(cards ...Card) *Deck {
	if cards == nil {
		cards = unshuffled
	}
	d := &Deck{v: make([]Card, len(cards))}
	copy(d.v, cards)
	return d
}

// Shuffle shuffles the deck's cards using f (same interface as
// math/rand.Shuffle).
func (d *Deck) Shuffle(f func(int, func(i, j int))) {
	f(len(d.v), func(i, j int) { d.v[i], d.v[j] = d.v[j], d.v[i] })
}

// Draw draws the next n cards from the top of the deck.
func (d *Deck) Draw(n int) []Card {
	if n < 0 {
		panic("n cannot be negative")
	}
	var hand []Card
	for l := min(d.i+n, len(d.v)); d.i < l; d.i++ {
		hand = append(hand, d.v[d.i])
	}
	return hand
}

// Remaining returns the number of remaining cards in the deck.
func (d *Deck) Remaining() int {
	if n := len(d.v) - d.i; 0 <= n {
		return n
	}
	return 0
}

// Deal draws one card successively for each hand until each hand has n
// cards.
func (d *Deck) Deal(hands, n int) [][]Card {
	pockets := make([][]Card, hands)
	for i := range pockets {
		pockets[i] = make([]Card, n)
	}
	for j := 0; j < n; j++ {
		for i := 0; i < hands; i++ {
			pockets[i][j] = d.Draw(1)[0]
		}
	}
	return pockets
}

// Board draws board cards by discarding a card and drawing n cards for each
// n in counts.
func (d *Deck) Board(counts ...int) []Card {
	var board []Card
	for _, n := range counts {
		board = append(board, d.Draw(n+1)[1:]...)
	}
	return board
}

// Holdem draws hands for Texas Hold'em, returning the pockets (one per
// hand, as 2-card [CardSet] masks) and the board mask. Deals 1 card per
// player until each player has 2 pocket cards, then discards a card, deals
// 3 board cards, discards another, deals another board card, discards
// another, and deals a final card to the board.
func (d *Deck) Holdem(hands int) ([]CardSet, CardSet) {
	pockets := d.Deal(hands, 2)
	holes := make([]CardSet, hands)
	for i, p := range pockets {
		holes[i] = Mask(p...)
	}
	return holes, Mask(d.Board(3, 1, 1)...)
}

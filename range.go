package holdemeval

import (
	"fmt"
	"math/bits"
	"strings"
)

// totalHands is the number of distinct 2-card hole-card combinations: C(52,2).
const totalHands = 1326

// Range is a set of 2-card hole-card masks, built incrementally (by
// ParseRange, AddHand, or AddCell) and consumed read-only by the equity
// engine. No duplicates are possible: adding the same hand twice is a no-op.
type Range struct {
	hands map[CardSet]struct{}
}

// NewRange returns an empty Range.
func NewRange() *Range {
	return &Range{hands: make(map[CardSet]struct{})}
}

// AddHand adds the 2-card hand {c1, c2} to the range. A no-op if c1 == c2.
func (rg *Range) AddHand(c1, c2 Card) {
	if c1 == c2 {
		return
	}
	rg.hands[c1.Set()|c2.Set()] = struct{}{}
}

// AddMask adds a hand already encoded as a 2-card [CardSet].
func (rg *Range) AddMask(hand CardSet) {
	if hand.Popcount() == 2 {
		rg.hands[hand] = struct{}{}
	}
}

// gridIndex maps a rank to its grid column/row index: Ace is column/row 0,
// deuce is column/row 12 ("both reversed so A = 0").
func gridIndex(rank Rank) int {
	return 12 - rank.Index()
}

// AddCell adds every hand in grid cell (c, r): 6 pocket-pair combos when
// c == r, 4 suited combos when c > r, 12 offsuit combos when c < r. c and r
// are grid indexes in gridIndex's ordering, so a suited cell has the weaker
// rank's index as c and an offsuit cell has the stronger rank's index as c.
func (rg *Range) AddCell(c, r int) {
	switch {
	case c == r:
		rank := gridRank(c)
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				rg.AddHand(New(rank, Suit(i)), New(rank, Suit(j)))
			}
		}
	case c > r:
		a, b := gridRank(c), gridRank(r)
		for s := 0; s < 4; s++ {
			rg.AddHand(New(a, Suit(s)), New(b, Suit(s)))
		}
	default:
		a, b := gridRank(c), gridRank(r)
		for s1 := 0; s1 < 4; s1++ {
			for s2 := 0; s2 < 4; s2++ {
				if s1 != s2 {
					rg.AddHand(New(a, Suit(s1)), New(b, Suit(s2)))
				}
			}
		}
	}
}

// gridIndex's inverse: gridIndex takes a Rank, this takes the grid index.
// Declared separately to keep AddCell's (c, r) int parameters simple.
func gridRank(g int) Rank {
	return Rank(12 - g)
}

// CellTotal returns how many distinct hands belong to grid cell (c, r).
func CellTotal(c, r int) int {
	switch {
	case c == r:
		return 6
	case c > r:
		return 4
	default:
		return 12
	}
}

func (rg *Range) cellHands(c, r int) []CardSet {
	tmp := NewRange()
	tmp.AddCell(c, r)
	return tmp.Hands()
}

// CellSelected returns how many of cell (c, r)'s hands are present in the
// range, out of CellTotal(c, r).
func (rg *Range) CellSelected(c, r int) int {
	n := 0
	for _, h := range rg.cellHands(c, r) {
		if rg.Contains(h) {
			n++
		}
	}
	return n
}

// CellFullySelected reports whether every hand in cell (c, r) is present.
func (rg *Range) CellFullySelected(c, r int) bool {
	return rg.CellSelected(c, r) == CellTotal(c, r)
}

// CellPartiallySelected reports whether some, but not all, hands in cell
// (c, r) are present.
func (rg *Range) CellPartiallySelected(c, r int) bool {
	n := rg.CellSelected(c, r)
	return 0 < n && n < CellTotal(c, r)
}

// SuitBit returns the bit index (0-15) a (high-card suit, low-card suit)
// pair occupies in a [Range.FilterSuits] mask.
func SuitBit(hiSuit, loSuit Suit) int {
	return hiSuit.Index()*4 + loSuit.Index()
}

// splitHand returns the two cards making up a 2-card hand mask.
func splitHand(hand CardSet) (Card, Card) {
	lowBit := bits.TrailingZeros64(uint64(hand))
	rest := hand &^ (CardSet(1) << uint(lowBit))
	highBit := bits.TrailingZeros64(uint64(rest))
	return Card(lowBit), Card(highBit)
}

// FilterSuits removes every hand from the range whose (high-card suit,
// low-card suit) bit (see [SuitBit]) is not set in mask.
func (rg *Range) FilterSuits(mask uint16) {
	for hand := range rg.hands {
		c1, c2 := splitHand(hand)
		hi, lo := c1, c2
		if hi.RankIndex() < lo.RankIndex() {
			hi, lo = lo, hi
		}
		if mask&(1<<uint(SuitBit(hi.Suit(), lo.Suit()))) == 0 {
			delete(rg.hands, hand)
		}
	}
}

// Contains reports whether hand is in the range.
func (rg *Range) Contains(hand CardSet) bool {
	_, ok := rg.hands[hand]
	return ok
}

// Len returns the number of distinct hands in the range.
func (rg *Range) Len() int {
	return len(rg.hands)
}

// Percent returns the range's size as a fraction of all 1,326 distinct
// 2-card hands.
func (rg *Range) Percent() float64 {
	return float64(len(rg.hands)) / totalHands
}

// Hands returns the range's hands as a slice of 2-card masks, in no
// particular order.
func (rg *Range) Hands() []CardSet {
	out := make([]CardSet, 0, len(rg.hands))
	for h := range rg.hands {
		out = append(out, h)
	}
	return out
}

// String satisfies the [fmt.Stringer] interface.
func (rg *Range) String() string {
	return fmt.Sprintf("%.1f%% (%d combos)", rg.Percent()*100, rg.Len())
}

// handTerm is a single parsed range-grammar term: a pocket pair ("top" used
// for both cards) or a two-rank hand with top the stronger rank, kicker the
// weaker, regardless of the order the user wrote them in.
type handTerm struct {
	pair            bool
	top, kicker     Rank
	suited, offsuit bool
}

func parseHandTerm(tok string) (handTerm, error) {
	r := []rune(tok)
	if len(r) < 2 {
		return handTerm{}, &ParseError{S: tok, Err: ErrInvalidCard}
	}
	a, b := RankFromRune(r[0]), RankFromRune(r[1])
	if a == InvalidRank || b == InvalidRank {
		return handTerm{}, &ParseError{S: tok, Err: ErrInvalidCard}
	}
	if a == b {
		if len(r) != 2 {
			return handTerm{}, &ParseError{S: tok, Err: ErrInvalidCard}
		}
		return handTerm{pair: true, top: a, kicker: a}, nil
	}
	top, kicker := a, b
	if kicker.Index() > top.Index() {
		top, kicker = kicker, top
	}
	t := handTerm{top: top, kicker: kicker}
	switch {
	case len(r) == 2:
		t.suited, t.offsuit = true, true
	case len(r) == 3 && (r[2] == 's' || r[2] == 'S'):
		t.suited = true
	case len(r) == 3 && (r[2] == 'o' || r[2] == 'O'):
		t.offsuit = true
	default:
		return handTerm{}, &ParseError{S: tok, Err: ErrInvalidCard}
	}
	return t, nil
}

// addSuited/addOffsuit place a two-rank term's AddCell call, given hi the
// stronger and lo the weaker rank: AddCell requires c > r for suited hands
// and c < r for offsuit, and gridIndex is rank-index-descending, so the
// stronger rank always has the smaller grid index.
func (rg *Range) addSuited(hi, lo Rank) {
	rg.AddCell(gridIndex(lo), gridIndex(hi))
}

func (rg *Range) addOffsuit(hi, lo Rank) {
	rg.AddCell(gridIndex(hi), gridIndex(lo))
}

func applyTerm(rg *Range, t handTerm) {
	if t.pair {
		g := gridIndex(t.top)
		rg.AddCell(g, g)
		return
	}
	if t.suited {
		rg.addSuited(t.top, t.kicker)
	}
	if t.offsuit {
		rg.addOffsuit(t.top, t.kicker)
	}
}

func applyBoundSubrange(rg *Range, fromTok, toTok string) error {
	from, err := parseHandTerm(fromTok)
	if err != nil {
		return err
	}
	to, err := parseHandTerm(toTok)
	if err != nil {
		return err
	}
	if from.pair != to.pair {
		return &ParseError{S: fromTok + "-" + toTok, Err: ErrInvalidCard}
	}
	if from.pair {
		lo, hi := from.top, to.top
		if lo.Index() > hi.Index() {
			lo, hi = hi, lo
		}
		for rk := lo.Index(); rk <= hi.Index(); rk++ {
			applyTerm(rg, handTerm{pair: true, top: Rank(rk), kicker: Rank(rk)})
		}
		return nil
	}
	if from.top != to.top {
		return &ParseError{S: fromTok + "-" + toTok, Err: ErrInvalidCard}
	}
	lo, hi := from.kicker, to.kicker
	if lo.Index() > hi.Index() {
		lo, hi = hi, lo
	}
	for rk := lo.Index(); rk <= hi.Index(); rk++ {
		if Rank(rk) == from.top {
			continue
		}
		applyTerm(rg, handTerm{top: from.top, kicker: Rank(rk), suited: from.suited, offsuit: from.offsuit})
	}
	return nil
}

func applyOpenSubrange(rg *Range, fromTok string) error {
	from, err := parseHandTerm(fromTok)
	if err != nil {
		return err
	}
	if from.pair {
		for rk := from.top.Index(); rk <= Ace.Index(); rk++ {
			applyTerm(rg, handTerm{pair: true, top: Rank(rk), kicker: Rank(rk)})
		}
		return nil
	}
	for rk := from.kicker.Index(); rk < from.top.Index(); rk++ {
		applyTerm(rg, handTerm{top: from.top, kicker: Rank(rk), suited: from.suited, offsuit: from.offsuit})
	}
	return nil
}

func applyRangeToken(rg *Range, tok string) error {
	switch {
	case strings.HasSuffix(tok, "+"):
		return applyOpenSubrange(rg, tok[:len(tok)-1])
	case strings.Contains(tok, "-"):
		i := strings.LastIndex(tok, "-")
		return applyBoundSubrange(rg, tok[:i], tok[i+1:])
	default:
		t, err := parseHandTerm(tok)
		if err != nil {
			return err
		}
		applyTerm(rg, t)
		return nil
	}
}

// ParseRange parses a whitespace-separated range string into a Range. Each
// term is a hand ("AKs", "AKo", "AA" — a hand with no suit letter means
// both suited and offsuit), a bound subrange ("AJs-ATs", "88-22"), or an
// open subrange ("AJs+", "88+").
func ParseRange(s string) (*Range, error) {
	rg := NewRange()
	for _, tok := range strings.Fields(s) {
		if err := applyRangeToken(rg, tok); err != nil {
			return nil, err
		}
	}
	return rg, nil
}

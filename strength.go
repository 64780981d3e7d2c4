package holdemeval

import "fmt"

// Strength is a 32-bit packed hand-strength value. Numeric comparison of two
// Strength values agrees with poker hand ranking; equal values mean a chop.
//
// Bit layout, MSB to LSB: 4-bit category, then five 4-bit kicker fields
// (top, second, third, fourth, fifth), with the
// low 8 bits reserved and always zero.
type Strength uint32

const (
	categoryShift = 28
	topShift      = 24
	secondShift   = 20
	thirdShift    = 16
	fourthShift   = 12
	fifthShift    = 8
)

// Category is the hand category encoded in a Strength's top 4 bits.
type Category uint8

// Hand categories, lowest to highest, matching the packed Strength layout.
const (
	HighCard Category = iota
	Pair
	TwoPair
	Trips
	Straight
	Flush
	FullHouse
	Quads
	StraightFlush
)

var categoryNames = [...]string{
	HighCard:      "high card",
	Pair:          "pair",
	TwoPair:       "two pair",
	Trips:         "trips",
	Straight:      "straight",
	Flush:         "flush",
	FullHouse:     "full house",
	Quads:         "quads",
	StraightFlush: "straight flush",
}

var categoryTitles = [...]string{
	HighCard:      "High Card",
	Pair:          "Pair",
	TwoPair:       "Two Pair",
	Trips:         "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	Quads:         "Four of a Kind",
	StraightFlush: "Straight Flush",
}

// String returns the category's lowercase name, e.g. "two pair".
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// Title returns the category's title-cased name, e.g. "Two Pair".
func (c Category) Title() string {
	if int(c) < len(categoryTitles) {
		return categoryTitles[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// Category extracts the hand category from s.
func (s Strength) Category() Category {
	return Category(s >> categoryShift)
}

// Kickers returns the five packed 4-bit kicker fields (top, second, third,
// fourth, fifth), each a rank index 0-12, or 0 where the category leaves a
// field unused.
func (s Strength) Kickers() [5]int {
	return [5]int{
		int(s>>topShift) & 0xf,
		int(s>>secondShift) & 0xf,
		int(s>>thirdShift) & 0xf,
		int(s>>fourthShift) & 0xf,
		int(s>>fifthShift) & 0xf,
	}
}

func pack(category Category, top, second, third, fourth, fifth int) Strength {
	return Strength(category)<<categoryShift |
		Strength(top&0xf)<<topShift |
		Strength(second&0xf)<<secondShift |
		Strength(third&0xf)<<thirdShift |
		Strength(fourth&0xf)<<fourthShift |
		Strength(fifth&0xf)<<fifthShift
}

// String renders the strength's category and its five kicker fields as rank
// indexes, e.g. "two pair [11 5 10 0 0]" for kings and sevens with a queen
// kicker.
func (s Strength) String() string {
	return fmt.Sprintf("%s %v", s.Category(), s.Kickers())
}

// Format implements fmt.Formatter. The %v verb (or bare printing) uses
// String; %d prints the raw packed integer.
func (s Strength) Format(f fmt.State, verb rune) {
	switch verb {
	case 'd':
		fmt.Fprintf(f, "%d", uint32(s))
	default:
		fmt.Fprint(f, s.String())
	}
}

package holdemeval

import "math/bits"

// Lookup tables indexed by a 13-bit "ranks present" value (bit r set means
// rank r, 0=deuce..12=ace, is present). Built once at package init.
const tableSize = 1 << 13

var (
	topCard      [tableSize]int
	topFiveCards [tableSize]Strength
	straightHigh [tableSize]int
	popcount13   [tableSize]int
)

func init() {
	for v := 0; v < tableSize; v++ {
		popcount13[v] = bits.OnesCount16(uint16(v))
		topCard[v] = computeTopCard(uint16(v))
		topFiveCards[v] = computeTopFiveCards(uint16(v))
		straightHigh[v] = computeStraightHigh(uint16(v))
	}
}

// computeTopCard returns the rank index of the highest set bit in v, or 0
// when v is empty.
func computeTopCard(v uint16) int {
	if v == 0 {
		return 0
	}
	return bits.Len16(v) - 1
}

// computeTopFiveCards packs the five highest ranks set in v into the top
// through fifth kicker fields, leaving the trailing fields zero when v has
// fewer than five bits set. Category is left at 0 (high card); callers OR
// in their own category.
func computeTopFiveCards(v uint16) Strength {
	var ranks [5]int
	n := 0
	for r := 12; r >= 0 && n < 5; r-- {
		if v&(1<<uint(r)) != 0 {
			ranks[n] = r
			n++
		}
	}
	return pack(HighCard, ranks[0], ranks[1], ranks[2], ranks[3], ranks[4])
}

// computeStraightHigh returns the rank index of the high card of the best
// 5-consecutive-rank run present in v, checked from ace-high down to the
// wheel, or 0 if no straight is present. The wheel (A-2-3-4-5) reports 3,
// the index of the "5", so it ranks below the 6-high straight (index 4) and
// above "no straight" (0).
func computeStraightHigh(v uint16) int {
	for high := 12; high >= 4; high-- {
		run := uint16(0x1f) << uint(high-4)
		if v&run == run {
			return high
		}
	}
	if v&WheelMask == WheelMask {
		return rankFive
	}
	return 0
}

package holdemeval

import "sort"

// Evaluate computes the strength of a 1-to-7 card hand. It is pure and
// branchless in the sense that every code path does the same constant-time
// table lookups; only the final category selection varies by shape, driven
// entirely by dup, the count of cards sharing a rank with another card.
//
// Evaluate never errors: a mask outside 1-7 bits within the low 52 is a
// programming error and its result is undefined. Callers must guard.
func Evaluate(mask CardSet) Strength {
	ss, sh, sc, sd, ranks := projectSuits(mask)
	n := mask.Popcount()
	nr := popcount13[ranks]
	dup := n - nr

	var tentative Strength
	haveTentative := false

	if nr >= 5 {
		if flushRanks, ok := bestFlushRanks(ss, sh, sc, sd); ok {
			if top := straightHigh[flushRanks]; top != 0 {
				return pack(StraightFlush, top, 0, 0, 0, 0)
			}
			tentative = Strength(Flush)<<categoryShift | topFiveCards[flushRanks]
			haveTentative = true
		} else if top := straightHigh[ranks]; top != 0 {
			tentative = pack(Straight, top, 0, 0, 0, 0)
			haveTentative = true
		}
		if haveTentative && dup < 3 {
			return tentative
		}
	}

	switch {
	case dup == 0:
		return topFiveCards[ranks]

	case dup == 1:
		twoMask := ranks ^ (ss ^ sh ^ sc ^ sd)
		pairRank := topCard[twoMask]
		k := topFiveCards[ranks&^twoMask].Kickers()
		return pack(Pair, pairRank, k[0], k[1], k[2], 0)

	case dup == 2:
		twoMask := ranks ^ (ss ^ sh ^ sc ^ sd)
		if twoMask != 0 {
			hi, lo := topTwoRanks(twoMask)
			kicker := topCard[ranks&^twoMask]
			return pack(TwoPair, hi, lo, kicker, 0, 0)
		}
		threeMask := tripleMask(ss, sh, sc, sd)
		tripRank := topCard[threeMask]
		k := topFiveCards[ranks&^threeMask].Kickers()
		return pack(Trips, tripRank, k[0], k[1], 0, 0)

	default: // dup >= 3
		fourMask := ss & sh & sc & sd
		if fourMask != 0 {
			quadRank := topCard[fourMask]
			kicker := topCard[ranks&^fourMask]
			return pack(Quads, quadRank, kicker, 0, 0, 0)
		}
		twoMask := ranks ^ (ss ^ sh ^ sc ^ sd)
		threeMask := tripleMask(ss, sh, sc, sd)
		if popcount13[twoMask] != dup {
			top := topCard[threeMask]
			pairRank := topCard[(twoMask|threeMask)&^(uint16(1)<<uint(top))]
			return pack(FullHouse, top, pairRank, 0, 0, 0)
		}
		if haveTentative {
			return tentative
		}
		hi, lo := topTwoRanks(twoMask)
		kicker := topCard[ranks&^(uint16(1)<<uint(hi)|uint16(1)<<uint(lo))]
		return pack(TwoPair, hi, lo, kicker, 0, 0)
	}
}

// bestFlushRanks checks the four suits in a fixed order and returns the
// rank mask of the first with 5 or more cards. At most one suit can qualify
// in a hand of 7 cards or fewer, so the fixed order never affects the
// result.
func bestFlushRanks(ss, sh, sc, sd uint16) (uint16, bool) {
	for _, s := range [4]uint16{ss, sh, sc, sd} {
		if popcount13[s] >= 5 {
			return s, true
		}
	}
	return 0, false
}

// tripleMask returns the bits set in at least 3 of the 4 suit rank masks.
func tripleMask(ss, sh, sc, sd uint16) uint16 {
	return ((sc & sd) | (sh & ss)) & ((sc & sh) | (sd & ss))
}

// topTwoRanks returns the ranks of the two highest bits set in v.
func topTwoRanks(v uint16) (int, int) {
	hi := topCard[v]
	rest := v &^ (uint16(1) << uint(hi))
	lo := topCard[rest]
	return hi, lo
}

// PlayerStrength records one player's showdown evaluation: the player's
// index in the order the holes were supplied, their hole cards, and the
// strength of their best hand against the board.
type PlayerStrength struct {
	Player   int
	Hole     CardSet
	Strength Strength
}

// Showdown evaluates every player's hole cards against a completed board and
// returns the records sorted descending by strength, ties keeping supplied
// order. The pot splits when the top two records share a strength (see
// [IsSplit]).
func Showdown(board CardSet, holes []CardSet) []PlayerStrength {
	results := make([]PlayerStrength, len(holes))
	for i, h := range holes {
		results[i] = PlayerStrength{Player: i, Hole: h, Strength: Evaluate(board | h)}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Strength > results[j].Strength
	})
	return results
}

// IsSplit reports whether a [Showdown] result is a split pot.
func IsSplit(results []PlayerStrength) bool {
	return 2 <= len(results) && results[0].Strength == results[1].Strength
}

package holdemeval

import (
	"math/rand"
	"testing"
)

func mustCards(t *testing.T, s string) CardSet {
	t.Helper()
	cards, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return Mask(cards...)
}

func TestEvaluateCategories(t *testing.T) {
	tests := []struct {
		name string
		hand string
		want Category
	}{
		{"high card", "Ah Kd 9c 4s 2h", HighCard},
		{"pair", "Ah As 9c 4s 2h", Pair},
		{"two pair", "Ah As 9c 9s 2h", TwoPair},
		{"trips", "Ah As Ac 4s 2h", Trips},
		{"straight", "5h 6d 7c 8s 9h", Straight},
		{"wheel straight", "Ah 2d 3c 4s 5h", Straight},
		{"flush", "2h 6h 9h Jh Kh", Flush},
		{"full house", "Ah As Ac 9s 9h", FullHouse},
		{"quads", "Ah As Ac Ad 2h", Quads},
		{"straight flush", "5h 6h 7h 8h 9h", StraightFlush},
		{"wheel straight flush (steel wheel)", "Ah 2h 3h 4h 5h", StraightFlush},
		{"royal flush", "Ah Kh Qh Jh Th", StraightFlush},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(mustCards(t, tt.hand)).Category()
			if got != tt.want {
				t.Fatalf("Evaluate(%q).Category() = %v, want %v", tt.hand, got, tt.want)
			}
		})
	}
}

func TestEvaluateSevenCardBest(t *testing.T) {
	// The seven cards hold both a 5-9 straight and a pair of deuces;
	// seven-card evaluation must pick the straight, since it beats the pair.
	hand := mustCards(t, "5h 6d 7c 8s 9h 2c 2d")
	s := Evaluate(hand)
	if s.Category() != Straight {
		t.Fatalf("Category() = %v, want %v", s.Category(), Straight)
	}
}

func TestEvaluateFlushBeatsStraightWhenBothPresent(t *testing.T) {
	// 7-card hand containing both a straight and a flush as 5-card subsets,
	// but no straight flush: flush must win.
	hand := mustCards(t, "2h 4h 6h 8h Th 3c 5d")
	s := Evaluate(hand)
	if s.Category() != Flush {
		t.Fatalf("Category() = %v, want %v", s.Category(), Flush)
	}
}

func TestEvaluateKickerOrdering(t *testing.T) {
	better := Evaluate(mustCards(t, "Ah As 9c 4s 2h"))
	worse := Evaluate(mustCards(t, "Ah As 8c 4s 2h"))
	if better <= worse {
		t.Fatalf("AA9 kicker should beat AA8 kicker: %v vs %v", better, worse)
	}
}

func TestEvaluateChopIsEqual(t *testing.T) {
	a := Evaluate(mustCards(t, "Ah Kd 9c 4s 2h"))
	b := Evaluate(mustCards(t, "As Kc 9h 4d 2c"))
	if a != b {
		t.Fatalf("identical ranks on different suits should be equal strength: %v vs %v", a, b)
	}
}

func TestEvaluateCategoryMonotone(t *testing.T) {
	// A hand in a higher category must always outrank one in a lower
	// category, regardless of kickers.
	worstQuads := Evaluate(mustCards(t, "2h 2s 2c 2d 3h"))
	bestFullHouse := Evaluate(mustCards(t, "Ah As Ac Kd Ks"))
	if worstQuads <= bestFullHouse {
		t.Fatalf("weakest quads should beat strongest full house: %v vs %v", worstQuads, bestFullHouse)
	}
}

func TestEvaluateRandomSevenCardAgreesWithBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(123))
	for i := 0; i < 500; i++ {
		var mask CardSet
		for mask.Popcount() < 7 {
			mask |= 1 << uint(rng.Intn(52))
		}
		got := Evaluate(mask)
		want := bruteForceBest(mask)
		if got != want {
			t.Fatalf("mask=%v: Evaluate=%v, bruteForceBest=%v", mask, got, want)
		}
	}
}

func TestEvaluateMonotoneUnderAddedCard(t *testing.T) {
	// Adding a card to a hand never decreases its strength: the best 5-card
	// subset of the old hand is still available.
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 300; i++ {
		var mask CardSet
		for mask.Popcount() < 5 {
			mask |= 1 << uint(rng.Intn(52))
		}
		base := Evaluate(mask)
		for mask.Popcount() < 7 {
			add := CardSet(1) << uint(rng.Intn(52))
			if mask&add != 0 {
				continue
			}
			mask |= add
			next := Evaluate(mask)
			if next < base {
				t.Fatalf("strength decreased from %v to %v after adding a card: %v", base, next, mask)
			}
			base = next
		}
	}
}

func TestShowdown(t *testing.T) {
	board := mustCards(t, "9h 7c 6s 3h Tc")
	holes := []CardSet{mustCards(t, "Kh Ks"), mustCards(t, "Ah As"), mustCards(t, "2h 2c")}
	results := Showdown(board, holes)
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[0].Player != 1 || results[1].Player != 0 || results[2].Player != 2 {
		t.Fatalf("showdown order = %d %d %d, want 1 0 2",
			results[0].Player, results[1].Player, results[2].Player)
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].Strength < results[i].Strength {
			t.Fatalf("results not sorted descending at %d", i)
		}
	}
	if IsSplit(results) {
		t.Fatal("expected no split")
	}
}

func TestShowdownSplit(t *testing.T) {
	board := mustCards(t, "Ac Js 7h 6h 3d")
	holes := []CardSet{mustCards(t, "Ah Kh"), mustCards(t, "As Ks")}
	if results := Showdown(board, holes); !IsSplit(results) {
		t.Fatalf("expected a split: %+v", results)
	}
}

// bruteForceBest evaluates every 5-card subset of a 6- or 7-card mask and
// returns the best, as an independent check on Evaluate's direct 7-card
// path.
func bruteForceBest(mask CardSet) Strength {
	var cards []int
	for i := 0; i < 52; i++ {
		if mask&(1<<uint(i)) != 0 {
			cards = append(cards, i)
		}
	}
	var best Strength
	var choose func(start int, chosen []int)
	choose = func(start int, chosen []int) {
		if len(chosen) == 5 {
			var m CardSet
			for _, c := range chosen {
				m |= 1 << uint(c)
			}
			if s := Evaluate(m); s > best {
				best = s
			}
			return
		}
		for i := start; i < len(cards); i++ {
			choose(i+1, append(chosen, cards[i]))
		}
	}
	choose(0, nil)
	return best
}

package holdemeval

import "testing"

func TestAddCellPair(t *testing.T) {
	rg := NewRange()
	g := gridIndex(Ace)
	rg.AddCell(g, g)
	if rg.Len() != 6 {
		t.Fatalf("Len() = %d, want 6 pocket-pair combos", rg.Len())
	}
	if !rg.CellFullySelected(g, g) {
		t.Fatal("expected cell fully selected")
	}
}

func TestAddCellSuited(t *testing.T) {
	rg := NewRange()
	rg.addSuited(Ace, King)
	if rg.Len() != 4 {
		t.Fatalf("Len() = %d, want 4 suited combos", rg.Len())
	}
	for h := range rg.hands {
		c1, c2 := splitHand(h)
		if c1.Suit() != c2.Suit() {
			t.Fatalf("hand %v %v is not suited", c1, c2)
		}
	}
}

func TestAddCellOffsuit(t *testing.T) {
	rg := NewRange()
	rg.addOffsuit(Ace, King)
	if rg.Len() != 12 {
		t.Fatalf("Len() = %d, want 12 offsuit combos", rg.Len())
	}
	for h := range rg.hands {
		c1, c2 := splitHand(h)
		if c1.Suit() == c2.Suit() {
			t.Fatalf("hand %v %v is suited, want offsuit", c1, c2)
		}
	}
}

func TestParseRangePairTerm(t *testing.T) {
	rg, err := ParseRange("AA")
	if err != nil {
		t.Fatal(err)
	}
	if rg.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", rg.Len())
	}
}

func TestParseRangeTwoRankNoSuitSuffix(t *testing.T) {
	rg, err := ParseRange("AK")
	if err != nil {
		t.Fatal(err)
	}
	if rg.Len() != 16 {
		t.Fatalf("Len() = %d, want 16 (4 suited + 12 offsuit)", rg.Len())
	}
}

func TestParseRangeSuitedOnly(t *testing.T) {
	rg, err := ParseRange("AKs")
	if err != nil {
		t.Fatal(err)
	}
	if rg.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", rg.Len())
	}
}

func TestParseRangeBoundPairSubrange(t *testing.T) {
	rg, err := ParseRange("88-22")
	if err != nil {
		t.Fatal(err)
	}
	// 22 33 44 55 66 77 88: 7 pair ranks * 6 combos each
	if rg.Len() != 7*6 {
		t.Fatalf("Len() = %d, want %d", rg.Len(), 7*6)
	}
}

func TestParseRangeBoundTwoRankSubrangeHoldsTopFixed(t *testing.T) {
	rg, err := ParseRange("AJs-ATs")
	if err != nil {
		t.Fatal(err)
	}
	// AQs, AKs excluded (kicker not in [T,J]); only AJs and ATs qualify: 2 kickers * 4 combos
	if rg.Len() != 2*4 {
		t.Fatalf("Len() = %d, want %d", rg.Len(), 2*4)
	}
	for h := range rg.hands {
		c1, c2 := splitHand(h)
		hi, lo := c1, c2
		if hi.RankIndex() < lo.RankIndex() {
			hi, lo = lo, hi
		}
		if hi.Rank() != Ace {
			t.Fatalf("expected top rank fixed at Ace, got %v", hi.Rank())
		}
	}
}

func TestParseRangeOpenPairSubrange(t *testing.T) {
	rg, err := ParseRange("TT+")
	if err != nil {
		t.Fatal(err)
	}
	// TT JJ QQ KK AA: 5 ranks * 6 combos
	if rg.Len() != 5*6 {
		t.Fatalf("Len() = %d, want %d", rg.Len(), 5*6)
	}
}

func TestParseRangeOpenTwoRankSubrange(t *testing.T) {
	rg, err := ParseRange("ATs+")
	if err != nil {
		t.Fatal(err)
	}
	// ATs AJs AQs AKs: 4 kickers * 4 combos
	if rg.Len() != 4*4 {
		t.Fatalf("Len() = %d, want %d", rg.Len(), 4*4)
	}
}

func TestParseRangeMultipleTokens(t *testing.T) {
	rg, err := ParseRange("AA KK AKs")
	if err != nil {
		t.Fatal(err)
	}
	if rg.Len() != 6+6+4 {
		t.Fatalf("Len() = %d, want %d", rg.Len(), 6+6+4)
	}
}

func TestParseRangeInvalidToken(t *testing.T) {
	if _, err := ParseRange("ZZ"); err == nil {
		t.Fatal("expected error for invalid token")
	}
}

func TestFilterSuits(t *testing.T) {
	rg := NewRange()
	rg.addSuited(Ace, King)
	// Keep only spade-spade: SuitBit(Spade, Spade) = 0.
	rg.FilterSuits(1 << uint(SuitBit(Spade, Spade)))
	if rg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", rg.Len())
	}
}

func TestRangePercentAndString(t *testing.T) {
	rg := NewRange()
	g := gridIndex(Ace)
	rg.AddCell(g, g)
	if got, want := rg.Percent(), 6.0/totalHands; got != want {
		t.Fatalf("Percent() = %v, want %v", got, want)
	}
	if rg.String() == "" {
		t.Fatal("expected non-empty String()")
	}
}

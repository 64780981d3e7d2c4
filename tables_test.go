package holdemeval

import "testing"

func TestPopcount13MatchesBits(t *testing.T) {
	for _, v := range []uint16{0, 1, 0x1fff, 0b1010101, 0b11110000} {
		if got, want := popcount13[v], popcount16(v); got != want {
			t.Fatalf("popcount13[%b] = %d, want %d", v, got, want)
		}
	}
}

func TestTopCard(t *testing.T) {
	if got := topCard[0]; got != 0 {
		t.Fatalf("topCard[0] = %d, want 0", got)
	}
	v := uint16(1<<rankAce | 1<<rankTwo | 1<<rankSeven)
	if got := topCard[v]; got != rankAce {
		t.Fatalf("topCard[%b] = %d, want %d", v, got, rankAce)
	}
}

func TestTopFiveCards(t *testing.T) {
	v := uint16(1<<rankAce | 1<<rankKing | 1<<rankQueen | 1<<rankJack | 1<<rankTen | 1<<rankTwo)
	k := topFiveCards[v].Kickers()
	want := [5]int{rankAce, rankKing, rankQueen, rankJack, rankTen}
	if k != want {
		t.Fatalf("topFiveCards[%b].Kickers() = %v, want %v", v, k, want)
	}
}

func TestTopFiveCardsFewerThanFive(t *testing.T) {
	v := uint16(1<<rankAce | 1<<rankTwo)
	k := topFiveCards[v].Kickers()
	want := [5]int{rankAce, rankTwo, 0, 0, 0}
	if k != want {
		t.Fatalf("topFiveCards[%b].Kickers() = %v, want %v", v, k, want)
	}
}

func TestStraightHighAceToSix(t *testing.T) {
	for _, tt := range []struct {
		v    uint16
		want int
	}{
		{WheelMask, rankFive},
		{uint16(1<<rankTwo | 1<<rankThree | 1<<rankFour | 1<<rankFive | 1<<rankSix), rankSix},
		{uint16(1<<rankTen | 1<<rankJack | 1<<rankQueen | 1<<rankKing | 1<<rankAce), rankAce},
		{uint16(1<<rankAce | 1<<rankKing | 1<<rankQueen | 1<<rankJack | 1<<rankNine), 0},
	} {
		if got := straightHigh[tt.v]; got != tt.want {
			t.Fatalf("straightHigh[%b] = %d, want %d", tt.v, got, tt.want)
		}
	}
}

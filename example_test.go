package holdemeval_test

import (
	"context"
	"fmt"

	"github.com/brunozell/holdemeval"
)

func ExampleEvaluate() {
	for _, hand := range []string{
		"Ah Kh Qh Jh Th",
		"9c 9d 9h 9s 2c",
		"As Ks Qd Jc Th",
		"Ah 2h 3c 4d 5s",
	} {
		cards := holdemeval.Must(hand)
		s := holdemeval.Evaluate(holdemeval.Mask(cards...))
		fmt.Printf("%s: %s\n", hand, s.Category().Title())
	}
	// Output:
	// Ah Kh Qh Jh Th: Straight Flush
	// 9c 9d 9h 9s 2c: Four of a Kind
	// As Ks Qd Jc Th: Straight
	// Ah 2h 3c 4d 5s: Straight
}

func ExampleCalcEquity() {
	board, _ := holdemeval.ParseBoard("2h 7c 9s Jd 3c")
	h1, _ := holdemeval.ParseHole("AhAs")
	h2, _ := holdemeval.ParseHole("KdKc")
	odds, _ := holdemeval.CalcEquity(context.Background(), board, []holdemeval.CardSet{h1, h2}, 0)
	fmt.Println(odds)
	// Output:
	// 100.0% / 0.0%
}

func ExampleShowdown() {
	board, _ := holdemeval.ParseBoard("Ac Js 7h 6h 3d")
	h1, _ := holdemeval.ParseHole("AhKh")
	h2, _ := holdemeval.ParseHole("AsKs")
	results := holdemeval.Showdown(board, []holdemeval.CardSet{h1, h2})
	fmt.Println(holdemeval.IsSplit(results))
	// Output:
	// true
}

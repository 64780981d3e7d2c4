package holdemeval

import (
	"context"
	"fmt"
	"math/bits"
	"math/rand"
	"strings"

	"golang.org/x/text/message"
)

// calcConfig holds the options a [CalcOption] can set. Never constructed
// directly by callers.
type calcConfig struct {
	rng               *rand.Rand
	trials            int
	rangeSampleTrials int
	liveTrials        int
	progressEvery     int
}

// CalcOption configures an equity calculation.
type CalcOption func(*calcConfig)

// WithRand sets the random source used for sampling. Equity calls never
// use a process-wide RNG; without this option each call uses a fresh
// source seeded with 1.
func WithRand(rng *rand.Rand) CalcOption {
	return func(c *calcConfig) { c.rng = rng }
}

// WithTrials sets both the Monte-Carlo sample count and the exact/sampled
// crossover: when the true number of board completions is at most this
// many, [CalcEquity] enumerates them exactly instead of sampling.
func WithTrials(n int) CalcOption {
	return func(c *calcConfig) { c.trials = n }
}

// WithRangeSampleTrials sets the per-combination trial count [CalcRangeEquity]
// uses when averaging over a range-vs-range Cartesian product.
func WithRangeSampleTrials(n int) CalcOption {
	return func(c *calcConfig) { c.rangeSampleTrials = n }
}

// WithLiveTrials sets the inner sample count [CalcLiveEquity] runs per
// outer iteration (per drawn set of holdings) before reporting progress.
func WithLiveTrials(n int) CalcOption {
	return func(c *calcConfig) { c.liveTrials = n }
}

// WithProgressEvery sets how many outer iterations [CalcLiveEquity] runs
// between progress callbacks.
func WithProgressEvery(n int) CalcOption {
	return func(c *calcConfig) { c.progressEvery = n }
}

func newCalcConfig(opts []CalcOption) *calcConfig {
	c := &calcConfig{
		rng:               rand.New(rand.NewSource(1)),
		trials:            25000,
		rangeSampleTrials: 100,
		liveTrials:        1000,
		progressEvery:     100,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Odds is the result of an equity calculation: one win probability per
// player plus the probability that the pot splits among two or more of
// them. Equities plus Split sum to 1.0 within floating-point tolerance.
type Odds struct {
	Equities []float64
	Split    float64
}

// String renders the odds as percentages, e.g. "62.3% / 37.1% (0.6% split)".
func (o Odds) String() string {
	p := message.NewPrinter(message.MatchLanguage("en"))
	var sb strings.Builder
	for i, e := range o.Equities {
		if i > 0 {
			sb.WriteString(" / ")
		}
		sb.WriteString(p.Sprintf("%.1f%%", e*100))
	}
	if o.Split > 0 {
		sb.WriteString(p.Sprintf(" (%.1f%% split)", o.Split*100))
	}
	return sb.String()
}

// Format satisfies the [fmt.Formatter] interface.
func (o Odds) Format(f fmt.State, verb rune) {
	_, _ = fmt.Fprint(f, o.String())
}

// checkPreconditions panics with an [Error] when holes are not pairwise
// disjoint, overlap board or dead, or board has an invalid card count.
// These are programming errors, not recoverable runtime conditions (spec's
// precondition-violation error kind): the caller is expected to have built
// board/holes/dead from disjoint sources.
func checkPreconditions(board, dead CardSet, holes []CardSet) {
	switch board.Popcount() {
	case 0, 3, 4, 5:
	default:
		panic(ErrInvalidCardCount)
	}
	used := board | dead
	for _, h := range holes {
		if h.Popcount() != 2 {
			panic(ErrInvalidCardCount)
		}
		if h&used != 0 {
			panic(ErrOverlappingCards)
		}
		used |= h
	}
}

// evaluateCompletion evaluates holes against a completed board, records a
// win into wins, and reports whether the result was a split. strengths is
// caller-owned scratch space, reused across calls to avoid reallocating it
// per sample.
func evaluateCompletion(full CardSet, holes []CardSet, strengths []Strength, wins []int64) bool {
	for p, h := range holes {
		strengths[p] = Evaluate(full | h)
	}
	best := strengths[0]
	for _, s := range strengths[1:] {
		if s > best {
			best = s
		}
	}
	n := 0
	for _, s := range strengths {
		if s == best {
			n++
		}
	}
	if n > 1 {
		return true
	}
	for p, s := range strengths {
		if s == best {
			wins[p]++
			return false
		}
	}
	return false
}

func tally(wins []int64, split, total int64) Odds {
	eq := make([]float64, len(wins))
	if total == 0 {
		return Odds{Equities: eq}
	}
	for i, w := range wins {
		eq[i] = float64(w) / float64(total)
	}
	return Odds{Equities: eq, Split: float64(split) / float64(total)}
}

// randomDenseCombo returns a uniformly random k-of-width bit pattern, via
// Floyd's algorithm for sampling a random k-subset of {0,...,width-1}.
func randomDenseCombo(rng *rand.Rand, width, k int) uint64 {
	if k <= 0 {
		return 0
	}
	chosen := make(map[int]bool, k)
	for i := width - k; i < width; i++ {
		t := rng.Intn(i + 1)
		if chosen[t] {
			t = i
		}
		chosen[t] = true
	}
	var v uint64
	for idx := range chosen {
		v |= uint64(1) << uint(idx)
	}
	return v
}

// randomCombo draws a uniformly random k-card completion from the 52-card
// universe minus excluded, by sampling a random dense k-bit value and
// scattering it across the free bits with expandRight — no rejection
// sampling is needed because the dense value already has the right
// popcount and the free mask already excludes every used bit.
func randomCombo(rng *rand.Rand, k int, excluded CardSet) CardSet {
	free := uint64(FullMask) &^ uint64(excluded)
	freeWidth := bits.OnesCount64(free)
	dense := randomDenseCombo(rng, freeWidth, k)
	return CardSet(expandRight(dense, free))
}

// checkCanceled does a non-blocking check of ctx, for use on a sampling
// cadence rather than every iteration.
func checkCanceled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// CalcEquity computes each player's win probability, plus the split
// probability, for a board and a set of per-player hole-card masks. When
// the exact number of board completions is at most the configured trial
// count ([WithTrials]), every completion is enumerated exactly; otherwise
// completions are sampled by Monte Carlo with that many trials.
//
// holes must be pairwise disjoint and disjoint from board and dead;
// violating this panics (it is a programming error, not a runtime error).
func CalcEquity(ctx context.Context, board CardSet, holes []CardSet, dead CardSet, opts ...CalcOption) (Odds, error) {
	checkPreconditions(board, dead, holes)
	cfg := newCalcConfig(opts)
	need := 5 - board.Popcount()
	used := board | dead
	for _, h := range holes {
		used |= h
	}
	freeWidth := bits.OnesCount64(uint64(FullMask) &^ uint64(used))
	if binomial(freeWidth, need) <= cfg.trials {
		return exactEquity(ctx, board, holes, used, need)
	}
	return sampledEquity(ctx, board, holes, used, need, cfg)
}

func exactEquity(ctx context.Context, board CardSet, holes []CardSet, used CardSet, need int) (Odds, error) {
	m := len(holes)
	wins := make([]int64, m)
	strengths := make([]Strength, m)
	var split, total int64
	e := NewEnumerator(52, need, 0, used)
	for i := 0; e.Next(); i++ {
		if i%4096 == 0 {
			if err := checkCanceled(ctx); err != nil {
				return tally(wins, split, total), err
			}
		}
		full := board | e.Combo()
		if evaluateCompletion(full, holes, strengths, wins) {
			split++
		}
		total++
	}
	return tally(wins, split, total), nil
}

func sampledEquity(ctx context.Context, board CardSet, holes []CardSet, used CardSet, need int, cfg *calcConfig) (Odds, error) {
	m := len(holes)
	wins := make([]int64, m)
	strengths := make([]Strength, m)
	var split, total int64
	for i := 0; i < cfg.trials; i++ {
		if i%4096 == 0 {
			if err := checkCanceled(ctx); err != nil {
				return tally(wins, split, total), err
			}
		}
		full := board | randomCombo(cfg.rng, need, used)
		if evaluateCompletion(full, holes, strengths, wins) {
			split++
		}
		total++
	}
	return tally(wins, split, total), nil
}

// CalcRangeEquity computes the average equity over the Cartesian product
// of per-player ranges, skipping any combination where two players' hands
// overlap (or overlap board/dead). Each surviving combination's equity is
// estimated via [CalcEquity] with [WithRangeSampleTrials] trials ("T≈100" in
// the equity engine's sampled mode; CalcEquity may still resolve it exactly
// when few enough completions remain, e.g. near the river) and the results
// are averaged.
func CalcRangeEquity(ctx context.Context, board CardSet, ranges []*Range, dead CardSet, opts ...CalcOption) (Odds, error) {
	cfg := newCalcConfig(opts)
	m := len(ranges)
	handSlices := make([][]CardSet, m)
	for i, r := range ranges {
		handSlices[i] = r.Hands()
	}
	sums := make([]float64, m)
	var splitSum float64
	var combos int64
	holes := make([]CardSet, m)

	var recurse func(p int, used CardSet) error
	recurse = func(p int, used CardSet) error {
		if p == m {
			if err := checkCanceled(ctx); err != nil {
				return err
			}
			odds, err := CalcEquity(ctx, board, append([]CardSet(nil), holes...), dead,
				WithTrials(cfg.rangeSampleTrials), WithRand(cfg.rng))
			if err != nil {
				return err
			}
			for i, e := range odds.Equities {
				sums[i] += e
			}
			splitSum += odds.Split
			combos++
			return nil
		}
		for _, h := range handSlices[p] {
			if h&(used|board|dead) != 0 {
				continue
			}
			holes[p] = h
			if err := recurse(p+1, used|h); err != nil {
				return err
			}
		}
		return nil
	}
	if err := recurse(0, 0); err != nil {
		return Odds{}, err
	}
	if combos == 0 {
		return Odds{}, ErrRangeTooNarrow
	}
	eq := make([]float64, m)
	for i := range eq {
		eq[i] = sums[i] / float64(combos)
	}
	return Odds{Equities: eq, Split: splitSum / float64(combos)}, nil
}

// LiveUpdate is a running-average progress snapshot emitted periodically by
// [CalcLiveEquity].
type LiveUpdate struct {
	Iteration int
	Odds      Odds
}

// drawDisjoint picks a uniformly random hand from hands that doesn't
// overlap used, reporting false when none qualify.
func drawDisjoint(rng *rand.Rand, hands []CardSet, used CardSet) (CardSet, bool) {
	valid := make([]CardSet, 0, len(hands))
	for _, h := range hands {
		if h&used == 0 {
			valid = append(valid, h)
		}
	}
	if len(valid) == 0 {
		return 0, false
	}
	return valid[rng.Intn(len(valid))], true
}

// rotatedOrder returns a permutation of [0, m) starting at iter%m, so that
// repeated calls across increasing iter rotate which player is drawn first.
func rotatedOrder(m, iter int) []int {
	order := make([]int, m)
	start := iter % m
	for i := range order {
		order[i] = (start + i) % m
	}
	return order
}

// liveSkipWarmup is the number of outer iterations CalcLiveEquity runs
// before its "ranges too narrow" skip-rate check kicks in.
const liveSkipWarmup = 200

// CalcLiveEquity streams a running-average equity estimate for per-player
// ranges against a board. Each outer iteration draws one hand per player
// (rotating which player is drawn first, so narrow overlapping ranges don't
// systematically disadvantage later-drawn players), then runs
// [WithLiveTrials] inner board-completion samples against that draw,
// folding the result into the running tally. onUpdate, if non-nil, is
// called every [WithProgressEvery] outer iterations with the tally so far.
//
// CalcLiveEquity runs until ctx is canceled (checked between outer
// iterations) or until more than 95% of draws are skipped (no disjoint hand
// remains for some player) after a warm-up period, at which point it
// returns [ErrRangeTooNarrow]. Either way, the running tally accumulated so
// far is returned alongside the error.
func CalcLiveEquity(ctx context.Context, board CardSet, ranges []*Range, dead CardSet, onUpdate func(LiveUpdate), opts ...CalcOption) (Odds, error) {
	cfg := newCalcConfig(opts)
	m := len(ranges)
	handSlices := make([][]CardSet, m)
	for i, r := range ranges {
		handSlices[i] = r.Hands()
	}
	wins := make([]int64, m)
	strengths := make([]Strength, m)
	var split, attempted, skipped, successful int64
	holes := make([]CardSet, m)
	need := 5 - board.Popcount()

	for iter := 0; ; iter++ {
		if err := checkCanceled(ctx); err != nil {
			return tally(wins, split, successful), err
		}
		attempted++
		used := board | dead
		drew := true
		for _, p := range rotatedOrder(m, iter) {
			h, ok := drawDisjoint(cfg.rng, handSlices[p], used)
			if !ok {
				drew = false
				break
			}
			holes[p] = h
			used |= h
		}
		if !drew {
			skipped++
			if attempted > liveSkipWarmup && float64(skipped)/float64(attempted) > 0.95 {
				return tally(wins, split, successful), ErrRangeTooNarrow
			}
			continue
		}
		for i := 0; i < cfg.liveTrials; i++ {
			full := board | randomCombo(cfg.rng, need, used)
			if evaluateCompletion(full, holes, strengths, wins) {
				split++
			}
			successful++
		}
		if onUpdate != nil && cfg.progressEvery > 0 && iter%cfg.progressEvery == 0 {
			onUpdate(LiveUpdate{Iteration: iter, Odds: tally(wins, split, successful)})
		}
	}
}

package holdemeval

import "math/bits"

// maskMoves precomputes the parallel-suffix "move" masks used by
// compressRight/expandRight. This is Hacker's Delight's compress/expand
// algorithm (sec. 7-4), generalized from its textbook 32-bit/5-step form to
// 64 bits/6 steps since a CardSet needs up to 52 significant bits.
func maskMoves(mask uint64) (mv [6]uint64) {
	m := mask
	mk := ^m << 1
	for i := 0; i < 6; i++ {
		mp := mk ^ (mk << 1)
		mp ^= mp << 2
		mp ^= mp << 4
		mp ^= mp << 8
		mp ^= mp << 16
		mp ^= mp << 32
		mvi := mp & m
		mv[i] = mvi
		m = m ^ mvi | (mvi >> (uint64(1) << uint(i)))
		mk = mk &^ mp
	}
	return mv
}

// compressRight gathers the bits of x selected by mask into the low
// popcount(mask) bits of the result, preserving their relative order.
func compressRight(x, mask uint64) uint64 {
	x &= mask
	mv := maskMoves(mask)
	for i := 0; i < 6; i++ {
		t := x & mv[i]
		x = x ^ t | (t >> (uint64(1) << uint(i)))
	}
	return x
}

// expandRight is compressRight's inverse: it scatters the low
// popcount(mask) bits of x into the positions of mask's set bits, in the
// same order, leaving every other bit zero.
func expandRight(x, mask uint64) uint64 {
	mv := maskMoves(mask)
	for i := 5; i >= 0; i-- {
		t := x << (uint64(1) << uint(i))
		x = (x &^ mv[i]) | (t & mv[i])
	}
	return x & mask
}

// Enumerator lazily yields every CardSet with exactly k bits set within a
// width-bit universe, optionally forcing included bits on and excluded bits
// off in every result. It is a pull-based iterator: call Next until it
// returns false, reading Combo after each true.
//
// An Enumerator is single-use; to enumerate the same constraints again,
// construct a new one with NewEnumerator.
type Enumerator struct {
	free     uint64
	included CardSet
	v        uint64
	limit    uint64
	started  bool
	done     bool
}

// NewEnumerator returns an Enumerator over a width-bit universe (52 for a
// full deck) producing every CardSet with exactly k bits set, each
// containing all of included and none of excluded. included and excluded
// must be disjoint.
//
// When k is out of range for the resulting universe (k < popcount(included)
// or k - popcount(included) exceeds the number of free bits), the
// enumerator yields nothing, matching C(n,k) = 0.
func NewEnumerator(width, k int, included, excluded CardSet) *Enumerator {
	free := uint64(FullMask) &^ uint64(included) &^ uint64(excluded)
	if width < 64 {
		free &= (uint64(1) << uint(width)) - 1
	}
	freeWidth := bits.OnesCount64(free)
	denseK := k - included.Popcount()
	e := &Enumerator{free: free, included: included}
	if denseK < 0 || denseK > freeWidth {
		e.done = true
		return e
	}
	if denseK > 0 {
		e.v = (uint64(1) << uint(denseK)) - 1
	}
	e.limit = uint64(1) << uint(freeWidth)
	return e
}

// Next advances the enumerator and reports whether a value is now
// available; call Combo to read it. Next returns false after the last
// value, and on every call after that.
func (e *Enumerator) Next() bool {
	if e.done {
		return false
	}
	if !e.started {
		e.started = true
		return true
	}
	if e.v == 0 {
		// Only reachable when the dense width was 0: exactly one
		// combination (all bits forced by included) was already yielded.
		e.done = true
		return false
	}
	v := e.v
	t := (v | (v - 1)) + 1
	e.v = t | ((((t & -t) / (v & -v)) >> 1) - 1)
	if e.v >= e.limit {
		e.done = true
		return false
	}
	return true
}

// Combo returns the current combination. Valid only immediately after a
// call to Next that returned true.
func (e *Enumerator) Combo() CardSet {
	return e.included | CardSet(expandRight(e.v, e.free))
}

// binomial returns C(n, k), or 0 when k is out of [0, n].
func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	r := 1
	for i := 0; i < k; i++ {
		r = r * (n - i) / (i + 1)
	}
	return r
}

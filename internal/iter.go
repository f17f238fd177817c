package internal

import (
	"iter"
)

// IterRange iterates over the inclusive range [lo, hi].
func IterRange(lo, hi uint64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		if lo > hi {
			return
		}
		for n := lo; ; n++ {
			if !yield(n) {
				return // Stop if the consumer stops
			}
			if n == hi {
				return
			}
		}
	}
}

// IterProduct iterates over every pair of the two sequences, in row major
// order. The second sequence is restarted for each value of the first.
func IterProduct[T1 any, T2 any](outer iter.Seq[T1], inner iter.Seq[T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for val1 := range outer {
			for val2 := range inner {
				if !yield(val1, val2) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

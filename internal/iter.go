package internal

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, val := range seq {
				if !yield(key, val) {
					return
				}
			}
		}
	}
}

// Defines builds an iterator over a fixed table of integer equates,
// rendered the way the assembler expects them, in name order.
func Defines(table map[string]int) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, name := range slices.Sorted(maps.Keys(table)) {
			if !yield(name, fmt.Sprintf("%#x", table[name])) {
				return
			}
		}
	}
}

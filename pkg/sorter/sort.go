// Package sorter holds in-place comparison sorts over contiguous sequences.
// Bounds are inclusive on both ends: QuickSort(seq, 0, len(seq)-1) sorts everything.
package sorter

import (
	"golang.org/x/exp/constraints"

	"bidindex/pkg/common"
)

func byTitle(r common.Record) string {
	return r.Title
}

// QuickSort sorts seq[begin..end] by title, ascending. Not stable.
func QuickSort(seq []common.Record, begin, end int) {
	QuickSortFunc(seq, begin, end, byTitle)
}

// QuickSortAll sorts all of seq by title.
func QuickSortAll(seq []common.Record) {
	QuickSortFunc(seq, 0, len(seq)-1, byTitle)
}

// SelectionSort sorts seq by title, ascending. Not stable.
func SelectionSort(seq []common.Record) {
	SelectionSortFunc(seq, byTitle)
}

// QuickSortFunc sorts seq[begin..end] by key using a middle pivot and Hoare
// partitioning. Bounds outside seq are clamped to it.
func QuickSortFunc[T any, K constraints.Ordered](seq []T, begin, end int, key func(T) K) {
	if begin < 0 {
		begin = 0
	}
	if end > len(seq)-1 {
		end = len(seq) - 1
	}
	quickSort(seq, begin, end, key)
}

func quickSort[T any, K constraints.Ordered](seq []T, begin, end int, key func(T) K) {
	if begin >= end {
		return
	}
	p := partition(seq, begin, end, key)
	quickSort(seq, begin, p, key)
	quickSort(seq, p+1, end, key)
}

// partition returns the last index of the low part. Afterwards every key in
// seq[begin..p] is <= every key in seq[p+1..end].
func partition[T any, K constraints.Ordered](seq []T, begin, end int, key func(T) K) int {
	pivot := key(seq[begin+(end-begin)/2])
	low, high := begin, end

	for {
		for key(seq[low]) < pivot {
			low++
		}
		for pivot < key(seq[high]) {
			high--
		}
		if low >= high {
			return high
		}
		seq[low], seq[high] = seq[high], seq[low]
		low++
		high--
	}
}

// SelectionSortFunc sorts seq by key, moving the minimum of seq[i:] into
// position i on each pass. Always O(n²) comparisons.
func SelectionSortFunc[T any, K constraints.Ordered](seq []T, key func(T) K) {
	for i := 0; i < len(seq)-1; i++ {
		smallest := i
		for j := i + 1; j < len(seq); j++ {
			if key(seq[j]) < key(seq[smallest]) {
				smallest = j
			}
		}
		if smallest != i {
			seq[i], seq[smallest] = seq[smallest], seq[i]
		}
	}
}

package sorter

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"bidindex/pkg/common"

	"github.com/stretchr/testify/assert"
)

func titled(titles ...string) []common.Record {
	out := make([]common.Record, len(titles))
	for i, title := range titles {
		out[i] = common.Record{ID: fmt.Sprintf("%d", 1000+i), Title: title}
	}
	return out
}

func titles(seq []common.Record) []string {
	out := make([]string, len(seq))
	for i, r := range seq {
		out[i] = r.Title
	}
	return out
}

func randomTitles(seed int64, n, distinct int) []common.Record {
	rnd := rand.New(rand.NewSource(seed))
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("title-%03d", rnd.Intn(distinct))
	}
	return titled(out...)
}

var sorts = map[string]func([]common.Record){
	"quick":     QuickSortAll,
	"selection": SelectionSort,
}

func TestSorts_Scenario(t *testing.T) {
	for name, sortFn := range sorts {
		t.Run(name, func(t *testing.T) {
			seq := []common.Record{
				{ID: "79519", Title: "B"},
				{ID: "80001", Title: "A"},
				{ID: "98912", Title: "C"},
			}
			sortFn(seq)
			assert.Equal(t, []string{"A", "B", "C"}, titles(seq))
			assert.Equal(t, "80001", seq[0].ID)
		})
	}
}

func TestSorts_EdgeCases(t *testing.T) {
	cases := map[string][]common.Record{
		"nil":        nil,
		"empty":      {},
		"single":     titled("only"),
		"sorted":     titled("a", "b", "c", "d"),
		"reversed":   titled("d", "c", "b", "a"),
		"all equal":  titled("x", "x", "x", "x", "x"),
		"two swap":   titled("b", "a"),
		"duplicates": titled("b", "a", "b", "a", "c", "a"),
	}
	for name, sortFn := range sorts {
		for caseName, in := range cases {
			t.Run(name+"/"+caseName, func(t *testing.T) {
				seq := append([]common.Record(nil), in...)
				sortFn(seq)

				want := titles(in)
				sort.Strings(want)
				assert.Equal(t, want, titles(seq))
			})
		}
	}
}

func TestSorts_PermutationAndIdempotence(t *testing.T) {
	for name, sortFn := range sorts {
		for seed := int64(1); seed <= 5; seed++ {
			t.Run(fmt.Sprintf("%s/seed %d", name, seed), func(t *testing.T) {
				in := randomTitles(seed, 300, 40)
				seq := append([]common.Record(nil), in...)
				sortFn(seq)

				assert.True(t, sort.SliceIsSorted(seq, func(i, j int) bool { return seq[i].Title < seq[j].Title }))
				assert.ElementsMatch(t, in, seq)

				once := titles(seq)
				sortFn(seq)
				assert.Equal(t, once, titles(seq))
				assert.ElementsMatch(t, in, seq)
			})
		}
	}
}

func TestQuickSort_SubRange(t *testing.T) {
	seq := titled("z", "d", "c", "b", "a", "y")
	QuickSort(seq, 1, 4)
	assert.Equal(t, []string{"z", "a", "b", "c", "d", "y"}, titles(seq))

	QuickSort(seq, 3, 3)
	QuickSort(seq, 4, 2)
	assert.Equal(t, []string{"z", "a", "b", "c", "d", "y"}, titles(seq))
}

func TestQuickSort_ClampsBounds(t *testing.T) {
	seq := titled("c", "a", "b")
	QuickSort(seq, -4, 99)
	assert.Equal(t, []string{"a", "b", "c"}, titles(seq))
}

func TestSortFunc_GenericKeys(t *testing.T) {
	ints := []int{5, -1, 3, 3, 0, 12, -7}
	QuickSortFunc(ints, 0, len(ints)-1, func(v int) int { return v })
	assert.Equal(t, []int{-7, -1, 0, 3, 3, 5, 12}, ints)

	recs := []common.Record{{ID: "1", Amount: 30}, {ID: "2", Amount: 10}, {ID: "3", Amount: 20}}
	SelectionSortFunc(recs, func(r common.Record) float64 { return r.Amount })
	assert.Equal(t, []string{"2", "3", "1"}, []string{recs[0].ID, recs[1].ID, recs[2].ID})
}

func TestSelectionSort_SortedInputIsUntouched(t *testing.T) {
	seq := titled("a", "a", "b", "b")
	want := append([]common.Record(nil), seq...)
	SelectionSort(seq)
	assert.Equal(t, want, seq)
}

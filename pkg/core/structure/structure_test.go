package structure

import (
	"fmt"
	"math/rand"

	"bidindex/pkg/common"
)

// scenario returns the three records from the monthly sales walkthrough.
func scenario() []common.Record {
	return []common.Record{
		{ID: "79519", Title: "B", Fund: "General Fund", Amount: 20},
		{ID: "80001", Title: "A", Fund: "Enterprise", Amount: 13.5},
		{ID: "98912", Title: "C", Fund: "General Fund", Amount: 42},
	}
}

// randomRecords returns n records with distinct numeric ids in random order.
func randomRecords(seed int64, n int) []common.Record {
	rnd := rand.New(rand.NewSource(seed))
	seen := make(map[int]bool, n)
	out := make([]common.Record, 0, n)
	for len(out) < n {
		id := rnd.Intn(n * 20)
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, common.Record{
			ID:     fmt.Sprintf("%d", id),
			Title:  fmt.Sprintf("item-%d", rnd.Intn(n)),
			Amount: float64(rnd.Intn(10000)) / 100,
		})
	}
	return out
}

func collect(seq func(func(common.Record) bool)) []common.Record {
	var out []common.Record
	for r := range seq {
		out = append(out, r)
	}
	return out
}

func ids(records []common.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

package main

import (
	"fmt"

	"bidindex/pkg/common"
	"bidindex/pkg/core"
	"bidindex/pkg/sorter"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	bids := []common.Record{
		{ID: "79519", Title: "B", Amount: 20},
		{ID: "80001", Title: "A", Amount: 13.5},
		{ID: "98912", Title: "C", Amount: 42},
	}

	for _, kind := range []string{core.KindList, core.KindTree, core.KindHash} {
		idx, err := core.NewIndex(kind, core.Options{})
		if err != nil {
			log.Fatalf("NewIndex: %v", err)
		}
		if _, err := core.LoadAll(idx, bids); err != nil {
			log.Fatalf("LoadAll: %v", err)
		}

		r, err := idx.Search("80001")
		if err != nil {
			log.Fatalf("Search: %v", err)
		}
		fmt.Printf("%s: found %s\n", idx.Type(), r)

		fmt.Printf("%s: traversal", idx.Type())
		for r := range idx.All() {
			fmt.Printf(" %s", r.ID)
		}
		fmt.Println()

		if _, err := idx.Remove("80001"); err != nil {
			log.Fatalf("Remove: %v", err)
		}
		if _, err := idx.Search("80001"); err != nil {
			fmt.Printf("%s: after remove: %v\n", idx.Type(), err)
		}
	}

	sorted := append([]common.Record(nil), bids...)
	sorter.QuickSortAll(sorted)
	fmt.Print("quick sort by title:")
	for _, r := range sorted {
		fmt.Printf(" %s", r.Title)
	}
	fmt.Println()
}

package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"bidindex/pkg/common"
	"bidindex/pkg/config"
	"bidindex/pkg/console"
	"bidindex/pkg/core"
	"bidindex/pkg/loader"
	"bidindex/pkg/sorter"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config")
	dataPath := flag.String("data", "", "Override the data source path from the config")
	nReq := flag.Int("n", 5000, "Number of lookups per structure")
	skipSelection := flag.Bool("skip-selection", false, "Skip the O(n²) selection sort")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[Benchmark] Failed to load config: %v", err)
	}
	if *dataPath != "" {
		cfg.Data.Path = *dataPath
	}

	records, report, err := loader.Load(console.NewSource(cfg.Data), cfg.Data.CurrencySymbol)
	if err != nil {
		log.Fatalf("[Benchmark] %v", err)
	}

	fmt.Printf("Bid Index Benchmark (records=%d, skipped=%d, lookups=%d)\n", len(records), len(report.Skipped), *nReq)
	fmt.Println("---------------------------------------------------")

	opts := core.Options{
		HashTableSize:   cfg.Index.HashTableSize,
		ReferenceDegree: cfg.Index.ReferenceDegree,
	}
	ids := lookupIDs(records, *nReq)
	for _, kind := range []string{core.KindList, core.KindTree, core.KindHash, core.KindBTree} {
		idx, err := core.NewIndex(kind, opts)
		if err != nil {
			log.Fatalf("[Benchmark] %v", err)
		}
		runIndexBenchmark(idx, records, ids)
	}

	fmt.Println("---------------------------------------------------")
	runSortBenchmark("Quick Sort", records, sorter.QuickSortAll)
	if !*skipSelection {
		runSortBenchmark("Selection Sort", records, sorter.SelectionSort)
	}
}

// lookupIDs mixes ids present in the dataset with ids that are not.
func lookupIDs(records []common.Record, n int) []string {
	rnd := rand.New(rand.NewSource(1))
	ids := make([]string, n)
	for i := range ids {
		if len(records) > 0 && i%4 != 0 {
			ids[i] = records[rnd.Intn(len(records))].ID
		} else {
			ids[i] = fmt.Sprintf("%d", 1_000_000+rnd.Intn(1_000_000))
		}
	}
	return ids
}

func runIndexBenchmark(idx core.Index, records []common.Record, ids []string) {
	start := time.Now()
	n, err := core.LoadAll(idx, records)
	loadDuration := time.Since(start)
	if err != nil {
		log.Warnf("[Benchmark] %s rejected %d records", idx.Type(), len(records)-n)
	}

	hits := 0
	start = time.Now()
	for _, id := range ids {
		if _, err := idx.Search(id); err == nil {
			hits++
		}
	}
	searchDuration := time.Since(start)

	perOp := time.Duration(0)
	if len(ids) > 0 {
		perOp = searchDuration / time.Duration(len(ids))
	}
	fmt.Printf(">> %-17s load %-12v search %-12v (%v/op, %d hits)\n", idx.Type(), loadDuration, searchDuration, perOp, hits)
}

func runSortBenchmark(name string, records []common.Record, sortFn func([]common.Record)) {
	seq := append([]common.Record(nil), records...)
	start := time.Now()
	sortFn(seq)
	fmt.Printf(">> %-17s %v\n", name, time.Since(start))
}

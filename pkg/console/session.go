// Package console is the interactive front end over the record structures.
// It owns no data-structure logic: every command maps onto core.Index,
// sorter or loader calls and reports what happened and how long it took.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"bidindex/pkg/common"
	"bidindex/pkg/config"
	"bidindex/pkg/core"
	"bidindex/pkg/core/memory"
	"bidindex/pkg/loader"
	"bidindex/pkg/monitor"
	"bidindex/pkg/sorter"
)

// Session holds one user's structures. Structures are created empty and
// filled from the configured source on demand.
type Session struct {
	cfg     *config.Config
	scanner *bufio.Scanner
	out     io.Writer
	stats   *monitor.WorkloadStats
	indexes map[string]core.Index
	bids    []common.Record
	source  loader.Source
}

// structures the user can address by name, in menu order
var kinds = []string{core.KindList, core.KindTree, core.KindHash}

func NewSession(cfg *config.Config, in io.Reader, out io.Writer) (*Session, error) {
	s := &Session{
		cfg:     cfg,
		scanner: bufio.NewScanner(in),
		out:     out,
		stats:   monitor.NewWorkloadStats(),
		indexes: make(map[string]core.Index),
		source:  NewSource(cfg.Data),
	}
	opts := core.Options{
		HashTableSize:   cfg.Index.HashTableSize,
		ReferenceDegree: cfg.Index.ReferenceDegree,
	}
	for _, kind := range kinds {
		idx, err := core.NewIndex(kind, opts)
		if err != nil {
			return nil, err
		}
		s.indexes[kind] = idx
	}
	return s, nil
}

// NewSource picks the loader for the configured data format.
func NewSource(d config.DataConfig) loader.Source {
	if d.Format == config.FormatSQLite {
		return loader.NewSQLiteSource(d.Path, d.Table)
	}
	return loader.NewCSVSource(d.Path, d.ShouldSkipHeader())
}

// Stats exposes the session's operation counters.
func (s *Session) Stats() *monitor.WorkloadStats {
	return s.stats
}

// Run reads commands until exit or end of input.
func (s *Session) Run() error {
	for {
		fmt.Fprint(s.out, s.cfg.Console.Prompt)
		if !s.scanner.Scan() {
			return s.scanner.Err()
		}
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" {
			continue
		}
		if !s.Exec(line) {
			return nil
		}
	}
}

// Exec runs one command line and reports whether the session should continue.
func (s *Session) Exec(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "load":
		s.handleLoad(args)
	case "search", "get":
		s.handleSearch(args)
	case "append", "prepend":
		s.handleListInsert(cmd)
	case "insert":
		s.handleInsert(args)
	case "remove", "del", "rm":
		s.handleRemove(args)
	case "print", "traverse":
		s.handlePrint(args)
	case "size":
		s.handleSize(args)
	case "sort":
		s.handleSort(args)
	case "verify":
		s.handleVerify(args)
	case "stats":
		s.handleStats()
	case "help":
		s.printHelp()
	case "exit", "quit":
		fmt.Fprintln(s.out, "Bye!")
		return false
	default:
		fmt.Fprintf(s.out, "Unknown command: '%s'. Type 'help'.\n", cmd)
	}
	return true
}

func (s *Session) index(args []string, usage string) (core.Index, bool) {
	if len(args) < 1 {
		fmt.Fprintf(s.out, "Usage: %s\n", usage)
		return nil, false
	}
	idx, ok := s.indexes[strings.ToLower(args[0])]
	if !ok {
		fmt.Fprintf(s.out, "Error: unknown structure %q (want %s)\n", args[0], strings.Join(kinds, ", "))
		return nil, false
	}
	return idx, true
}

func (s *Session) readSource() ([]common.Record, bool) {
	records, report, err := loader.Load(s.source, s.cfg.Data.CurrencySymbol)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil, false
	}
	if len(report.Skipped) > 0 {
		fmt.Fprintf(s.out, "%d of %d rows skipped as malformed\n", len(report.Skipped), report.Rows)
	}
	return records, true
}

// fill loads the data source into idx and reports the count.
func (s *Session) fill(idx core.Index) bool {
	records, ok := s.readSource()
	if !ok {
		return false
	}

	var n int
	var err error
	d := monitor.Timed(func() {
		n, err = core.LoadAll(idx, records)
	})
	s.stats.RecordInsert(n)
	if err != nil {
		fmt.Fprintf(s.out, "%d records rejected: %v\n", len(records)-n, err)
	}
	fmt.Fprintf(s.out, "%d bids loaded into %s\n", n, idx.Type())
	fmt.Fprintln(s.out, monitor.FormatDuration(d))
	return true
}

func (s *Session) handleLoad(args []string) {
	if len(args) == 1 && strings.ToLower(args[0]) == "vector" {
		if records, ok := s.readSource(); ok {
			s.bids = records
			fmt.Fprintf(s.out, "%d bids ready to be sorted\n", len(s.bids))
		}
		return
	}
	idx, ok := s.index(args, "load <list|bst|hash|vector>")
	if !ok {
		return
	}
	s.fill(idx)
}

func (s *Session) handleSearch(args []string) {
	idx, ok := s.index(args, "search <list|bst|hash> <id>")
	if !ok {
		return
	}
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: search <list|bst|hash> <id>")
		return
	}
	if idx.Size() == 0 {
		fmt.Fprintf(s.out, "Creating %s\n", idx.Type())
		if !s.fill(idx) {
			return
		}
	}

	id := args[1]
	var r common.Record
	var err error
	d := monitor.Timed(func() {
		r, err = idx.Search(id)
	})
	s.stats.RecordSearch(err == nil)

	switch {
	case err == nil:
		s.displayRecord(r)
	case errors.Is(err, common.ErrNotFound):
		fmt.Fprintf(s.out, "Bid Id %s not found.\n", id)
	default:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
	fmt.Fprintln(s.out, monitor.FormatDuration(d))
}

func (s *Session) handleListInsert(cmd string) {
	r, ok := s.readRecord()
	if !ok {
		return
	}
	list := s.indexes[core.KindList].(*core.ListIndex).List
	d := monitor.Timed(func() {
		if cmd == "prepend" {
			list.Prepend(r)
		} else {
			list.Append(r)
		}
	})
	s.stats.RecordInsert(1)
	s.displayRecord(r)
	if cmd == "prepend" {
		fmt.Fprintln(s.out, "Bid Prepended to Linked List")
	} else {
		fmt.Fprintln(s.out, "Bid Appended to Linked List")
	}
	fmt.Fprintln(s.out, monitor.FormatDuration(d))
}

func (s *Session) handleInsert(args []string) {
	idx, ok := s.index(args, "insert <list|bst|hash>")
	if !ok {
		return
	}
	r, ok := s.readRecord()
	if !ok {
		return
	}
	var err error
	d := monitor.Timed(func() {
		err = idx.Insert(r)
	})
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.stats.RecordInsert(1)
	s.displayRecord(r)
	fmt.Fprintf(s.out, "Bid inserted into %s\n", idx.Type())
	fmt.Fprintln(s.out, monitor.FormatDuration(d))
}

func (s *Session) handleRemove(args []string) {
	idx, ok := s.index(args, "remove <list|bst|hash> <id>")
	if !ok {
		return
	}
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: remove <list|bst|hash> <id>")
		return
	}
	var removed bool
	var err error
	d := monitor.Timed(func() {
		removed, err = idx.Remove(args[1])
	})
	switch {
	case err != nil:
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	case removed:
		s.stats.RecordRemove()
		fmt.Fprintf(s.out, "Bid Id %s removed from %s\n", args[1], idx.Type())
	default:
		fmt.Fprintf(s.out, "Bid Id %s not found.\n", args[1])
	}
	fmt.Fprintln(s.out, monitor.FormatDuration(d))
}

func (s *Session) handlePrint(args []string) {
	if len(args) == 1 && strings.ToLower(args[0]) == "vector" {
		s.printRecords(func(yield func(common.Record) bool) {
			for _, r := range s.bids {
				if !yield(r) {
					return
				}
			}
		}, len(s.bids))
		return
	}
	idx, ok := s.index(args, "print <list|bst|hash|vector>")
	if !ok {
		return
	}
	s.printRecords(idx.All(), idx.Size())
}

func (s *Session) printRecords(seq func(func(common.Record) bool), total int) {
	limit := s.cfg.Console.DisplayLimit
	count := 0
	for r := range seq {
		if count >= limit {
			fmt.Fprintf(s.out, "... and %d more\n", total-limit)
			break
		}
		fmt.Fprintln(s.out, r.String())
		count++
	}
	if total == 0 {
		fmt.Fprintln(s.out, "(empty)")
	}
}

func (s *Session) handleSize(args []string) {
	idx, ok := s.index(args, "size <list|bst|hash>")
	if !ok {
		return
	}
	fmt.Fprintf(s.out, "%s holds %d bids\n", idx.Type(), idx.Size())
}

func (s *Session) handleSort(args []string) {
	if len(args) < 1 || (args[0] != "selection" && args[0] != "quick") {
		fmt.Fprintln(s.out, "Usage: sort <selection|quick>")
		return
	}
	records, ok := s.readSource()
	if !ok {
		return
	}
	s.bids = records
	fmt.Fprintf(s.out, "%d bids ready to be sorted\n", len(s.bids))

	d := monitor.Timed(func() {
		if args[0] == "selection" {
			sorter.SelectionSort(s.bids)
		} else {
			sorter.QuickSortAll(s.bids)
		}
	})
	s.stats.RecordSort()
	fmt.Fprintf(s.out, "%d bids sorted\n", len(s.bids))
	fmt.Fprintln(s.out, monitor.FormatDuration(d))
}

func (s *Session) handleVerify(args []string) {
	idx, ok := s.index(args, "verify <list|bst|hash>")
	if !ok {
		return
	}
	records, ok := s.readSource()
	if !ok {
		return
	}
	ref := memory.NewReferenceIndex(s.cfg.Index.ReferenceDegree)
	for _, r := range records {
		ref.Insert(r)
	}
	if err := core.CrossCheck(idx, ref); err != nil {
		fmt.Fprintf(s.out, "%s differs from the data source:\n%v\n", idx.Type(), err)
		return
	}
	fmt.Fprintf(s.out, "%s matches the data source (%d bids)\n", idx.Type(), ref.Size())
}

func (s *Session) handleStats() {
	for _, kind := range kinds {
		idx := s.indexes[kind]
		fmt.Fprintf(s.out, "%-17s %d bids\n", idx.Type(), idx.Size())
	}
	tree := s.indexes[core.KindTree].(*core.TreeIndex).Tree
	fmt.Fprintf(s.out, "tree height:      %d\n", tree.Height())

	table := s.indexes[core.KindHash].(*core.HashIndex).Table
	st := table.Stat(false)
	fmt.Fprintf(s.out, "hash buckets:     %d used of %d, longest chain %d\n", st.UsedBuckets, table.TableSize(), st.LongestChain)

	snap := s.stats.Snapshot()
	fmt.Fprintf(s.out, "operations:       %d inserts, %d searches (%d hits), %d removes, %d sorts\n",
		snap["inserts"], snap["searches"], snap["hits"], snap["removes"], snap["sorts"])
}

// readRecord prompts for a record field by field.
func (s *Session) readRecord() (common.Record, bool) {
	var r common.Record
	symbol := s.cfg.Data.CurrencySymbol
	fields := []struct {
		label string
		set   func(string)
	}{
		{"Enter Id: ", func(v string) { r.ID = v }},
		{"Enter receipt number: ", func(v string) { r.ReceiptNumber = v }},
		{"Enter date paid: ", func(v string) { r.DatePaid = v }},
		{"Enter net sales: ", func(v string) { r.NetSales = common.ParseCurrency(v, symbol) }},
		{"Enter title: ", func(v string) { r.Title = v }},
		{"Enter fund: ", func(v string) { r.Fund = v }},
		{"Enter amount: ", func(v string) { r.Amount = common.ParseCurrency(v, symbol) }},
	}
	for _, f := range fields {
		fmt.Fprint(s.out, f.label)
		if !s.scanner.Scan() {
			fmt.Fprintln(s.out)
			return r, false
		}
		f.set(strings.TrimSpace(s.scanner.Text()))
	}
	if r.ID == "" {
		fmt.Fprintln(s.out, "Error: a bid needs an id")
		return r, false
	}
	return r, true
}

func (s *Session) displayRecord(r common.Record) {
	fmt.Fprintf(s.out, "\n   Id:  %-30s| Winning Bid | Receipt #  | Date Paid  | Net Profit | Fund\n", "Bid Title  ")
	fmt.Fprintf(s.out, "%s: %-30s | $%-10.2f | %s | %s | $%-9.2f | %s\n",
		r.ID, r.Title, r.Amount, r.ReceiptNumber, r.DatePaid, r.NetSales, r.Fund)
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.out, `
Commands:
  load <list|bst|hash|vector>     Load every bid from the data source
  search <list|bst|hash> <id>     Find a bid (loads the structure first if empty)
  append | prepend                Add a bid to the linked list
  insert <list|bst|hash>          Add a bid to a structure
  remove <list|bst|hash> <id>     Remove a bid
  print <list|bst|hash|vector>    Traverse and display bids
  size <list|bst|hash>            Number of bids held
  sort <selection|quick>          Reload the bids and sort them by title
  verify <list|bst|hash>          Cross-check a structure against the data source
  stats                           Structure and operation statistics
  exit                            Exit`)
}

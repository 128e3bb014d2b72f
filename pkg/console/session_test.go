package console

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bidindex/pkg/config"
	"bidindex/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T) *config.Config {
	t.Helper()
	line := func(title, id, amount string) string {
		fields := make([]string, 20)
		fields[0] = title
		fields[1] = id
		fields[4] = amount
		fields[19] = "General Fund"
		return strings.Join(fields, ",")
	}
	content := strings.Join([]string{
		strings.Repeat("h,", 19) + "h",
		line("B", "79519", "$20.00"),
		line("A", "80001", "$13.50"),
		line("C", "98912", "$42.00"),
	}, "\n") + "\n"

	path := filepath.Join(t.TempDir(), "bids.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := config.Default()
	cfg.Data.Path = path
	cfg.Index.HashTableSize = 101
	cfg.Console.DisplayLimit = 2
	return cfg
}

func run(t *testing.T, cfg *config.Config, script ...string) (string, *Session) {
	t.Helper()
	var out bytes.Buffer
	s, err := NewSession(cfg, strings.NewReader(strings.Join(script, "\n")+"\n"), &out)
	require.NoError(t, err)
	require.NoError(t, s.Run())
	return out.String(), s
}

func TestSession_SearchLoadsOnDemand(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind, func(t *testing.T) {
			out, s := run(t, fixture(t),
				"search "+kind+" 80001",
				"remove "+kind+" 80001",
				"search "+kind+" 80001",
				"size "+kind,
				"exit",
			)
			assert.Contains(t, out, "3 bids loaded into")
			assert.Contains(t, out, "80001: A")
			assert.Contains(t, out, "Bid Id 80001 removed")
			assert.Contains(t, out, "Bid Id 80001 not found.")
			assert.Contains(t, out, "holds 2 bids")
			assert.Contains(t, out, "Bye!")

			snap := s.Stats().Snapshot()
			assert.Equal(t, uint64(2), snap["searches"])
			assert.Equal(t, uint64(1), snap["hits"])
		})
	}
}

func TestSession_HashRejectsNonNumericID(t *testing.T) {
	out, _ := run(t, fixture(t), "load hash", "search hash abc")
	assert.Contains(t, out, "not a non-negative integer")
}

func TestSession_AppendPrepend(t *testing.T) {
	out, s := run(t, fixture(t),
		"append",
		"1", "R-1", "1/1/2020", "$5", "Lamp", "Enterprise", "$7.25",
		"prepend",
		"2", "R-2", "1/2/2020", "$1", "Desk", "Enterprise", "$3",
		"print list",
	)
	assert.Contains(t, out, "Bid Appended to Linked List")
	assert.Contains(t, out, "Bid Prepended to Linked List")

	list := s.indexes[core.KindList].(*core.ListIndex).List
	var ids []string
	for r := range list.All() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"2", "1"}, ids)
	assert.InDelta(t, 7.25, list.Search("1").Amount, 1e-9)
	printed := out[strings.LastIndex(out, "Bid Prepended"):]
	assert.Less(t, strings.Index(printed, "2: Desk |"), strings.Index(printed, "1: Lamp |"))
}

func TestSession_InsertBST(t *testing.T) {
	out, s := run(t, fixture(t),
		"insert bst",
		"555", "R", "d", "0", "Vase", "Fund", "$1",
		"insert hash",
		"", "", "", "", "", "", "",
	)
	assert.Contains(t, out, "Bid inserted into BinarySearchTree")
	assert.Contains(t, out, "Error: a bid needs an id")
	assert.Equal(t, 1, s.indexes[core.KindTree].Size())
}

func TestSession_PrintRespectsLimit(t *testing.T) {
	out, _ := run(t, fixture(t), "load bst", "print bst")
	assert.Contains(t, out, "79519: B")
	assert.Contains(t, out, "80001: A")
	assert.NotContains(t, out, "98912: C")
	assert.Contains(t, out, "... and 1 more")
}

func TestSession_Sort(t *testing.T) {
	for _, alg := range []string{"quick", "selection"} {
		t.Run(alg, func(t *testing.T) {
			out, s := run(t, fixture(t), "sort "+alg)
			assert.Contains(t, out, "3 bids sorted")
			require.Len(t, s.bids, 3)
			assert.Equal(t, []string{"A", "B", "C"}, []string{s.bids[0].Title, s.bids[1].Title, s.bids[2].Title})
		})
	}

	out, _ := run(t, fixture(t), "sort bubble")
	assert.Contains(t, out, "Usage: sort")
}

func TestSession_Verify(t *testing.T) {
	out, _ := run(t, fixture(t), "load hash", "verify hash", "remove hash 98912", "verify hash")
	assert.Contains(t, out, "HashTable matches the data source (3 bids)")
	assert.Contains(t, out, "HashTable differs from the data source")
}

func TestSession_Stats(t *testing.T) {
	out, _ := run(t, fixture(t), "load list", "load bst", "load hash", "stats")
	assert.Contains(t, out, "LinkedList        3 bids")
	assert.Contains(t, out, "tree height:      3")
	assert.Contains(t, out, "used of 101")
}

func TestSession_Errors(t *testing.T) {
	cfg := fixture(t)
	cfg.Data.Path = filepath.Join(t.TempDir(), "missing.csv")
	out, _ := run(t, cfg, "load list", "search", "search tree 1", "remove bst", "frobnicate", "help")
	assert.Contains(t, out, "Error: load")
	assert.Contains(t, out, "Usage: search")
	assert.Contains(t, out, `unknown structure "tree"`)
	assert.Contains(t, out, "Usage: remove")
	assert.Contains(t, out, "Unknown command: 'frobnicate'")
	assert.Contains(t, out, "Commands:")
}

func TestNewSource(t *testing.T) {
	d := config.Default().Data
	assert.Equal(t, "eBid_Monthly_Sales.csv", NewSource(d).Name())

	d.Format = config.FormatSQLite
	d.Path = "sales.db"
	assert.Equal(t, "sales.db:bids", NewSource(d).Name())
}

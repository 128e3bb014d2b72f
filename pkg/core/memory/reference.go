package memory

import (
	"iter"

	"bidindex/pkg/common"

	"github.com/google/btree"
)

func lessByID(a, b common.Record) bool {
	return a.ID < b.ID
}

// ReferenceIndex is a google/btree backed ordered index over records keyed by
// ID. It is the oracle the hand-built structures are checked against and the
// baseline they are timed against. IDs are unique: inserting an existing ID
// replaces the stored record.
type ReferenceIndex struct {
	tree *btree.BTreeG[common.Record]
}

func NewReferenceIndex(degree int) *ReferenceIndex {
	if degree < 2 {
		degree = 32
	}
	return &ReferenceIndex{
		tree: btree.NewG[common.Record](degree, lessByID),
	}
}

func (ri *ReferenceIndex) Insert(r common.Record) {
	ri.tree.ReplaceOrInsert(r)
}

func (ri *ReferenceIndex) Search(id string) common.Record {
	r, ok := ri.tree.Get(common.Record{ID: id})
	if !ok {
		return common.Empty()
	}
	return r
}

func (ri *ReferenceIndex) Remove(id string) bool {
	_, ok := ri.tree.Delete(common.Record{ID: id})
	return ok
}

func (ri *ReferenceIndex) Size() int {
	return ri.tree.Len()
}

// All yields records in ascending ID order.
func (ri *ReferenceIndex) All() iter.Seq[common.Record] {
	return func(yield func(common.Record) bool) {
		ri.tree.Ascend(func(r common.Record) bool {
			return yield(r)
		})
	}
}

// Range yields records with from <= ID < to, ascending.
func (ri *ReferenceIndex) Range(from, to string) iter.Seq[common.Record] {
	return func(yield func(common.Record) bool) {
		ri.tree.AscendRange(common.Record{ID: from}, common.Record{ID: to}, func(r common.Record) bool {
			return yield(r)
		})
	}
}

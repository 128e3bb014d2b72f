package core

import (
	"errors"
	"fmt"
	"iter"

	"bidindex/pkg/common"
	"bidindex/pkg/core/memory"
	"bidindex/pkg/core/structure"
)

// Index 抽象接口，屏蔽链表、搜索树与哈希表的差异
type Index interface {
	Insert(r common.Record) error
	// Search returns common.ErrNotFound on a miss.
	Search(id string) (common.Record, error)
	Remove(id string) (bool, error)
	Size() int
	All() iter.Seq[common.Record]
	Type() string // "LinkedList", "BinarySearchTree", "HashTable", "BTree"
}

// Kinds accepted by NewIndex.
const (
	KindList  = "list"
	KindTree  = "bst"
	KindHash  = "hash"
	KindBTree = "btree"
)

// Options carries the sizing knobs of the structures that have any.
type Options struct {
	HashTableSize   int
	ReferenceDegree int
}

// NewIndex builds an empty index of the given kind.
func NewIndex(kind string, opts Options) (Index, error) {
	switch kind {
	case KindList:
		return NewListIndex(structure.NewLinkedList()), nil
	case KindTree:
		return NewTreeIndex(structure.NewBinarySearchTree()), nil
	case KindHash:
		return NewHashIndex(structure.NewHashTable(opts.HashTableSize)), nil
	case KindBTree:
		return NewReferenceIndex(memory.NewReferenceIndex(opts.ReferenceDegree)), nil
	}
	return nil, fmt.Errorf("unknown index kind %q", kind)
}

func found(r common.Record) (common.Record, error) {
	if r.IsEmpty() {
		return r, common.ErrNotFound
	}
	return r, nil
}

// ListIndex appends on Insert.
type ListIndex struct {
	List *structure.LinkedList
}

func NewListIndex(l *structure.LinkedList) *ListIndex {
	return &ListIndex{List: l}
}

func (li *ListIndex) Insert(r common.Record) error {
	li.List.Append(r)
	return nil
}

func (li *ListIndex) Search(id string) (common.Record, error) {
	return found(li.List.Search(id))
}

func (li *ListIndex) Remove(id string) (bool, error) {
	return li.List.Remove(id), nil
}

func (li *ListIndex) Size() int {
	return li.List.Size()
}

func (li *ListIndex) All() iter.Seq[common.Record] {
	return li.List.All()
}

func (li *ListIndex) Type() string {
	return "LinkedList"
}

type TreeIndex struct {
	Tree *structure.BinarySearchTree
}

func NewTreeIndex(t *structure.BinarySearchTree) *TreeIndex {
	return &TreeIndex{Tree: t}
}

func (ti *TreeIndex) Insert(r common.Record) error {
	ti.Tree.Insert(r)
	return nil
}

func (ti *TreeIndex) Search(id string) (common.Record, error) {
	return found(ti.Tree.Search(id))
}

func (ti *TreeIndex) Remove(id string) (bool, error) {
	return ti.Tree.Remove(id), nil
}

func (ti *TreeIndex) Size() int {
	return ti.Tree.Size()
}

func (ti *TreeIndex) All() iter.Seq[common.Record] {
	return ti.Tree.InOrder()
}

func (ti *TreeIndex) Type() string {
	return "BinarySearchTree"
}

type HashIndex struct {
	Table *structure.HashTable
}

func NewHashIndex(h *structure.HashTable) *HashIndex {
	return &HashIndex{Table: h}
}

func (hi *HashIndex) Insert(r common.Record) error {
	return hi.Table.Insert(r)
}

func (hi *HashIndex) Search(id string) (common.Record, error) {
	r, err := hi.Table.Search(id)
	if err != nil {
		return r, err
	}
	return found(r)
}

func (hi *HashIndex) Remove(id string) (bool, error) {
	return hi.Table.Remove(id)
}

func (hi *HashIndex) Size() int {
	return hi.Table.Size()
}

func (hi *HashIndex) All() iter.Seq[common.Record] {
	return hi.Table.All()
}

func (hi *HashIndex) Type() string {
	return "HashTable"
}

type ReferenceIndex struct {
	Ref *memory.ReferenceIndex
}

func NewReferenceIndex(ri *memory.ReferenceIndex) *ReferenceIndex {
	return &ReferenceIndex{Ref: ri}
}

func (ri *ReferenceIndex) Insert(r common.Record) error {
	ri.Ref.Insert(r)
	return nil
}

func (ri *ReferenceIndex) Search(id string) (common.Record, error) {
	return found(ri.Ref.Search(id))
}

func (ri *ReferenceIndex) Remove(id string) (bool, error) {
	return ri.Ref.Remove(id), nil
}

func (ri *ReferenceIndex) Size() int {
	return ri.Ref.Size()
}

func (ri *ReferenceIndex) All() iter.Seq[common.Record] {
	return ri.Ref.All()
}

func (ri *ReferenceIndex) Type() string {
	return "BTree"
}

// LoadAll inserts every record into idx, one Insert per record, and returns
// how many were accepted. Rejected records do not stop the load; their errors
// are joined into the returned error.
func LoadAll(idx Index, records []common.Record) (int, error) {
	inserted := 0
	var errs []error
	for _, r := range records {
		if err := idx.Insert(r); err != nil {
			errs = append(errs, err)
			continue
		}
		inserted++
	}
	return inserted, errors.Join(errs...)
}

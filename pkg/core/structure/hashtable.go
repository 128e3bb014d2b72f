package structure

import (
	"fmt"
	"iter"
	"strconv"

	"bidindex/pkg/common"
)

// DefaultTableSize is the bucket count used when none is given. It is a prime
// comfortably above the size of the monthly sales dataset.
const DefaultTableSize = 17939

type chainEntry struct {
	key    uint64
	record common.Record
	next   *chainEntry
}

// HashTable maps numeric record IDs to records using a fixed number of buckets,
// each holding an unbounded singly linked chain of colliding entries.
// Bucket selection is key mod table size.
//
// IDs must be non-negative integers in decimal; any other ID is rejected with
// a common.KeyFormatError.
type HashTable struct {
	buckets []*chainEntry
	size    int
}

// HashTableStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - UsedBuckets is the number of buckets holding at least one record
//   - LongestChain is the length of the longest chain in any bucket
//   - BucketDistribution is the number of records stored in each bucket, nil unless requested
type HashTableStat struct {
	Records            int
	UsedBuckets        int
	LongestChain       int
	BucketDistribution []int
}

// NewHashTable returns a table with tableSize buckets, or DefaultTableSize if tableSize is not positive.
func NewHashTable(tableSize int) *HashTable {
	if tableSize <= 0 {
		tableSize = DefaultTableSize
	}
	return &HashTable{buckets: make([]*chainEntry, tableSize)}
}

// Key parses id as the numeric hash key.
func Key(id string) (uint64, error) {
	key, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, common.KeyFormatError{ID: id, Err: err}
	}
	return key, nil
}

func (h *HashTable) bucket(key uint64) int {
	return int(key % uint64(len(h.buckets)))
}

// BucketOf returns the bucket index id hashes to.
func (h *HashTable) BucketOf(id string) (int, error) {
	key, err := Key(id)
	if err != nil {
		return 0, err
	}
	return h.bucket(key), nil
}

// Insert appends r to the end of its bucket's chain.
func (h *HashTable) Insert(r common.Record) error {
	key, err := Key(r.ID)
	if err != nil {
		return err
	}

	e := &chainEntry{key: key, record: r}
	b := h.bucket(key)
	if h.buckets[b] == nil {
		h.buckets[b] = e
	} else {
		last := h.buckets[b]
		for last.next != nil {
			last = last.next
		}
		last.next = e
	}
	h.size++
	return nil
}

// Search returns the first record in id's chain with a matching ID, or the
// empty record. The error is non-nil only when id is not numeric.
func (h *HashTable) Search(id string) (common.Record, error) {
	key, err := Key(id)
	if err != nil {
		return common.Empty(), err
	}
	for e := h.buckets[h.bucket(key)]; e != nil; e = e.next {
		if e.record.ID == id {
			return e.record, nil
		}
	}
	return common.Empty(), nil
}

// Remove unlinks the first matching entry from id's chain and reports whether one was found.
func (h *HashTable) Remove(id string) (bool, error) {
	key, err := Key(id)
	if err != nil {
		return false, err
	}

	b := h.bucket(key)
	var prev *chainEntry
	for e := h.buckets[b]; e != nil; prev, e = e, e.next {
		if e.record.ID != id {
			continue
		}
		if prev == nil {
			h.buckets[b] = e.next
		} else {
			prev.next = e.next
		}
		e.next = nil
		h.size--
		return true, nil
	}
	return false, nil
}

// All yields records bucket by bucket in index order, and in chain order
// within a bucket. The table must not be modified while the sequence is being consumed.
func (h *HashTable) All() iter.Seq[common.Record] {
	return func(yield func(common.Record) bool) {
		for _, head := range h.buckets {
			for e := head; e != nil; e = e.next {
				if !yield(e.record) {
					return
				}
			}
		}
	}
}

func (h *HashTable) Size() int {
	return h.size
}

func (h *HashTable) IsEmpty() bool {
	return h.size == 0
}

func (h *HashTable) TableSize() int {
	return len(h.buckets)
}

// Resize rehashes every entry into tableSize buckets. Chain order is kept
// for entries that land in the same new bucket.
func (h *HashTable) Resize(tableSize int) error {
	if tableSize <= 0 {
		return fmt.Errorf("table size must be a positive value, got %d", tableSize)
	}

	old := h.buckets
	h.buckets = make([]*chainEntry, tableSize)
	tails := make([]*chainEntry, tableSize)
	for _, head := range old {
		e := head
		for e != nil {
			next := e.next
			e.next = nil
			b := h.bucket(e.key)
			if tails[b] == nil {
				h.buckets[b] = e
			} else {
				tails[b].next = e
			}
			tails[b] = e
			e = next
		}
	}
	return nil
}

// Stat walks every bucket and summarises how records are spread.
//   - includeDistribution set to true fills BucketDistribution with one entry per bucket
func (h *HashTable) Stat(includeDistribution bool) HashTableStat {
	var st HashTableStat
	if includeDistribution {
		st.BucketDistribution = make([]int, len(h.buckets))
	}
	for i, head := range h.buckets {
		n := 0
		for e := head; e != nil; e = e.next {
			n++
		}
		if n == 0 {
			continue
		}
		st.Records += n
		st.UsedBuckets++
		if n > st.LongestChain {
			st.LongestChain = n
		}
		if includeDistribution {
			st.BucketDistribution[i] = n
		}
	}
	return st
}

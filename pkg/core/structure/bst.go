package structure

import (
	"iter"

	"bidindex/pkg/common"
)

type treeNode struct {
	record common.Record
	left   *treeNode
	right  *treeNode
}

// BinarySearchTree is an unbalanced search tree ordered by record ID,
// compared as strings, so "2" sorts after "100". Equal IDs go right.
// Every node is owned by exactly one parent slot or by root.
type BinarySearchTree struct {
	root *treeNode
	size int
}

func NewBinarySearchTree() *BinarySearchTree {
	return &BinarySearchTree{}
}

// Insert places r at the first empty child slot on its descent path.
func (t *BinarySearchTree) Insert(r common.Record) {
	n := &treeNode{record: r}
	t.size++
	if t.root == nil {
		t.root = n
		return
	}

	cur := t.root
	for {
		if r.ID >= cur.record.ID {
			if cur.right == nil {
				cur.right = n
				return
			}
			cur = cur.right
		} else {
			if cur.left == nil {
				cur.left = n
				return
			}
			cur = cur.left
		}
	}
}

// Search returns the record with the given id, or the empty record.
func (t *BinarySearchTree) Search(id string) common.Record {
	cur := t.root
	for cur != nil {
		switch {
		case id == cur.record.ID:
			return cur.record
		case id < cur.record.ID:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return common.Empty()
}

// Remove deletes one record with the given id and reports whether one was found.
func (t *BinarySearchTree) Remove(id string) bool {
	var removed bool
	t.root, removed = removeNode(t.root, id)
	if removed {
		t.size--
	}
	return removed
}

// removeNode deletes id from the subtree rooted at n and returns the new
// subtree root, which the caller stores back into its own child slot.
func removeNode(n *treeNode, id string) (*treeNode, bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch {
	case id < n.record.ID:
		n.left, removed = removeNode(n.left, id)
		return n, removed
	case id > n.record.ID:
		n.right, removed = removeNode(n.right, id)
		return n, removed
	}

	switch {
	case n.left == nil && n.right == nil:
		return nil, true
	case n.left == nil:
		child := n.right
		n.right = nil
		return child, true
	case n.right == nil:
		child := n.left
		n.left = nil
		return child, true
	}

	// two children: take over the in-order predecessor and drop its node
	var pred common.Record
	n.left, pred = removeMax(n.left)
	n.record = pred
	return n, true
}

// removeMax detaches the right-most node of the subtree rooted at n.
func removeMax(n *treeNode) (*treeNode, common.Record) {
	if n.right == nil {
		left := n.left
		n.left = nil
		return left, n.record
	}
	var pred common.Record
	n.right, pred = removeMax(n.right)
	return n, pred
}

// InOrder yields records left, node, right, i.e. ascending by ID.
// The tree must not be modified while the sequence is being consumed.
func (t *BinarySearchTree) InOrder() iter.Seq[common.Record] {
	return func(yield func(common.Record) bool) {
		inOrder(t.root, yield)
	}
}

func inOrder(n *treeNode, yield func(common.Record) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.left, yield) && yield(n.record) && inOrder(n.right, yield)
}

func (t *BinarySearchTree) IsEmpty() bool {
	return t.root == nil
}

func (t *BinarySearchTree) Size() int {
	return t.size
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *BinarySearchTree) Height() int {
	return height(t.root)
}

func height(n *treeNode) int {
	if n == nil {
		return 0
	}
	l, r := height(n.left), height(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

package list

import "errors"

var (
	ErrInvalidReference = errors.New("[doubly-linked-list] invalid node reference")
	ErrNodeNotFound     = errors.New("[doubly-linked-list] node not found")
	ErrInvalidPosition  = errors.New("[doubly-linked-list] invalid position")
	ErrSameNode         = errors.New("[doubly-linked-list] node inserted relative to itself")
	ErrBrokenInvariant  = errors.New("[doubly-linked-list] broken invariant")
)

// Note that the doubly linked list is not thread safe.
// Wrap it by NewThreadSafeLinkedList if it is shared by goroutines.

// LinkedList is the doubly linked list interface.
// Nodes are compared by identity (address), never by value.
type LinkedList interface {
	Len() int64
	// Head returns the first node or nil if the list is empty.
	Head() *Node
	// Tail returns the last node or nil if the list is empty.
	Tail() *Node
	// SetHead makes node the new head. If the node is already in the list,
	// it is detached from its current position first.
	SetHead(node *Node) error
	// SetTail makes node the new tail. If the node is already in the list,
	// it is detached from its current position first.
	SetTail(node *Node) error
	// InsertBefore inserts nodeToInsert immediately before node.
	// The node must be in the list, nodeToInsert is relocated if it is.
	InsertBefore(node, nodeToInsert *Node) error
	// InsertAfter inserts nodeToInsert immediately after node.
	// The node must be in the list, nodeToInsert is relocated if it is.
	InsertAfter(node, nodeToInsert *Node) error
	// InsertAtPosition inserts nodeToInsert at the 1-based position counting from the head.
	// A position beyond the list length is not appended, ErrNodeNotFound is returned
	// and the list is left untouched.
	InsertAtPosition(position int, nodeToInsert *Node) error
	// Remove detaches node from the list. The links of the removed node are
	// left as they were, they must be treated as stale by the caller.
	Remove(node *Node) error
	// RemoveNodesWithValue removes every node holding v and returns how many were removed.
	RemoveNodesWithValue(v float64) int
	// ContainsNodeWithValue reports whether any node holds v.
	ContainsNodeWithValue(v float64) bool
	// Append creates the nodes of values and sets them as tail one by one.
	Append(values ...float64) []*Node
	// ForEach traverses from head to tail. The traversal stops and returns the
	// error of fn. fn is allowed to remove the visited node.
	ForEach(fn func(idx int64, n *Node) error) error
	// ReverseForEach traverses from tail to head.
	ReverseForEach(fn func(idx int64, n *Node))
	// Values returns the values from head to tail.
	Values() []float64
	// Validate checks the structure of the list and returns all the violations.
	Validate() error
}

package list

import (
	"sync"
)

var _ LinkedList = (*threadSafeLinkedList)(nil)

// threadSafeLinkedList guards the whole list by a single lock.
type threadSafeLinkedList struct {
	lock sync.RWMutex
	l    *doublyLinkedList
}

// NewThreadSafeLinkedList returns the coarse-grained locked list.
// The nodes returned by Head, Tail and Append must not be traversed
// while other goroutines mutate the list, and the callbacks of ForEach
// and ReverseForEach must not call back into the list.
func NewThreadSafeLinkedList(opts ...LinkedListOption) LinkedList {
	return &threadSafeLinkedList{
		l: newDoublyLinkedList(opts...),
	}
}

func (t *threadSafeLinkedList) Len() int64 {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.l.Len()
}

func (t *threadSafeLinkedList) Head() *Node {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.l.Head()
}

func (t *threadSafeLinkedList) Tail() *Node {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.l.Tail()
}

func (t *threadSafeLinkedList) SetHead(node *Node) error {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.l.SetHead(node)
}

func (t *threadSafeLinkedList) SetTail(node *Node) error {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.l.SetTail(node)
}

func (t *threadSafeLinkedList) InsertBefore(node, nodeToInsert *Node) error {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.l.InsertBefore(node, nodeToInsert)
}

func (t *threadSafeLinkedList) InsertAfter(node, nodeToInsert *Node) error {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.l.InsertAfter(node, nodeToInsert)
}

func (t *threadSafeLinkedList) InsertAtPosition(position int, nodeToInsert *Node) error {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.l.InsertAtPosition(position, nodeToInsert)
}

func (t *threadSafeLinkedList) Remove(node *Node) error {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.l.Remove(node)
}

func (t *threadSafeLinkedList) RemoveNodesWithValue(v float64) int {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.l.RemoveNodesWithValue(v)
}

func (t *threadSafeLinkedList) ContainsNodeWithValue(v float64) bool {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.l.ContainsNodeWithValue(v)
}

func (t *threadSafeLinkedList) Append(values ...float64) []*Node {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.l.Append(values...)
}

// ForEach holds the write lock, fn is allowed to modify the visited node value.
func (t *threadSafeLinkedList) ForEach(fn func(idx int64, n *Node) error) error {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.l.ForEach(fn)
}

func (t *threadSafeLinkedList) ReverseForEach(fn func(idx int64, n *Node)) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	t.l.ReverseForEach(fn)
}

func (t *threadSafeLinkedList) Values() []float64 {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.l.Values()
}

func (t *threadSafeLinkedList) Validate() error {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.l.Validate()
}

package list

import (
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xlist/lib/infra"
	"github.com/benz9527/xlist/xlog"
)

var _ LinkedList = (*doublyLinkedList)(nil) // Type check assertion

type doublyLinkedList struct {
	head, tail *Node
	len        int64
	logger     xlog.XLogger
}

type linkedListCfg struct {
	logger xlog.XLogger
}

type LinkedListOption func(cfg *linkedListCfg) error

func WithLinkedListLogger(logger xlog.XLogger) LinkedListOption {
	return func(cfg *linkedListCfg) error {
		if logger == nil {
			return infra.NewErrorStack("[doubly-linked-list] nil logger")
		}
		cfg.logger = logger
		return nil
	}
}

func newDoublyLinkedList(opts ...LinkedListOption) *doublyLinkedList {
	cfg := &linkedListCfg{}
	for _, o := range opts {
		if o == nil {
			continue
		}
		if err := o(cfg); err != nil {
			panic(err)
		}
	}
	if cfg.logger == nil {
		cfg.logger = xlog.NewNopXLogger()
	}
	return &doublyLinkedList{
		logger: cfg.logger,
	}
}

func NewDoublyLinkedList(opts ...LinkedListOption) LinkedList {
	return newDoublyLinkedList(opts...)
}

func (l *doublyLinkedList) Len() int64 {
	return l.len
}

func (l *doublyLinkedList) Head() *Node {
	return l.head
}

func (l *doublyLinkedList) Tail() *Node {
	return l.tail
}

// contains finds the node by address from head to tail.
func (l *doublyLinkedList) contains(node *Node) bool {
	for iterator := l.head; iterator != nil; iterator = iterator.next {
		if iterator == node {
			return true
		}
	}
	return false
}

// unlink assumes the node is in the list.
// The links of the node itself are not touched.
func (l *doublyLinkedList) unlink(node *Node) {
	switch node {
	case l.head:
		if node == l.tail {
			// the only one
			l.head, l.tail = nil, nil
			break
		}
		l.head = node.next
		l.head.prev = nil
	case l.tail:
		l.tail = node.prev
		l.tail.next = nil
	default:
		node.prev.next = node.next
		node.next.prev = node.prev
	}
	l.len--
}

// detachIfPresent removes the node from its current position and
// returns whether it was in the list.
func (l *doublyLinkedList) detachIfPresent(node *Node) bool {
	if !l.contains(node) {
		return false
	}
	l.unlink(node)
	l.logger.Debug("[doubly-linked-list] node detached for relocation",
		zap.Float64("value", node.Value),
		zap.Int64("len", l.len),
	)
	return true
}

func (l *doublyLinkedList) pushFront(node *Node) {
	node.resetLinks()
	if l.head == nil {
		l.head, l.tail = node, node
	} else {
		node.next = l.head
		l.head.prev = node
		l.head = node
	}
	l.len++
}

func (l *doublyLinkedList) pushBack(node *Node) {
	node.resetLinks()
	if l.tail == nil {
		l.head, l.tail = node, node
	} else {
		node.prev = l.tail
		l.tail.next = node
		l.tail = node
	}
	l.len++
}

// spliceBefore assumes at is in the list but not the head,
// and newNode is not in the list.
func (l *doublyLinkedList) spliceBefore(at, newNode *Node) {
	newNode.prev, newNode.next = at.prev, at
	at.prev.next = newNode
	at.prev = newNode
	l.len++
}

// spliceAfter assumes at is in the list but not the tail,
// and newNode is not in the list.
func (l *doublyLinkedList) spliceAfter(at, newNode *Node) {
	newNode.prev, newNode.next = at, at.next
	at.next.prev = newNode
	at.next = newNode
	l.len++
}

func (l *doublyLinkedList) SetHead(node *Node) error {
	if node == nil {
		return infra.WrapErrorStackWithMessage(ErrInvalidReference, "set head")
	}
	if node == l.head {
		return nil
	}
	l.detachIfPresent(node)
	l.pushFront(node)
	return nil
}

func (l *doublyLinkedList) SetTail(node *Node) error {
	if node == nil {
		return infra.WrapErrorStackWithMessage(ErrInvalidReference, "set tail")
	}
	if node == l.tail {
		return nil
	}
	l.detachIfPresent(node)
	l.pushBack(node)
	return nil
}

func (l *doublyLinkedList) checkAnchor(node, nodeToInsert *Node) error {
	if node == nil || nodeToInsert == nil {
		return ErrInvalidReference
	}
	if node == nodeToInsert {
		return ErrSameNode
	}
	if !l.contains(node) {
		l.logger.Debug("[doubly-linked-list] anchor node not found",
			zap.Float64("value", node.Value),
		)
		return ErrNodeNotFound
	}
	return nil
}

func (l *doublyLinkedList) InsertBefore(node, nodeToInsert *Node) error {
	if err := l.checkAnchor(node, nodeToInsert); err != nil {
		return infra.WrapErrorStackWithMessage(err, "insert before")
	}
	l.detachIfPresent(nodeToInsert)
	if node == l.head {
		l.pushFront(nodeToInsert)
		return nil
	}
	l.spliceBefore(node, nodeToInsert)
	return nil
}

func (l *doublyLinkedList) InsertAfter(node, nodeToInsert *Node) error {
	if err := l.checkAnchor(node, nodeToInsert); err != nil {
		return infra.WrapErrorStackWithMessage(err, "insert after")
	}
	l.detachIfPresent(nodeToInsert)
	if node == l.tail {
		l.pushBack(nodeToInsert)
		return nil
	}
	l.spliceAfter(node, nodeToInsert)
	return nil
}

// InsertAtPosition resolves the position against the list as it is,
// nodeToInsert included, then relocates nodeToInsert before the located node.
func (l *doublyLinkedList) InsertAtPosition(position int, nodeToInsert *Node) error {
	if nodeToInsert == nil {
		return infra.WrapErrorStackWithMessage(ErrInvalidReference, "insert at position")
	}
	if position < 1 {
		return infra.WrapErrorStackWithMessage(ErrInvalidPosition, fmt.Sprintf("insert at position %d", position))
	}
	if position == 1 {
		return l.SetHead(nodeToInsert)
	}

	var target *Node
	for iterator, pos := l.head.Next(), 2; iterator != nil; iterator, pos = iterator.next, pos+1 {
		if pos == position {
			target = iterator
			break
		}
	}
	if target == nil {
		l.logger.Debug("[doubly-linked-list] position out of range",
			zap.Int("position", position),
			zap.Int64("len", l.len),
		)
		return infra.WrapErrorStackWithMessage(ErrNodeNotFound, fmt.Sprintf("insert at position %d", position))
	}
	if target == nodeToInsert {
		// Already there.
		return nil
	}
	return l.InsertBefore(target, nodeToInsert)
}

func (l *doublyLinkedList) Remove(node *Node) error {
	if node == nil {
		return infra.WrapErrorStackWithMessage(ErrInvalidReference, "remove")
	}
	if !l.contains(node) {
		l.logger.Debug("[doubly-linked-list] node to remove not found",
			zap.Float64("value", node.Value),
		)
		return infra.WrapErrorStackWithMessage(ErrNodeNotFound, "remove")
	}
	l.unlink(node)
	return nil
}

func (l *doublyLinkedList) RemoveNodesWithValue(v float64) int {
	removed := 0
	iterator := l.head
	for iterator != nil {
		if iterator.Value != v {
			iterator = iterator.next
			continue
		}
		prev := iterator.prev
		l.unlink(iterator)
		removed++
		// Continue from the former prev, it was checked already.
		// The head was removed if there is no prev.
		if prev != nil {
			iterator = prev
		} else {
			iterator = l.head
		}
	}
	if removed > 0 {
		l.logger.Debug("[doubly-linked-list] nodes removed by value",
			zap.Float64("value", v),
			zap.Int("removed", removed),
			zap.Int64("len", l.len),
		)
	}
	return removed
}

func (l *doublyLinkedList) ContainsNodeWithValue(v float64) bool {
	for iterator := l.head; iterator != nil; iterator = iterator.next {
		if iterator.Value == v {
			return true
		}
	}
	return false
}

func (l *doublyLinkedList) Append(values ...float64) []*Node {
	if len(values) <= 0 {
		return nil
	}
	nodes := lo.Map(values, func(v float64, _ int) *Node {
		return NewNode(v)
	})
	for _, node := range nodes {
		l.pushBack(node)
	}
	return nodes
}

// ForEach allows removing the visited node while iterating.
func (l *doublyLinkedList) ForEach(fn func(idx int64, n *Node) error) error {
	if fn == nil {
		return nil
	}
	var idx int64
	for iterator := l.head; iterator != nil; idx++ {
		next := iterator.next
		if err := fn(idx, iterator); err != nil {
			return err
		}
		iterator = next
	}
	return nil
}

func (l *doublyLinkedList) ReverseForEach(fn func(idx int64, n *Node)) {
	if fn == nil {
		return
	}
	var idx int64
	for iterator := l.tail; iterator != nil; idx++ {
		prev := iterator.prev
		fn(idx, iterator)
		iterator = prev
	}
}

func (l *doublyLinkedList) Values() []float64 {
	values := make([]float64, 0, l.len)
	for iterator := l.head; iterator != nil; iterator = iterator.next {
		values = append(values, iterator.Value)
	}
	return values
}

func brokenInvariant(format string, args ...any) error {
	return infra.WrapErrorStackWithMessage(ErrBrokenInvariant, fmt.Sprintf(format, args...))
}

func (l *doublyLinkedList) Validate() error {
	var merr error
	if (l.head == nil) != (l.tail == nil) {
		return brokenInvariant("head (%p) and tail (%p) must be both set or both nil", l.head, l.tail)
	}
	if l.head == nil {
		if l.len != 0 {
			merr = multierr.Append(merr, brokenInvariant("empty list with len %d", l.len))
		}
		return merr
	}

	if l.head.prev != nil {
		merr = multierr.Append(merr, brokenInvariant("head.prev is not nil"))
	}
	if l.tail.next != nil {
		merr = multierr.Append(merr, brokenInvariant("tail.next is not nil"))
	}

	var (
		visited = make(map[*Node]struct{})
		last    *Node
		count   int64
	)
	for iterator := l.head; iterator != nil; iterator = iterator.next {
		if _, ok := visited[iterator]; ok {
			return multierr.Append(merr, brokenInvariant("cycle at index %d", count))
		}
		visited[iterator] = struct{}{}
		if iterator.next != nil && iterator.next.prev != iterator {
			merr = multierr.Append(merr, brokenInvariant("asymmetric link at index %d", count))
		}
		last = iterator
		count++
	}
	if last != l.tail {
		merr = multierr.Append(merr, brokenInvariant("tail is not reachable from head"))
	}

	var reverseCount int64
	for iterator := l.tail; iterator != nil && reverseCount <= count; iterator = iterator.prev {
		reverseCount++
	}
	if reverseCount != count {
		merr = multierr.Append(merr, brokenInvariant("forward count %d, backward count %d", count, reverseCount))
	}
	if count != l.len {
		merr = multierr.Append(merr, brokenInvariant("counted %d nodes, len %d", count, l.len))
	}
	return merr
}

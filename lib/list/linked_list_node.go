package list

// Node is the element of the doubly linked list.
// The links are not owned by the node, they are rewired by the list only.
type Node struct {
	prev, next *Node
	Value      float64
}

func NewNode(v float64) *Node {
	return &Node{
		Value: v,
	}
}

func (n *Node) HasNext() bool {
	if n == nil {
		return false
	}
	return n.next != nil
}

func (n *Node) HasPrev() bool {
	if n == nil {
		return false
	}
	return n.prev != nil
}

func (n *Node) Next() *Node {
	if n == nil {
		return nil
	}
	return n.next
}

func (n *Node) Prev() *Node {
	if n == nil {
		return nil
	}
	return n.prev
}

func (n *Node) resetLinks() {
	n.prev, n.next = nil, nil
}

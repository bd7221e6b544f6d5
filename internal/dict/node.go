package dict

// Node is one character step in the prefix tree.
type Node struct {
	children map[byte]*Node
	word     bool
}

func newNode() *Node {
	return &Node{children: make(map[byte]*Node)}
}

// child returns the child for c, creating it if needed. Build-time only.
func (n *Node) child(c byte) *Node {
	next, ok := n.children[c]
	if !ok {
		next = newNode()
		n.children[c] = next
	}
	return next
}

// Walk follows s from n and returns the node reached, or nil if the path
// leaves the tree. A nil receiver yields nil.
func (n *Node) Walk(s string) *Node {
	for i := 0; i < len(s) && n != nil; i++ {
		n = n.children[s[i]]
	}
	return n
}

// Terminal reports whether the path to n spells a stored word.
func (n *Node) Terminal() bool { return n != nil && n.word }

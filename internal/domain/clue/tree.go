// Package clue keeps the collected evidence: an unbalanced binary search
// tree of clue texts ordered byte-wise, without duplicates.
package clue

import "iter"

type Node struct {
	Text  string
	Left  *Node
	Right *Node
}

// Insert adds text to the tree rooted at root and returns the root. A text
// that is already present leaves the tree untouched.
func Insert(root *Node, text string) *Node {
	return root.Insert(text)
}

func (n *Node) Insert(text string) *Node {
	if n == nil {
		return &Node{Text: text}
	}
	switch {
	case text < n.Text:
		n.Left = n.Left.Insert(text)
	case text > n.Text:
		n.Right = n.Right.Insert(text)
	}
	return n
}

func (n *Node) Contains(text string) bool {
	if n == nil {
		return false
	}
	switch {
	case text < n.Text:
		return n.Left.Contains(text)
	case text > n.Text:
		return n.Right.Contains(text)
	}
	return true
}

func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.Count() + n.Right.Count()
}

// All yields the clue texts in ascending order.
func (n *Node) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		n.inOrder(yield)
	}
}

// Walk calls visit for every clue in ascending order.
func (n *Node) Walk(visit func(string)) {
	n.inOrder(func(text string) bool {
		visit(text)
		return true
	})
}

func (n *Node) inOrder(yield func(string) bool) bool {
	if n == nil {
		return true
	}
	return n.Left.inOrder(yield) && yield(n.Text) && n.Right.inOrder(yield)
}

// Release tears the tree down in post-order and returns the number of
// released nodes. release, when not nil, sees each node exactly once.
func Release(root *Node, release func(*Node)) int {
	if root == nil {
		return 0
	}
	n := Release(root.Left, release) + Release(root.Right, release)
	root.Left, root.Right = nil, nil
	if release != nil {
		release(root)
	}
	return n + 1
}

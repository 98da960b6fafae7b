package ast

import "reflect"

// Visitor is called for each node during Walk with the node's distance from
// the root. If it returns false, the children of the node are not visited.
type Visitor func(n Node, depth int) bool

// Walk traverses the tree rooted at root in depth-first pre-order: a node is
// visited before its children, and children in source order. The traversal
// keeps its own stack, so the depth of the tree does not grow the goroutine
// stack.
func Walk(root Node, visit Visitor) {
	if isNil(root) {
		return
	}

	type frame struct {
		node  Node
		depth int
	}
	stack := []frame{{root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(f.node, f.depth) {
			continue
		}
		children := f.node.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{children[i], f.depth + 1})
		}
	}
}

// Inspect traverses a tree and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(root Node, f func(Node) bool) {
	Walk(root, func(n Node, _ int) bool { return f(n) })
}

// Count returns the number of nodes in the tree.
func Count(root Node) int {
	n := 0
	Inspect(root, func(Node) bool {
		n++
		return true
	})
	return n
}

// Equal reports whether a and b have the same shape: the same node types
// with the same operators, the same leaf lexemes, and the same children in
// the same order. Source positions are ignored.
func Equal(a, b Node) bool {
	type pair struct{ a, b Node }
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if isNil(p.a) || isNil(p.b) {
			if isNil(p.a) != isNil(p.b) {
				return false
			}
			continue
		}
		if reflect.TypeOf(p.a) != reflect.TypeOf(p.b) {
			return false
		}
		ta, tb := p.a.Token(), p.b.Token()
		if ta.Type() != tb.Type() {
			return false
		}
		ca, cb := p.a.Children(), p.b.Children()
		if len(ca) != len(cb) {
			return false
		}
		if len(ca) == 0 && ta.Lexeme() != tb.Lexeme() {
			return false
		}
		for i := range ca {
			stack = append(stack, pair{ca[i], cb[i]})
		}
	}
	return true
}

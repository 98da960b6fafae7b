/*
Package ast defines the expression tree built by the parser and the rules for
turning a tree back into source text.

Every node satisfies Node: it owns the token it was built from, exposes its
children in source order, and renders itself through an Unparser. Nodes are
immutable; constructors validate their inputs and a built tree is always
well-formed, so rendering never fails.

Operator precedence and associativity live in a Table that is built once and
passed to both the parser and SourceCode. The default table, from the loosest
to the tightest binding:

	or                  left
	and                 left
	|                   left
	^                   left
	&                   left
	== !=               left
	< <= > >=           non-associative
	<< >>               left
	+ -                 left
	* / %               left
	**                  right
	- ! ~               prefix
	f(args)             call
	literals, names     primary

A child is wrapped in parentheses when its precedence is lower than its
parent's, or when it is equal and the parent's associativity does not group
toward that side. Parentheses are never stored in the tree.
*/
package ast

// Package ast implements the GraphQL AST as a tree of tagged, immutable nodes.
//
// Every node carries a NodeKind discriminator. Kinds are grouped into named
// categories (Definition, Selection, Value, Type, ...) via a static lookup
// table, not inheritance; the category predicates live in categories.go.
package ast

// Node is implemented by every AST node.
type Node interface {
	NodeKind() NodeKind
}

// Definition is a root level node of an executable or type system document.
type Definition interface {
	Node
	definitionNode()
}

// Selection is a node that may appear inside a selection set.
type Selection interface {
	Node
	selectionNode()
}

// Value is an input value node.
type Value interface {
	Node
	valueNode()
}

// Type is a type reference node.
type Type interface {
	Node
	typeNode()
}

// Document is the root node of a GraphQL document.
type Document struct {
	Definitions []Definition
}

func (d *Document) NodeKind() NodeKind { return NodeKindDocument }

var _ Node = (*Document)(nil)

// Package astvisitor implements a bottom-up fold over the GraphQL AST.
//
// The walker visits each node's children in their declared grammar order,
// replaces every child with the string its leave callback produced, and then
// invokes the parent's leave callback on the resulting Folded view. The walk
// is single pass and synchronous; callbacks must be pure.
package astvisitor

import (
	"fmt"

	"github.com/usalko/graphql-core/pkg/ast"
)

// EnterFunc runs before a node's children are visited. key is the attribute
// name under which the node sits in its parent. A non nil error aborts the
// walk.
type EnterFunc func(node ast.Node, key string) error

// LeaveFunc runs after all children of a node have been folded into strings.
// It returns the text fragment for the node.
type LeaveFunc func(node *Folded) (string, error)

// Visitor holds the optional per kind callbacks. Every kind that occurs in
// the visited tree must have a Leave entry; Enter entries are optional.
type Visitor struct {
	Enter map[ast.NodeKind]EnterFunc
	Leave map[ast.NodeKind]LeaveFunc
}

// Folded is a node whose children have been replaced by their printed text.
// Only the fields matching the node's kind are set; absent optional children
// stay empty, empty child lists stay nil.
type Folded struct {
	Kind ast.NodeKind
	Key  string

	Alias         string
	Block         bool
	Boolean       bool
	DefaultValue  string
	Description   string
	Name          string
	Operation     ast.OperationType
	Repeatable    bool
	SelectionSet  string
	Type          string
	TypeCondition string
	Value         string
	Variable      string

	Arguments           []string
	Definitions         []string
	Directives          []string
	Fields              []string
	Interfaces          []string
	Locations           []string
	OperationTypes      []string
	Selections          []string
	Types               []string
	Values              []string
	VariableDefinitions []string
}

// Visit folds root into the string produced by its leave callback.
func Visit(root ast.Node, visitor Visitor) (string, error) {
	if root == nil {
		return "", fmt.Errorf("astvisitor: cannot visit nil node")
	}
	w := walker{visitor: visitor}
	out := w.walkNode(root, "")
	return out, w.err
}

// walker performs one walk. The first error stops all further work; every
// subsequent walk func returns the empty string.
type walker struct {
	visitor Visitor
	err     error
}

func (w *walker) abort(err error) string {
	if w.err == nil {
		w.err = err
	}
	return ""
}

func (w *walker) walkNode(node ast.Node, key string) string {
	if w.err != nil {
		return ""
	}

	kind := node.NodeKind()
	if enter, exists := w.visitor.Enter[kind]; exists {
		if err := enter(node, key); err != nil {
			return w.abort(err)
		}
	}

	folded := Folded{Kind: kind, Key: key}

	switch n := node.(type) {
	case *ast.Document:
		folded.Definitions = walkNodes(w, n.Definitions, "definitions")
	case *ast.OperationDefinition:
		folded.Operation = n.Operation
		folded.Name = n.Name
		folded.VariableDefinitions = walkNodes(w, n.VariableDefinitions, "variableDefinitions")
		folded.Directives = walkNodes(w, n.Directives, "directives")
		if n.SelectionSet != nil {
			folded.SelectionSet = w.walkNode(n.SelectionSet, "selectionSet")
		}
	case *ast.VariableDefinition:
		if n.Variable != nil {
			folded.Variable = w.walkNode(n.Variable, "variable")
		}
		if n.Type != nil {
			folded.Type = w.walkNode(n.Type, "type")
		}
		if n.DefaultValue != nil {
			folded.DefaultValue = w.walkNode(n.DefaultValue, "defaultValue")
		}
		folded.Directives = walkNodes(w, n.Directives, "directives")
	case *ast.Variable:
		folded.Name = n.Name
	case *ast.SelectionSet:
		folded.Selections = walkNodes(w, n.Selections, "selections")
	case *ast.Field:
		folded.Alias = n.Alias
		folded.Name = n.Name
		folded.Arguments = walkNodes(w, n.Arguments, "arguments")
		folded.Directives = walkNodes(w, n.Directives, "directives")
		if n.SelectionSet != nil {
			folded.SelectionSet = w.walkNode(n.SelectionSet, "selectionSet")
		}
	case *ast.Argument:
		folded.Name = n.Name
		if n.Value != nil {
			folded.Value = w.walkNode(n.Value, "value")
		}
	case *ast.FragmentSpread:
		folded.Name = n.FragmentName
		folded.Directives = walkNodes(w, n.Directives, "directives")
	case *ast.InlineFragment:
		if n.TypeCondition != nil {
			folded.TypeCondition = w.walkNode(n.TypeCondition, "typeCondition")
		}
		folded.Directives = walkNodes(w, n.Directives, "directives")
		if n.SelectionSet != nil {
			folded.SelectionSet = w.walkNode(n.SelectionSet, "selectionSet")
		}
	case *ast.FragmentDefinition:
		folded.Name = n.Name
		if n.TypeCondition != nil {
			folded.TypeCondition = w.walkNode(n.TypeCondition, "typeCondition")
		}
		folded.Directives = walkNodes(w, n.Directives, "directives")
		if n.SelectionSet != nil {
			folded.SelectionSet = w.walkNode(n.SelectionSet, "selectionSet")
		}
	case *ast.IntValue:
		folded.Value = n.Raw
	case *ast.FloatValue:
		folded.Value = n.Raw
	case *ast.StringValue:
		folded.Value = n.Value
		folded.Block = n.BlockString
	case *ast.BooleanValue:
		folded.Boolean = n.Value
	case *ast.NullValue:
	case *ast.EnumValue:
		folded.Value = n.Value
	case *ast.ListValue:
		folded.Values = walkNodes(w, n.Values, "values")
	case *ast.ObjectValue:
		folded.Fields = walkNodes(w, n.Fields, "fields")
	case *ast.ObjectField:
		folded.Name = n.Name
		if n.Value != nil {
			folded.Value = w.walkNode(n.Value, "value")
		}
	case *ast.Directive:
		folded.Name = n.Name
		folded.Arguments = walkNodes(w, n.Arguments, "arguments")
	case *ast.NamedType:
		folded.Name = n.Name
	case *ast.ListType:
		if n.Type != nil {
			folded.Type = w.walkNode(n.Type, "type")
		}
	case *ast.NonNullType:
		if n.Type != nil {
			folded.Type = w.walkNode(n.Type, "type")
		}
	case *ast.SchemaDefinition:
		if n.Description != nil {
			folded.Description = w.walkNode(n.Description, "description")
		}
		folded.Directives = walkNodes(w, n.Directives, "directives")
		folded.OperationTypes = walkNodes(w, n.OperationTypes, "operationTypes")
	case *ast.OperationTypeDefinition:
		folded.Operation = n.Operation
		if n.Type != nil {
			folded.Type = w.walkNode(n.Type, "type")
		}
	case *ast.ScalarTypeDefinition:
		if n.Description != nil {
			folded.Description = w.walkNode(n.Description, "description")
		}
		folded.Name = n.Name
		folded.Directives = walkNodes(w, n.Directives, "directives")
	case *ast.ObjectTypeDefinition:
		if n.Description != nil {
			folded.Description = w.walkNode(n.Description, "description")
		}
		folded.Name = n.Name
		folded.Interfaces = walkNodes(w, n.Interfaces, "interfaces")
		folded.Directives = walkNodes(w, n.Directives, "directives")
		folded.Fields = walkNodes(w, n.Fields, "fields")
	case *ast.FieldDefinition:
		if n.Description != nil {
			folded.Description = w.walkNode(n.Description, "description")
		}
		folded.Name = n.Name
		folded.Arguments = walkNodes(w, n.Arguments, "arguments")
		if n.Type != nil {
			folded.Type = w.walkNode(n.Type, "type")
		}
		folded.Directives = walkNodes(w, n.Directives, "directives")
	case *ast.InputValueDefinition:
		if n.Description != nil {
			folded.Description = w.walkNode(n.Description, "description")
		}
		folded.Name = n.Name
		if n.Type != nil {
			folded.Type = w.walkNode(n.Type, "type")
		}
		if n.DefaultValue != nil {
			folded.DefaultValue = w.walkNode(n.DefaultValue, "defaultValue")
		}
		folded.Directives = walkNodes(w, n.Directives, "directives")
	case *ast.InterfaceTypeDefinition:
		if n.Description != nil {
			folded.Description = w.walkNode(n.Description, "description")
		}
		folded.Name = n.Name
		folded.Interfaces = walkNodes(w, n.Interfaces, "interfaces")
		folded.Directives = walkNodes(w, n.Directives, "directives")
		folded.Fields = walkNodes(w, n.Fields, "fields")
	case *ast.UnionTypeDefinition:
		if n.Description != nil {
			folded.Description = w.walkNode(n.Description, "description")
		}
		folded.Name = n.Name
		folded.Directives = walkNodes(w, n.Directives, "directives")
		folded.Types = walkNodes(w, n.Types, "types")
	case *ast.EnumTypeDefinition:
		if n.Description != nil {
			folded.Description = w.walkNode(n.Description, "description")
		}
		folded.Name = n.Name
		folded.Directives = walkNodes(w, n.Directives, "directives")
		folded.Values = walkNodes(w, n.Values, "values")
	case *ast.EnumValueDefinition:
		if n.Description != nil {
			folded.Description = w.walkNode(n.Description, "description")
		}
		folded.Name = n.Name
		folded.Directives = walkNodes(w, n.Directives, "directives")
	case *ast.InputObjectTypeDefinition:
		if n.Description != nil {
			folded.Description = w.walkNode(n.Description, "description")
		}
		folded.Name = n.Name
		folded.Directives = walkNodes(w, n.Directives, "directives")
		folded.Fields = walkNodes(w, n.Fields, "fields")
	case *ast.DirectiveDefinition:
		if n.Description != nil {
			folded.Description = w.walkNode(n.Description, "description")
		}
		folded.Name = n.Name
		folded.Arguments = walkNodes(w, n.Arguments, "arguments")
		folded.Repeatable = n.Repeatable
		folded.Locations = walkLocations(n.Locations)
	case *ast.SchemaExtension:
		folded.Directives = walkNodes(w, n.Directives, "directives")
		folded.OperationTypes = walkNodes(w, n.OperationTypes, "operationTypes")
	case *ast.ScalarTypeExtension:
		folded.Name = n.Name
		folded.Directives = walkNodes(w, n.Directives, "directives")
	case *ast.ObjectTypeExtension:
		folded.Name = n.Name
		folded.Interfaces = walkNodes(w, n.Interfaces, "interfaces")
		folded.Directives = walkNodes(w, n.Directives, "directives")
		folded.Fields = walkNodes(w, n.Fields, "fields")
	case *ast.InterfaceTypeExtension:
		folded.Name = n.Name
		folded.Interfaces = walkNodes(w, n.Interfaces, "interfaces")
		folded.Directives = walkNodes(w, n.Directives, "directives")
		folded.Fields = walkNodes(w, n.Fields, "fields")
	case *ast.UnionTypeExtension:
		folded.Name = n.Name
		folded.Directives = walkNodes(w, n.Directives, "directives")
		folded.Types = walkNodes(w, n.Types, "types")
	case *ast.EnumTypeExtension:
		folded.Name = n.Name
		folded.Directives = walkNodes(w, n.Directives, "directives")
		folded.Values = walkNodes(w, n.Values, "values")
	case *ast.InputObjectTypeExtension:
		folded.Name = n.Name
		folded.Directives = walkNodes(w, n.Directives, "directives")
		folded.Fields = walkNodes(w, n.Fields, "fields")
	default:
		return w.abort(fmt.Errorf("astvisitor: unknown node kind: %s", kind))
	}

	if w.err != nil {
		return ""
	}

	leave, exists := w.visitor.Leave[kind]
	if !exists {
		return w.abort(fmt.Errorf("astvisitor: missing leave func for node kind: %s", kind))
	}

	out, err := leave(&folded)
	if err != nil {
		return w.abort(err)
	}
	return out
}

func walkNodes[T ast.Node](w *walker, nodes []T, key string) []string {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]string, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, w.walkNode(node, key))
	}
	return out
}

func walkLocations(locations []ast.DirectiveLocation) []string {
	if len(locations) == 0 {
		return nil
	}
	out := make([]string, 0, len(locations))
	for _, location := range locations {
		out = append(out, location.String())
	}
	return out
}

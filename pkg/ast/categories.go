package ast

// NodeCategory is a set of node kinds sharing structural treatment.
// A kind can belong to multiple categories, e.g. NodeKindObjectTypeDefinition
// is a Definition, a TypeSystemDefinition and a TypeDefinition.
type NodeCategory uint16

const (
	NodeCategoryDefinition NodeCategory = 1 << iota
	NodeCategoryExecutableDefinition
	NodeCategorySelection
	NodeCategoryValue
	NodeCategoryType
	NodeCategoryNullabilityAssertion
	NodeCategoryTypeSystemDefinition
	NodeCategoryTypeDefinition
	NodeCategoryTypeSystemExtension
	NodeCategoryTypeExtension
)

// nodeCategories maps each concrete kind to the categories it belongs to.
// Kinds missing from the table belong to no category. No kind maps to
// NodeCategoryNullabilityAssertion; the category is reserved for the
// experimental client controlled nullability grammar.
var nodeCategories = map[NodeKind]NodeCategory{
	NodeKindOperationDefinition: NodeCategoryDefinition | NodeCategoryExecutableDefinition,
	NodeKindFragmentDefinition:  NodeCategoryDefinition | NodeCategoryExecutableDefinition,

	NodeKindField:          NodeCategorySelection,
	NodeKindFragmentSpread: NodeCategorySelection,
	NodeKindInlineFragment: NodeCategorySelection,

	NodeKindVariable:     NodeCategoryValue,
	NodeKindIntValue:     NodeCategoryValue,
	NodeKindFloatValue:   NodeCategoryValue,
	NodeKindStringValue:  NodeCategoryValue,
	NodeKindBooleanValue: NodeCategoryValue,
	NodeKindNullValue:    NodeCategoryValue,
	NodeKindEnumValue:    NodeCategoryValue,
	NodeKindListValue:    NodeCategoryValue,
	NodeKindObjectValue:  NodeCategoryValue,

	NodeKindNamedType:   NodeCategoryType,
	NodeKindListType:    NodeCategoryType,
	NodeKindNonNullType: NodeCategoryType,

	NodeKindSchemaDefinition:    NodeCategoryDefinition | NodeCategoryTypeSystemDefinition,
	NodeKindDirectiveDefinition: NodeCategoryDefinition | NodeCategoryTypeSystemDefinition,

	NodeKindScalarTypeDefinition:      NodeCategoryDefinition | NodeCategoryTypeSystemDefinition | NodeCategoryTypeDefinition,
	NodeKindObjectTypeDefinition:      NodeCategoryDefinition | NodeCategoryTypeSystemDefinition | NodeCategoryTypeDefinition,
	NodeKindInterfaceTypeDefinition:   NodeCategoryDefinition | NodeCategoryTypeSystemDefinition | NodeCategoryTypeDefinition,
	NodeKindUnionTypeDefinition:       NodeCategoryDefinition | NodeCategoryTypeSystemDefinition | NodeCategoryTypeDefinition,
	NodeKindEnumTypeDefinition:        NodeCategoryDefinition | NodeCategoryTypeSystemDefinition | NodeCategoryTypeDefinition,
	NodeKindInputObjectTypeDefinition: NodeCategoryDefinition | NodeCategoryTypeSystemDefinition | NodeCategoryTypeDefinition,

	NodeKindSchemaExtension: NodeCategoryDefinition | NodeCategoryTypeSystemExtension,

	NodeKindScalarTypeExtension:      NodeCategoryDefinition | NodeCategoryTypeSystemExtension | NodeCategoryTypeExtension,
	NodeKindObjectTypeExtension:      NodeCategoryDefinition | NodeCategoryTypeSystemExtension | NodeCategoryTypeExtension,
	NodeKindInterfaceTypeExtension:   NodeCategoryDefinition | NodeCategoryTypeSystemExtension | NodeCategoryTypeExtension,
	NodeKindUnionTypeExtension:       NodeCategoryDefinition | NodeCategoryTypeSystemExtension | NodeCategoryTypeExtension,
	NodeKindEnumTypeExtension:        NodeCategoryDefinition | NodeCategoryTypeSystemExtension | NodeCategoryTypeExtension,
	NodeKindInputObjectTypeExtension: NodeCategoryDefinition | NodeCategoryTypeSystemExtension | NodeCategoryTypeExtension,
}

func nodeIs(node Node, category NodeCategory) bool {
	if node == nil {
		return false
	}
	return nodeCategories[node.NodeKind()]&category != 0
}

// IsDefinitionNode reports whether node may appear at the root of a document.
func IsDefinitionNode(node Node) bool { return nodeIs(node, NodeCategoryDefinition) }

// IsExecutableDefinitionNode reports whether node is an operation or fragment definition.
func IsExecutableDefinitionNode(node Node) bool {
	return nodeIs(node, NodeCategoryExecutableDefinition)
}

// IsSelectionNode reports whether node may appear inside a selection set.
func IsSelectionNode(node Node) bool { return nodeIs(node, NodeCategorySelection) }

// IsValueNode reports whether node is an input value.
func IsValueNode(node Node) bool { return nodeIs(node, NodeCategoryValue) }

// IsConstValueNode reports whether node is an input value free of variable
// references, recursing into list and object values.
func IsConstValueNode(node Node) bool {
	if !IsValueNode(node) {
		return false
	}
	switch n := node.(type) {
	case *Variable:
		return false
	case *ListValue:
		for _, value := range n.Values {
			if !IsConstValueNode(value) {
				return false
			}
		}
	case *ObjectValue:
		for _, field := range n.Fields {
			if !IsConstValueNode(field.Value) {
				return false
			}
		}
	}
	return true
}

// IsTypeNode reports whether node is a type reference.
func IsTypeNode(node Node) bool { return nodeIs(node, NodeCategoryType) }

// IsNullabilityAssertionNode reports whether node is a client controlled
// nullability assertion. No kind of this grammar belongs to the category.
func IsNullabilityAssertionNode(node Node) bool {
	return nodeIs(node, NodeCategoryNullabilityAssertion)
}

// IsTypeSystemDefinitionNode reports whether node defines part of a schema.
func IsTypeSystemDefinitionNode(node Node) bool {
	return nodeIs(node, NodeCategoryTypeSystemDefinition)
}

// IsTypeDefinitionNode reports whether node defines a named type.
func IsTypeDefinitionNode(node Node) bool { return nodeIs(node, NodeCategoryTypeDefinition) }

// IsTypeSystemExtensionNode reports whether node extends part of a schema.
func IsTypeSystemExtensionNode(node Node) bool {
	return nodeIs(node, NodeCategoryTypeSystemExtension)
}

// IsTypeExtensionNode reports whether node extends a named type.
func IsTypeExtensionNode(node Node) bool { return nodeIs(node, NodeCategoryTypeExtension) }

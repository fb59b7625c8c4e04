package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryMembership(t *testing.T) {
	field := &Field{Name: "hero"}
	assert.True(t, IsSelectionNode(field))
	assert.False(t, IsValueNode(field))
	assert.False(t, IsDefinitionNode(field))
	assert.False(t, IsConstValueNode(field))

	variable := &Variable{Name: "episode"}
	assert.True(t, IsValueNode(variable))
	assert.False(t, IsSelectionNode(variable))

	operation := &OperationDefinition{Operation: OperationTypeQuery}
	assert.True(t, IsDefinitionNode(operation))
	assert.True(t, IsExecutableDefinitionNode(operation))
	assert.False(t, IsTypeSystemDefinitionNode(operation))

	objectType := &ObjectTypeDefinition{Name: "Query"}
	assert.True(t, IsDefinitionNode(objectType))
	assert.True(t, IsTypeSystemDefinitionNode(objectType))
	assert.True(t, IsTypeDefinitionNode(objectType))
	assert.False(t, IsTypeSystemExtensionNode(objectType))
	assert.False(t, IsTypeExtensionNode(objectType))

	schemaDefinition := &SchemaDefinition{}
	assert.True(t, IsTypeSystemDefinitionNode(schemaDefinition))
	assert.False(t, IsTypeDefinitionNode(schemaDefinition))

	unionExtension := &UnionTypeExtension{Name: "Feed"}
	assert.True(t, IsDefinitionNode(unionExtension))
	assert.True(t, IsTypeSystemExtensionNode(unionExtension))
	assert.True(t, IsTypeExtensionNode(unionExtension))
	assert.False(t, IsTypeDefinitionNode(unionExtension))

	schemaExtension := &SchemaExtension{}
	assert.True(t, IsTypeSystemExtensionNode(schemaExtension))
	assert.False(t, IsTypeExtensionNode(schemaExtension))

	namedType := &NamedType{Name: "Episode"}
	assert.True(t, IsTypeNode(namedType))
	assert.True(t, IsTypeNode(&NonNullType{Type: namedType}))
	assert.False(t, IsValueNode(namedType))
}

func TestCategoryPredicatesNilNode(t *testing.T) {
	assert.False(t, IsDefinitionNode(nil))
	assert.False(t, IsExecutableDefinitionNode(nil))
	assert.False(t, IsSelectionNode(nil))
	assert.False(t, IsValueNode(nil))
	assert.False(t, IsConstValueNode(nil))
	assert.False(t, IsTypeNode(nil))
	assert.False(t, IsNullabilityAssertionNode(nil))
	assert.False(t, IsTypeSystemDefinitionNode(nil))
	assert.False(t, IsTypeDefinitionNode(nil))
	assert.False(t, IsTypeSystemExtensionNode(nil))
	assert.False(t, IsTypeExtensionNode(nil))
}

func TestNullabilityAssertionReserved(t *testing.T) {
	for kind := range nodeKindNames {
		if nodeCategories[kind]&NodeCategoryNullabilityAssertion != 0 {
			t.Fatalf("node kind %s must not be a nullability assertion", kind)
		}
	}
}

func TestIsConstValueNode(t *testing.T) {
	assert.True(t, IsConstValueNode(&StringValue{Value: "value"}))
	assert.True(t, IsConstValueNode(&IntValue{Raw: "42"}))
	assert.True(t, IsConstValueNode(&BooleanValue{Value: true}))
	assert.True(t, IsConstValueNode(&NullValue{}))
	assert.True(t, IsConstValueNode(&EnumValue{Value: "JEDI"}))

	assert.False(t, IsConstValueNode(&Variable{Name: "var"}))

	assert.True(t, IsConstValueNode(&ListValue{Values: []Value{
		&IntValue{Raw: "1"},
		&StringValue{Value: "two"},
	}}))
	assert.False(t, IsConstValueNode(&ListValue{Values: []Value{
		&IntValue{Raw: "1"},
		&Variable{Name: "var"},
	}}))
	assert.False(t, IsConstValueNode(&ListValue{Values: []Value{
		&ListValue{Values: []Value{&Variable{Name: "var"}}},
	}}))

	assert.True(t, IsConstValueNode(&ObjectValue{Fields: []*ObjectField{
		{Name: "key", Value: &StringValue{Value: "value"}},
	}}))
	assert.False(t, IsConstValueNode(&ObjectValue{Fields: []*ObjectField{
		{Name: "key", Value: &Variable{Name: "var"}},
	}}))
	assert.False(t, IsConstValueNode(&ObjectValue{Fields: []*ObjectField{
		{Name: "outer", Value: &ObjectValue{Fields: []*ObjectField{
			{Name: "inner", Value: &ListValue{Values: []Value{&Variable{Name: "var"}}}},
		}}},
	}}))

	// Empty compounds are constant.
	assert.True(t, IsConstValueNode(&ListValue{}))
	assert.True(t, IsConstValueNode(&ObjectValue{}))
}

package ast

type NodeKind int

const (
	NodeKindUnknown NodeKind = iota
	NodeKindDocument
	NodeKindOperationDefinition
	NodeKindVariableDefinition
	NodeKindVariable
	NodeKindSelectionSet
	NodeKindField
	NodeKindArgument
	NodeKindFragmentSpread
	NodeKindInlineFragment
	NodeKindFragmentDefinition
	NodeKindIntValue
	NodeKindFloatValue
	NodeKindStringValue
	NodeKindBooleanValue
	NodeKindNullValue
	NodeKindEnumValue
	NodeKindListValue
	NodeKindObjectValue
	NodeKindObjectField
	NodeKindDirective
	NodeKindNamedType
	NodeKindListType
	NodeKindNonNullType
	NodeKindSchemaDefinition
	NodeKindOperationTypeDefinition
	NodeKindScalarTypeDefinition
	NodeKindObjectTypeDefinition
	NodeKindFieldDefinition
	NodeKindInputValueDefinition
	NodeKindInterfaceTypeDefinition
	NodeKindUnionTypeDefinition
	NodeKindEnumTypeDefinition
	NodeKindEnumValueDefinition
	NodeKindInputObjectTypeDefinition
	NodeKindDirectiveDefinition
	NodeKindSchemaExtension
	NodeKindScalarTypeExtension
	NodeKindObjectTypeExtension
	NodeKindInterfaceTypeExtension
	NodeKindUnionTypeExtension
	NodeKindEnumTypeExtension
	NodeKindInputObjectTypeExtension
)

var nodeKindNames = map[NodeKind]string{
	NodeKindDocument:                  "Document",
	NodeKindOperationDefinition:       "OperationDefinition",
	NodeKindVariableDefinition:        "VariableDefinition",
	NodeKindVariable:                  "Variable",
	NodeKindSelectionSet:              "SelectionSet",
	NodeKindField:                     "Field",
	NodeKindArgument:                  "Argument",
	NodeKindFragmentSpread:            "FragmentSpread",
	NodeKindInlineFragment:            "InlineFragment",
	NodeKindFragmentDefinition:        "FragmentDefinition",
	NodeKindIntValue:                  "IntValue",
	NodeKindFloatValue:                "FloatValue",
	NodeKindStringValue:               "StringValue",
	NodeKindBooleanValue:              "BooleanValue",
	NodeKindNullValue:                 "NullValue",
	NodeKindEnumValue:                 "EnumValue",
	NodeKindListValue:                 "ListValue",
	NodeKindObjectValue:               "ObjectValue",
	NodeKindObjectField:               "ObjectField",
	NodeKindDirective:                 "Directive",
	NodeKindNamedType:                 "NamedType",
	NodeKindListType:                  "ListType",
	NodeKindNonNullType:               "NonNullType",
	NodeKindSchemaDefinition:          "SchemaDefinition",
	NodeKindOperationTypeDefinition:   "OperationTypeDefinition",
	NodeKindScalarTypeDefinition:      "ScalarTypeDefinition",
	NodeKindObjectTypeDefinition:      "ObjectTypeDefinition",
	NodeKindFieldDefinition:           "FieldDefinition",
	NodeKindInputValueDefinition:      "InputValueDefinition",
	NodeKindInterfaceTypeDefinition:   "InterfaceTypeDefinition",
	NodeKindUnionTypeDefinition:       "UnionTypeDefinition",
	NodeKindEnumTypeDefinition:        "EnumTypeDefinition",
	NodeKindEnumValueDefinition:       "EnumValueDefinition",
	NodeKindInputObjectTypeDefinition: "InputObjectTypeDefinition",
	NodeKindDirectiveDefinition:       "DirectiveDefinition",
	NodeKindSchemaExtension:           "SchemaExtension",
	NodeKindScalarTypeExtension:       "ScalarTypeExtension",
	NodeKindObjectTypeExtension:       "ObjectTypeExtension",
	NodeKindInterfaceTypeExtension:    "InterfaceTypeExtension",
	NodeKindUnionTypeExtension:        "UnionTypeExtension",
	NodeKindEnumTypeExtension:         "EnumTypeExtension",
	NodeKindInputObjectTypeExtension:  "InputObjectTypeExtension",
}

func (k NodeKind) String() string {
	name, exists := nodeKindNames[k]
	if !exists {
		return "Unknown"
	}
	return name
}

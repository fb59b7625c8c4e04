package ast

// Type system definition nodes. Descriptions are StringValue children so the
// printer can re-emit them in block or quoted form before the node's own text.

type SchemaDefinition struct {
	Description    *StringValue
	Directives     []*Directive
	OperationTypes []*OperationTypeDefinition
}

func (d *SchemaDefinition) NodeKind() NodeKind { return NodeKindSchemaDefinition }
func (d *SchemaDefinition) definitionNode()    {}

// OperationTypeDefinition binds a root operation to a type, e.g. query: Query.
type OperationTypeDefinition struct {
	Operation OperationType
	Type      *NamedType
}

func (d *OperationTypeDefinition) NodeKind() NodeKind { return NodeKindOperationTypeDefinition }

type ScalarTypeDefinition struct {
	Description *StringValue
	Name        string
	Directives  []*Directive
}

func (d *ScalarTypeDefinition) NodeKind() NodeKind { return NodeKindScalarTypeDefinition }
func (d *ScalarTypeDefinition) definitionNode()    {}

type ObjectTypeDefinition struct {
	Description *StringValue
	Name        string
	Interfaces  []*NamedType
	Directives  []*Directive
	Fields      []*FieldDefinition
}

func (d *ObjectTypeDefinition) NodeKind() NodeKind { return NodeKindObjectTypeDefinition }
func (d *ObjectTypeDefinition) definitionNode()    {}

type FieldDefinition struct {
	Description *StringValue
	Name        string
	Arguments   []*InputValueDefinition
	Type        Type
	Directives  []*Directive
}

func (d *FieldDefinition) NodeKind() NodeKind { return NodeKindFieldDefinition }

// InputValueDefinition defines a field argument, directive argument or input
// object field, e.g. episode: Episode = JEDI.
type InputValueDefinition struct {
	Description  *StringValue
	Name         string
	Type         Type
	DefaultValue Value
	Directives   []*Directive
}

func (d *InputValueDefinition) NodeKind() NodeKind { return NodeKindInputValueDefinition }

type InterfaceTypeDefinition struct {
	Description *StringValue
	Name        string
	Interfaces  []*NamedType
	Directives  []*Directive
	Fields      []*FieldDefinition
}

func (d *InterfaceTypeDefinition) NodeKind() NodeKind { return NodeKindInterfaceTypeDefinition }
func (d *InterfaceTypeDefinition) definitionNode()    {}

type UnionTypeDefinition struct {
	Description *StringValue
	Name        string
	Directives  []*Directive
	Types       []*NamedType
}

func (d *UnionTypeDefinition) NodeKind() NodeKind { return NodeKindUnionTypeDefinition }
func (d *UnionTypeDefinition) definitionNode()    {}

type EnumTypeDefinition struct {
	Description *StringValue
	Name        string
	Directives  []*Directive
	Values      []*EnumValueDefinition
}

func (d *EnumTypeDefinition) NodeKind() NodeKind { return NodeKindEnumTypeDefinition }
func (d *EnumTypeDefinition) definitionNode()    {}

type EnumValueDefinition struct {
	Description *StringValue
	Name        string
	Directives  []*Directive
}

func (d *EnumValueDefinition) NodeKind() NodeKind { return NodeKindEnumValueDefinition }

type InputObjectTypeDefinition struct {
	Description *StringValue
	Name        string
	Directives  []*Directive
	Fields      []*InputValueDefinition
}

func (d *InputObjectTypeDefinition) NodeKind() NodeKind { return NodeKindInputObjectTypeDefinition }
func (d *InputObjectTypeDefinition) definitionNode()    {}

type DirectiveDefinition struct {
	Description *StringValue
	Name        string
	Arguments   []*InputValueDefinition
	Repeatable  bool
	Locations   []DirectiveLocation
}

func (d *DirectiveDefinition) NodeKind() NodeKind { return NodeKindDirectiveDefinition }
func (d *DirectiveDefinition) definitionNode()    {}

type SchemaExtension struct {
	Directives     []*Directive
	OperationTypes []*OperationTypeDefinition
}

func (d *SchemaExtension) NodeKind() NodeKind { return NodeKindSchemaExtension }
func (d *SchemaExtension) definitionNode()    {}

type ScalarTypeExtension struct {
	Name       string
	Directives []*Directive
}

func (d *ScalarTypeExtension) NodeKind() NodeKind { return NodeKindScalarTypeExtension }
func (d *ScalarTypeExtension) definitionNode()    {}

type ObjectTypeExtension struct {
	Name       string
	Interfaces []*NamedType
	Directives []*Directive
	Fields     []*FieldDefinition
}

func (d *ObjectTypeExtension) NodeKind() NodeKind { return NodeKindObjectTypeExtension }
func (d *ObjectTypeExtension) definitionNode()    {}

type InterfaceTypeExtension struct {
	Name       string
	Interfaces []*NamedType
	Directives []*Directive
	Fields     []*FieldDefinition
}

func (d *InterfaceTypeExtension) NodeKind() NodeKind { return NodeKindInterfaceTypeExtension }
func (d *InterfaceTypeExtension) definitionNode()    {}

type UnionTypeExtension struct {
	Name       string
	Directives []*Directive
	Types      []*NamedType
}

func (d *UnionTypeExtension) NodeKind() NodeKind { return NodeKindUnionTypeExtension }
func (d *UnionTypeExtension) definitionNode()    {}

type EnumTypeExtension struct {
	Name       string
	Directives []*Directive
	Values     []*EnumValueDefinition
}

func (d *EnumTypeExtension) NodeKind() NodeKind { return NodeKindEnumTypeExtension }
func (d *EnumTypeExtension) definitionNode()    {}

type InputObjectTypeExtension struct {
	Name       string
	Directives []*Directive
	Fields     []*InputValueDefinition
}

func (d *InputObjectTypeExtension) NodeKind() NodeKind { return NodeKindInputObjectTypeExtension }
func (d *InputObjectTypeExtension) definitionNode()    {}

var (
	_ Definition = (*SchemaDefinition)(nil)
	_ Node       = (*OperationTypeDefinition)(nil)
	_ Definition = (*ScalarTypeDefinition)(nil)
	_ Definition = (*ObjectTypeDefinition)(nil)
	_ Node       = (*FieldDefinition)(nil)
	_ Node       = (*InputValueDefinition)(nil)
	_ Definition = (*InterfaceTypeDefinition)(nil)
	_ Definition = (*UnionTypeDefinition)(nil)
	_ Definition = (*EnumTypeDefinition)(nil)
	_ Node       = (*EnumValueDefinition)(nil)
	_ Definition = (*InputObjectTypeDefinition)(nil)
	_ Definition = (*DirectiveDefinition)(nil)
	_ Definition = (*SchemaExtension)(nil)
	_ Definition = (*ScalarTypeExtension)(nil)
	_ Definition = (*ObjectTypeExtension)(nil)
	_ Definition = (*InterfaceTypeExtension)(nil)
	_ Definition = (*UnionTypeExtension)(nil)
	_ Definition = (*EnumTypeExtension)(nil)
	_ Definition = (*InputObjectTypeExtension)(nil)
)

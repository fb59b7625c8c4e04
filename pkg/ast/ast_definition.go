package ast

// OperationDefinition is a query, mutation or subscription. Name, variable
// definitions and directives are optional; an anonymous query without
// directives and variable definitions prints in the short form.
type OperationDefinition struct {
	Operation           OperationType
	Name                string
	VariableDefinitions []*VariableDefinition
	Directives          []*Directive
	SelectionSet        *SelectionSet
}

func (d *OperationDefinition) NodeKind() NodeKind { return NodeKindOperationDefinition }
func (d *OperationDefinition) definitionNode()    {}

// VariableDefinition declares an operation variable, e.g. $episode: Episode = JEDI.
type VariableDefinition struct {
	Variable     *Variable
	Type         Type
	DefaultValue Value
	Directives   []*Directive
}

func (d *VariableDefinition) NodeKind() NodeKind { return NodeKindVariableDefinition }

// FragmentDefinition is a named fragment with a type condition.
type FragmentDefinition struct {
	Name          string
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  *SelectionSet
}

func (d *FragmentDefinition) NodeKind() NodeKind { return NodeKindFragmentDefinition }
func (d *FragmentDefinition) definitionNode()    {}

var (
	_ Definition = (*OperationDefinition)(nil)
	_ Definition = (*FragmentDefinition)(nil)
	_ Node       = (*VariableDefinition)(nil)
)

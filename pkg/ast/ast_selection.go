package ast

// SelectionSet is a braced list of selections. Selection order is preserved
// verbatim in output.
type SelectionSet struct {
	Selections []Selection
}

func (s *SelectionSet) NodeKind() NodeKind { return NodeKindSelectionSet }

// Field is a selection, e.g. alias: name(arg: 1) @directive { sub }.
// Alias, arguments, directives and the selection set are optional.
type Field struct {
	Alias        string
	Name         string
	Arguments    []*Argument
	Directives   []*Directive
	SelectionSet *SelectionSet
}

func (f *Field) NodeKind() NodeKind { return NodeKindField }
func (f *Field) selectionNode()     {}

// Argument is a named input value, e.g. episode: JEDI.
type Argument struct {
	Name  string
	Value Value
}

func (a *Argument) NodeKind() NodeKind { return NodeKindArgument }

// FragmentSpread selects a named fragment, e.g. ...friendFields.
type FragmentSpread struct {
	FragmentName string
	Directives   []*Directive
}

func (f *FragmentSpread) NodeKind() NodeKind { return NodeKindFragmentSpread }
func (f *FragmentSpread) selectionNode()     {}

// InlineFragment is an anonymous fragment with an optional type condition.
type InlineFragment struct {
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  *SelectionSet
}

func (f *InlineFragment) NodeKind() NodeKind { return NodeKindInlineFragment }
func (f *InlineFragment) selectionNode()     {}

// Directive is an applied directive, e.g. @include(if: $condition).
type Directive struct {
	Name      string
	Arguments []*Argument
}

func (d *Directive) NodeKind() NodeKind { return NodeKindDirective }

var (
	_ Node      = (*SelectionSet)(nil)
	_ Selection = (*Field)(nil)
	_ Selection = (*FragmentSpread)(nil)
	_ Selection = (*InlineFragment)(nil)
	_ Node      = (*Argument)(nil)
	_ Node      = (*Directive)(nil)
)

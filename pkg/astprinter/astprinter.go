// Package astprinter converts a GraphQL AST into canonical source text.
//
// The printer is a table of leave callbacks for the astvisitor fold, one per
// node kind, each a pure function from a node with already printed children
// to the node's text fragment. Printing the same tree twice yields identical
// text; the output of a whole document re-parses into an equivalent tree.
package astprinter

import (
	"bytes"
	"io"

	"github.com/usalko/graphql-core/pkg/ast"
	"github.com/usalko/graphql-core/pkg/astvisitor"
	"github.com/usalko/graphql-core/pkg/escape"
	"github.com/usalko/graphql-core/pkg/lexing/blockstring"
)

// Print writes the canonical text for node to out. The node does not have to
// be a whole document; any AST node prints.
func Print(node ast.Node, out io.Writer) error {
	printer := Printer{}
	return printer.Print(node, out)
}

// PrintString returns the canonical text for node.
func PrintString(node ast.Node) (string, error) {
	buff := &bytes.Buffer{}
	err := Print(node, buff)
	out := buff.String()
	return out, err
}

type Printer struct{}

func (p *Printer) Print(node ast.Node, out io.Writer) error {
	txt, err := astvisitor.Visit(node, printVisitor)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, txt)
	return err
}

var printVisitor = astvisitor.Visitor{
	Leave: map[ast.NodeKind]astvisitor.LeaveFunc{
		ast.NodeKindDocument:                  leaveDocument,
		ast.NodeKindOperationDefinition:       leaveOperationDefinition,
		ast.NodeKindVariableDefinition:        leaveVariableDefinition,
		ast.NodeKindVariable:                  leaveVariable,
		ast.NodeKindSelectionSet:              leaveSelectionSet,
		ast.NodeKindField:                     leaveField,
		ast.NodeKindArgument:                  leaveArgument,
		ast.NodeKindFragmentSpread:            leaveFragmentSpread,
		ast.NodeKindInlineFragment:            leaveInlineFragment,
		ast.NodeKindFragmentDefinition:        leaveFragmentDefinition,
		ast.NodeKindIntValue:                  leaveRawValue,
		ast.NodeKindFloatValue:                leaveRawValue,
		ast.NodeKindStringValue:               leaveStringValue,
		ast.NodeKindBooleanValue:              leaveBooleanValue,
		ast.NodeKindNullValue:                 leaveNullValue,
		ast.NodeKindEnumValue:                 leaveRawValue,
		ast.NodeKindListValue:                 leaveListValue,
		ast.NodeKindObjectValue:               leaveObjectValue,
		ast.NodeKindObjectField:               leaveObjectField,
		ast.NodeKindDirective:                 leaveDirective,
		ast.NodeKindNamedType:                 leaveNamedType,
		ast.NodeKindListType:                  leaveListType,
		ast.NodeKindNonNullType:               leaveNonNullType,
		ast.NodeKindSchemaDefinition:          leaveSchemaDefinition,
		ast.NodeKindOperationTypeDefinition:   leaveOperationTypeDefinition,
		ast.NodeKindScalarTypeDefinition:      leaveScalarTypeDefinition,
		ast.NodeKindObjectTypeDefinition:      leaveObjectTypeDefinition,
		ast.NodeKindFieldDefinition:           leaveFieldDefinition,
		ast.NodeKindInputValueDefinition:      leaveInputValueDefinition,
		ast.NodeKindInterfaceTypeDefinition:   leaveInterfaceTypeDefinition,
		ast.NodeKindUnionTypeDefinition:       leaveUnionTypeDefinition,
		ast.NodeKindEnumTypeDefinition:        leaveEnumTypeDefinition,
		ast.NodeKindEnumValueDefinition:       leaveEnumValueDefinition,
		ast.NodeKindInputObjectTypeDefinition: leaveInputObjectTypeDefinition,
		ast.NodeKindDirectiveDefinition:       leaveDirectiveDefinition,
		ast.NodeKindSchemaExtension:           leaveSchemaExtension,
		ast.NodeKindScalarTypeExtension:       leaveScalarTypeExtension,
		ast.NodeKindObjectTypeExtension:       leaveObjectTypeExtension,
		ast.NodeKindInterfaceTypeExtension:    leaveInterfaceTypeExtension,
		ast.NodeKindUnionTypeExtension:        leaveUnionTypeExtension,
		ast.NodeKindEnumTypeExtension:         leaveEnumTypeExtension,
		ast.NodeKindInputObjectTypeExtension:  leaveInputObjectTypeExtension,
	},
}

func leaveDocument(node *astvisitor.Folded) (string, error) {
	return join("\n\n", node.Definitions...) + "\n", nil
}

func leaveOperationDefinition(node *astvisitor.Folded) (string, error) {
	varDefs := wrap("(", join(", ", node.VariableDefinitions...), ")")
	directives := join(" ", node.Directives...)
	// Anonymous queries without directives or variable definitions use the
	// query short form.
	if node.Name == "" && directives == "" && varDefs == "" && node.Operation == ast.OperationTypeQuery {
		return node.SelectionSet, nil
	}
	return join(" ",
		node.Operation.String(),
		join("", node.Name, varDefs),
		directives,
		node.SelectionSet,
	), nil
}

func leaveVariableDefinition(node *astvisitor.Folded) (string, error) {
	return node.Variable + ": " + node.Type +
		wrap(" = ", node.DefaultValue, "") +
		wrap(" ", join(" ", node.Directives...), ""), nil
}

func leaveVariable(node *astvisitor.Folded) (string, error) {
	return "$" + node.Name, nil
}

func leaveSelectionSet(node *astvisitor.Folded) (string, error) {
	return block(node.Selections), nil
}

func leaveField(node *astvisitor.Folded) (string, error) {
	return join(" ",
		wrap("", node.Alias, ": ")+node.Name+wrap("(", join(", ", node.Arguments...), ")"),
		join(" ", node.Directives...),
		node.SelectionSet,
	), nil
}

func leaveArgument(node *astvisitor.Folded) (string, error) {
	return node.Name + ": " + node.Value, nil
}

func leaveFragmentSpread(node *astvisitor.Folded) (string, error) {
	return "..." + node.Name + wrap(" ", join(" ", node.Directives...), ""), nil
}

func leaveInlineFragment(node *astvisitor.Folded) (string, error) {
	return join(" ",
		"...",
		wrap("on ", node.TypeCondition, ""),
		join(" ", node.Directives...),
		node.SelectionSet,
	), nil
}

func leaveFragmentDefinition(node *astvisitor.Folded) (string, error) {
	return "fragment " + node.Name +
		wrap("(", join(", ", node.VariableDefinitions...), ")") +
		" on " + node.TypeCondition +
		" " + wrap("", join(" ", node.Directives...), " ") +
		node.SelectionSet, nil
}

func leaveRawValue(node *astvisitor.Folded) (string, error) {
	return node.Value, nil
}

func leaveStringValue(node *astvisitor.Folded) (string, error) {
	if node.Block {
		indentation := "  "
		if node.Key == "description" {
			indentation = ""
		}
		return blockstring.Print(node.Value, indentation, false), nil
	}
	return escape.String(node.Value), nil
}

func leaveBooleanValue(node *astvisitor.Folded) (string, error) {
	if node.Boolean {
		return "true", nil
	}
	return "false", nil
}

func leaveNullValue(node *astvisitor.Folded) (string, error) {
	return "null", nil
}

func leaveListValue(node *astvisitor.Folded) (string, error) {
	return "[" + join(", ", node.Values...) + "]", nil
}

func leaveObjectValue(node *astvisitor.Folded) (string, error) {
	return "{" + join(", ", node.Fields...) + "}", nil
}

func leaveObjectField(node *astvisitor.Folded) (string, error) {
	return node.Name + ": " + node.Value, nil
}

func leaveDirective(node *astvisitor.Folded) (string, error) {
	return "@" + node.Name + wrap("(", join(", ", node.Arguments...), ")"), nil
}

func leaveNamedType(node *astvisitor.Folded) (string, error) {
	return node.Name, nil
}

func leaveListType(node *astvisitor.Folded) (string, error) {
	return "[" + node.Type + "]", nil
}

func leaveNonNullType(node *astvisitor.Folded) (string, error) {
	return node.Type + "!", nil
}

func leaveSchemaDefinition(node *astvisitor.Folded) (string, error) {
	return describe(node, join(" ",
		"schema",
		join(" ", node.Directives...),
		block(node.OperationTypes),
	)), nil
}

func leaveOperationTypeDefinition(node *astvisitor.Folded) (string, error) {
	return node.Operation.String() + ": " + node.Type, nil
}

func leaveScalarTypeDefinition(node *astvisitor.Folded) (string, error) {
	return describe(node, join(" ",
		"scalar",
		node.Name,
		join(" ", node.Directives...),
	)), nil
}

func leaveObjectTypeDefinition(node *astvisitor.Folded) (string, error) {
	return describe(node, join(" ",
		"type",
		node.Name,
		wrap("implements ", join(" & ", node.Interfaces...), ""),
		join(" ", node.Directives...),
		block(node.Fields),
	)), nil
}

func leaveFieldDefinition(node *astvisitor.Folded) (string, error) {
	return describe(node, node.Name+
		argumentList(node.Arguments)+
		": "+node.Type+
		wrap(" ", join(" ", node.Directives...), "")), nil
}

func leaveInputValueDefinition(node *astvisitor.Folded) (string, error) {
	return describe(node, join(" ",
		node.Name+": "+node.Type,
		wrap("= ", node.DefaultValue, ""),
		join(" ", node.Directives...),
	)), nil
}

func leaveInterfaceTypeDefinition(node *astvisitor.Folded) (string, error) {
	return describe(node, join(" ",
		"interface",
		node.Name,
		wrap("implements ", join(" & ", node.Interfaces...), ""),
		join(" ", node.Directives...),
		block(node.Fields),
	)), nil
}

func leaveUnionTypeDefinition(node *astvisitor.Folded) (string, error) {
	return describe(node, join(" ",
		"union",
		node.Name,
		join(" ", node.Directives...),
		wrap("= ", join(" | ", node.Types...), ""),
	)), nil
}

func leaveEnumTypeDefinition(node *astvisitor.Folded) (string, error) {
	return describe(node, join(" ",
		"enum",
		node.Name,
		join(" ", node.Directives...),
		block(node.Values),
	)), nil
}

func leaveEnumValueDefinition(node *astvisitor.Folded) (string, error) {
	return describe(node, join(" ",
		node.Name,
		join(" ", node.Directives...),
	)), nil
}

func leaveInputObjectTypeDefinition(node *astvisitor.Folded) (string, error) {
	return describe(node, join(" ",
		"input",
		node.Name,
		join(" ", node.Directives...),
		block(node.Fields),
	)), nil
}

func leaveDirectiveDefinition(node *astvisitor.Folded) (string, error) {
	repeatable := ""
	if node.Repeatable {
		repeatable = " repeatable"
	}
	return describe(node, "directive @"+node.Name+
		argumentList(node.Arguments)+
		repeatable+
		" on "+join(" | ", node.Locations...)), nil
}

func leaveSchemaExtension(node *astvisitor.Folded) (string, error) {
	return join(" ",
		"extend schema",
		join(" ", node.Directives...),
		block(node.OperationTypes),
	), nil
}

func leaveScalarTypeExtension(node *astvisitor.Folded) (string, error) {
	return join(" ",
		"extend scalar",
		node.Name,
		join(" ", node.Directives...),
	), nil
}

func leaveObjectTypeExtension(node *astvisitor.Folded) (string, error) {
	return join(" ",
		"extend type",
		node.Name,
		wrap("implements ", join(" & ", node.Interfaces...), ""),
		join(" ", node.Directives...),
		block(node.Fields),
	), nil
}

func leaveInterfaceTypeExtension(node *astvisitor.Folded) (string, error) {
	return join(" ",
		"extend interface",
		node.Name,
		wrap("implements ", join(" & ", node.Interfaces...), ""),
		join(" ", node.Directives...),
		block(node.Fields),
	), nil
}

func leaveUnionTypeExtension(node *astvisitor.Folded) (string, error) {
	return join(" ",
		"extend union",
		node.Name,
		join(" ", node.Directives...),
		wrap("= ", join(" | ", node.Types...), ""),
	), nil
}

func leaveEnumTypeExtension(node *astvisitor.Folded) (string, error) {
	return join(" ",
		"extend enum",
		node.Name,
		join(" ", node.Directives...),
		block(node.Values),
	), nil
}

func leaveInputObjectTypeExtension(node *astvisitor.Folded) (string, error) {
	return join(" ",
		"extend input",
		node.Name,
		join(" ", node.Directives...),
		block(node.Fields),
	), nil
}

// describe prepends the node's description, if any, on its own line.
func describe(node *astvisitor.Folded, txt string) string {
	return join("\n", node.Description, txt)
}

// argumentList renders an argument definition list. If any argument spans
// multiple lines the whole list moves onto its own indented block.
func argumentList(args []string) string {
	if hasMultilineItems(args) {
		return wrap("(\n", indent(join("\n", args...)), "\n)")
	}
	return wrap("(", join(", ", args...), ")")
}

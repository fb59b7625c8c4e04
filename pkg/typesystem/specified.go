package typesystem

import "github.com/usalko/graphql-core/pkg/ast"

func mustDirective(config DirectiveConfig) *Directive {
	directive, err := NewDirective(config)
	if err != nil {
		panic(err)
	}
	return directive
}

func booleanNonNull() ast.Type {
	return &ast.NonNullType{Type: &ast.NamedType{Name: "Boolean"}}
}

// IncludeDirective conditionally includes fields or fragments.
var IncludeDirective = mustDirective(DirectiveConfig{
	Name: "include",
	Locations: []ast.DirectiveLocation{
		ast.ExecutableDirectiveLocationField,
		ast.ExecutableDirectiveLocationFragmentSpread,
		ast.ExecutableDirectiveLocationInlineFragment,
	},
	Args: map[string]*Argument{
		"if": {Type: booleanNonNull(), Description: "Included when true."},
	},
	Description: "Directs the executor to include this field or fragment only when the `if` argument is true.",
})

// SkipDirective conditionally skips fields or fragments.
var SkipDirective = mustDirective(DirectiveConfig{
	Name: "skip",
	Locations: []ast.DirectiveLocation{
		ast.ExecutableDirectiveLocationField,
		ast.ExecutableDirectiveLocationFragmentSpread,
		ast.ExecutableDirectiveLocationInlineFragment,
	},
	Args: map[string]*Argument{
		"if": {Type: booleanNonNull(), Description: "Skipped when true."},
	},
	Description: "Directs the executor to skip this field or fragment when the `if` argument is true.",
})

// DeferDirective conditionally defers fragments.
var DeferDirective = mustDirective(DirectiveConfig{
	Name: "defer",
	Locations: []ast.DirectiveLocation{
		ast.ExecutableDirectiveLocationFragmentSpread,
		ast.ExecutableDirectiveLocationInlineFragment,
	},
	Args: map[string]*Argument{
		"if": {
			Type:         booleanNonNull(),
			Description:  "Deferred when true or undefined.",
			DefaultValue: &ast.BooleanValue{Value: true},
		},
		"label": {
			Type:        &ast.NamedType{Name: "String"},
			Description: "Unique name",
		},
	},
	Description: "Directs the executor to defer this fragment when the `if` argument is true or undefined.",
})

// StreamDirective conditionally streams list fields.
var StreamDirective = mustDirective(DirectiveConfig{
	Name: "stream",
	Locations: []ast.DirectiveLocation{
		ast.ExecutableDirectiveLocationField,
	},
	Args: map[string]*Argument{
		"if": {
			Type:         booleanNonNull(),
			Description:  "Stream when true or undefined.",
			DefaultValue: &ast.BooleanValue{Value: true},
		},
		"label": {
			Type:        &ast.NamedType{Name: "String"},
			Description: "Unique name",
		},
		"initialCount": {
			Type:         &ast.NamedType{Name: "Int"},
			Description:  "Number of items to return immediately",
			DefaultValue: &ast.IntValue{Raw: "0"},
		},
	},
	Description: "Directs the executor to stream plural fields when the `if` argument is true or undefined.",
})

// DefaultDeprecationReason is the reason used when @deprecated gives none.
const DefaultDeprecationReason = "No longer supported"

// DeprecatedDirective marks schema elements as no longer supported.
var DeprecatedDirective = mustDirective(DirectiveConfig{
	Name: "deprecated",
	Locations: []ast.DirectiveLocation{
		ast.TypeSystemDirectiveLocationFieldDefinition,
		ast.TypeSystemDirectiveLocationArgumentDefinition,
		ast.TypeSystemDirectiveLocationInputFieldDefinition,
		ast.TypeSystemDirectiveLocationEnumValue,
	},
	Args: map[string]*Argument{
		"reason": {
			Type:         &ast.NamedType{Name: "String"},
			Description:  "Explains why this element was deprecated, usually also including a suggestion for how to access supported similar data. Formatted using the Markdown syntax, as specified by [CommonMark](https://commonmark.org/).",
			DefaultValue: &ast.StringValue{Value: DefaultDeprecationReason},
		},
	},
	Description: "Marks an element of a GraphQL schema as no longer supported.",
})

// SpecifiedByDirective provides a scalar specification URL.
var SpecifiedByDirective = mustDirective(DirectiveConfig{
	Name: "specifiedBy",
	Locations: []ast.DirectiveLocation{
		ast.TypeSystemDirectiveLocationScalar,
	},
	Args: map[string]*Argument{
		"url": {
			Type:        &ast.NonNullType{Type: &ast.NamedType{Name: "String"}},
			Description: "The URL that specifies the behaviour of this scalar.",
		},
	},
	Description: "Exposes a URL that specifies the behaviour of this scalar.",
})

// SpecifiedDirectives lists all directives from the GraphQL specification.
// The experimental defer and stream directives are not part of the list.
var SpecifiedDirectives = []*Directive{
	IncludeDirective,
	SkipDirective,
	DeprecatedDirective,
	SpecifiedByDirective,
}

// IsSpecifiedDirective reports whether directive shares its name with one of
// the specified directives.
func IsSpecifiedDirective(directive *Directive) bool {
	if directive == nil {
		return false
	}
	for _, specified := range SpecifiedDirectives {
		if specified.Name == directive.Name {
			return true
		}
	}
	return false
}

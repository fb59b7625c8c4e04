// Package typesystem holds the type system entities the printer consumes.
//
// Directives are constructed once at schema build time, validated in the
// constructor and immutable afterwards. The printer only ever reads their
// rendered AST form.
package typesystem

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"

	"github.com/usalko/graphql-core/pkg/ast"
)

var nameExpression = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

func assertName(name string) error {
	if name == "" {
		return fmt.Errorf("typesystem: expected name to be a non-empty string")
	}
	if !nameExpression.MatchString(name) {
		return fmt.Errorf("typesystem: names must match %s but %q does not", nameExpression, name)
	}
	return nil
}

// Argument defines an input argument of a directive.
type Argument struct {
	Type              ast.Type
	DefaultValue      ast.Value
	Description       string
	DeprecationReason string
}

// DirectiveConfig carries the constructor input for NewDirective. Locations
// may be given as enum values, as their string spellings via LocationNames,
// or both; the spellings are coerced and appended in order.
type DirectiveConfig struct {
	Name          string
	Description   string
	Locations     []ast.DirectiveLocation
	LocationNames []string
	Args          map[string]*Argument
	Repeatable    bool
	ASTNode       *ast.DirectiveDefinition
}

// Directive is a named, located type system construct. Fields must not be
// mutated after construction.
type Directive struct {
	Name        string
	Description string
	Locations   []ast.DirectiveLocation
	Args        map[string]*Argument
	Repeatable  bool

	// ASTNode is a non owning back reference to the definition node this
	// directive originates from. It is excluded from Equal.
	ASTNode *ast.DirectiveDefinition
}

// NewDirective validates config and builds an immutable directive. The name
// and all argument names must be valid GraphQL names, the locations must be
// a non-empty collection of known DirectiveLocation values and every argument
// needs a type.
func NewDirective(config DirectiveConfig) (*Directive, error) {
	if err := assertName(config.Name); err != nil {
		return nil, err
	}

	locations := make([]ast.DirectiveLocation, 0, len(config.Locations)+len(config.LocationNames))
	locations = append(locations, config.Locations...)
	for _, name := range config.LocationNames {
		location, err := ast.ParseDirectiveLocation(name)
		if err != nil {
			return nil, fmt.Errorf("typesystem: %s locations must be DirectiveLocation values: %w", config.Name, err)
		}
		locations = append(locations, location)
	}
	if len(locations) == 0 {
		return nil, fmt.Errorf("typesystem: %s locations must be a non-empty collection of DirectiveLocation values", config.Name)
	}
	for _, location := range locations {
		if _, err := ast.ParseDirectiveLocation(location.String()); err != nil {
			return nil, fmt.Errorf("typesystem: %s locations must be DirectiveLocation values, got %d", config.Name, location)
		}
	}

	args := make(map[string]*Argument, len(config.Args))
	for name, arg := range config.Args {
		if err := assertName(name); err != nil {
			return nil, fmt.Errorf("typesystem: %s argument: %w", config.Name, err)
		}
		if arg == nil || arg.Type == nil {
			return nil, fmt.Errorf("typesystem: %s argument %s must have a type", config.Name, name)
		}
		argCopy := *arg
		args[name] = &argCopy
	}

	return &Directive{
		Name:        config.Name,
		Description: config.Description,
		Locations:   locations,
		Args:        args,
		Repeatable:  config.Repeatable,
		ASTNode:     config.ASTNode,
	}, nil
}

// Equal reports whether both directives agree on name, locations, args,
// repeatable flag and description. The AST back reference does not count.
func (d *Directive) Equal(other *Directive) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil {
		return false
	}
	return d.Name == other.Name &&
		d.Description == other.Description &&
		d.Repeatable == other.Repeatable &&
		reflect.DeepEqual(d.Locations, other.Locations) &&
		reflect.DeepEqual(d.Args, other.Args)
}

func (d *Directive) String() string {
	return "@" + d.Name
}

// ArgumentNames returns the argument names in lexical order.
func (d *Directive) ArgumentNames() []string {
	names := make([]string, 0, len(d.Args))
	for name := range d.Args {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definition returns the AST form of the directive. The originating node is
// returned when present; otherwise one is synthesized, with arguments in
// lexical order.
func (d *Directive) Definition() *ast.DirectiveDefinition {
	if d.ASTNode != nil {
		return d.ASTNode
	}

	names := d.ArgumentNames()
	arguments := make([]*ast.InputValueDefinition, 0, len(names))
	for _, name := range names {
		arg := d.Args[name]
		arguments = append(arguments, &ast.InputValueDefinition{
			Description:  description(arg.Description),
			Name:         name,
			Type:         arg.Type,
			DefaultValue: arg.DefaultValue,
		})
	}

	return &ast.DirectiveDefinition{
		Description: description(d.Description),
		Name:        d.Name,
		Arguments:   arguments,
		Repeatable:  d.Repeatable,
		Locations:   append([]ast.DirectiveLocation(nil), d.Locations...),
	}
}

func description(txt string) *ast.StringValue {
	if txt == "" {
		return nil
	}
	return &ast.StringValue{Value: txt}
}

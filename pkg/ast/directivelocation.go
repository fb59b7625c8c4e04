package ast

import "fmt"

// DirectiveLocation names a position in a document where a directive may
// legally appear, as specified in:
// https://spec.graphql.org/October2021/#DirectiveLocations
type DirectiveLocation int

const (
	DirectiveLocationUnknown DirectiveLocation = iota

	ExecutableDirectiveLocationQuery
	ExecutableDirectiveLocationMutation
	ExecutableDirectiveLocationSubscription
	ExecutableDirectiveLocationField
	ExecutableDirectiveLocationFragmentDefinition
	ExecutableDirectiveLocationFragmentSpread
	ExecutableDirectiveLocationInlineFragment
	ExecutableDirectiveLocationVariableDefinition

	TypeSystemDirectiveLocationSchema
	TypeSystemDirectiveLocationScalar
	TypeSystemDirectiveLocationObject
	TypeSystemDirectiveLocationFieldDefinition
	TypeSystemDirectiveLocationArgumentDefinition
	TypeSystemDirectiveLocationInterface
	TypeSystemDirectiveLocationUnion
	TypeSystemDirectiveLocationEnum
	TypeSystemDirectiveLocationEnumValue
	TypeSystemDirectiveLocationInputObject
	TypeSystemDirectiveLocationInputFieldDefinition
)

var directiveLocationNames = map[DirectiveLocation]string{
	ExecutableDirectiveLocationQuery:              "QUERY",
	ExecutableDirectiveLocationMutation:           "MUTATION",
	ExecutableDirectiveLocationSubscription:       "SUBSCRIPTION",
	ExecutableDirectiveLocationField:              "FIELD",
	ExecutableDirectiveLocationFragmentDefinition: "FRAGMENT_DEFINITION",
	ExecutableDirectiveLocationFragmentSpread:     "FRAGMENT_SPREAD",
	ExecutableDirectiveLocationInlineFragment:     "INLINE_FRAGMENT",
	ExecutableDirectiveLocationVariableDefinition: "VARIABLE_DEFINITION",

	TypeSystemDirectiveLocationSchema:               "SCHEMA",
	TypeSystemDirectiveLocationScalar:               "SCALAR",
	TypeSystemDirectiveLocationObject:               "OBJECT",
	TypeSystemDirectiveLocationFieldDefinition:      "FIELD_DEFINITION",
	TypeSystemDirectiveLocationArgumentDefinition:   "ARGUMENT_DEFINITION",
	TypeSystemDirectiveLocationInterface:            "INTERFACE",
	TypeSystemDirectiveLocationUnion:                "UNION",
	TypeSystemDirectiveLocationEnum:                 "ENUM",
	TypeSystemDirectiveLocationEnumValue:            "ENUM_VALUE",
	TypeSystemDirectiveLocationInputObject:          "INPUT_OBJECT",
	TypeSystemDirectiveLocationInputFieldDefinition: "INPUT_FIELD_DEFINITION",
}

var directiveLocationsByName = func() map[string]DirectiveLocation {
	byName := make(map[string]DirectiveLocation, len(directiveLocationNames))
	for location, name := range directiveLocationNames {
		byName[name] = location
	}
	return byName
}()

func (l DirectiveLocation) String() string {
	name, exists := directiveLocationNames[l]
	if !exists {
		return "UNKNOWN"
	}
	return name
}

// ParseDirectiveLocation coerces the spec spelling of a directive location,
// e.g. "FIELD_DEFINITION".
func ParseDirectiveLocation(raw string) (DirectiveLocation, error) {
	location, exists := directiveLocationsByName[raw]
	if !exists {
		return DirectiveLocationUnknown, fmt.Errorf("invalid directive location: %q", raw)
	}
	return location, nil
}

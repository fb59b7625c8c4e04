package ast

import "testing"

func TestDirectiveLocationString(t *testing.T) {
	if ExecutableDirectiveLocationQuery.String() != "QUERY" {
		t.Fatal("want QUERY")
	}
	if TypeSystemDirectiveLocationInputFieldDefinition.String() != "INPUT_FIELD_DEFINITION" {
		t.Fatal("want INPUT_FIELD_DEFINITION")
	}
	if DirectiveLocationUnknown.String() != "UNKNOWN" {
		t.Fatal("want UNKNOWN")
	}
}

func TestParseDirectiveLocation(t *testing.T) {
	for location, name := range directiveLocationNames {
		parsed, err := ParseDirectiveLocation(name)
		if err != nil {
			t.Fatal(err)
		}
		if parsed != location {
			t.Fatalf("want %s, got %s", location, parsed)
		}
	}

	if _, err := ParseDirectiveLocation("FIELD-DEFINITION"); err == nil {
		t.Fatal("want error")
	}
	if _, err := ParseDirectiveLocation("query"); err == nil {
		t.Fatal("want error")
	}
	if _, err := ParseDirectiveLocation(""); err == nil {
		t.Fatal("want error")
	}
}

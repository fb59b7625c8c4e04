package astprinter

import "github.com/usalko/graphql-core/pkg/ast"

// kitchenSinkQuery covers every executable definition and value literal in one
// document.
func kitchenSinkQuery() *ast.Document {
	return &ast.Document{
		Definitions: []ast.Definition{
			&ast.OperationDefinition{
				Operation: ast.OperationTypeQuery,
				Name:      "queryName",
				VariableDefinitions: []*ast.VariableDefinition{
					{
						Variable: &ast.Variable{Name: "foo"},
						Type:     &ast.NamedType{Name: "ComplexType"},
					},
					{
						Variable:     &ast.Variable{Name: "site"},
						Type:         &ast.NamedType{Name: "Site"},
						DefaultValue: &ast.EnumValue{Value: "MOBILE"},
					},
				},
				Directives: []*ast.Directive{{Name: "onQuery"}},
				SelectionSet: &ast.SelectionSet{Selections: []ast.Selection{
					&ast.Field{
						Alias: "whoever123is",
						Name:  "node",
						Arguments: []*ast.Argument{
							{Name: "id", Value: &ast.ListValue{Values: []ast.Value{
								&ast.IntValue{Raw: "123"},
								&ast.IntValue{Raw: "456"},
							}}},
						},
						SelectionSet: &ast.SelectionSet{Selections: []ast.Selection{
							&ast.Field{Name: "id"},
							&ast.InlineFragment{
								TypeCondition: &ast.NamedType{Name: "User"},
								Directives:    []*ast.Directive{{Name: "onInlineFragment"}},
								SelectionSet: &ast.SelectionSet{Selections: []ast.Selection{
									&ast.Field{
										Name: "field2",
										SelectionSet: &ast.SelectionSet{Selections: []ast.Selection{
											&ast.Field{Name: "id"},
											&ast.Field{
												Alias: "alias",
												Name:  "field1",
												Arguments: []*ast.Argument{
													{Name: "first", Value: &ast.IntValue{Raw: "10"}},
													{Name: "after", Value: &ast.Variable{Name: "foo"}},
												},
												Directives: []*ast.Directive{
													{Name: "include", Arguments: []*ast.Argument{
														{Name: "if", Value: &ast.Variable{Name: "foo"}},
													}},
												},
												SelectionSet: &ast.SelectionSet{Selections: []ast.Selection{
													&ast.Field{Name: "id"},
													&ast.FragmentSpread{
														FragmentName: "frag",
														Directives:   []*ast.Directive{{Name: "onFragmentSpread"}},
													},
												}},
											},
										}},
									},
								}},
							},
						}},
					},
				}},
			},
			&ast.OperationDefinition{
				Operation:  ast.OperationTypeMutation,
				Name:       "likeStory",
				Directives: []*ast.Directive{{Name: "onMutation"}},
				SelectionSet: &ast.SelectionSet{Selections: []ast.Selection{
					&ast.Field{
						Name: "like",
						Arguments: []*ast.Argument{
							{Name: "story", Value: &ast.IntValue{Raw: "123"}},
						},
						Directives: []*ast.Directive{{Name: "onField"}},
						SelectionSet: &ast.SelectionSet{Selections: []ast.Selection{
							&ast.Field{
								Name: "story",
								SelectionSet: &ast.SelectionSet{Selections: []ast.Selection{
									&ast.Field{
										Name:       "id",
										Directives: []*ast.Directive{{Name: "onField"}},
									},
								}},
							},
						}},
					},
				}},
			},
			&ast.OperationDefinition{
				Operation: ast.OperationTypeSubscription,
				Name:      "StoryLikeSubscription",
				VariableDefinitions: []*ast.VariableDefinition{
					{
						Variable: &ast.Variable{Name: "input"},
						Type:     &ast.NamedType{Name: "StoryLikeSubscribeInput"},
					},
				},
				SelectionSet: &ast.SelectionSet{Selections: []ast.Selection{
					&ast.Field{
						Name: "storyLikeSubscribe",
						Arguments: []*ast.Argument{
							{Name: "input", Value: &ast.Variable{Name: "input"}},
						},
						SelectionSet: &ast.SelectionSet{Selections: []ast.Selection{
							&ast.Field{
								Name: "story",
								SelectionSet: &ast.SelectionSet{Selections: []ast.Selection{
									&ast.Field{
										Name: "likers",
										SelectionSet: &ast.SelectionSet{Selections: []ast.Selection{
											&ast.Field{Name: "count"},
										}},
									},
									&ast.Field{
										Name: "likeSentence",
										SelectionSet: &ast.SelectionSet{Selections: []ast.Selection{
											&ast.Field{Name: "text"},
										}},
									},
								}},
							},
						}},
					},
				}},
			},
			&ast.FragmentDefinition{
				Name:          "frag",
				TypeCondition: &ast.NamedType{Name: "Friend"},
				Directives:    []*ast.Directive{{Name: "onFragmentDefinition"}},
				SelectionSet: &ast.SelectionSet{Selections: []ast.Selection{
					&ast.Field{
						Name: "foo",
						Arguments: []*ast.Argument{
							{Name: "size", Value: &ast.Variable{Name: "size"}},
							{Name: "bar", Value: &ast.Variable{Name: "b"}},
							{Name: "obj", Value: &ast.ObjectValue{Fields: []*ast.ObjectField{
								{Name: "key", Value: &ast.StringValue{Value: "value"}},
								{Name: "block", Value: &ast.StringValue{
									Value:       `block string uses """`,
									BlockString: true,
								}},
							}}},
						},
					},
				}},
			},
			&ast.OperationDefinition{
				Operation: ast.OperationTypeQuery,
				SelectionSet: &ast.SelectionSet{Selections: []ast.Selection{
					&ast.Field{
						Name: "unnamed",
						Arguments: []*ast.Argument{
							{Name: "truthy", Value: &ast.BooleanValue{Value: true}},
							{Name: "falsy", Value: &ast.BooleanValue{Value: false}},
							{Name: "nullish", Value: &ast.NullValue{}},
						},
					},
					&ast.Field{Name: "query"},
				}},
			},
		},
	}
}

// kitchenSinkSchema covers every type system definition and extension.
func kitchenSinkSchema() *ast.Document {
	return &ast.Document{
		Definitions: []ast.Definition{
			&ast.SchemaDefinition{
				Directives: []*ast.Directive{{Name: "onSchema"}},
				OperationTypes: []*ast.OperationTypeDefinition{
					{Operation: ast.OperationTypeQuery, Type: &ast.NamedType{Name: "QueryType"}},
					{Operation: ast.OperationTypeMutation, Type: &ast.NamedType{Name: "MutationType"}},
				},
			},
			&ast.ObjectTypeDefinition{
				Description: &ast.StringValue{
					Value:       "This is a description\nof the `Foo` type.",
					BlockString: true,
				},
				Name:       "Foo",
				Interfaces: []*ast.NamedType{{Name: "Bar"}, {Name: "Baz"}},
				Directives: []*ast.Directive{{Name: "onObject"}},
				Fields: []*ast.FieldDefinition{
					{
						Description: &ast.StringValue{Value: "Description of the `one` field."},
						Name:        "one",
						Type:        &ast.NamedType{Name: "Type"},
					},
					{
						Name: "two",
						Arguments: []*ast.InputValueDefinition{
							{
								Description: &ast.StringValue{
									Value:       "This is a description of the `argument` argument.",
									BlockString: true,
								},
								Name: "argument",
								Type: &ast.NonNullType{Type: &ast.NamedType{Name: "InputType"}},
							},
						},
						Type: &ast.NamedType{Name: "Type"},
					},
					{
						Name: "three",
						Arguments: []*ast.InputValueDefinition{
							{Name: "argument", Type: &ast.NamedType{Name: "InputType"}},
							{Name: "other", Type: &ast.NamedType{Name: "String"}},
						},
						Type: &ast.NamedType{Name: "Int"},
					},
					{
						Name: "four",
						Arguments: []*ast.InputValueDefinition{
							{
								Name:         "argument",
								Type:         &ast.NamedType{Name: "String"},
								DefaultValue: &ast.StringValue{Value: "string"},
							},
						},
						Type: &ast.NamedType{Name: "String"},
					},
					{
						Name: "five",
						Arguments: []*ast.InputValueDefinition{
							{
								Name: "argument",
								Type: &ast.ListType{Type: &ast.NamedType{Name: "String"}},
								DefaultValue: &ast.ListValue{Values: []ast.Value{
									&ast.StringValue{Value: "string"},
									&ast.StringValue{Value: "string"},
								}},
							},
						},
						Type: &ast.NamedType{Name: "String"},
					},
					{
						Name: "six",
						Arguments: []*ast.InputValueDefinition{
							{
								Name: "argument",
								Type: &ast.NamedType{Name: "InputType"},
								DefaultValue: &ast.ObjectValue{Fields: []*ast.ObjectField{
									{Name: "key", Value: &ast.StringValue{Value: "value"}},
								}},
							},
						},
						Type: &ast.NamedType{Name: "Type"},
					},
					{
						Name: "seven",
						Arguments: []*ast.InputValueDefinition{
							{
								Name:         "argument",
								Type:         &ast.NamedType{Name: "Int"},
								DefaultValue: &ast.NullValue{},
							},
						},
						Type: &ast.NamedType{Name: "Type"},
					},
				},
			},
			&ast.ScalarTypeDefinition{
				Name: "CustomScalar",
				Directives: []*ast.Directive{
					{Name: "specifiedBy", Arguments: []*ast.Argument{
						{Name: "url", Value: &ast.StringValue{Value: "https://example.com/spec"}},
					}},
				},
			},
			&ast.InterfaceTypeDefinition{
				Name:       "Bar",
				Interfaces: []*ast.NamedType{{Name: "Two"}},
				Directives: []*ast.Directive{{Name: "onInterface"}},
				Fields: []*ast.FieldDefinition{
					{Name: "one", Type: &ast.NamedType{Name: "Type"}},
					{
						Name: "four",
						Arguments: []*ast.InputValueDefinition{
							{
								Name:         "argument",
								Type:         &ast.NamedType{Name: "String"},
								DefaultValue: &ast.StringValue{Value: "string"},
							},
						},
						Type: &ast.NamedType{Name: "String"},
					},
				},
			},
			&ast.UnionTypeDefinition{
				Name:  "Feed",
				Types: []*ast.NamedType{{Name: "Story"}, {Name: "Article"}, {Name: "Advert"}},
			},
			&ast.EnumTypeDefinition{
				Name:       "Site",
				Directives: []*ast.Directive{{Name: "onEnum"}},
				Values: []*ast.EnumValueDefinition{
					{
						Description: &ast.StringValue{Value: "Description of DESKTOP."},
						Name:        "DESKTOP",
					},
					{
						Name: "MOBILE",
						Directives: []*ast.Directive{
							{Name: "deprecated", Arguments: []*ast.Argument{
								{Name: "reason", Value: &ast.StringValue{Value: "Use NEW_MOBILE"}},
							}},
						},
					},
				},
			},
			&ast.InputObjectTypeDefinition{
				Name:       "InputType",
				Directives: []*ast.Directive{{Name: "onInputObject"}},
				Fields: []*ast.InputValueDefinition{
					{Name: "key", Type: &ast.NonNullType{Type: &ast.NamedType{Name: "String"}}},
					{
						Name:         "answer",
						Type:         &ast.NamedType{Name: "Int"},
						DefaultValue: &ast.IntValue{Raw: "42"},
					},
				},
			},
			&ast.DirectiveDefinition{
				Name: "skip",
				Arguments: []*ast.InputValueDefinition{
					{Name: "if", Type: &ast.NonNullType{Type: &ast.NamedType{Name: "Boolean"}}},
				},
				Locations: []ast.DirectiveLocation{
					ast.ExecutableDirectiveLocationField,
					ast.ExecutableDirectiveLocationFragmentSpread,
					ast.ExecutableDirectiveLocationInlineFragment,
				},
			},
			&ast.DirectiveDefinition{
				Name: "example",
				Arguments: []*ast.InputValueDefinition{
					{Name: "arg", Type: &ast.NamedType{Name: "String"}},
				},
				Repeatable: true,
				Locations: []ast.DirectiveLocation{
					ast.ExecutableDirectiveLocationField,
					ast.ExecutableDirectiveLocationFragmentSpread,
				},
			},
			&ast.SchemaExtension{
				Directives: []*ast.Directive{{Name: "onSchema"}},
				OperationTypes: []*ast.OperationTypeDefinition{
					{Operation: ast.OperationTypeSubscription, Type: &ast.NamedType{Name: "SubscriptionType"}},
				},
			},
			&ast.ObjectTypeExtension{
				Name:       "Foo",
				Directives: []*ast.Directive{{Name: "onType"}},
			},
			&ast.ScalarTypeExtension{
				Name:       "CustomScalar",
				Directives: []*ast.Directive{{Name: "onScalar"}},
			},
			&ast.InterfaceTypeExtension{
				Name:       "Bar",
				Directives: []*ast.Directive{{Name: "onInterface"}},
			},
			&ast.UnionTypeExtension{
				Name:       "Feed",
				Directives: []*ast.Directive{{Name: "onUnion"}},
				Types:      []*ast.NamedType{{Name: "Photo"}, {Name: "Video"}},
			},
			&ast.EnumTypeExtension{
				Name:       "Site",
				Directives: []*ast.Directive{{Name: "onEnum"}},
				Values:     []*ast.EnumValueDefinition{{Name: "VR"}},
			},
			&ast.InputObjectTypeExtension{
				Name:       "InputType",
				Directives: []*ast.Directive{{Name: "onInputObject"}},
				Fields: []*ast.InputValueDefinition{
					{
						Name:         "other",
						Type:         &ast.NamedType{Name: "Float"},
						DefaultValue: &ast.FloatValue{Raw: "1.23e4"},
					},
				},
			},
		},
	}
}

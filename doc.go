// Package graphqlcore provides low level building blocks for working with
// GraphQL documents.
//
// About GraphQL
//
// GraphQL is a query language for APIs and a runtime for fulfilling those queries with your existing data. GraphQL provides a complete and understandable description of the data in your API, gives clients the power to ask for exactly what they need and nothing more, makes it easier to evolve APIs over time, and enables powerful developer tools.
//
// Source: https://graphql.org
//
// About this library
//
// This library models the GraphQL AST as a typed node tree and turns it back
// into canonical source text. The pkg/ast package defines the node kinds and
// the category predicates over them, pkg/astvisitor implements a bottom-up
// fold over a tree, and pkg/astprinter uses that fold to print any node in
// the canonical form. pkg/typesystem carries the directive entity of the
// type system, including the spec defined directives.
//
// The core packages have zero dependencies, so the library stays suitable as
// a foundation for tools that generate, rewrite or diff GraphQL documents.
package graphqlcore

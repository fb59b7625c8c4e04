package ast

// NamedType is a reference to a type by name, e.g. Episode.
type NamedType struct {
	Name string
}

func (t *NamedType) NodeKind() NodeKind { return NodeKindNamedType }
func (t *NamedType) typeNode()          {}

// ListType wraps an item type, e.g. [Episode].
type ListType struct {
	Type Type
}

func (t *ListType) NodeKind() NodeKind { return NodeKindListType }
func (t *ListType) typeNode()          {}

// NonNullType wraps a nullable type, e.g. Episode!. The wrapped type is
// never itself a NonNullType.
type NonNullType struct {
	Type Type
}

func (t *NonNullType) NodeKind() NodeKind { return NodeKindNonNullType }
func (t *NonNullType) typeNode()          {}

var (
	_ Type = (*NamedType)(nil)
	_ Type = (*ListType)(nil)
	_ Type = (*NonNullType)(nil)
)

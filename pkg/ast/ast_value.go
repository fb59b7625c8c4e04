package ast

// Variable is a variable reference, e.g. $episode.
type Variable struct {
	Name string
}

func (v *Variable) NodeKind() NodeKind { return NodeKindVariable }
func (v *Variable) valueNode()         {}

// IntValue keeps the lexed text unchanged, e.g. "42".
type IntValue struct {
	Raw string
}

func (v *IntValue) NodeKind() NodeKind { return NodeKindIntValue }
func (v *IntValue) valueNode()         {}

// FloatValue keeps the lexed text unchanged, e.g. "13.37".
type FloatValue struct {
	Raw string
}

func (v *FloatValue) NodeKind() NodeKind { return NodeKindFloatValue }
func (v *FloatValue) valueNode()         {}

// StringValue holds the decoded string content. BlockString marks values
// written with triple quotes; they are re-emitted in block form.
type StringValue struct {
	Value       string
	BlockString bool
}

func (v *StringValue) NodeKind() NodeKind { return NodeKindStringValue }
func (v *StringValue) valueNode()         {}

type BooleanValue struct {
	Value bool
}

func (v *BooleanValue) NodeKind() NodeKind { return NodeKindBooleanValue }
func (v *BooleanValue) valueNode()         {}

type NullValue struct{}

func (v *NullValue) NodeKind() NodeKind { return NodeKindNullValue }
func (v *NullValue) valueNode()         {}

// EnumValue holds the enum value name, e.g. "JEDI".
type EnumValue struct {
	Value string
}

func (v *EnumValue) NodeKind() NodeKind { return NodeKindEnumValue }
func (v *EnumValue) valueNode()         {}

type ListValue struct {
	Values []Value
}

func (v *ListValue) NodeKind() NodeKind { return NodeKindListValue }
func (v *ListValue) valueNode()         {}

type ObjectValue struct {
	Fields []*ObjectField
}

func (v *ObjectValue) NodeKind() NodeKind { return NodeKindObjectValue }
func (v *ObjectValue) valueNode()         {}

// ObjectField is a name value pair inside an object value.
type ObjectField struct {
	Name  string
	Value Value
}

func (f *ObjectField) NodeKind() NodeKind { return NodeKindObjectField }

var (
	_ Value = (*Variable)(nil)
	_ Value = (*IntValue)(nil)
	_ Value = (*FloatValue)(nil)
	_ Value = (*StringValue)(nil)
	_ Value = (*BooleanValue)(nil)
	_ Value = (*NullValue)(nil)
	_ Value = (*EnumValue)(nil)
	_ Value = (*ListValue)(nil)
	_ Value = (*ObjectValue)(nil)
	_ Node  = (*ObjectField)(nil)
)

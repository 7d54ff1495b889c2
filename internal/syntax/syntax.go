package syntax

// Kind discriminates the declaration variants the generator understands.
type Kind string

const (
	KindInterface   Kind = "interface"
	KindClass       Kind = "class"
	KindStruct      Kind = "struct"
	KindEnum        Kind = "enum"
	KindConstructor Kind = "constructor"
	KindField       Kind = "field"
	KindProperty    Kind = "property"
	KindMethod      Kind = "method"
	KindEnumMember  Kind = "enum_member"
)

// Declaration is a read-only view over one parsed source construct.
// It is a tagged variant: Kind selects which payload fields are meaningful.
// Type references, type parameters and initializer expressions carry the
// verbatim source text; nothing here is resolved or normalized.
type Declaration struct {
	Kind      Kind     `json:"kind"`
	Name      string   `json:"name"`
	Modifiers []string `json:"modifiers,omitempty"` // ordered keyword tokens as declared

	// Containers (interface/class/struct) and enums.
	TypeParams string         `json:"type_params,omitempty"` // verbatim clause, e.g. "<T, U>"
	BaseTypes  []string       `json:"base_types,omitempty"`  // verbatim base references, source order
	Members    []*Declaration `json:"members,omitempty"`

	// Constructors and methods. Type doubles as the method return type.
	Params []Param `json:"params,omitempty"`
	Type   string  `json:"type,omitempty"` // declared/return type, verbatim

	// Fields: one declarator per declared variable, source order.
	Variables []Variable `json:"variables,omitempty"`

	// Properties.
	Accessors []Accessor   `json:"accessors,omitempty"`
	Init      *Initializer `json:"init,omitempty"`

	// Enum members: the equals-value clause with its leading separator,
	// e.g. " = 2"; empty when the member has no explicit value.
	ValueClause string `json:"value_clause,omitempty"`

	Filepath  string `json:"filepath,omitempty"`
	StartLine int    `json:"start_line,omitempty"`
}

// Param is a single constructor or method parameter.
type Param struct {
	Name string `json:"name"`
	Type string `json:"type"` // verbatim
}

// Variable is one declarator of a field declaration.
type Variable struct {
	Name string       `json:"name"`
	Init *Initializer `json:"init,omitempty"`
}

// Accessor is one property accessor (get/set/init).
type Accessor struct {
	Keyword   string   `json:"keyword"`
	Modifiers []string `json:"modifiers,omitempty"` // accessor-level, e.g. "private", "protected"
}

// Initializer carries the verbatim initializer expression and whether it is
// a plain literal. Only literal initializers are shown in diagram output.
type Initializer struct {
	Text    string `json:"text"`
	Literal bool   `json:"literal"`
}

// IsContainer reports whether the declaration nests member declarations.
func (d *Declaration) IsContainer() bool {
	switch d.Kind {
	case KindInterface, KindClass, KindStruct, KindEnum:
		return true
	}
	return false
}

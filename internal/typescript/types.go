package typescript

import "strings"

// Type is the closed set of value-type expressions a Member or Command can
// carry: Plain, Literal, List and Generic. The render switch in render.go is
// exhaustive over these four.
type Type interface {
	typeExpr()
}

// Plain names a primitive type verbatim ("string", "number", "any").
type Plain string

// Literal is an ordered, non-empty set of string constants, rendered as a
// quoted-string union.
type Literal []string

// List is a homogeneous array over an element type.
type List struct {
	Elem Type
}

// Generic applies a parametrized alias to a named interface, e.g.
// Configify<ConfigTree>.
type Generic struct {
	Name string
	Of   string
}

func (Plain) typeExpr()   {}
func (Literal) typeExpr() {}
func (List) typeExpr()    {}
func (Generic) typeExpr() {}

func typeString(t Type) string {
	switch t := t.(type) {
	case Plain:
		return string(t)
	case Literal:
		quoted := make([]string, 0, len(t))
		for _, v := range t {
			quoted = append(quoted, singleQuote(v))
		}
		return strings.Join(quoted, " | ")
	case List:
		if _, union := t.Elem.(Literal); union {
			return "(" + typeString(t.Elem) + ")[]"
		}
		return typeString(t.Elem) + "[]"
	case Generic:
		return t.Name + "<" + t.Of + ">"
	default:
		return "any"
	}
}

func singleQuote(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('\'')
	return b.String()
}

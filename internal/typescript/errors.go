package typescript

import (
	"errors"
	"fmt"
	"strings"
)

// ErrKind identifies the rule a document operation violated.
type ErrKind int

const (
	ErrDuplicateDeclaration ErrKind = iota + 1
	ErrMissingBase
	ErrSingleInstanceViolation
	ErrNotFound
	ErrSchemaShape
)

// Error is the structured failure value for document construction and schema
// classification. Kind selects the rule; the remaining fields carry the
// payload for that kind. Callers match on Kind (via errors.As or KindOf),
// never on message text.
type Error struct {
	Kind    ErrKind
	Name    string   // declaration involved, where one exists
	Missing []string // ErrMissingBase: every base not yet declared
	Path    []string // ErrSchemaShape: schema keys from the document root
	Detail  string   // ErrSchemaShape: what was wrong at Path
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrDuplicateDeclaration:
		return fmt.Sprintf("interface %q is already declared", e.Name)
	case ErrMissingBase:
		return fmt.Sprintf("interface %q extends undeclared bases: %s", e.Name, strings.Join(e.Missing, ", "))
	case ErrSingleInstanceViolation:
		return fmt.Sprintf("main class %q already exists", e.Name)
	case ErrNotFound:
		return "no main class declared"
	case ErrSchemaShape:
		if len(e.Path) == 0 {
			return fmt.Sprintf("invalid schema: %s", e.Detail)
		}
		return fmt.Sprintf("invalid schema at %s: %s", strings.Join(e.Path, "/"), e.Detail)
	default:
		return fmt.Sprintf("typescript document error (kind %d)", int(e.Kind))
	}
}

// KindOf extracts the ErrKind from err, unwrapping as needed. It returns 0
// when err carries no *Error.
func KindOf(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Package typescript models the generated declaration document: a Root
// holding imports, interfaces and a main class, with nested trees, members
// and callable commands underneath. The model is append-only and keeps
// insertion order, which fixes declaration order in the rendered text.
//
// Nodes carry no parent pointers and no identity, so two documents built the
// same way compare equal structurally.
package typescript

// Defaults for the emitted client binding. The import line, base class and
// main class name all derive from these unless overridden.
const (
	DefaultImport    = "jsxapi"
	DefaultBase      = "XAPI"
	DefaultClassName = "TypedXAPI"
	ConnectGen       = "connectGen"
)

// Node is the closed set of declaration constructs. The render switch is
// exhaustive over the implementations in this package.
type Node interface {
	node()
}

func (*Root) node()      {}
func (*Import) node()    {}
func (*Interface) node() {}
func (*MainClass) node() {}
func (*Tree) node()      {}
func (*ArrayTree) node() {}
func (*Member) node()    {}
func (*Command) node()   {}
func (*Builtins) node()  {}

// Root is the document. Top-level declarations render in insertion order;
// interface names (and the main class name) are unique per Root, tracked in
// a registry owned by this instance alone.
type Root struct {
	Nodes []Node

	names    map[string]struct{}
	main     *MainClass
	builtins bool
}

func NewRoot() *Root {
	return &Root{names: make(map[string]struct{})}
}

// AddImport appends an import line. An empty module selects DefaultImport;
// an empty symbol list selects the default base class and connect factory.
func (r *Root) AddImport(module string, symbols ...string) *Import {
	imp := NewImport(module, symbols...)
	r.Nodes = append(r.Nodes, imp)
	return imp
}

// AddInterface declares a named interface extending the given bases. The
// name must be unused and every base must already be declared; violations
// come back as ErrDuplicateDeclaration and ErrMissingBase (the latter
// listing every missing base).
func (r *Root) AddInterface(name string, bases ...string) (*Interface, error) {
	if _, taken := r.names[name]; taken {
		return nil, &Error{Kind: ErrDuplicateDeclaration, Name: name}
	}
	var missing []string
	for _, base := range bases {
		if _, ok := r.names[base]; !ok {
			missing = append(missing, base)
		}
	}
	if len(missing) > 0 {
		return nil, &Error{Kind: ErrMissingBase, Name: name, Missing: missing}
	}
	iface := &Interface{Name: name, Bases: append([]string(nil), bases...)}
	r.names[name] = struct{}{}
	r.Nodes = append(r.Nodes, iface)
	return iface, nil
}

// AddMain declares the main class/interface pair. Empty name and base select
// DefaultClassName and DefaultBase. A Root holds at most one main class;
// a second call fails with ErrSingleInstanceViolation.
func (r *Root) AddMain(name, base string, withConnect bool) (*MainClass, error) {
	if r.main != nil {
		return nil, &Error{Kind: ErrSingleInstanceViolation, Name: r.main.Name}
	}
	if name == "" {
		name = DefaultClassName
	}
	if base == "" {
		base = DefaultBase
	}
	if _, taken := r.names[name]; taken {
		return nil, &Error{Kind: ErrDuplicateDeclaration, Name: name}
	}
	main := &MainClass{
		Name:        name,
		Base:        base,
		WithConnect: withConnect,
		Iface:       &Interface{Name: name},
	}
	r.names[name] = struct{}{}
	r.main = main
	r.Nodes = append(r.Nodes, main)
	return main, nil
}

// Main returns the main class, or ErrNotFound when none was declared.
func (r *Root) Main() (*MainClass, error) {
	if r.main == nil {
		return nil, &Error{Kind: ErrNotFound}
	}
	return r.main, nil
}

// Import is a single import line: a module path and the symbols bound from
// it, in order.
type Import struct {
	Module  string
	Symbols []string
}

func NewImport(module string, symbols ...string) *Import {
	if module == "" {
		module = DefaultImport
	}
	if len(symbols) == 0 {
		symbols = []string{DefaultBase, ConnectGen}
	}
	return &Import{Module: module, Symbols: append([]string(nil), symbols...)}
}

// Interface is a named declaration with ordered bases and ordered children
// (Member, Command, Tree, ArrayTree).
type Interface struct {
	Name     string
	Bases    []string
	Children []Node
}

// AddChild appends a child and returns it, so construction can chain into
// the new node.
func (i *Interface) AddChild(n Node) Node {
	i.Children = append(i.Children, n)
	return n
}

// AddChildren appends children in order and returns the interface itself.
func (i *Interface) AddChildren(ns ...Node) *Interface {
	i.Children = append(i.Children, ns...)
	return i
}

// MainClass is the root client declaration: an exported class extending
// Base, a default export, an optional connect factory export, and a merged
// same-named interface holding the generated members.
type MainClass struct {
	Name        string
	Base        string
	WithConnect bool
	Iface       *Interface
}

// AddChild appends to the merged interface body.
func (m *MainClass) AddChild(n Node) Node {
	return m.Iface.AddChild(n)
}

func (m *MainClass) AddChildren(ns ...Node) *MainClass {
	m.Iface.AddChildren(ns...)
	return m
}

// Tree is a named nested-namespace node rendered as an object-shaped type.
type Tree struct {
	Name     string
	Children []Node
}

func (t *Tree) AddChild(n Node) Node {
	t.Children = append(t.Children, n)
	return n
}

func (t *Tree) AddChildren(ns ...Node) *Tree {
	t.Children = append(t.Children, ns...)
	return t
}

// ArrayTree is a Tree variant marking a keyed collection (schema arrays
// keyed by an identifier field). It renders exactly like Tree; the distinct
// tag records the collection semantics.
type ArrayTree struct {
	Name     string
	Children []Node
}

func (t *ArrayTree) AddChild(n Node) Node {
	t.Children = append(t.Children, n)
	return n
}

func (t *ArrayTree) AddChildren(ns ...Node) *ArrayTree {
	t.Children = append(t.Children, ns...)
	return t
}

// Member is a named field with a value type. The zero Optional means
// required. Names that are not bare identifiers render as quoted keys.
type Member struct {
	Name     string
	Type     Type
	Optional bool
	Doc      string
}

// Command is a named callable. Args, when set, is the interface typing the
// args parameter; the parameter renders optional when every Args member is
// optional. A nil Retval renders as the generic default any. Multiline
// appends a body parameter to the signature.
type Command struct {
	Name      string
	Args      *Interface
	Retval    Type
	Doc       string
	Multiline bool
}

// Builtins is the fixed block of generic helper declarations (Registration,
// Gettable, Settable, Listenable, Configify, Statusify).
type Builtins struct{}

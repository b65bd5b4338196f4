// Package compiler classifies a raw capability schema into the typescript
// declaration model. One pass, top-down: family keys select the generated
// trees, uppercase keys are structure, lowercase keys are metadata, and
// ValueSpace descriptors become typed leaf members.
package compiler

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/myme/tsxapi/internal/schema"
	"github.com/myme/tsxapi/internal/typescript"
)

// Options is the configuration surface handed down by the orchestrator.
// Empty strings select the model defaults (jsxapi, TypedXAPI, XAPI).
type Options struct {
	XAPIImport  string
	ClassName   string
	Base        string
	WithConnect bool
}

type family struct {
	key    string // top-level schema key
	member string // member name on the main interface
	tree   string // generated interface name
	wrap   string // generic alias applied to the tree reference
}

var families = []family{
	{key: "Command", member: "Command", tree: "CommandTree"},
	{key: "Configuration", member: "Config", tree: "ConfigTree", wrap: "Configify"},
	{key: "Status", member: "Status", tree: "StatusTree", wrap: "Statusify"},
}

// Compile builds the declaration document for a schema. The document always
// carries the import line and the main class; family trees, args interfaces
// and builtin helpers follow from the schema content. On error no partial
// document is returned.
func Compile(doc *schema.Value, opts Options) (*typescript.Root, error) {
	if doc == nil {
		doc = &schema.Value{Kind: schema.Null}
	}
	if doc.Kind != schema.Null && doc.Kind != schema.Mapping {
		return nil, shapeErr(nil, "schema document must be an object")
	}

	base := opts.Base
	if base == "" {
		base = typescript.DefaultBase
	}
	symbols := []string{base}
	if opts.WithConnect {
		symbols = append(symbols, typescript.ConnectGen)
	}

	root := typescript.NewRoot()
	root.AddImport(opts.XAPIImport, symbols...)
	main, err := root.AddMain(opts.ClassName, base, opts.WithConnect)
	if err != nil {
		return nil, err
	}

	// Configify/Statusify and friends precede the trees that reference them.
	if doc.Has("Configuration") || doc.Has("Status") {
		root.AddGenerics()
	}

	for _, field := range doc.Fields {
		fam, ok := familyByKey(field.Key)
		if !ok {
			continue
		}
		if err := compileFamily(root, main, fam, field.Value); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func familyByKey(key string) (family, bool) {
	for _, f := range families {
		if f.key == key {
			return f, true
		}
	}
	return family{}, false
}

func compileFamily(root *typescript.Root, main *typescript.MainClass, fam family, val *schema.Value) error {
	if val.Kind != schema.Mapping {
		return shapeErr([]string{fam.key}, "expected an object")
	}
	iface, err := root.AddInterface(fam.tree)
	if err != nil {
		return err
	}

	w := &walker{root: root}
	children, err := w.walk(val, []string{fam.key}, "")
	if err != nil {
		return err
	}
	iface.AddChildren(children...)

	var typ typescript.Type = typescript.Plain(fam.tree)
	if fam.wrap != "" {
		typ = typescript.Generic{Name: fam.wrap, Of: fam.tree}
	}
	main.AddChild(&typescript.Member{Name: fam.member, Type: typ})
	return nil
}

type walker struct {
	root *typescript.Root
}

// walk classifies the structural children of a mapping, in document order.
// prefix accumulates the uppercase path below the family root and names the
// args interfaces of nested commands.
func (w *walker) walk(val *schema.Value, path []string, prefix string) ([]typescript.Node, error) {
	var nodes []typescript.Node
	for _, field := range val.Fields {
		if !structural(field.Key) {
			continue
		}
		node, err := w.classify(field.Key, field.Value, extend(path, field.Key), prefix)
		if err != nil {
			return nil, err
		}
		if node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes, nil
}

func (w *walker) classify(key string, val *schema.Value, path []string, prefix string) (typescript.Node, error) {
	switch val.Kind {
	case schema.Sequence:
		return w.collection(key, val, path, prefix)
	case schema.Mapping:
		if val.Get("command").Str() == "True" {
			return w.command(key, val, path, prefix)
		}
		if val.Has("ValueSpace") {
			return w.leaf(key, val, path)
		}
		tree := &typescript.Tree{Name: key}
		children, err := w.walk(val, path, prefix+key)
		if err != nil {
			return nil, err
		}
		tree.AddChildren(children...)
		return tree, nil
	default:
		// uppercase key holding a bare scalar: metadata, not structure
		return nil, nil
	}
}

// leaf turns a ValueSpace-bearing node into a typed member. required is the
// string 'True' or 'False'; absence means required.
func (w *walker) leaf(key string, val *schema.Value, path []string) (typescript.Node, error) {
	typ, err := valueSpaceType(val.Get("ValueSpace"), path)
	if err != nil {
		return nil, err
	}
	return &typescript.Member{
		Name:     key,
		Type:     typ,
		Optional: val.Get("required").Str() == "False",
		Doc:      val.Get("description").Str(),
	}, nil
}

// command builds a callable from a node marked command: 'True'. Its
// ValueSpace-bearing structural children become members of a fresh args
// interface named after the path from the family root.
func (w *walker) command(key string, val *schema.Value, path []string, prefix string) (typescript.Node, error) {
	cmd := &typescript.Command{
		Name:      key,
		Doc:       val.Get("description").Str(),
		Multiline: val.Get("multiline").Str() == "True",
	}

	var members []typescript.Node
	for _, field := range val.Fields {
		if !structural(field.Key) {
			continue
		}
		if field.Value.Kind != schema.Mapping || !field.Value.Has("ValueSpace") {
			continue
		}
		member, err := w.leaf(field.Key, field.Value, extend(path, field.Key))
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	if len(members) > 0 {
		args, err := w.root.AddInterface(prefix + key + "Args")
		if err != nil {
			return nil, err
		}
		args.AddChildren(members...)
		cmd.Args = args
	}
	return cmd, nil
}

// collection turns a schema array into an ArrayTree keyed by each element's
// id attribute.
func (w *walker) collection(key string, val *schema.Value, path []string, prefix string) (typescript.Node, error) {
	tree := &typescript.ArrayTree{Name: key}
	for _, item := range val.Items {
		if item.Kind != schema.Mapping {
			return nil, shapeErr(path, "collection elements must be objects")
		}
		id := item.Get("id").Str()
		if id == "" {
			return nil, shapeErr(path, "collection elements require an id")
		}
		children, err := w.walk(item, extend(path, id), prefix+key+id)
		if err != nil {
			return nil, err
		}
		child := &typescript.Tree{Name: id}
		child.AddChildren(children...)
		tree.AddChild(child)
	}
	return tree, nil
}

func valueSpaceType(vs *schema.Value, path []string) (typescript.Type, error) {
	if vs == nil || vs.Kind != schema.Mapping {
		return nil, shapeErr(path, "ValueSpace must be an object")
	}
	switch t := vs.Get("type").Str(); t {
	case "Integer":
		return typescript.Plain("number"), nil
	case "String":
		return typescript.Plain("string"), nil
	case "Literal":
		return literalValues(vs, path)
	case "LiteralArray":
		lits, err := literalValues(vs, path)
		if err != nil {
			return nil, err
		}
		return typescript.List{Elem: lits}, nil
	case "":
		return nil, shapeErr(path, "ValueSpace is missing a type")
	default:
		return nil, shapeErr(path, fmt.Sprintf("unrecognized ValueSpace type %q", t))
	}
}

func literalValues(vs *schema.Value, path []string) (typescript.Literal, error) {
	seq := vs.Get("Value")
	if seq == nil || seq.Kind != schema.Sequence || len(seq.Items) == 0 {
		return nil, shapeErr(path, "literal ValueSpace requires a non-empty Value list")
	}
	lits := make(typescript.Literal, 0, len(seq.Items))
	for _, item := range seq.Items {
		if item.Kind != schema.Scalar {
			return nil, shapeErr(path, "literal Value entries must be scalars")
		}
		lits = append(lits, item.Scalar)
	}
	return lits, nil
}

func structural(key string) bool {
	r, _ := utf8.DecodeRuneInString(key)
	return unicode.IsUpper(r)
}

func extend(path []string, key string) []string {
	out := make([]string, 0, len(path)+1)
	out = append(out, path...)
	return append(out, key)
}

func shapeErr(path []string, detail string) error {
	return &typescript.Error{Kind: typescript.ErrSchemaShape, Path: path, Detail: detail}
}

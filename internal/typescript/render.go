package typescript

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const indentStep = "  "

var identRE = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Serialize renders a node, and transitively its children, into declaration
// text. It works on any subtree; rendering a whole document goes through the
// Root, which joins top-level declarations with blank lines and ends with a
// newline. The same document always yields byte-identical text.
func Serialize(n Node) string {
	var r renderer
	r.node(n, 0)
	return r.b.String()
}

type renderer struct {
	b strings.Builder
}

func (r *renderer) node(n Node, depth int) {
	switch n := n.(type) {
	case *Root:
		r.root(n)
	case *Import:
		r.pad(depth)
		fmt.Fprintf(&r.b, "import { %s } from %q;", strings.Join(n.Symbols, ", "), n.Module)
	case *Interface:
		r.iface(n, depth)
	case *MainClass:
		r.mainClass(n)
	case *Tree:
		r.tree(n.Name, n.Children, depth)
	case *ArrayTree:
		r.tree(n.Name, n.Children, depth)
	case *Member:
		r.member(n, depth)
	case *Command:
		r.command(n, depth)
	case *Builtins:
		r.b.WriteString(builtinsText)
	}
}

func (r *renderer) root(root *Root) {
	if len(root.Nodes) == 0 {
		return
	}
	for i, n := range root.Nodes {
		if i > 0 {
			r.b.WriteString("\n\n")
		}
		r.node(n, 0)
	}
	r.b.WriteByte('\n')
}

func (r *renderer) iface(iface *Interface, depth int) {
	r.pad(depth)
	r.b.WriteString("export interface " + iface.Name)
	if len(iface.Bases) > 0 {
		r.b.WriteString(" extends " + strings.Join(iface.Bases, ", "))
	}
	if len(iface.Children) == 0 {
		r.b.WriteString(" {}")
		return
	}
	r.b.WriteString(" {\n")
	r.children(iface.Children, depth+1, ";")
	r.pad(depth)
	r.b.WriteByte('}')
}

func (r *renderer) mainClass(m *MainClass) {
	fmt.Fprintf(&r.b, "export class %s extends %s {}\n\n", m.Name, m.Base)
	fmt.Fprintf(&r.b, "export default %s;\n", m.Name)
	if m.WithConnect {
		fmt.Fprintf(&r.b, "export const connect = %s(%s);\n", ConnectGen, m.Name)
	}
	r.b.WriteByte('\n')
	r.iface(m.Iface, 0)
}

// tree renders both Tree and ArrayTree bodies; children inside an
// object-shaped type end with commas, unlike interface members.
func (r *renderer) tree(name string, nodes []Node, depth int) {
	r.pad(depth)
	r.b.WriteString(key(name) + ": {")
	if len(nodes) == 0 {
		r.b.WriteByte('}')
		return
	}
	r.b.WriteByte('\n')
	r.children(nodes, depth+1, ",")
	r.pad(depth)
	r.b.WriteByte('}')
}

func (r *renderer) member(m *Member, depth int) {
	r.doc(m.Doc, depth)
	r.pad(depth)
	r.b.WriteString(key(m.Name))
	if m.Optional {
		r.b.WriteByte('?')
	}
	r.b.WriteString(": " + typeString(m.Type))
}

func (r *renderer) command(c *Command, depth int) {
	r.doc(c.Doc, depth)
	r.pad(depth)
	retval := "any"
	if c.Retval != nil {
		retval = typeString(c.Retval)
	}
	var params []string
	if c.Args != nil {
		arg := "args"
		if allOptional(c.Args) {
			arg = "args?"
		}
		params = append(params, arg+": "+c.Args.Name)
	}
	if c.Multiline {
		params = append(params, "body: string")
	}
	fmt.Fprintf(&r.b, "%s<R=%s>(%s): Promise<R>", c.Name, retval, strings.Join(params, ", "))
}

func (r *renderer) children(nodes []Node, depth int, term string) {
	for _, n := range nodes {
		r.node(n, depth)
		r.b.WriteString(term)
		r.b.WriteByte('\n')
	}
}

func (r *renderer) doc(text string, depth int) {
	if text == "" {
		return
	}
	r.pad(depth)
	r.b.WriteString("/**\n")
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		r.pad(depth)
		r.b.WriteString(" *")
		if line != "" {
			r.b.WriteString(" " + line)
		}
		r.b.WriteByte('\n')
	}
	r.pad(depth)
	r.b.WriteString(" */\n")
}

func (r *renderer) pad(depth int) {
	for i := 0; i < depth; i++ {
		r.b.WriteString(indentStep)
	}
}

func allOptional(args *Interface) bool {
	for _, n := range args.Children {
		m, ok := n.(*Member)
		if !ok || !m.Optional {
			return false
		}
	}
	return true
}

func key(name string) string {
	if identRE.MatchString(name) {
		return name
	}
	return strconv.Quote(name)
}

package typescript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeEmptyRoot(t *testing.T) {
	assert.Equal(t, "", Serialize(NewRoot()))
}

func TestSerializeImport(t *testing.T) {
	assert.Equal(t, `import { XAPI, connectGen } from "jsxapi";`, Serialize(NewImport("")))
	assert.Equal(t, `import { XAPI } from "./xapi";`, Serialize(NewImport("./xapi", "XAPI")))
}

func TestSerializeInterface(t *testing.T) {
	empty := &Interface{Name: "TypedXAPI"}
	assert.Equal(t, "export interface TypedXAPI {}", Serialize(empty))

	iface := &Interface{Name: "DialArgs", Bases: []string{"CallCommon"}}
	iface.AddChildren(
		&Member{Name: "Number", Type: Plain("string")},
		&Member{Name: "Protocol", Type: Literal{"H320", "H323", "Sip"}, Optional: true},
	)
	assert.Equal(t, `export interface DialArgs extends CallCommon {
  Number: string;
  Protocol?: 'H320' | 'H323' | 'Sip';
}`, Serialize(iface))
}

func TestSerializeNestedTrees(t *testing.T) {
	args := &Interface{Name: "MessageAlertDisplayArgs"}
	args.AddChildren(
		&Member{Name: "Duration", Type: Plain("number"), Optional: true},
		&Member{Name: "Text", Type: Plain("string")},
	)

	alert := &Tree{Name: "Alert"}
	alert.AddChildren(
		&Command{Name: "Display", Args: args},
		&Command{Name: "Clear"},
	)
	message := &Tree{Name: "Message"}
	message.AddChild(alert)
	iface := &Interface{Name: "CommandTree"}
	iface.AddChild(message)

	assert.Equal(t, `export interface CommandTree {
  Message: {
    Alert: {
      Display<R=any>(args: MessageAlertDisplayArgs): Promise<R>,
      Clear<R=any>(): Promise<R>,
    },
  };
}`, Serialize(iface))
}

func TestSerializeMember(t *testing.T) {
	tests := []struct {
		name   string
		member *Member
		want   string
	}{
		{"plain", &Member{Name: "Volume", Type: Plain("number")}, "Volume: number"},
		{"optional", &Member{Name: "Mode", Type: Literal{"On", "Off"}, Optional: true}, "Mode?: 'On' | 'Off'"},
		{"quoted dotted name", &Member{Name: "Option.1", Type: Plain("string")}, `"Option.1": string`},
		{"quoted numeric name", &Member{Name: "2", Type: Plain("number")}, `"2": number`},
		{"literal array", &Member{Name: "Layouts", Type: List{Elem: Literal{"A", "B"}}}, "Layouts: ('A' | 'B')[]"},
		{"plain array", &Member{Name: "Hosts", Type: List{Elem: Plain("string")}}, "Hosts: string[]"},
		{"nested array", &Member{Name: "Grid", Type: List{Elem: List{Elem: Plain("number")}}}, "Grid: number[][]"},
		{"generic", &Member{Name: "Config", Type: Generic{Name: "Configify", Of: "ConfigTree"}}, "Config: Configify<ConfigTree>"},
		{"missing type", &Member{Name: "Raw"}, "Raw: any"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Serialize(tt.member))
		})
	}
}

func TestSerializeCommand(t *testing.T) {
	required := &Interface{Name: "DialArgs"}
	required.AddChildren(
		&Member{Name: "Number", Type: Plain("string")},
		&Member{Name: "Protocol", Type: Plain("string"), Optional: true},
	)
	optional := &Interface{Name: "StandbyArgs"}
	optional.AddChild(&Member{Name: "Delay", Type: Plain("number"), Optional: true})

	tests := []struct {
		name string
		cmd  *Command
		want string
	}{
		{"bare", &Command{Name: "Poweroff"}, "Poweroff<R=any>(): Promise<R>"},
		{"required args", &Command{Name: "Dial", Args: required}, "Dial<R=any>(args: DialArgs): Promise<R>"},
		{"all optional args", &Command{Name: "Standby", Args: optional}, "Standby<R=any>(args?: StandbyArgs): Promise<R>"},
		{"empty args", &Command{Name: "Reset", Args: &Interface{Name: "ResetArgs"}}, "Reset<R=any>(args?: ResetArgs): Promise<R>"},
		{"multiline", &Command{Name: "Send", Multiline: true}, "Send<R=any>(body: string): Promise<R>"},
		{"args and multiline", &Command{Name: "Post", Args: required, Multiline: true}, "Post<R=any>(args: DialArgs, body: string): Promise<R>"},
		{"explicit retval", &Command{Name: "Boot", Retval: Plain("void")}, "Boot<R=void>(): Promise<R>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Serialize(tt.cmd))
		})
	}
}

func TestSerializeDocstrings(t *testing.T) {
	member := &Member{
		Name: "Volume",
		Type: Plain("number"),
		Doc:  "Default volume.\nRange 0 to 100.",
	}
	assert.Equal(t, `/**
 * Default volume.
 * Range 0 to 100.
 */
Volume: number`, Serialize(member))

	cmd := &Command{Name: "Restart", Doc: "Restart the device."}
	assert.Equal(t, `/**
 * Restart the device.
 */
Restart<R=any>(): Promise<R>`, Serialize(cmd))
}

func TestSerializeDocstringIndents(t *testing.T) {
	tree := &Tree{Name: "Audio"}
	tree.AddChild(&Member{Name: "Volume", Type: Plain("number"), Doc: "Current volume."})
	iface := &Interface{Name: "StatusTree"}
	iface.AddChild(tree)

	assert.Equal(t, `export interface StatusTree {
  Audio: {
    /**
     * Current volume.
     */
    Volume: number,
  };
}`, Serialize(iface))
}

func TestSerializeMainClass(t *testing.T) {
	withConnect := &MainClass{
		Name:        "TypedXAPI",
		Base:        "XAPI",
		WithConnect: true,
		Iface:       &Interface{Name: "TypedXAPI"},
	}
	assert.Equal(t, `export class TypedXAPI extends XAPI {}

export default TypedXAPI;
export const connect = connectGen(TypedXAPI);

export interface TypedXAPI {}`, Serialize(withConnect))

	plain := &MainClass{Name: "Client", Base: "Base", Iface: &Interface{Name: "Client"}}
	plain.AddChild(&Member{Name: "Command", Type: Plain("CommandTree")})
	assert.Equal(t, `export class Client extends Base {}

export default Client;

export interface Client {
  Command: CommandTree;
}`, Serialize(plain))
}

func TestSerializeDocument(t *testing.T) {
	build := func() *Root {
		root := NewRoot()
		root.AddImport("")
		main, err := root.AddMain("", "", true)
		require.NoError(t, err)

		iface, err := root.AddInterface("CommandTree")
		require.NoError(t, err)
		iface.AddChild(&Command{Name: "Poweroff"})
		main.AddChild(&Member{Name: "Command", Type: Plain("CommandTree")})
		return root
	}

	want := `import { XAPI, connectGen } from "jsxapi";

export class TypedXAPI extends XAPI {}

export default TypedXAPI;
export const connect = connectGen(TypedXAPI);

export interface TypedXAPI {
  Command: CommandTree;
}

export interface CommandTree {
  Poweroff<R=any>(): Promise<R>;
}
`
	assert.Equal(t, want, Serialize(build()))
	assert.Equal(t, Serialize(build()), Serialize(build()))
}

func TestSerializeBuiltins(t *testing.T) {
	root := NewRoot()
	root.AddGenerics()
	out := Serialize(root)

	assert.True(t, strings.HasPrefix(out, "export interface Registration {"))
	assert.Contains(t, out, "export interface Gettable<T> {")
	assert.Contains(t, out, "export interface Settable<T> {")
	assert.Contains(t, out, "export interface Listenable<T> {")
	assert.Contains(t, out, "export type Configify<T> =")
	assert.Contains(t, out, "export type Statusify<T> =")
	assert.True(t, strings.HasSuffix(out, "Gettable<T> & Listenable<T>;\n"))
}

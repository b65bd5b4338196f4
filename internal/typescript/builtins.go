package typescript

var builtinNames = []string{
	"Registration",
	"Gettable",
	"Settable",
	"Listenable",
	"Configify",
	"Statusify",
}

// AddGenerics injects the builtin helper declarations once per Root and
// registers their names, so user interfaces cannot collide with them.
// Further calls are no-ops.
func (r *Root) AddGenerics() {
	if r.builtins {
		return
	}
	r.builtins = true
	for _, name := range builtinNames {
		r.names[name] = struct{}{}
	}
	r.Nodes = append(r.Nodes, &Builtins{})
}

const builtinsText = `export interface Registration {
  unregister(): void;
}

export interface Gettable<T> {
  get(): Promise<T>;
}

export interface Settable<T> {
  set(value: T): Promise<void>;
}

export interface Listenable<T> {
  on(handler: (value: T) => void): Registration;
  once(handler: (value: T) => void): Registration;
}

export type Configify<T> = [T] extends [object]
  ? { [P in keyof T]: Configify<T[P]> } & Gettable<T> & Listenable<T>
  : Gettable<T> & Settable<T> & Listenable<T>;

export type Statusify<T> = [T] extends [object]
  ? { [P in keyof T]: Statusify<T[P]> } & Gettable<T> & Listenable<T>
  : Gettable<T> & Listenable<T>;`

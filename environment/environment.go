/*
File    : rpal/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
// Package environment implements the RPAL environment chain: the
// runtime scope structure the CSE machine builds one frame at a time
// as gamma rules bind parameters, mirroring go-mix/scope's Scope chain
// (parent-pointer lookup) but keyed to RPAL's environment semantics
// (§3): frame 0 is the primitive environment holding every built-in,
// and every other frame is created by exactly one function application
// and identified by the integer id that cse.RuntimeError reports.
package environment

// Value is deliberately untyped: environment has no business knowing
// about RPAL's value universe (package values depends on environment
// for closures' captured frames, so environment cannot import values
// back without a cycle). Callers type-assert to values.Value.
type Value interface{}

// Environment is one frame of the environment chain.
type Environment struct {
	Id      int
	Vars    map[string]Value
	Parent  *Environment
	counter *int // shared by every frame descended from the same root
}

// NewRoot creates the primitive environment, frame 0, with no parent.
// Every frame created (directly or indirectly) by New from this root
// shares its id counter, so ids are stable and reproducible for a
// single program run regardless of what ran before it in the process.
func NewRoot() *Environment {
	counter := new(int)
	*counter = 1
	return &Environment{Id: 0, Vars: make(map[string]Value), counter: counter}
}

// New creates a child frame holding bindings, chained to parent.
func New(parent *Environment, bindings map[string]Value) *Environment {
	id := *parent.counter
	*parent.counter++
	return &Environment{Id: id, Vars: bindings, Parent: parent, counter: parent.counter}
}

// Lookup searches this frame and then its ancestors for name.
func (e *Environment) Lookup(name string) (Value, bool) {
	for frame := e; frame != nil; frame = frame.Parent {
		if v, ok := frame.Vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

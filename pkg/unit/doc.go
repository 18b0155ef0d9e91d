// Package unit provides the type with exactly one value, for operations
// that complete without producing anything.
//
// Unit makes "done, nothing to return" an explicit value that can flow
// through generic code expecting a result:
//
//	func handle(cmd Command) (unit.Unit, error) {
//		return unit.Call(func() error { return store.Delete(cmd.ID) })
//	}
//
// Adapters lift plain side effects and asynchronous completion into
// unit-returning form: Do wraps a void function, Call wraps a fallible
// one, and Wait projects a completion channel to a Unit under a context.
//
// Every Unit equals every other Unit, all units hash to one constant,
// and the rendered form is "()".
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package unit

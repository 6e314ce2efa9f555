package arbor

// scope is one frame of lexically scoped bindings, chained to a parent.
// Frames are shared by reference: a closure captures the *scope that was
// current when its lambda was evaluated, and that frame may outlive the
// form that created it. Every binding is mutable in place.
type scope struct {
	env   map[Symbol]Value
	outer *scope
}

func newScope(outer *scope) *scope {
	return &scope{env: map[Symbol]Value{}, outer: outer}
}

// push extends s with a fresh, empty frame.
func (s *scope) push() *scope {
	return newScope(s)
}

// where returns the frame that currently binds name, or nil.
func (s *scope) where(name Symbol) *scope {
	for f := s; f != nil; f = f.outer {
		if _, ok := f.env[name]; ok {
			return f
		}
	}
	return nil
}

// lookup walks the parent chain for name.
func (s *scope) lookup(name Symbol) (Value, bool) {
	for f := s; f != nil; f = f.outer {
		if v, ok := f.env[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// define binds name in this frame, replacing any existing binding in
// this frame (but not shadowing child frames).
func (s *scope) define(name Symbol, v Value) {
	s.env[name] = v
}

// setBound finds the frame that currently binds name and updates the
// slot in place. It reports false if no enclosing frame binds name.
func (s *scope) setBound(name Symbol, v Value) bool {
	f := s.where(name)
	if f == nil {
		return false
	}
	f.env[name] = v
	return true
}

// Env is the public, embeddable view of a binding chain: a root
// environment that persists for the life of a Context, optionally
// extended with a child frame of additional bindings.
type Env struct {
	scope *scope
}

// NewEnv wraps an empty root frame.
func NewEnv() *Env {
	return &Env{scope: newScope(nil)}
}

// With extends the environment with a fresh child frame preloaded with
// bindings.
func (e *Env) With(bindings map[Symbol]Value) *Env {
	child := newScope(e.scope)
	for k, v := range bindings {
		child.env[k] = v
	}
	return &Env{scope: child}
}

// Bound reports whether name resolves anywhere in the chain.
func (e *Env) Bound(name Symbol) bool {
	return e.scope.where(name) != nil
}

// Define binds name in this environment's own frame.
func (e *Env) Define(name Symbol, v Value) {
	e.scope.define(name, v)
}

// Set updates the binding of name in the frame that owns it. It panics
// with an *UnboundError if name is not bound anywhere in the chain.
func (e *Env) Set(name Symbol, v Value) {
	if !e.scope.setBound(name, v) {
		panic(&UnboundError{Name: string(name)})
	}
}

// Lookup walks the parent chain for name.
func (e *Env) Lookup(name Symbol) (Value, bool) {
	return e.scope.lookup(name)
}

// Eval evaluates expression against this environment, in non-tail
// position.
func (e *Env) Eval(expression Value) Value {
	return forceTail(eval(expression, e.scope, false))
}

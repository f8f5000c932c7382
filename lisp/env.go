package lisp

import (
	"io"
	"log/slog"
)

// LEnv is a lisp environment.  An LEnv holds a single global frame of symbol
// bindings.  LEnv is not safe for concurrent use.
type LEnv struct {
	Reader Reader
	Logger *slog.Logger
	scope  *bindings
}

// NewEnv returns initializes and returns a new LEnv with no bindings.
func NewEnv() *LEnv {
	return &LEnv{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		scope:  newBindings(0),
	}
}

// Len returns the number of symbols bound in env.
func (env *LEnv) Len() int {
	return env.scope.Len()
}

// Names returns the bound symbol names in the order they were first bound.
func (env *LEnv) Names() []string {
	names := make([]string, env.scope.Len())
	for i := range names {
		names[i] = env.scope.Name(i)
	}
	return names
}

// Get takes an LSymbol k and returns a copy of the LVal it is bound to in
// env.
func (env *LEnv) Get(k *LVal) *LVal {
	if k.Type != LSymbol {
		return ErrnoType.Errorf("not a symbol: %v", k.Type)
	}
	v, ok := env.scope.Get(k.Sym)
	if !ok {
		return ErrnoUnbound.Errorf("unbound symbol!")
	}
	return v.Copy()
}

// Put takes an LSymbol k and binds a copy of v to it in env.
func (env *LEnv) Put(k, v *LVal) {
	if k.Type != LSymbol {
		return
	}
	if v == nil {
		panic("nil value")
	}
	env.scope.Put(k.Sym, v.Copy())
}

// AddBuiltins binds the given funs to their names in env.  When called with no
// arguments AddBuiltins adds the DefaultBuiltins to env.
func (env *LEnv) AddBuiltins(funs ...LBuiltinDef) {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	for _, f := range funs {
		k := Symbol(f.Name())
		exist := env.Get(k)
		if exist.Type != LError {
			panic("symbol already defined: " + f.Name())
		}
		env.Put(k, Fun(f.Name(), f.Eval))
		env.Logger.Debug("builtin registered", "name", f.Name())
	}
}

// Load reads source from r using env.Reader and evaluates it.  Read errors
// are returned as LError values.
func (env *LEnv) Load(name string, r io.Reader) *LVal {
	if env.Reader == nil {
		return Errorf("no reader for environment runtime")
	}
	v, err := env.Reader.Read(name, r)
	if err != nil {
		return ErrnoBadSyntax.Errorf("%v", err)
	}
	return env.Eval(v)
}

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.  Eval may modify v, which callers must treat as consumed.
func (env *LEnv) Eval(v *LVal) *LVal {
	switch v.Type {
	case LSymbol:
		return env.Get(v)
	case LSExpr:
		return env.EvalSExpr(v)
	default:
		return v
	}
}

// EvalSExpr evaluates s and returns the resulting LVal.
func (env *LEnv) EvalSExpr(s *LVal) *LVal {
	if s.Type != LSExpr {
		return ErrnoType.Errorf("not an s-expression")
	}

	// Children are evaluated left to right before any error is reported so
	// the leftmost error wins.
	for i := range s.Cells {
		s.Cells[i] = env.Eval(s.Cells[i])
	}
	for i := range s.Cells {
		if s.Cells[i].Type == LError {
			return s.Consume(i)
		}
	}

	switch len(s.Cells) {
	case 0:
		return s
	case 1:
		return s.Consume(0)
	}

	f := s.Take(0)
	if f.Type != LFun {
		return ErrnoNotFunc.Errorf("First element is not a function")
	}
	return env.Call(f, s)
}

// Call invokes LFun fun with the list args.  The builtin owns args.
func (env *LEnv) Call(fun *LVal, args *LVal) *LVal {
	if fun.Type != LFun || fun.Builtin == nil {
		return ErrnoNotFunc.Errorf("First element is not a function")
	}
	r := fun.Builtin(env, args)
	if errno, ok := ErrnoOf(r); ok {
		env.Logger.Debug("builtin returned error", "fun", fun.FID, "errno", errno, "err", r.Err)
	}
	return r
}

package lisp

// LBuiltinDef is a built-in function
type LBuiltinDef interface {
	Name() string
	Eval(env *LEnv, args *LVal) *LVal
}

type langBuiltin struct {
	name string
	fun  LBuiltin
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Eval(env *LEnv, args *LVal) *LVal {
	return fun.fun(env, args)
}

var langBuiltins = []*langBuiltin{
	{"list", builtinList},
	{"head", builtinHead},
	{"tail", builtinTail},
	{"eval", builtinEval},
	{"join", builtinJoin},
	{"len", builtinLen},
	{"+", builtinAdd},
	{"-", builtinSub},
	{"*", builtinMul},
	{"/", builtinDiv},
	{"%", builtinMod},
	{"^", builtinPow},
}

// DefaultBuiltins returns the default set of LBuiltinDefs added to LEnv
// objects when LEnv.AddBuiltins is called without arguments.
func DefaultBuiltins() []LBuiltinDef {
	ops := make([]LBuiltinDef, len(langBuiltins))
	for i := range langBuiltins {
		ops[i] = langBuiltins[i]
	}
	return ops
}

func errArity(fun string, got, expect int) *LVal {
	return ErrnoArity.Errorf("Function '%s' passed incorrect number of arguments. Got %d, Expected %d.",
		fun, got, expect)
}

func errType(fun string) *LVal {
	return ErrnoType.Errorf("Function '%s' passed incorrect type!", fun)
}

// checkQExprArg verifies that args holds exactly one LQExpr.  When nonEmpty is
// true the LQExpr must also have at least one cell.
func checkQExprArg(fun string, args *LVal, nonEmpty bool) *LVal {
	if len(args.Cells) != 1 {
		return errArity(fun, len(args.Cells), 1)
	}
	if args.Cells[0].Type != LQExpr {
		return errType(fun)
	}
	if nonEmpty && args.Cells[0].IsNil() {
		return ErrnoEmptyList.Errorf("Function '%s' passed {}!", fun)
	}
	return nil
}

func builtinList(env *LEnv, args *LVal) *LVal {
	args.Type = LQExpr
	return args
}

func builtinHead(env *LEnv, args *LVal) *LVal {
	if lerr := checkQExprArg("head", args, true); lerr != nil {
		return lerr
	}
	v := args.Consume(0)
	for len(v.Cells) > 1 {
		v.Take(1)
	}
	return v
}

func builtinTail(env *LEnv, args *LVal) *LVal {
	if lerr := checkQExprArg("tail", args, true); lerr != nil {
		return lerr
	}
	v := args.Consume(0)
	v.Take(0)
	return v
}

func builtinEval(env *LEnv, args *LVal) *LVal {
	if lerr := checkQExprArg("eval", args, false); lerr != nil {
		return lerr
	}
	x := args.Consume(0)
	x.Type = LSExpr
	return env.Eval(x)
}

func builtinJoin(env *LEnv, args *LVal) *LVal {
	for _, c := range args.Cells {
		if c.Type != LQExpr {
			return ErrnoType.Errorf("Function 'join' passed incorrect type.")
		}
	}
	if len(args.Cells) == 0 {
		return QExpr()
	}
	x := args.Take(0)
	for len(args.Cells) > 0 {
		x = joinQExpr(x, args.Take(0))
	}
	return x
}

// joinQExpr moves every cell of y onto the end of x.
func joinQExpr(x, y *LVal) *LVal {
	for len(y.Cells) > 0 {
		x.Append(y.Take(0))
	}
	return x
}

func builtinLen(env *LEnv, args *LVal) *LVal {
	if lerr := checkQExprArg("len", args, false); lerr != nil {
		return lerr
	}
	return Number(int64(len(args.Cells[0].Cells)))
}

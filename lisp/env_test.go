package lisp

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv(t *testing.T) *LEnv {
	t.Helper()
	env := NewEnv()
	lerr := InitializeUserEnv(env)
	require.NoError(t, GoError(lerr))
	return env
}

func TestEnvGetPut(t *testing.T) {
	env := NewEnv()
	v := env.Get(Symbol("x"))
	errno, ok := ErrnoOf(v)
	if assert.True(t, ok) {
		assert.Equal(t, ErrnoUnbound, errno)
	}
	assert.Equal(t, "unbound symbol!", v.String())

	q := numbers(LQExpr, 1, 2)
	env.Put(Symbol("x"), q)
	q.Append(Number(3)) // the environment holds its own copy
	assert.Equal(t, "{1 2}", env.Get(Symbol("x")).String())

	got := env.Get(Symbol("x"))
	got.Cells[0].Num = 100
	assert.Equal(t, "{1 2}", env.Get(Symbol("x")).String())

	env.Put(Symbol("x"), Number(7))
	assert.Equal(t, "7", env.Get(Symbol("x")).String())
	assert.Equal(t, 1, env.Len())

	env.Put(Number(1), Number(2))
	assert.Equal(t, 1, env.Len())

	v = env.Get(Number(1))
	errno, _ = ErrnoOf(v)
	assert.Equal(t, ErrnoType, errno)
}

func TestAddBuiltins(t *testing.T) {
	env := testEnv(t)
	assert.Equal(t, []string{
		"list", "head", "tail", "eval", "join", "len",
		"+", "-", "*", "/", "%", "^",
	}, env.Names())
	for _, name := range env.Names() {
		v := env.Get(Symbol(name))
		assert.Equal(t, LFun, v.Type, name)
		assert.Equal(t, name, v.FID)
	}
	assert.Panics(t, func() {
		env.AddBuiltins()
	})
}

func TestEvalSelfEvaluating(t *testing.T) {
	env := testEnv(t)
	for _, v := range []*LVal{
		Number(4),
		Errorf("oops"),
		numbers(LQExpr, 1, 2),
		list(LQExpr, Symbol("undefined"), numbers(LSExpr, 1)),
		Fun("+", builtinAdd),
		QExpr(),
	} {
		s := v.String()
		r := env.Eval(v)
		assert.Same(t, v, r)
		assert.Equal(t, s, r.String())
	}
}

func TestEvalSymbol(t *testing.T) {
	env := testEnv(t)
	v := env.Eval(Symbol("head"))
	assert.Equal(t, LFun, v.Type)
	v = env.Eval(Symbol("foo"))
	assert.Equal(t, "unbound symbol!", v.String())
}

func TestEvalSExpr(t *testing.T) {
	env := testEnv(t)

	v := env.Eval(SExpr())
	assert.Equal(t, "()", v.String())

	v = env.Eval(numbers(LSExpr, 5))
	assert.Equal(t, "5", v.String())

	v = env.Eval(list(LSExpr, list(LSExpr, numbers(LSExpr, 5))))
	assert.Equal(t, "5", v.String())

	v = env.Eval(list(LSExpr, Symbol("+"), Number(1), list(LSExpr, Symbol("*"), Number(2), Number(3))))
	assert.Equal(t, "7", v.String())

	v = env.Eval(list(LSExpr, Symbol("+")))
	assert.Equal(t, LFun, v.Type)

	v = env.Eval(numbers(LSExpr, 1, 2, 3))
	errno, _ := ErrnoOf(v)
	assert.Equal(t, ErrnoNotFunc, errno)
	assert.Equal(t, "First element is not a function", v.String())

	v = env.Eval(list(LSExpr, Symbol("foo"), Number(1), Number(2)))
	assert.Equal(t, "unbound symbol!", v.String())
}

func TestEvalLeftmostError(t *testing.T) {
	env := testEnv(t)
	v := env.Eval(list(LSExpr, Errorf("a"), Errorf("b")))
	assert.Equal(t, "a", v.String())

	v = env.Eval(list(LSExpr,
		Symbol("+"),
		list(LSExpr, Symbol("/"), Number(1), Number(0)),
		Symbol("nope"),
	))
	assert.Equal(t, "Division by zero", v.String())

	v = env.Eval(list(LSExpr,
		Symbol("+"),
		Symbol("nope"),
		list(LSExpr, Symbol("/"), Number(1), Number(0)),
	))
	assert.Equal(t, "unbound symbol!", v.String())
}

func TestCallNonFunction(t *testing.T) {
	env := testEnv(t)
	v := env.Call(Number(1), SExpr())
	errno, _ := ErrnoOf(v)
	assert.Equal(t, ErrnoNotFunc, errno)
}

type stringReader struct {
	read func(src string) *LVal
}

func (r stringReader) Read(name string, src io.Reader) (*LVal, error) {
	b, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, errors.New(name + ": empty")
	}
	return r.read(string(b)), nil
}

func TestLoad(t *testing.T) {
	env := NewEnv()
	v := env.Load("test", strings.NewReader("x"))
	assert.Equal(t, LError, v.Type)

	r := stringReader{func(src string) *LVal {
		return list(LSExpr, Symbol(src), Number(2), Number(3))
	}}
	env = NewEnv()
	lerr := InitializeUserEnv(env, WithReader(r))
	require.NoError(t, GoError(lerr))
	v = env.Load("test", strings.NewReader("*"))
	assert.Equal(t, "6", v.String())

	v = env.Load("test", strings.NewReader(""))
	errno, _ := ErrnoOf(v)
	assert.Equal(t, ErrnoBadSyntax, errno)
	assert.Equal(t, "test: empty", v.String())
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	env := NewEnv()
	lerr := InitializeUserEnv(env, WithLogger(logger))
	require.NoError(t, GoError(lerr))
	assert.Contains(t, buf.String(), "builtin registered")
	assert.Contains(t, buf.String(), "name=head")

	buf.Reset()
	v := env.Eval(list(LSExpr, Symbol("/"), Number(1), Number(0)))
	assert.Equal(t, "Division by zero", v.String())
	assert.Contains(t, buf.String(), "builtin returned error")
	assert.Contains(t, buf.String(), "fun=/")
	assert.Contains(t, buf.String(), `errno="division by zero"`)

	env = NewEnv()
	lerr = InitializeUserEnv(env, WithLogger(nil))
	require.NoError(t, GoError(lerr))
	assert.NotNil(t, env.Logger)
}

func TestInitializeUserEnvConfigError(t *testing.T) {
	env := NewEnv()
	fail := func(env *LEnv) *LVal { return Errorf("config failed") }
	lerr := InitializeUserEnv(env, fail)
	assert.Equal(t, "config failed", lerr.String())
	assert.Equal(t, 0, env.Len())
}

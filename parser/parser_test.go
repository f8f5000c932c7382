package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/bmatsuo/lispy/lisp"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flat is a comparable rendering of an AST.
type flat struct {
	Tag      string
	Contents string
	Children []flat
}

func flatten(n *AST) flat {
	f := flat{Tag: n.tag, Contents: n.contents}
	for _, c := range n.children {
		f.Children = append(f.Children, flatten(c))
	}
	return f
}

func num(s string) flat  { return flat{Tag: TagNumber, Contents: s} }
func sym(s string) flat  { return flat{Tag: TagSymbol, Contents: s} }
func char(s string) flat { return flat{Tag: TagChar, Contents: s} }

func root(cs ...flat) flat {
	children := append([]flat{{Tag: TagRegex}}, cs...)
	return flat{Tag: TagRoot, Children: append(children, flat{Tag: TagRegex})}
}

func sexpr(cs ...flat) flat {
	children := append([]flat{char("(")}, cs...)
	return flat{Tag: TagSExpr, Children: append(children, char(")"))}
}

func qexpr(cs ...flat) flat {
	children := append([]flat{char("{")}, cs...)
	return flat{Tag: TagQExpr, Children: append(children, char("}"))}
}

func TestParse(t *testing.T) {
	tests := []struct {
		src    string
		expect flat
	}{
		{"", root()},
		{"   \n", root()},
		{"1", root(num("1"))},
		{"-12 abc", root(num("-12"), sym("abc"))},
		{"- 5", root(sym("-"), num("5"))},
		{"(+ 1 2)", root(sexpr(sym("+"), num("1"), num("2")))},
		{"  ( % 7 3 ) ", root(sexpr(sym("%"), num("7"), num("3")))},
		{"{}", root(qexpr())},
		{"(head {1 (+ 2 3) {}})", root(sexpr(
			sym("head"),
			qexpr(num("1"), sexpr(sym("+"), num("2"), num("3")), qexpr()),
		))},
		{"(^ 2 10)\n(len {})", root(
			sexpr(sym("^"), num("2"), num("10")),
			sexpr(sym("len"), qexpr()),
		)},
	}
	for i, test := range tests {
		ast, err := Parse("test", []byte(test.src))
		if !assert.NoError(t, err, "test %d: %q", i, test.src) {
			continue
		}
		if diff := cmp.Diff(test.expect, flatten(ast)); diff != "" {
			t.Errorf("test %d: %q: tree mismatch (-want +got):\n%s", i, test.src, diff)
		}
	}
}

func TestParseSingleExpr(t *testing.T) {
	tests := []struct {
		src  string
		tag  string
		text string
	}{
		{"5", TagNumber, "5"},
		{"-42", TagNumber, "-42"},
		{"head", TagSymbol, "head"},
		{"(+ 1 2 3)", TagSExpr, ""},
		{"{1 2}", TagQExpr, ""},
	}
	for i, test := range tests {
		ast, err := Parse("test", []byte(test.src))
		if !assert.NoError(t, err, "test %d: %q", i, test.src) {
			continue
		}
		if assert.Len(t, ast.children, 3, "test %d: %q", i, test.src) {
			assert.Equal(t, test.tag, ast.children[1].tag, "test %d: %q", i, test.src)
			assert.Equal(t, test.text, ast.children[1].contents, "test %d: %q", i, test.src)
		}
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		src string
		pos int
		msg string
	}{
		{"(+ 1 2", 0, "unexpected '('"},
		{"1 )", 1, "unexpected ')'"},
		{"{1 2)", 0, "unexpected '{'"},
		{"(1) \"x\"", 3, "unexpected '\"'"},
	}
	for i, test := range tests {
		_, err := Parse("test", []byte(test.src))
		var serr *SyntaxError
		if assert.True(t, errors.As(err, &serr), "test %d: %v", i, err) {
			assert.Equal(t, "test", serr.Name, "test %d", i)
			assert.Equal(t, test.pos, serr.Pos, "test %d", i)
			assert.Equal(t, test.msg, serr.Msg, "test %d", i)
		}
	}
}

func TestDump(t *testing.T) {
	ast, err := Parse("test", []byte("(+ 1)"))
	require.NoError(t, err)
	expect := `>
  regex
  expr|sexpr|>
    char "("
    expr|symbol|regex "+"
    expr|number|regex "1"
    char ")"
  regex
`
	assert.Equal(t, expect, ast.String())
}

func TestReader(t *testing.T) {
	r := NewReader()
	v, err := r.Read("test", strings.NewReader("(join {1 2} {3 4})"))
	require.NoError(t, err)
	assert.Equal(t, lisp.LSExpr, v.Type)
	assert.Equal(t, "((join {1 2} {3 4}))", v.String())

	v, err = r.Read("test", strings.NewReader("5"))
	require.NoError(t, err)
	assert.Equal(t, "(5)", v.String())

	v, err = r.Read("test", strings.NewReader("99999999999999999999"))
	require.NoError(t, err)
	assert.Equal(t, "(invalid number)", v.String())

	_, err = r.Read("test", strings.NewReader("(join"))
	assert.Error(t, err)
}

package lisp

import (
	"io"
	"strconv"
	"strings"
)

// Reader abstracts a parser implementation so that it may be implemented in a
// separate package as an optional/swappable component.
type Reader interface {
	// Read the contents of r and return a single LSExpr holding every
	// expression in the source.
	Read(name string, r io.Reader) (*LVal, error)
}

// Node is a read-only view of a parsed syntax tree node.  A tag is a list of
// categories separated by '|' (e.g. "expr|number|regex").  The root of a
// tree has the tag ">".
type Node interface {
	Tag() string
	Contents() string
	NumChildren() int
	Child(i int) Node
}

// HasTag returns true if category is one of the categories in the tag of n.
func HasTag(n Node, category string) bool {
	for _, t := range strings.Split(n.Tag(), "|") {
		if t == category {
			return true
		}
	}
	return false
}

// ReadNode converts the syntax tree rooted at n into an unevaluated LVal.
func ReadNode(n Node) *LVal {
	switch {
	case HasTag(n, "number"):
		return readNumber(n)
	case HasTag(n, "symbol"):
		return Symbol(n.Contents())
	}

	var x *LVal
	switch {
	case n.Tag() == ">", HasTag(n, "sexpr"):
		x = SExpr()
	case HasTag(n, "qexpr"):
		x = QExpr()
	default:
		return ErrnoBadSyntax.Errorf("invalid syntax node: %s", n.Tag())
	}
	for i := 0; i < n.NumChildren(); i++ {
		c := n.Child(i)
		if isPunct(c) || c.Tag() == "regex" {
			continue
		}
		x.Append(ReadNode(c))
	}
	return x
}

func readNumber(n Node) *LVal {
	x, err := strconv.ParseInt(n.Contents(), 10, 64)
	if err != nil {
		return ErrnoBadNum.Errorf("invalid number")
	}
	return Number(x)
}

func isPunct(n Node) bool {
	switch n.Contents() {
	case "(", ")", "{", "}":
		return true
	}
	return false
}

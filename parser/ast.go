package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/bmatsuo/lispy/lisp"
)

// Tags used by AST nodes.  Expression tags list every grammar rule that
// produced the node, outermost first.
const (
	TagRoot   = ">"
	TagRegex  = "regex"
	TagChar   = "char"
	TagNumber = "expr|number|regex"
	TagSymbol = "expr|symbol|regex"
	TagSExpr  = "expr|sexpr|>"
	TagQExpr  = "expr|qexpr|>"
)

// AST is a node in a parsed syntax tree.  AST implements lisp.Node.
type AST struct {
	tag      string
	contents string
	children []*AST
}

var _ lisp.Node = (*AST)(nil)

// Tag implements lisp.Node.
func (n *AST) Tag() string {
	return n.tag
}

// Contents implements lisp.Node.
func (n *AST) Contents() string {
	return n.contents
}

// NumChildren implements lisp.Node.
func (n *AST) NumChildren() int {
	return len(n.children)
}

// Child implements lisp.Node.
func (n *AST) Child(i int) lisp.Node {
	return n.children[i]
}

// Dump writes an indented description of the tree rooted at n to w.
func (n *AST) Dump(w io.Writer) {
	n.dump(w, "")
}

func (n *AST) dump(w io.Writer, indent string) {
	if n.contents == "" {
		fmt.Fprintf(w, "%s%s\n", indent, n.tag)
	} else {
		fmt.Fprintf(w, "%s%s %q\n", indent, n.tag, n.contents)
	}
	for _, c := range n.children {
		c.dump(w, indent+"  ")
	}
}

func (n *AST) String() string {
	var buf strings.Builder
	n.Dump(&buf)
	return buf.String()
}

/*
Package parser provides a lisp parser.

	number : /-?[0-9]+/ ;
	symbol : /[a-zA-Z0-9_+\-*\/\\=<>!&%^]+/ ;
	sexpr  : '(' <expr>* ')' ;
	qexpr  : '{' <expr>* '}' ;
	expr   : <number> | <symbol> | <sexpr> | <qexpr> ;
	lispy  : /^/ <expr>* /$/ ;

Parse produces a tree of AST nodes which lisp.ReadNode converts to values.
*/
package parser

import (
	"bytes"
	"fmt"
	"unicode"

	parsec "github.com/prataprc/goparsec"
)

// SyntaxError is returned when source text does not match the grammar.  Pos
// is the byte offset at which parsing stopped.
type SyntaxError struct {
	Name string
	Pos  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s[%d]: %s", e.Name, e.Pos, e.Msg)
}

// Parse parses text and returns the root of its syntax tree.  The root has
// one child for each top-level expression in text, surrounded by regex nodes
// marking the start and end of input.
func Parse(name string, text []byte) (*AST, error) {
	text = bytes.TrimRightFunc(text, unicode.IsSpace)
	s := parsec.NewScanner(text)
	parser := newParsecParser()

	root := &AST{tag: TagRoot}
	root.children = append(root.children, &AST{tag: TagRegex})
	for !s.Endof() {
		var node parsec.ParsecNode
		pos := s.GetCursor()
		node, s = parser(s)
		ast, ok := parsedAST(node)
		if !ok {
			return nil, &SyntaxError{
				Name: name,
				Pos:  pos,
				Msg:  unexpected(text, pos),
			}
		}
		root.children = append(root.children, ast)
	}
	root.children = append(root.children, &AST{tag: TagRegex})
	return root, nil
}

// parsedAST unwraps the single AST produced by a successful match of the
// expression parser.  OrdChoice without a callback yields a node list.
func parsedAST(node parsec.ParsecNode) (*AST, bool) {
	if node == nil {
		return nil, false
	}
	nodes := cleanParsecNodeList([]parsec.ParsecNode{node})
	if len(nodes) == 0 {
		return nil, false
	}
	ast, ok := nodes[0].(*AST)
	return ast, ok
}

func unexpected(text []byte, pos int) string {
	rest := bytes.TrimLeftFunc(text[pos:], unicode.IsSpace)
	if len(rest) == 0 {
		return "unexpected end of input"
	}
	return fmt.Sprintf("unexpected %q", rest[0])
}

func newParsecParser() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	openB := parsec.Atom("{", "OPENB")
	closeB := parsec.Atom("}", "CLOSEB")
	number := parsec.Token(`-?[0-9]+`, "NUMBER")
	symbol := parsec.Token(`[a-zA-Z0-9_+\-*/\\=<>!&%^]+`, "SYMBOL")
	term := parsec.OrdChoice(termNode,
		number,
		symbol, // symbol comes last because it swallows digits
	)
	var expr parsec.Parser // forward declaration allows for recursive parsing
	sexpr := parsec.And(listNode(TagSExpr), openP, parsec.Kleene(nil, &expr), closeP)
	qexpr := parsec.And(listNode(TagQExpr), openB, parsec.Kleene(nil, &expr), closeB)
	expr = parsec.OrdChoice(nil, term, sexpr, qexpr)
	return expr
}

func termNode(nodes []parsec.ParsecNode) parsec.ParsecNode {
	nodes = cleanParsecNodeList(nodes)
	term, ok := nodes[0].(*parsec.Terminal)
	if !ok {
		panic(fmt.Sprintf("unexpected term node: %T", nodes[0]))
	}
	switch term.Name {
	case "NUMBER":
		return &AST{tag: TagNumber, contents: term.Value}
	case "SYMBOL":
		return &AST{tag: TagSymbol, contents: term.Value}
	default:
		panic("unknown terminal: " + term.Name)
	}
}

func listNode(tag string) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		node := &AST{tag: tag}
		for _, c := range cleanParsecNodeList(nodes) {
			switch c := c.(type) {
			case *AST:
				node.children = append(node.children, c)
			case *parsec.Terminal:
				node.children = append(node.children, &AST{tag: TagChar, contents: c.Value})
			}
		}
		return node
	}
}

func cleanParsecNodeList(lis []parsec.ParsecNode) []parsec.ParsecNode {
	var nodes []parsec.ParsecNode
	for _, n := range lis {
		switch node := n.(type) {
		case []parsec.ParsecNode:
			nodes = append(nodes, cleanParsecNodeList(node)...)
		default:
			nodes = append(nodes, node)
		}
	}
	return nodes
}

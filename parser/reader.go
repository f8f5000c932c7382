package parser

import (
	"io"

	"github.com/bmatsuo/lispy/lisp"
)

// NewReader returns a lisp.Reader that parses source streams with Parse.
func NewReader() lisp.Reader {
	return &reader{}
}

type reader struct{}

func (*reader) Read(name string, r io.Reader) (*lisp.LVal, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	root, err := Parse(name, text)
	if err != nil {
		return nil, err
	}
	return lisp.ReadNode(root), nil
}

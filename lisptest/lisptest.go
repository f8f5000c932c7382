// Package lisptest runs lisp source against fresh environments and checks
// the printed results.
package lisptest

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/bmatsuo/lispy/lisp"
	"github.com/bmatsuo/lispy/parser"
)

// NewEnv returns a user environment that reads source with parser.NewReader.
func NewEnv(config ...lisp.Config) (*lisp.LEnv, error) {
	env := lisp.NewEnv()
	config = append([]lisp.Config{lisp.WithReader(parser.NewReader())}, config...)
	lerr := lisp.InitializeUserEnv(env, config...)
	if lerr.Type == lisp.LError {
		return nil, fmt.Errorf("Failed to initialize lisp environment: %v", lerr)
	}
	return env, nil
}

// TestSequence is a sequence of lisp expressions which are evaluated sequentially
// by a lisp.LEnv.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the evaluated result
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.LEnvs.
func RunTestSuite(t *testing.T, tests TestSuite) {
	t.Helper()
	for i, test := range tests {
		env, err := NewEnv()
		if err != nil {
			t.Fatal(err)
		}
		for j, expr := range test.TestSequence {
			result := env.Load("test", bytes.NewReader([]byte(expr.Expr))).String()
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
		}
	}
}

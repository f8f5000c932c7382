// Package repl implements an interactive read-eval-print loop.
package repl

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bmatsuo/lispy/lisp"
	"github.com/bmatsuo/lispy/parser"
	"github.com/chzyer/readline"
)

// Banner is printed when the REPL starts.
const Banner = "Lispy Version 0.0.5\nPress Ctrl+c to Exit"

// DefaultPrompt is the prompt used when Config.Prompt is empty.
const DefaultPrompt = "lispy> "

// Config controls a REPL session.
type Config struct {
	Prompt      string
	HistoryFile string
	NoBanner    bool
	Logger      *slog.Logger

	Stdin  io.ReadCloser
	Stdout io.Writer
	Stderr io.Writer
}

func (c *Config) stdout() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

func (c *Config) stderr() io.Writer {
	if c.Stderr == nil {
		return os.Stderr
	}
	return c.Stderr
}

// NewEnv returns an environment ready for interactive use.
func NewEnv(logger *slog.Logger) (*lisp.LEnv, error) {
	env := lisp.NewEnv()
	lerr := lisp.InitializeUserEnv(env,
		lisp.WithLogger(logger),
		lisp.WithReader(parser.NewReader()),
	)
	if lerr.Type == lisp.LError {
		return nil, lisp.GoError(lerr)
	}
	return env, nil
}

// Run runs a REPL until the input stream is closed.
func Run(cfg Config) error {
	env, err := NewEnv(cfg.Logger)
	if err != nil {
		return err
	}
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    &symbolCompleter{env: env},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           cfg.Stdin,
		Stdout:          cfg.Stdout,
		Stderr:          cfg.Stderr,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	if !cfg.NoBanner {
		printBanner(cfg.stdout())
	}
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		err = EvalLine(env, line, cfg.stdout())
		if err != nil {
			errln(cfg.stderr(), err)
		}
	}
}

// EvalLine parses and evaluates line in env and prints the result to w.
// Syntax errors are returned and nothing is printed.
func EvalLine(env *lisp.LEnv, line string, w io.Writer) error {
	root, err := parser.Parse("<stdin>", []byte(line))
	if err != nil {
		return err
	}
	v := env.Eval(lisp.ReadNode(root))
	_, err = fmt.Fprintln(w, v)
	return err
}

// printBanner writes Banner followed by a blank line.
func printBanner(w io.Writer) {
	fmt.Fprintf(w, "%s\n\n", Banner)
}

func errln(w io.Writer, v ...interface{}) {
	fmt.Fprintln(w, v...)
}

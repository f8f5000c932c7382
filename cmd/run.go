package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bmatsuo/lispy/lisp"
	"github.com/bmatsuo/lispy/parser"
	"github.com/bmatsuo/lispy/repl"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	runExpression bool
	runPrint      bool
	runJobs       int
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run lisp code",
	Long: `Run lisp code provided supplied via the command line or a file.  Each
argument is evaluated in its own environment.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := rootLoadConfig(cmd)
		if err != nil {
			return err
		}
		inputs, err := runReadInputs(args, runExpression)
		if err != nil {
			return err
		}
		logger := newLogger(cfg.Verbose, cmd.ErrOrStderr())
		results, err := runInputs(cmd.Context(), inputs, runJobs, logger)
		if err != nil {
			return err
		}
		cmd.SilenceUsage = true
		return runReport(results, runPrint, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

type runInput struct {
	name string
	src  []byte
}

type runResult struct {
	name  string
	value *lisp.LVal
	err   error
}

func runReadInputs(args []string, expression bool) ([]runInput, error) {
	inputs := make([]runInput, len(args))
	for i, arg := range args {
		if expression {
			inputs[i] = runInput{name: fmt.Sprintf("<arg%d>", i), src: []byte(arg)}
			continue
		}
		b, err := os.ReadFile(arg)
		if err != nil {
			return nil, err
		}
		inputs[i] = runInput{name: arg, src: b}
	}
	return inputs, nil
}

// runInputs evaluates each input on a fresh environment.  At most jobs
// inputs are evaluated concurrently; jobs < 1 means no limit.  Results are
// returned in input order.
func runInputs(ctx context.Context, inputs []runInput, jobs int, logger *slog.Logger) ([]runResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]runResult, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i := range inputs {
		in := inputs[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			env, err := repl.NewEnv(logger.With("input", in.name))
			if err != nil {
				return err
			}
			results[i] = runEval(env, in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runEval(env *lisp.LEnv, in runInput) runResult {
	root, err := parser.Parse(in.name, in.src)
	if err != nil {
		return runResult{name: in.name, err: err}
	}
	return runResult{name: in.name, value: env.Eval(lisp.ReadNode(root))}
}

// runReport writes results to stdout (when print is true) and failures to
// stderr.  An error is returned if any input failed to parse or evaluated to
// an error.
func runReport(results []runResult, print bool, stdout, stderr io.Writer) error {
	var failed int
	for _, r := range results {
		switch {
		case r.err != nil:
			failed++
			fmt.Fprintln(stderr, r.err)
		case r.value.Type == lisp.LError:
			failed++
			fmt.Fprintf(stderr, "%s: %v\n", r.name, r.value)
		case print:
			fmt.Fprintln(stdout, r.value)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(results))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
	runCmd.Flags().IntVarP(&runJobs, "jobs", "j", 1,
		"Number of arguments evaluated concurrently")
}

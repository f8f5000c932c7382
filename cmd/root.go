package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bmatsuo/lispy/repl"
	"github.com/spf13/cobra"
)

var (
	rootConfigPath string
	rootPrompt     string
	rootHistory    string
	rootNoBanner   bool
	rootVerbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lispy",
	Short: "A small lisp interpreter",
	Long: `Lispy evaluates a tiny lisp with numbers, symbols, S-expressions and
Q-expressions.  Without a subcommand it starts an interactive repl.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := rootLoadConfig(cmd)
		if err != nil {
			return err
		}
		return repl.Run(repl.Config{
			Prompt:      cfg.Prompt,
			HistoryFile: cfg.HistoryFile,
			NoBanner:    cfg.NoBanner,
			Logger:      newLogger(cfg.Verbose, cmd.ErrOrStderr()),
		})
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// rootLoadConfig reads the configuration file and applies any flags that
// were set explicitly on the command line.
func rootLoadConfig(cmd *cobra.Command) (*Config, error) {
	path := rootConfigPath
	optional := !cmd.Flags().Changed("config")
	if optional {
		path = DefaultConfigPath()
	}
	cfg, err := LoadConfig(path, optional)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("prompt") {
		cfg.Prompt = rootPrompt
	}
	if flags.Changed("history") {
		cfg.HistoryFile = rootHistory
	}
	if flags.Changed("no-banner") {
		cfg.NoBanner = rootNoBanner
	}
	if flags.Changed("verbose") {
		cfg.Verbose = rootVerbose
	}
	return cfg, nil
}

func newLogger(verbose bool, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "",
		"Configuration file (default $HOME/.lispy.toml)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false,
		"Log debug messages to stderr")
	rootCmd.Flags().StringVar(&rootPrompt, "prompt", repl.DefaultPrompt,
		"Repl prompt")
	rootCmd.Flags().StringVar(&rootHistory, "history", "",
		"File used to persist repl history")
	rootCmd.Flags().BoolVar(&rootNoBanner, "no-banner", false,
		"Do not print the banner when the repl starts")
}

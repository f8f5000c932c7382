package lisp

import (
	"io"
	"log/slog"
)

// Config is a function that configures a root environment.
type Config func(env *LEnv) *LVal

// InitializeUserEnv applies config to env and then binds the default
// builtins.  Configs are applied in order and the first LError returned by a
// Config is returned immediately.
func InitializeUserEnv(env *LEnv, config ...Config) *LVal {
	for _, fn := range config {
		lerr := fn(env)
		if lerr.Type == LError {
			return lerr
		}
	}
	env.AddBuiltins()
	return SExpr()
}

// WithLogger returns a Config that makes environments write diagnostic
// records to logger.  A nil logger discards all records.
func WithLogger(logger *slog.Logger) Config {
	return func(env *LEnv) *LVal {
		if logger == nil {
			logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		env.Logger = logger
		return SExpr()
	}
}

// WithReader returns a Config that makes environments use r to parse source
// streams.  There is no default Reader for an environment.
func WithReader(r Reader) Config {
	return func(env *LEnv) *LVal {
		env.Reader = r
		return SExpr()
	}
}

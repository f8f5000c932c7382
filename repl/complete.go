package repl

import (
	"strings"

	"github.com/bmatsuo/lispy/lisp"
	"github.com/chzyer/readline"
)

// symbolCompleter completes the symbol under the cursor with the names bound
// in an environment.
type symbolCompleter struct {
	env *lisp.LEnv
}

var _ readline.AutoCompleter = (*symbolCompleter)(nil)

// Do implements readline.AutoCompleter.  Candidates are returned in the
// order the symbols were bound.
func (c *symbolCompleter) Do(line []rune, pos int) ([][]rune, int) {
	if pos > len(line) {
		pos = len(line)
	}
	start := pos
	for start > 0 && !isDelim(line[start-1]) {
		start--
	}
	prefix := string(line[start:pos])
	var candidates [][]rune
	for _, name := range c.env.Names() {
		if strings.HasPrefix(name, prefix) {
			candidates = append(candidates, []rune(name[len(prefix):]))
		}
	}
	return candidates, len([]rune(prefix))
}

func isDelim(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '(', ')', '{', '}':
		return true
	}
	return false
}

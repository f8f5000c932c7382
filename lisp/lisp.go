package lisp

import (
	"bytes"
	"fmt"
	"strconv"
)

// LValType is the type of an LVal
type LValType uint

// Possible LValType values
const (
	LInvalid LValType = iota
	LNumber
	LError
	LSymbol
	LFun
	LSExpr
	LQExpr
)

var lvalTypeStrings = []string{
	LInvalid: "INVALID",
	LNumber:  "number",
	LError:   "error",
	LSymbol:  "symbol",
	LFun:     "function",
	LSExpr:   "sexpr",
	LQExpr:   "qexpr",
}

func (t LValType) String() string {
	if int(t) >= len(lvalTypeStrings) {
		return lvalTypeStrings[LInvalid]
	}
	return lvalTypeStrings[t]
}

// LBuiltin is a function that performs executes a lisp function.
type LBuiltin func(env *LEnv, args *LVal) *LVal

// LVal is a lisp value.  Only the fields relevant to Type are meaningful.
// An LSExpr or LQExpr owns its Cells; no cell is ever shared between two
// containers (or between a container and an LEnv).
type LVal struct {
	Type  LValType
	Num   int64
	Sym   string
	Err   error
	Cells []*LVal

	// Variables needed for function values
	FID     string
	Builtin LBuiltin
}

// Number returns an LVal representing the number x.
func Number(x int64) *LVal {
	return &LVal{
		Type: LNumber,
		Num:  x,
	}
}

// Symbol returns an LVal resprenting the symbol s
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Sym:  s,
	}
}

// SExpr returns an LVal representing an S-expression, a symbolic expression.
func SExpr() *LVal {
	return &LVal{
		Type: LSExpr,
	}
}

// QExpr returns an LVal representing an Q-expression, a quoted expression, a
// list.
func QExpr() *LVal {
	return &LVal{
		Type: LQExpr,
	}
}

// Fun returns an LVal representing the builtin function fn, identified by
// fid.
func Fun(fid string, fn LBuiltin) *LVal {
	return &LVal{
		Type:    LFun,
		FID:     fid,
		Builtin: fn,
	}
}

// Error returns an LVal representing the error corresponding to err.
func Error(err error) *LVal {
	return &LVal{
		Type: LError,
		Err:  err,
	}
}

// Errorf returns an LVal representing with a formatted error message.
func Errorf(format string, v ...interface{}) *LVal {
	return ErrnoPanic.Errorf(format, v...)
}

// IsList returns true if v is an LSExpr or an LQExpr.
func (v *LVal) IsList() bool {
	return v.Type == LSExpr || v.Type == LQExpr
}

// IsNil returns true if v is an empty list.
func (v *LVal) IsNil() bool {
	return v.IsList() && len(v.Cells) == 0
}

// Len returns the number of cells in v.
func (v *LVal) Len() int {
	return len(v.Cells)
}

// Append adds x as the last cell of v and returns v.  Append returns an error
// if v is not a list.
func (v *LVal) Append(x *LVal) *LVal {
	if !v.IsList() {
		return ErrnoType.Errorf("cannot append to %v", v.Type)
	}
	v.Cells = append(v.Cells, x)
	return v
}

// Take removes the cell at index i from v and returns it.  Subsequent cells
// are shifted down.  If i is out of range an error is returned and v is left
// unmodified.
func (v *LVal) Take(i int) *LVal {
	if i < 0 || i >= len(v.Cells) {
		return ErrnoIndex.Errorf("index out of range")
	}
	x := v.Cells[i]
	copy(v.Cells[i:], v.Cells[i+1:])
	v.Cells[len(v.Cells)-1] = nil
	v.Cells = v.Cells[:len(v.Cells)-1]
	return x
}

// Consume is like Take but it discards the remaining cells of v, leaving it
// empty.  Consume is used to unwrap a single value from a list that is no
// longer needed.
func (v *LVal) Consume(i int) *LVal {
	x := v.Take(i)
	v.Cells = nil
	return x
}

// Copy creates a deep copy of the receiver.
func (v *LVal) Copy() *LVal {
	if v == nil {
		return nil
	}
	cp := &LVal{}
	*cp = *v                 // shallow copy of all fields
	cp.Cells = v.copyCells() // deep copy of v.Cells
	return cp
}

func (v *LVal) copyCells() []*LVal {
	if len(v.Cells) == 0 {
		return nil
	}
	cells := make([]*LVal, len(v.Cells))
	for i := range cells {
		cells[i] = v.Cells[i].Copy()
	}
	return cells
}

func (v *LVal) String() string {
	switch v.Type {
	case LNumber:
		return strconv.FormatInt(v.Num, 10)
	case LError:
		if v.Err == nil {
			return ""
		}
		return v.Err.Error()
	case LSymbol:
		return v.Sym
	case LFun:
		return "<builtin>"
	case LSExpr:
		return exprString(v, "(", ")")
	case LQExpr:
		return exprString(v, "{", "}")
	default:
		return fmt.Sprintf("%#v", v)
	}
}

func exprString(v *LVal, left string, right string) string {
	if len(v.Cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range v.Cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}

package lisp

import "math"

// numOp combines two integers.  A non-nil LVal return is an LError which
// aborts the fold.
type numOp func(x, y int64) (int64, *LVal)

func builtinAdd(env *LEnv, args *LVal) *LVal { return foldNumbers("+", args, opAdd) }
func builtinSub(env *LEnv, args *LVal) *LVal { return foldNumbers("-", args, opSub) }
func builtinMul(env *LEnv, args *LVal) *LVal { return foldNumbers("*", args, opMul) }
func builtinDiv(env *LEnv, args *LVal) *LVal { return foldNumbers("/", args, opDiv) }
func builtinMod(env *LEnv, args *LVal) *LVal { return foldNumbers("%", args, opMod) }
func builtinPow(env *LEnv, args *LVal) *LVal { return foldNumbers("^", args, opPow) }

// foldNumbers folds op over args from left to right using the first argument
// as the seed.  A lone argument to "-" is negated.
func foldNumbers(fun string, args *LVal, op numOp) *LVal {
	if len(args.Cells) == 0 {
		return ErrnoArity.Errorf("Function '%s' passed no arguments!", fun)
	}
	for _, c := range args.Cells {
		if c.Type != LNumber {
			return ErrnoType.Errorf("Cannot operate on non-number!")
		}
	}

	x := args.Take(0)
	if fun == "-" && len(args.Cells) == 0 {
		if x.Num == math.MinInt64 {
			return errOverflow()
		}
		x.Num = -x.Num
	}
	for len(args.Cells) > 0 {
		y := args.Take(0)
		n, lerr := op(x.Num, y.Num)
		if lerr != nil {
			return lerr
		}
		x.Num = n
	}
	return x
}

func errOverflow() *LVal {
	return ErrnoOverflow.Errorf("Integer overflow")
}

func errDivZero() *LVal {
	return ErrnoDivZero.Errorf("Division by zero")
}

func opAdd(x, y int64) (int64, *LVal) {
	z := x + y
	if (z > x) != (y > 0) {
		return 0, errOverflow()
	}
	return z, nil
}

func opSub(x, y int64) (int64, *LVal) {
	z := x - y
	if (z < x) != (y > 0) {
		return 0, errOverflow()
	}
	return z, nil
}

func opMul(x, y int64) (int64, *LVal) {
	if x == 0 || y == 0 {
		return 0, nil
	}
	if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, errOverflow()
	}
	z := x * y
	if z/y != x {
		return 0, errOverflow()
	}
	return z, nil
}

func opDiv(x, y int64) (int64, *LVal) {
	if y == 0 {
		return 0, errDivZero()
	}
	if x == math.MinInt64 && y == -1 {
		return 0, errOverflow()
	}
	return x / y, nil
}

func opMod(x, y int64) (int64, *LVal) {
	if y == 0 {
		return 0, errDivZero()
	}
	return x % y, nil
}

// opPow computes x**y by repeated squaring.
func opPow(x, y int64) (int64, *LVal) {
	if y < 0 {
		return 0, ErrnoDomain.Errorf("Negative exponent")
	}
	z := int64(1)
	for y > 0 {
		var lerr *LVal
		if y&1 == 1 {
			z, lerr = opMul(z, x)
			if lerr != nil {
				return 0, lerr
			}
		}
		y >>= 1
		if y > 0 {
			x, lerr = opMul(x, x)
			if lerr != nil {
				return 0, lerr
			}
		}
	}
	return z, nil
}

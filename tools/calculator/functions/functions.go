// Package functions provides the math functions available inside
// calculator expressions.
package functions

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
)

// Functions maps function names usable in expressions to their
// implementations. All numeric arguments arrive as float64.
var Functions = map[string]govaluate.ExpressionFunction{
	"sqrt": func(args ...interface{}) (interface{}, error) {
		v, err := number("sqrt", args)
		if err != nil {
			return nil, err
		}
		return math.Sqrt(v), nil
	},
	"abs": func(args ...interface{}) (interface{}, error) {
		v, err := number("abs", args)
		if err != nil {
			return nil, err
		}
		return math.Abs(v), nil
	},
	"log": func(args ...interface{}) (interface{}, error) {
		v, err := number("log", args)
		if err != nil {
			return nil, err
		}
		return math.Log(v), nil
	},
	"log10": func(args ...interface{}) (interface{}, error) {
		v, err := number("log10", args)
		if err != nil {
			return nil, err
		}
		return math.Log10(v), nil
	},
	"exp": func(args ...interface{}) (interface{}, error) {
		v, err := number("exp", args)
		if err != nil {
			return nil, err
		}
		return math.Exp(v), nil
	},
	"sin": func(args ...interface{}) (interface{}, error) {
		v, err := number("sin", args)
		if err != nil {
			return nil, err
		}
		return math.Sin(v), nil
	},
	"cos": func(args ...interface{}) (interface{}, error) {
		v, err := number("cos", args)
		if err != nil {
			return nil, err
		}
		return math.Cos(v), nil
	},
	"tan": func(args ...interface{}) (interface{}, error) {
		v, err := number("tan", args)
		if err != nil {
			return nil, err
		}
		return math.Tan(v), nil
	},
	"pow": func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("pow expects 2 arguments, got %d", len(args))
		}
		x, ok1 := args[0].(float64)
		y, ok2 := args[1].(float64)
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("pow expects numeric arguments")
		}
		return math.Pow(x, y), nil
	},
	// factorial overflows float64 beyond 170!.
	"factorial": func(args ...interface{}) (interface{}, error) {
		v, err := number("factorial", args)
		if err != nil {
			return nil, err
		}
		n := int(v)
		if float64(n) != v || n < 0 {
			return nil, fmt.Errorf("factorial expects a non-negative integer, got %v", v)
		}
		if n > 170 {
			return nil, fmt.Errorf("factorial of %d overflows", n)
		}
		ret := 1.0
		for i := 2; i <= n; i++ {
			ret *= float64(i)
		}
		return ret, nil
	},
	"is_prime": func(args ...interface{}) (interface{}, error) {
		v, err := number("is_prime", args)
		if err != nil {
			return nil, err
		}
		n := int(v)
		if float64(n) != v {
			return nil, fmt.Errorf("is_prime expects an integer, got %v", v)
		}
		if n < 2 {
			return false, nil
		}
		for i := 2; i*i <= n; i++ {
			if n%i == 0 {
				return false, nil
			}
		}
		return true, nil
	},
}

func number(name string, args []interface{}) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%s expects 1 argument, got %d", name, len(args))
	}
	v, ok := args[0].(float64)
	if !ok {
		return 0, fmt.Errorf("%s expects a numeric argument", name)
	}
	return v, nil
}

package calculator

import (
	"math"
)

// Constants available as bare identifiers inside expressions.
var constParams = map[string]interface{}{
	"pi":     math.Pi,
	"e":      math.E,
	"phi":    math.Phi,
	"sqrt2":  math.Sqrt2,
	"sqrtpi": math.SqrtPi,
	"ln2":    math.Ln2,
	"log2e":  math.Log2E,
	"ln10":   math.Ln10,
}

// Package calculator is a tool for evaluating mathematical expressions.
package calculator

import (
	"context"
	"encoding/json"

	"github.com/Knetic/govaluate"

	"github.com/geminikit/agentpack/schema"
	"github.com/geminikit/agentpack/tools"
	"github.com/geminikit/agentpack/tools/calculator/functions"
)

// Input Tool for performing calculations. Supports basic arithmetic operations
// like addition, subtraction, multiplication, and division, as well as more
// complex operations like exponentiation and trigonometric functions.
// Use this tool to evaluate mathematical expressions.
type Input struct {
	schema.Base
	// Expression Mathematical expression to evaluate. For example, '2 + 2'.
	Expression string `json:"expression" jsonschema:"title=expression,description=Mathematical expression to evaluate. For example, '2 + 2'." validate:"required"`
	// Params represents expressions's parameters
	Params map[string]interface{} `json:"params,omitempty" jsonschema:"title=params,description=Parameters for the expression."`
}

func NewInput(exp string, params map[string]interface{}) *Input {
	return &Input{
		Expression: exp,
		Params:     params,
	}
}

func (s Input) String() string {
	return schema.JSONString(s)
}

// Output Schema for the output of the CalculatorTool
type Output struct {
	schema.Base
	// Result Result of the calculation
	Result interface{} `json:"result,omitempty" jsonschema:"title=result,description=Result of the calculation."`
}

func NewOutput(result interface{}) *Output {
	return &Output{
		Result: result,
	}
}

func (s Output) String() string {
	return schema.JSONString(s)
}

type Tool struct {
	tools.Config
}

var _ tools.AnonymousTool = (*Tool)(nil)

func New(opts ...tools.Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("CalculatorTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("Evaluates mathematical expressions including trigonometric functions, factorials and primality checks.")
	}
	return ret
}

// Run executes the CalculatorTool with the given parameters.
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	t.OnStart(ctx, t, input)
	exp, err := govaluate.NewEvaluableExpressionWithFunctions(input.Expression, functions.Functions)
	if err != nil {
		t.OnError(ctx, t, input, err)
		return nil, err
	}
	params := make(map[string]interface{}, len(input.Params)+len(constParams))
	for k, v := range input.Params {
		params[k] = v
	}
	for k, v := range constParams {
		if _, ok := params[k]; ok {
			continue
		}
		params[k] = v
	}
	result, err := exp.Evaluate(params)
	if err != nil {
		t.OnError(ctx, t, input, err)
		return nil, err
	}
	out := NewOutput(result)
	t.OnEnd(ctx, t, input, out)
	return out, nil
}

// Functions implements tools.AnonymousTool.
func (t *Tool) Functions() []tools.Function {
	return []tools.Function{
		{
			Name:        "calculate",
			Description: "Evaluate a mathematical expression and return the result. Supports arithmetic, sqrt, pow, log, trigonometry, factorial and is_prime.",
			Parameters:  tools.Reflect(&Input{}),
			Call: func(ctx context.Context, args json.RawMessage) (any, error) {
				input := new(Input)
				if err := tools.DecodeArgs(args, input); err != nil {
					return nil, err
				}
				return t.Run(ctx, input)
			},
		},
	}
}

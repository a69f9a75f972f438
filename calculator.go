package agentpack

import (
	"github.com/geminikit/agentpack/agents"
	"github.com/geminikit/agentpack/gemini"
	"github.com/geminikit/agentpack/tools/calculator"
)

// NewCalculatorAgent returns an agent that evaluates mathematical
// expressions, from basic arithmetic to factorials and primality checks.
func NewCalculatorAgent(clt *gemini.Client, opts ...Option) *agents.Agent {
	s := newSettings(opts)
	tool := calculator.New()
	return agents.New(s.agentOptions(clt,
		"calculator",
		"You are a mathematical computation agent capable of performing a wide range of arithmetic and algebraic operations. "+
			"You can perform basic arithmetic operations such as addition, subtraction, multiplication, and division. "+
			"Additionally, you support advanced operations including exponentiation, factorial calculation, prime number checking, and square root computation. "+
			"This makes you a versatile tool for solving both simple and complex mathematical problems.",
		[]string{
			"1. Perform basic arithmetic operations such as addition, subtraction, multiplication, and division.",
			"2. Compute exponentiation (raising numbers to a power).",
			"3. Calculate the factorial of a number.",
			"4. Check if a number is prime.",
			"5. Compute the square root of a given number.",
			"6. Ensure all results are returned clearly and concisely.",
			"7. Use markdown formatting for presenting the answers in a clean and readable manner.",
			"8. If an operation is not supported or invalid, provide an appropriate error message.",
		},
		true,
		tool,
	)...)
}

package brief

import "github.com/geminikit/agentpack/components/systemprompt"

type Option = func(g *Generator)

// WithBackground set the agent background lines
func WithBackground(lines ...string) Option {
	return func(g *Generator) {
		g.background = append(g.background, lines...)
	}
}

// WithSteps set the agent working steps
func WithSteps(lines ...string) Option {
	return func(g *Generator) {
		g.steps = append(g.steps, lines...)
	}
}

// WithOutputInstructions set the output formatting instructions
func WithOutputInstructions(lines ...string) Option {
	return func(g *Generator) {
		g.outputInstructions = append(g.outputInstructions, lines...)
	}
}

// WithContextProviders set Generator context providers
func WithContextProviders(providers ...systemprompt.ContextProvider) Option {
	return func(g *Generator) {
		g.AddContextProviders(providers...)
	}
}

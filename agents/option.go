package agents

import (
	"github.com/geminikit/agentpack/components"
	"github.com/geminikit/agentpack/components/systemprompt"
	"github.com/geminikit/agentpack/gemini"
	"github.com/geminikit/agentpack/tools"
)

type Option func(*Config)

// WithClient sets the Gemini client the agent talks through.
func WithClient(clt *gemini.Client) Option {
	return func(c *Config) {
		c.client = clt
	}
}

// WithModel sets the model name.
func WithModel(model string) Option {
	return func(c *Config) {
		c.model = model
	}
}

// WithName sets the agent name.
func WithName(name string) Option {
	return func(c *Config) {
		c.name = name
	}
}

// WithDescription sets the agent description, used as the system prompt
// background unless a generator is supplied.
func WithDescription(description string) Option {
	return func(c *Config) {
		c.description = description
	}
}

// WithInstructions sets the working steps of the system prompt.
func WithInstructions(instructions ...string) Option {
	return func(c *Config) {
		c.instructions = instructions
	}
}

// WithTools binds capabilities to the agent.
func WithTools(list ...tools.AnonymousTool) Option {
	return func(c *Config) {
		c.tools = list
	}
}

// WithMembers sets the agents an orchestrator may delegate to.
func WithMembers(members ...AnonymousAgent) Option {
	return func(c *Config) {
		c.members = members
	}
}

// WithShowToolCalls includes the tool call trace in replies.
func WithShowToolCalls(v bool) Option {
	return func(c *Config) {
		c.showToolCalls = v
	}
}

// WithDebugMode emits debug log records during turns.
func WithDebugMode(v bool) Option {
	return func(c *Config) {
		c.debugMode = v
	}
}

// WithMarkdown requests markdown formatted replies.
func WithMarkdown(v bool) Option {
	return func(c *Config) {
		c.markdown = v
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(v float32) Option {
	return func(c *Config) {
		c.temperature = v
	}
}

// WithMaxTokens bounds the reply length.
func WithMaxTokens(n int) Option {
	return func(c *Config) {
		c.maxTokens = n
	}
}

// WithMemory replaces the default unbounded memory.
func WithMemory(m *components.Memory) Option {
	return func(c *Config) {
		c.memory = m
	}
}

// WithSystemPromptGenerator replaces the generated system prompt.
func WithSystemPromptGenerator(g systemprompt.Generator) Option {
	return func(c *Config) {
		c.systemPromptGenerator = g
	}
}

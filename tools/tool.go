package tools

import (
	"context"
)

// ITool is the configuration surface shared by all tools.
type ITool interface {
	SetTitle(string)
	Title() string
	SetDescription(string)
	Description() string
	SetStartHook(fn func(context.Context, ITool, any))
	SetEndHook(fn func(context.Context, ITool, any, any))
	SetErrorHook(fn func(context.Context, ITool, any, error))
}

// Tool is a typed capability with a single entry point.
type Tool[I any, O any] interface {
	ITool
	Run(context.Context, *I) (*O, error)
}

// AnonymousTool is a capability binding as seen by an agent: a set of
// callable functions declared to the model.
type AnonymousTool interface {
	ITool
	Functions() []Function
}

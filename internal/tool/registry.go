// Package tool exposes the store operations as a registry of callable tools:
// each tool carries a name, a description, and JSON-schema-shaped parameters,
// and executes against typed usecase inputs. This is the caller-facing
// surface an agent host binds to; the registry itself has no transport.
package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	ErrUnknownTool   = errors.New("unknown tool")
	ErrDuplicateTool = errors.New("tool already registered")
	ErrBadArguments  = errors.New("malformed tool arguments")
)

type HandlerFunc func(ctx context.Context, args json.RawMessage) (any, error)

type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
	Handler     HandlerFunc    `json:"-"`
}

type Registry struct {
	tools  map[string]Tool
	order  []string
	logger *zap.Logger
}

func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		tools:  make(map[string]Tool),
		logger: logger,
	}
}

func (r *Registry) Register(t Tool) error {
	if t.Name == "" || t.Handler == nil {
		return fmt.Errorf("tool must have a name and a handler")
	}
	if _, exists := r.tools[t.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, t.Name)
	}
	r.tools[t.Name] = t
	r.order = append(r.order, t.Name)
	return nil
}

// List returns the registered tools in registration order.
func (r *Registry) List() []Tool {
	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Execute dispatches a call by tool name. Unknown tools and handler failures
// come back as descriptive errors; a nil result never pairs with a nil error.
func (r *Registry) Execute(ctx context.Context, name string, args json.RawMessage) (any, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}

	result, err := t.Handler(ctx, args)
	if err != nil {
		r.logger.Warn("tool call failed",
			zap.String("tool", name),
			zap.Error(err))
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	r.logger.Debug("tool call completed", zap.String("tool", name))
	return result, nil
}

// decode unmarshals tool arguments into a typed value, mapping JSON errors
// onto ErrBadArguments.
func decode[T any](args json.RawMessage) (*T, error) {
	var v T
	if len(args) == 0 {
		return &v, nil
	}
	if err := json.Unmarshal(args, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArguments, err)
	}
	return &v, nil
}

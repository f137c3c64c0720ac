// Package adapter exposes the search tools behind a uniform, loosely
// typed interface so embedders (scripting surfaces, tool protocols) can
// invoke them with plain argument maps.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Validator is an interface for request types that support validation.
type Validator interface {
	Validate() error
}

// Tool is the uniform surface an embedder sees.
type Tool interface {
	Name() string
	Description() string
	Execute(ctx context.Context, args map[string]any) (string, error)
}

// ToolExecutor runs a tool with a typed request and response.
type ToolExecutor[Req, Resp any] func(ctx context.Context, req *Req) (Resp, error)

// BaseAdapter provides common adapter functionality using generics:
// argument decoding (mapstructure), validation, execution, and response
// marshaling live here once instead of in every adapter.
type BaseAdapter[Req, Resp any] struct {
	name        string
	description string
	executor    ToolExecutor[Req, Resp]
}

// NewBaseAdapter creates a new base adapter with the given configuration.
func NewBaseAdapter[Req, Resp any](name, description string, executor ToolExecutor[Req, Resp]) *BaseAdapter[Req, Resp] {
	return &BaseAdapter[Req, Resp]{
		name:        name,
		description: description,
		executor:    executor,
	}
}

// Name implements Tool
func (b *BaseAdapter[Req, Resp]) Name() string {
	return b.name
}

// Description implements Tool
func (b *BaseAdapter[Req, Resp]) Description() string {
	return b.description
}

// Execute implements Tool. It decodes the args map into a typed request,
// validates it when the request implements Validator, runs the executor,
// and marshals the response to JSON.
func (b *BaseAdapter[Req, Resp]) Execute(ctx context.Context, args map[string]any) (string, error) {
	var req Req

	if err := mapstructure.Decode(args, &req); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	if v, ok := any(&req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return "", fmt.Errorf("%s validation failed: %w", b.name, err)
		}
	}

	resp, err := b.executor(ctx, &req)
	if err != nil {
		return "", err
	}

	bytes, err := json.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}

	return string(bytes), nil
}

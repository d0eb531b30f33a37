package script

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/osse101/CraftPanel_Go/internal/domain"
)

// Func is a Go implementation of a script.
type Func func(ctx context.Context, args Args) (interface{}, error)

// FuncProvider resolves sources of the form "go:<name>" to registered functions.
type FuncProvider struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

// NewFuncProvider creates an empty FuncProvider
func NewFuncProvider() *FuncProvider {
	return &FuncProvider{funcs: make(map[string]Func)}
}

// Register binds name to fn, replacing any previous binding.
func (p *FuncProvider) Register(name string, fn Func) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.funcs[name] = fn
}

// Evaluate implements Provider.
func (p *FuncProvider) Evaluate(ctx context.Context, source string, args Args) (interface{}, error) {
	name := strings.TrimSpace(strings.TrimPrefix(source, GoPrefix))

	p.mu.RLock()
	fn, ok := p.funcs[name]
	p.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%s %q | %w", ErrMsgUnknownFunction, name, domain.ErrScriptFailed)
	}
	return fn(ctx, args)
}

// Mux sends "go:" sources to a FuncProvider and everything else to a fallback.
type Mux struct {
	Funcs    *FuncProvider
	Fallback Provider
}

// Evaluate implements Provider.
func (m *Mux) Evaluate(ctx context.Context, source string, args Args) (interface{}, error) {
	if strings.HasPrefix(strings.TrimSpace(source), GoPrefix) && m.Funcs != nil {
		return m.Funcs.Evaluate(ctx, strings.TrimSpace(source), args)
	}
	if m.Fallback == nil {
		return nil, fmt.Errorf("no provider for script | %w", domain.ErrScriptFailed)
	}
	return m.Fallback.Evaluate(ctx, source, args)
}

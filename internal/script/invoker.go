package script

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/logger"
)

// ErrorFunc receives script failures after they are logged.
type ErrorFunc func(ctx context.Context, site string, err error)

// Invoker runs scripts and turns failures into absent results.
type Invoker struct {
	provider Provider
	onError  ErrorFunc
}

// NewInvoker creates an Invoker. onError may be nil.
func NewInvoker(provider Provider, onError ErrorFunc) *Invoker {
	return &Invoker{provider: provider, onError: onError}
}

// Run evaluates source at the named call site. An empty source returns
// (nil, false) without evaluating. Errors and panics are reported and
// also yield (nil, false).
func (i *Invoker) Run(ctx context.Context, site, source string, args Args) (result interface{}, ok bool) {
	if strings.TrimSpace(source) == "" || i == nil || i.provider == nil {
		return nil, false
	}

	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Warn(LogMsgScriptPanicked, "site", site, "panic", r)
			i.report(ctx, site, fmt.Errorf("%s: %v | %w", site, r, domain.ErrScriptFailed))
			result, ok = nil, false
		}
	}()

	res, err := i.provider.Evaluate(ctx, source, args)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgScriptFailed, "site", site, "error", err)
		i.report(ctx, site, fmt.Errorf("%s: %v | %w", site, err, domain.ErrScriptFailed))
		return nil, false
	}
	return res, true
}

func (i *Invoker) report(ctx context.Context, site string, err error) {
	if i.onError != nil {
		i.onError(ctx, site, err)
	}
}

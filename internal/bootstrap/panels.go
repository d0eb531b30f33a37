package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/CraftPanel_Go/internal/panel"
	"github.com/osse101/CraftPanel_Go/internal/script"
	"github.com/osse101/CraftPanel_Go/internal/validation"
)

// NewScriptProvider routes "go:" sources to registered Go functions and
// everything else to the Lua sandbox. The returned FuncProvider is where
// host code registers its functions.
func NewScriptProvider() (script.Provider, *script.FuncProvider) {
	funcs := script.NewFuncProvider()
	return &script.Mux{Funcs: funcs, Fallback: script.NewLuaProvider()}, funcs
}

// LoadCatalog reads and schema-validates every panel document in dir
func LoadCatalog(ctx context.Context, dir string) (*panel.Catalog, error) {
	catalog, err := panel.NewLoader(validation.NewSchemaValidator()).LoadDir(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadPanels, err)
	}
	return catalog, nil
}

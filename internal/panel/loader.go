// Package panel loads crafting panel documents and tracks the sessions
// opened on them.
package panel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/logger"
	"github.com/osse101/CraftPanel_Go/internal/utils"
	"github.com/osse101/CraftPanel_Go/internal/validation"
)

// Sentinel errors for the panel loader
var (
	ErrDuplicateKey  = errors.New("duplicate key")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Loader reads panel documents from JSON or YAML files
type Loader interface {
	LoadFile(path string) (*domain.Panel, error)
	LoadDir(ctx context.Context, dir string) (*Catalog, error)
}

type loader struct {
	schemas validation.SchemaValidator
}

// NewLoader creates a Loader validating documents against the embedded panel schema
func NewLoader(schemas validation.SchemaValidator) Loader {
	return &loader{schemas: schemas}
}

// LoadFile reads, validates and normalizes a single panel document
func (l *loader) LoadFile(path string) (*domain.Panel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgReadPanel, path, err)
	}
	if utils.IsYAML(path) {
		if data, err = utils.YAMLToJSON(data); err != nil {
			return nil, fmt.Errorf("%s %s: %w", ErrMsgParsePanel, path, err)
		}
	}

	if l.schemas != nil {
		if err := l.schemas.ValidateBytes(data, validation.PanelSchema); err != nil {
			return nil, fmt.Errorf("%s %s: %v | %w", ErrMsgSchemaPanel, path, err, ErrInvalidConfig)
		}
	}

	var p domain.Panel
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgParsePanel, path, err)
	}

	Normalize(&p)
	if err := Validate(&p); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &p, nil
}

// LoadDir loads every panel document in dir into a new Catalog. A missing
// directory yields an empty catalog.
func (l *loader) LoadDir(ctx context.Context, dir string) (*Catalog, error) {
	log := logger.FromContext(ctx)
	catalog := NewCatalog()

	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		log.Warn(LogMsgPanelsDirMissing, "dir", dir)
		return catalog, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgReadPanelsDir, dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !isPanelFile(entry.Name()) {
			continue
		}
		p, err := l.LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if catalog.Has(p.ID) {
			return nil, fmt.Errorf("%w: panel '%s' in %s", ErrDuplicateKey, p.ID, entry.Name())
		}
		catalog.Put(p)
		log.Debug(LogMsgPanelLoaded, "panel", p.ID, "file", entry.Name())
	}

	log.Info(LogMsgPanelsLoaded, "count", catalog.Len(), "dir", dir)
	return catalog, nil
}

func isPanelFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".json") || utils.IsYAML(name)
}

// Normalize fills in the defaults a document may leave out
func Normalize(p *domain.Panel) {
	if p.Kind == "" {
		p.Kind = domain.PanelRecipe
	}
	normalizeResults(p.Results)
	for i := range p.Recipes {
		normalizeResults(p.Recipes[i].Results)
		for j := range p.Recipes[i].Ingredients {
			normalizeRequirement(&p.Recipes[i].Ingredients[j])
		}
	}
	for i := range p.Modifiers {
		for j := range p.Modifiers[i].Ingredients {
			normalizeRequirement(&p.Modifiers[i].Ingredients[j])
		}
	}
	for i := range p.Elements {
		if p.Elements[i].Visible == "" {
			p.Elements[i].Visible = domain.VisibleAlways
		}
		if p.Elements[i].MultiShow == "" {
			p.Elements[i].MultiShow = domain.MultiShowMax
		}
		if p.Elements[i].MultiValue == "" {
			p.Elements[i].MultiValue = domain.MultiValueMax
		}
	}

	sort.SliceStable(p.Recipes, func(i, j int) bool { return p.Recipes[i].Sort < p.Recipes[j].Sort })
	sort.SliceStable(p.Modifiers, func(i, j int) bool { return p.Modifiers[i].Sort < p.Modifiers[j].Sort })
	sort.SliceStable(p.Slots, func(i, j int) bool { return p.Slots[i].Position < p.Slots[j].Position })
}

func normalizeResults(results []domain.RecipeResult) {
	for i := range results {
		if results[i].Quantity <= 0 {
			results[i].Quantity = domain.DefaultResultQuantity
		}
		if results[i].Type == "" {
			results[i].Type = domain.ResultItem
		}
	}
}

func normalizeRequirement(r *domain.ElementRequirement) {
	if r.Type == "" {
		r.Type = domain.RequirementElement
	}
}

// Validate checks cross references the schema cannot express
func Validate(p *domain.Panel) error {
	if p.ID == "" {
		return fmt.Errorf("%w: panel has empty id", ErrInvalidConfig)
	}
	if p.Kind != domain.PanelRecipe && p.Kind != domain.PanelBlend {
		return fmt.Errorf("%w: panel '%s' has unknown kind '%s'", ErrInvalidConfig, p.ID, p.Kind)
	}
	if p.Kind == domain.PanelBlend && len(p.Recipes) > 0 {
		return fmt.Errorf("%w: blend panel '%s' declares recipes", ErrInvalidConfig, p.ID)
	}

	if err := unique("slot", len(p.Slots), func(i int) string { return p.Slots[i].ID }); err != nil {
		return err
	}
	if err := unique("recipe", len(p.Recipes), func(i int) string { return p.Recipes[i].ID }); err != nil {
		return err
	}
	if err := unique("modifier", len(p.Modifiers), func(i int) string { return p.Modifiers[i].ID }); err != nil {
		return err
	}
	if err := unique("category", len(p.Categories), func(i int) string { return p.Categories[i].ID }); err != nil {
		return err
	}

	for _, m := range p.Modifiers {
		for _, c := range m.Category {
			if _, ok := p.Category(c); !ok {
				return fmt.Errorf("%w: modifier '%s' references unknown category '%s'", ErrInvalidConfig, m.ID, c)
			}
		}
		if m.Cost < 0 {
			return fmt.Errorf("%w: modifier '%s' has negative cost", ErrInvalidConfig, m.ID)
		}
	}
	for _, c := range p.Categories {
		if c.Limit < 0 {
			return fmt.Errorf("%w: category '%s' has negative limit", ErrInvalidConfig, c.ID)
		}
	}
	return nil
}

func unique(kind string, n int, id func(int) string) error {
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		key := id(i)
		if key == "" {
			return fmt.Errorf("%w: %s at index %d has empty id", ErrInvalidConfig, kind, i)
		}
		if seen[key] {
			return fmt.Errorf("%w: '%s' in %ss", ErrDuplicateKey, key, kind)
		}
		seen[key] = true
	}
	return nil
}

package panel

import (
	"fmt"
	"sort"
	"sync"

	"github.com/osse101/CraftPanel_Go/internal/domain"
)

// Catalog holds the loaded panel documents by id
type Catalog struct {
	mu     sync.RWMutex
	panels map[string]*domain.Panel
}

// NewCatalog creates a Catalog holding panels
func NewCatalog(panels ...*domain.Panel) *Catalog {
	c := &Catalog{panels: make(map[string]*domain.Panel, len(panels))}
	for _, p := range panels {
		c.Put(p)
	}
	return c
}

// Put adds or replaces a panel
func (c *Catalog) Put(p *domain.Panel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.panels[p.ID] = p
}

// Has reports whether a panel with id is loaded
func (c *Catalog) Has(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.panels[id]
	return ok
}

// Get returns the panel with id
func (c *Catalog) Get(id string) (*domain.Panel, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.panels[id]
	if !ok {
		return nil, fmt.Errorf("panel '%s' | %w", id, domain.ErrPanelNotFound)
	}
	return p, nil
}

// List returns all panels ordered by name, then id
func (c *Catalog) List() []*domain.Panel {
	c.mu.RLock()
	out := make([]*domain.Panel, 0, len(c.panels))
	for _, p := range c.panels {
		out = append(out, p)
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Len returns the number of loaded panels
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.panels)
}

// Package naming resolves item names typed or stored by users against the
// names actually present in an inventory.
package naming

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
)

// Resolver handles item name resolution and suggestions
type Resolver interface {
	// Resolve finds the registered name equal to name, ignoring case
	Resolve(name string) (string, bool)

	// Suggest returns the closest registered name within the edit limit
	Suggest(name string) (string, bool)

	// RegisterItem registers a name for resolution
	RegisterItem(name string)
}

type resolver struct {
	mu sync.RWMutex

	// Mapping: lower-case name -> registered name
	names map[string]string
}

// NewResolver creates a resolver over names
func NewResolver(names ...string) Resolver {
	r := &resolver{names: make(map[string]string, len(names))}
	for _, n := range names {
		r.RegisterItem(n)
	}
	return r
}

func (r *resolver) RegisterItem(name string) {
	if name == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names[strings.ToLower(name)] = name
}

func (r *resolver) Resolve(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.names[strings.ToLower(name)]
	return n, ok
}

func (r *resolver) Suggest(name string) (string, bool) {
	token := strings.ToLower(strings.TrimSpace(name))
	if token == "" {
		return "", false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	type scored struct {
		val  string
		dist int
	}
	var results []scored
	for lower, original := range r.names {
		switch {
		case lower == token:
			results = append(results, scored{val: original, dist: -2})
		case strings.HasPrefix(lower, token) && len(token) >= MinPrefixLength:
			results = append(results, scored{val: original, dist: -1})
		default:
			dist := levenshtein.ComputeDistance(token, lower)
			if dist > distanceLimit(len(lower)) {
				continue
			}
			results = append(results, scored{val: original, dist: dist})
		}
	}
	if len(results) == 0 {
		return "", false
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].dist == results[j].dist {
			return results[i].val < results[j].val
		}
		return results[i].dist < results[j].dist
	})
	return results[0].val, true
}

// Hint formats a suggestion for name, or returns "" when there is none
func Hint(r Resolver, name string) string {
	if s, ok := r.Suggest(name); ok {
		return fmt.Sprintf(SuggestionFormat, s)
	}
	return ""
}

func distanceLimit(length int) int {
	switch {
	case length <= ShortNameLength:
		return ShortNameDistance
	case length <= MediumNameLength:
		return MediumNameDistance
	default:
		return LongNameDistance
	}
}

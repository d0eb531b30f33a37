// Package rolltable rolls random tables and resolves the documents their
// entries reference.
package rolltable

import (
	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/weighted"
)

// Roll draws one entry from table. Entries without a weight count as 1.
func Roll(table *domain.RollTable, rnd func() float64) (domain.RollTableResult, bool) {
	if table == nil || len(table.Results) == 0 {
		return domain.RollTableResult{}, false
	}
	weights := make([]float64, len(table.Results))
	for i, r := range table.Results {
		weights[i] = r.Weight
		if weights[i] <= 0 {
			weights[i] = 1
		}
	}
	idx := weighted.Pick(weights, rnd())
	if idx < 0 {
		return domain.RollTableResult{}, false
	}
	return table.Results[idx], true
}

// ReferenceUUID returns the document UUID an entry points at. World items
// are "Item.<id>"; anything else lives in a compendium collection.
func ReferenceUUID(r domain.RollTableResult) string {
	if r.DocumentCollection == "" || r.DocumentCollection == domain.ItemCollection {
		return domain.ItemUUIDPrefix + r.DocumentID
	}
	return domain.CompendiumUUIDPrefix + r.DocumentCollection + "." + r.DocumentID
}

package domain

// Material is a consolidated ingredient entry of a craft.
type Material struct {
	Item       *Item `json:"item"`
	IsConsumed bool  `json:"isConsumed"`
	Quantity   int   `json:"quantity"`
}

// Product is a produced result of a craft.
type Product struct {
	Item     *Item `json:"item"`
	Quantity int   `json:"quantity"`
}

// Transaction is the ephemeral context of one craft invocation. Scripts
// receive it and may mutate Materials, Results and Canceled.
type Transaction struct {
	Materials         []Material `json:"materials"`
	Results           []Product  `json:"results"`
	SelectedModifiers []string   `json:"selectedModifiers"`
	Canceled          bool       `json:"canceled"`
}

// AddResult accumulates quantity onto an existing product with the same
// UUID or appends a new one.
func (t *Transaction) AddResult(item *Item, quantity int) {
	for i := range t.Results {
		if t.Results[i].Item.UUID == item.UUID {
			t.Results[i].Quantity += quantity
			return
		}
	}
	t.Results = append(t.Results, Product{Item: item, Quantity: quantity})
}

// Package pathutil reads and writes nested item properties through dotted
// paths such as "system.quantity".
package pathutil

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/osse101/CraftPanel_Go/internal/domain"
)

// Get returns the value at path in doc. A missing value reports Exists() == false.
func Get(doc []byte, path string) gjson.Result {
	return gjson.GetBytes(doc, path)
}

// Set writes value at path, creating intermediate objects as needed.
func Set(doc []byte, path string, value interface{}) ([]byte, error) {
	if len(doc) == 0 {
		doc = []byte("{}")
	}
	out, err := sjson.SetBytes(doc, path, value)
	if err != nil {
		return doc, fmt.Errorf("set %q | %w", path, err)
	}
	return out, nil
}

// SetRaw writes a raw JSON fragment at path.
func SetRaw(doc []byte, path string, raw []byte) ([]byte, error) {
	if len(doc) == 0 {
		doc = []byte("{}")
	}
	if !json.Valid(raw) {
		return doc, fmt.Errorf("set %q: raw value is not JSON | %w", path, domain.ErrInvalidInput)
	}
	out, err := sjson.SetRawBytes(doc, path, raw)
	if err != nil {
		return doc, fmt.Errorf("set %q | %w", path, err)
	}
	return out, nil
}

// Delete removes the value at path. Deleting a missing path is a no-op.
func Delete(doc []byte, path string) ([]byte, error) {
	if len(doc) == 0 {
		return doc, nil
	}
	out, err := sjson.DeleteBytes(doc, path)
	if err != nil {
		return doc, fmt.Errorf("delete %q | %w", path, err)
	}
	return out, nil
}

// Accessor reads and writes the configured quantity property of items.
type Accessor struct {
	QuantityPath string
}

// NewAccessor returns an accessor for quantityPath, falling back to the default path.
func NewAccessor(quantityPath string) Accessor {
	if quantityPath == "" {
		quantityPath = domain.DefaultQuantityPath
	}
	return Accessor{QuantityPath: quantityPath}
}

// Quantity returns the item's quantity. Items without a numeric quantity
// count as a single unit.
func (a Accessor) Quantity(item *domain.Item) int {
	if item == nil {
		return 0
	}
	res := Get(item.Data, a.QuantityPath)
	if res.Type != gjson.Number {
		return 1
	}
	return int(res.Int())
}

// SetQuantity writes the item's quantity in place.
func (a Accessor) SetQuantity(item *domain.Item, quantity int) error {
	out, err := Set(item.Data, a.QuantityPath, quantity)
	if err != nil {
		return err
	}
	item.Data = out
	return nil
}

// GetField reads any property of the item.
func (a Accessor) GetField(item *domain.Item, path string) gjson.Result {
	return Get(item.Data, path)
}

// SetField writes any property of the item in place.
func (a Accessor) SetField(item *domain.Item, path string, value interface{}) error {
	out, err := Set(item.Data, path, value)
	if err != nil {
		return err
	}
	item.Data = out
	return nil
}

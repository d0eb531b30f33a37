package domain

import "encoding/json"

// Item is a host document that can be placed in a slot or produced by a craft.
// Data holds the arbitrary nested properties of the item (system data,
// effects, flags) as JSON, read and written through dotted paths.
type Item struct {
	UUID     string          `json:"uuid" yaml:"uuid"`
	Name     string          `json:"name" yaml:"name"`
	Img      string          `json:"img,omitempty" yaml:"img,omitempty"`
	Type     string          `json:"type,omitempty" yaml:"type,omitempty"`
	Folder   string          `json:"folder,omitempty" yaml:"folder,omitempty"`
	OwnerID  string          `json:"owner_id,omitempty" yaml:"owner_id,omitempty"` // actor or container holding the item
	Elements []Element       `json:"elements,omitempty" yaml:"elements,omitempty"`
	Data     json.RawMessage `json:"data,omitempty" yaml:"-"`
}

// Clone returns a deep copy of the item so produced results never alias
// their source document.
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	c := *i
	if i.Elements != nil {
		c.Elements = append([]Element(nil), i.Elements...)
	}
	if i.Data != nil {
		c.Data = append(json.RawMessage(nil), i.Data...)
	}
	return &c
}

// Actor is a character owning an inventory of items.
type Actor struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	UserID string `json:"user_id,omitempty" yaml:"user_id,omitempty"`
}

// ItemUpdate is a quantity write issued by a craft commit.
type ItemUpdate struct {
	UUID     string `json:"uuid"`
	Quantity int    `json:"quantity"`
}

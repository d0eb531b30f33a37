package domain

// RollTable is a weighted random table whose entries reference documents.
type RollTable struct {
	UUID    string            `json:"uuid" yaml:"uuid"`
	Name    string            `json:"name" yaml:"name"`
	Results []RollTableResult `json:"results" yaml:"results"`
}

// RollTableResult is one entry of a roll table. DocumentCollection is
// "Item" for world items, otherwise the compendium collection holding the
// referenced document.
type RollTableResult struct {
	DocumentCollection string  `json:"documentCollection" yaml:"documentCollection"`
	DocumentID         string  `json:"documentId" yaml:"documentId"`
	Name               string  `json:"name,omitempty" yaml:"name,omitempty"`
	Weight             float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

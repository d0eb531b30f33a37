package script

// Entry is the script view of one material or result.
type Entry struct {
	UUID     string
	Name     string
	Quantity int
	Consumed bool
}

// Craft is the live transaction handle handed to craft scripts.
type Craft interface {
	Cancel()
	Canceled() bool
	Results() []Entry
	Materials() []Entry
	SetResultQuantity(uuid string, quantity int) bool
	RemoveResult(uuid string) bool
	SetResultField(uuid, path string, value interface{}) error
	SetMaterialQuantity(uuid string, quantity int) bool
}

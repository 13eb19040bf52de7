package domain

// Item is one stock-keeping unit on the shop floor.
// Name is never changed by the update rules; SellIn may go negative.
type Item struct {
	Name    string `json:"name"`
	SellIn  int    `json:"sell_in"`
	Quality int    `json:"quality"`
}

// NewItem returns a pointer to a freshly built item
func NewItem(name string, sellIn, quality int) *Item {
	return &Item{Name: name, SellIn: sellIn, Quality: quality}
}

// Clone returns a copy of the item that shares no state with the original
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}

package store

import "flakytodo/internal/model"

// ItemReader provides read access to items.
type ItemReader interface {
	FindItem(id int64) (model.Item, error)
	AllItems() []model.ItemSummary
	Len() int
}

// ItemWriter provides write access to items.
type ItemWriter interface {
	AddItem(summary, description string) model.Item
	DeleteItem(id int64) error
}

// ItemRepository combines all item operations for the API layer.
type ItemRepository interface {
	ItemReader
	ItemWriter
}

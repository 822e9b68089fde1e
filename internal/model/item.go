package model

// Item represents a single task on the list.
type Item struct {
	ID          int64  `json:"id"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
}

// ItemSummary is the list projection of an Item. It deliberately omits
// the description: listings show a one-line view, details come from a
// per-item lookup.
type ItemSummary struct {
	ID      int64  `json:"id"`
	Summary string `json:"summary"`
}

// NewItem creates an Item with the given id and caller-supplied fields.
func NewItem(id int64, summary, description string) Item {
	return Item{
		ID:          id,
		Summary:     summary,
		Description: description,
	}
}

// Summarize returns the list projection of the item.
func (it Item) Summarize() ItemSummary {
	return ItemSummary{ID: it.ID, Summary: it.Summary}
}

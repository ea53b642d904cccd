package lists

// GroceryItem is one grocery-list row. The capitalized JSON keys match the
// stored files, which are meant to stay readable when edited by hand.
type GroceryItem struct {
	Item     string `json:"Item"`
	Quantity string `json:"Quantity"`
	Notes    string `json:"Notes"`
}

// TodoItem is one todo-list row.
type TodoItem struct {
	Task string `json:"Task"`
	Done bool   `json:"Done"`
}

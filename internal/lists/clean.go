package lists

import "strings"

// CleanGrocery drops rows whose fields are all blank after trimming. Kept
// rows are preserved verbatim, whitespace included.
func CleanGrocery(rows []GroceryItem) []GroceryItem {
	clean := make([]GroceryItem, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row.Item) == "" &&
			strings.TrimSpace(row.Quantity) == "" &&
			strings.TrimSpace(row.Notes) == "" {
			continue
		}
		clean = append(clean, row)
	}
	return clean
}

// CleanTodo keeps only unfinished tasks with non-blank text. Completed rows
// are removed at save time and never retained.
func CleanTodo(rows []TodoItem) []TodoItem {
	clean := make([]TodoItem, 0, len(rows))
	for _, row := range rows {
		if row.Done || strings.TrimSpace(row.Task) == "" {
			continue
		}
		clean = append(clean, row)
	}
	return clean
}

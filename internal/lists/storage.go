package lists

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	groceryFile = "family_grocery.json"
	todoFile    = "family_todo.json"
)

// Store reads and writes the household list files under one data directory.
// Loads never fail: a missing or corrupt file degrades to an empty list so
// the dashboard always renders a table.
type Store struct {
	dir string
}

// NewStore constructs a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// GroceryPath returns the grocery list file path.
func (s *Store) GroceryPath() string {
	return filepath.Join(s.dir, groceryFile)
}

// TodoPath returns the todo list file path.
func (s *Store) TodoPath() string {
	return filepath.Join(s.dir, todoFile)
}

// Ensure creates the data directory and seeds missing list files with an
// empty JSON array.
func (s *Store) Ensure() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	for _, path := range []string{s.GroceryPath(), s.TodoPath()} {
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return err
		}
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// LoadGrocery reads the grocery list, returning an empty slice on any failure.
func (s *Store) LoadGrocery() []GroceryItem {
	var rows []GroceryItem
	if !loadRows(s.GroceryPath(), &rows) || rows == nil {
		return []GroceryItem{}
	}
	return rows
}

// SaveGrocery cleans and persists the grocery list.
func (s *Store) SaveGrocery(rows []GroceryItem) error {
	return saveRows(s.GroceryPath(), CleanGrocery(rows))
}

// LoadTodo reads the todo list, returning an empty slice on any failure.
func (s *Store) LoadTodo() []TodoItem {
	var rows []TodoItem
	if !loadRows(s.TodoPath(), &rows) || rows == nil {
		return []TodoItem{}
	}
	return rows
}

// SaveTodo cleans and persists the todo list.
func (s *Store) SaveTodo(rows []TodoItem) error {
	return saveRows(s.TodoPath(), CleanTodo(rows))
}

func loadRows(path string, out any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

// saveRows overwrites the file with a pretty-printed JSON array. The write
// goes through a temp file and rename so readers never observe a partial
// file.
func saveRows(path string, rows any) error {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

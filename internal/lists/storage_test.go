package lists

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsureSeedsEmptyListFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	store := NewStore(dir)

	if err := store.Ensure(); err != nil {
		t.Fatalf("ensure failed: %v", err)
	}

	for _, path := range []string{store.GroceryPath(), store.TodoPath()} {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("expected seeded file at %s: %v", path, err)
		}
		if string(data) != "[]" {
			t.Fatalf("expected empty array seed, got %q", string(data))
		}
	}
}

func TestEnsureLeavesExistingFilesAlone(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	if err := os.WriteFile(store.GroceryPath(), []byte(`[{"Item":"Milk","Quantity":"1","Notes":""}]`), 0o644); err != nil {
		t.Fatalf("failed to write existing file: %v", err)
	}

	if err := store.Ensure(); err != nil {
		t.Fatalf("ensure failed: %v", err)
	}

	rows := store.LoadGrocery()
	if len(rows) != 1 || rows[0].Item != "Milk" {
		t.Fatalf("expected existing rows preserved, got %+v", rows)
	}
}

func TestGroceryRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())
	rows := []GroceryItem{
		{Item: "Milk", Quantity: "1", Notes: "2%"},
		{Item: "Bread", Quantity: "2", Notes: ""},
	}

	if err := store.SaveGrocery(rows); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got := store.LoadGrocery()
	if len(got) != 2 || got[0].Item != "Milk" || got[1].Item != "Bread" {
		t.Fatalf("unexpected rows after round trip: %+v", got)
	}
}

func TestSaveGroceryDropsBlankRows(t *testing.T) {
	store := NewStore(t.TempDir())
	rows := []GroceryItem{
		{Item: "Milk"},
		{Item: "  ", Quantity: " ", Notes: ""},
	}

	if err := store.SaveGrocery(rows); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got := store.LoadGrocery()
	if len(got) != 1 || got[0].Item != "Milk" {
		t.Fatalf("expected blank row dropped, got %+v", got)
	}
}

func TestSaveTodoDropsCompletedTasks(t *testing.T) {
	store := NewStore(t.TempDir())
	rows := []TodoItem{
		{Task: "Water the garden", Done: false},
		{Task: "Book flights", Done: true},
	}

	if err := store.SaveTodo(rows); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got := store.LoadTodo()
	if len(got) != 1 || got[0].Task != "Water the garden" {
		t.Fatalf("expected completed task dropped, got %+v", got)
	}
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	store := NewStore(t.TempDir())
	if got := store.LoadGrocery(); got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice for missing file, got %+v", got)
	}
	if got := store.LoadTodo(); got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice for missing file, got %+v", got)
	}
}

func TestLoadCorruptFileReturnsEmpty(t *testing.T) {
	store := NewStore(t.TempDir())
	if err := os.WriteFile(store.TodoPath(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	if got := store.LoadTodo(); len(got) != 0 {
		t.Fatalf("expected empty slice for corrupt file, got %+v", got)
	}
}

func TestLoadNonArrayFileReturnsEmpty(t *testing.T) {
	store := NewStore(t.TempDir())
	if err := os.WriteFile(store.GroceryPath(), []byte(`{"Item":"Milk"}`), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if got := store.LoadGrocery(); len(got) != 0 {
		t.Fatalf("expected empty slice for non-array file, got %+v", got)
	}
}

func TestSaveWritesPrettyPrintedArray(t *testing.T) {
	store := NewStore(t.TempDir())
	if err := store.SaveTodo([]TodoItem{{Task: "Water the garden"}}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := os.ReadFile(store.TodoPath())
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	text := string(data)
	if !strings.HasPrefix(text, "[\n  {") || !strings.Contains(text, `"Task": "Water the garden"`) {
		t.Fatalf("expected indented JSON array, got %q", text)
	}
}

func TestSaveEmptyListWritesEmptyArray(t *testing.T) {
	store := NewStore(t.TempDir())
	if err := store.SaveGrocery(nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := os.ReadFile(store.GroceryPath())
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected empty array, got %q", string(data))
	}
}

func TestSaveLeavesNoTempFileBehind(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	if err := store.SaveGrocery([]GroceryItem{{Item: "Milk"}}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir failed: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Fatalf("unexpected temp file %s", e.Name())
		}
	}
}

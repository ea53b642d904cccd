package lists

import (
	"reflect"
	"testing"
)

func TestCleanGroceryDropsFullyBlankRows(t *testing.T) {
	rows := []GroceryItem{
		{Item: "Milk", Quantity: "1", Notes: "2%"},
		{Item: "  ", Quantity: "", Notes: "\t"},
		{Item: "", Quantity: "", Notes: "restock snacks"},
		{},
	}

	got := CleanGrocery(rows)

	want := []GroceryItem{
		{Item: "Milk", Quantity: "1", Notes: "2%"},
		{Item: "", Quantity: "", Notes: "restock snacks"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected cleaned grocery rows: %+v", got)
	}
}

func TestCleanGroceryKeepsRowsVerbatim(t *testing.T) {
	rows := []GroceryItem{{Item: "  Eggs  ", Quantity: "12"}}
	got := CleanGrocery(rows)
	if len(got) != 1 || got[0].Item != "  Eggs  " {
		t.Fatalf("expected untrimmed row to survive, got %+v", got)
	}
}

func TestCleanTodoRemovesCompletedAndBlankTasks(t *testing.T) {
	rows := []TodoItem{
		{Task: "Fix the gate", Done: false},
		{Task: "Call the dentist", Done: true},
		{Task: "   ", Done: false},
		{Task: "", Done: true},
	}

	got := CleanTodo(rows)

	want := []TodoItem{{Task: "Fix the gate", Done: false}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected cleaned todo rows: %+v", got)
	}
}

func TestCleanEmptyInputs(t *testing.T) {
	if got := CleanGrocery(nil); len(got) != 0 {
		t.Fatalf("expected empty grocery result, got %+v", got)
	}
	if got := CleanTodo(nil); len(got) != 0 {
		t.Fatalf("expected empty todo result, got %+v", got)
	}
}

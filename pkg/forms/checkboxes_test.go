package forms

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCheckboxesDoubleToggleIsIdempotent(t *testing.T) {
	q := NewCheckboxes("c", "Pick any", "", "A", "B", "C")
	if err := q.Toggle("B"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if err := q.Toggle("B"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if q.Checked("B") {
		t.Fatalf("double toggle must restore the original state")
	}
	if got := q.Chosen(); len(got) != 0 {
		t.Fatalf("nothing should be chosen, got %v", got)
	}
}

func TestCheckboxesChosenKeepsConfigurationOrder(t *testing.T) {
	q := NewCheckboxes("c", "Pick any", "", "A", "B", "C")
	// toggle out of order
	for _, label := range []string{"C", "A"} {
		if err := q.Toggle(label); err != nil {
			t.Fatalf("Toggle(%s): %v", label, err)
		}
	}
	if diff := cmp.Diff([]string{"A", "C"}, q.Chosen()); diff != "" {
		t.Fatalf("chosen labels mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckboxesUnknownToggle(t *testing.T) {
	q := NewCheckboxes("c", "Pick any", "", "A")
	if err := q.Toggle("Z"); err == nil {
		t.Fatalf("unknown label must fail")
	}
}

func TestCheckboxesSubmitWithoutSelection(t *testing.T) {
	q := NewCheckboxes("c", "Pick any", "", "A", "B")
	if err := q.Submit(); err != nil {
		t.Fatalf("no minimum-selection requirement, submit failed: %v", err)
	}
	res, err := q.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if cr := res.(CheckboxesResult); len(cr.Chosen) != 0 {
		t.Fatalf("want no chosen labels, got %v", cr.Chosen)
	}
}

func TestCheckboxesCursorClampsAndFreeze(t *testing.T) {
	q := NewCheckboxes("c", "Pick any", "", "A", "B")
	q.Up()
	if q.Cursor() != 0 {
		t.Fatalf("Up at 0 must clamp")
	}
	q.Down()
	q.Down()
	if q.Cursor() != 1 {
		t.Fatalf("Down at the end must clamp, cursor %d", q.Cursor())
	}
	if err := q.Toggle("A"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if err := q.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := q.Toggle("B"); err == nil {
		t.Fatalf("toggle after submit must fail")
	}
	if diff := cmp.Diff([]string{"A"}, q.Chosen()); diff != "" {
		t.Fatalf("submitted state mutated (-want +got):\n%s", diff)
	}
}

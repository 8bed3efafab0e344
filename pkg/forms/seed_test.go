package forms

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSeedText(t *testing.T) {
	q := NewText("name", "Name", "")
	if err := Seed(q, "Ada"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if q.Value() != "Ada" {
		t.Fatalf("value = %q, want %q", q.Value(), "Ada")
	}
	if q.Submitted() {
		t.Fatal("seeding must not submit the question")
	}
	if err := Seed(q, 7); err == nil {
		t.Fatal("expected a shape error for a non-string value")
	}
}

func TestSeedInteger(t *testing.T) {
	q := NewInteger("age", "Age", "", WithRange(0, 120))
	for _, value := range []any{30, int64(30), float64(30)} {
		if err := Seed(q, value); err != nil {
			t.Fatalf("seed %T: %v", value, err)
		}
		if q.Value() != 30 {
			t.Fatalf("value = %d, want 30", q.Value())
		}
	}
	if err := Seed(q, 999); err == nil {
		t.Fatal("expected a bounds error")
	}
	if err := Seed(q, 1.5); err == nil {
		t.Fatal("expected a shape error for a fractional value")
	}
}

func TestSeedBoolean(t *testing.T) {
	q := NewBoolean("subscribe", "Subscribe", "", true)
	if err := Seed(q, false); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if q.Value() {
		t.Fatal("choice not applied")
	}
}

func TestSeedChoice(t *testing.T) {
	q := NewChoice("color", "Color", "", "Red", "Blue")
	if err := Seed(q, "Blue"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if got, ok := q.Selected(); !ok || got != "Blue" {
		t.Fatalf("selected = %q, %v", got, ok)
	}
	if q.Cursor() != 1 {
		t.Fatalf("cursor = %d, want 1", q.Cursor())
	}
	if err := Seed(q, "Green"); err == nil {
		t.Fatal("expected an unknown-choice error")
	}
}

func TestSeedCheckboxes(t *testing.T) {
	q := NewCheckboxes("toppings", "Toppings", "", "A", "B", "C")
	if err := Seed(q, []any{"C", "A"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if diff := cmp.Diff([]string{"A", "C"}, q.Chosen()); diff != "" {
		t.Fatalf("chosen mismatch (-want +got):\n%s", diff)
	}

	// Seeding an already-checked label keeps it checked.
	if err := Seed(q, []string{"A"}); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	if !q.Checked("A") {
		t.Fatal("label A toggled back off")
	}
	if err := Seed(q, []string{"D"}); err == nil {
		t.Fatal("expected an unknown-choice error")
	}
}

package formwiz

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwiz/pkg/forms"
	"github.com/goliatone/go-formwiz/pkg/render"
	"github.com/goliatone/go-formwiz/pkg/testsupport"
	"github.com/goliatone/go-formwiz/pkg/wizard"
)

func TestDefaultRegistryCarriesBuiltins(t *testing.T) {
	registry := DefaultRegistry()

	want := []string{"cli", "prompt"}
	if diff := cmp.Diff(want, registry.List()); diff != "" {
		t.Fatalf("registry mismatch (-want +got):\n%s", diff)
	}
}

func TestFacadeRunsAForm(t *testing.T) {
	form := New("Signup", "", []Question{
		NewText("name", "Name", "", WithCharacterLimit(24)),
		NewInteger("age", "Age", "", WithRange(0, 150)),
		NewBoolean("subscribe", "Subscribe?", "", true),
		NewChoice("color", "Color", "", "Red", "Green"),
		NewCheckboxes("toppings", "Toppings", "", "A", "B"),
	}, WithAccent("#7aa2f7"))

	stub := &testsupport.StubRenderer{
		Result: forms.NewResultSet(forms.TextResult{ID: "name", Text: "Ada"}),
	}
	registry := render.NewRegistry()
	registry.MustRegister(stub)

	w := NewWizard(wizard.WithRegistry(registry), wizard.WithDefaultRenderer(stub.Name()))
	results, err := w.Run(context.Background(), Request{Form: form})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got, ok := results.Value("name"); !ok || got != "Ada" {
		t.Fatalf("Value(name) = %v, %v; want Ada, true", got, ok)
	}
	if stub.LastForm != form {
		t.Fatal("renderer received a different form")
	}
}

func TestErrAbortedMatchesRendererAborts(t *testing.T) {
	if !errors.Is(render.ErrAborted, ErrAborted) {
		t.Fatal("ErrAborted does not match render.ErrAborted")
	}
}

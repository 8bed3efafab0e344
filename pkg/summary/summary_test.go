package summary

import (
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formwiz/pkg/forms"
	"github.com/goliatone/go-formwiz/pkg/testsupport"
)

func sampleResults() forms.ResultSet {
	return forms.NewResultSet(
		forms.TextResult{ID: "name", Text: "Ada"},
		forms.IntegerResult{ID: "age", Number: 30},
		forms.BooleanResult{ID: "subscribe", Flag: true},
		forms.ChoiceResult{ID: "color", Choice: "Green"},
		forms.CheckboxesResult{ID: "toppings", Chosen: []string{"A", "C"}},
	)
}

func TestDefaultReceipt(t *testing.T) {
	form := testsupport.SampleForm()

	got, err := New().Render(form, sampleResults())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "Signup\n" +
		"Name: Ada\n" +
		"Age: 30\n" +
		"Subscribe: yes\n" +
		"Color: Green\n" +
		"Toppings: A, C\n"
	if got != want {
		t.Fatalf("receipt = %q, want %q", got, want)
	}
}

func TestEmptyResults(t *testing.T) {
	form := testsupport.SampleForm()

	got, err := New().Render(form, forms.NewResultSet())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "Signup\n" {
		t.Fatalf("receipt = %q", got)
	}
}

func TestCustomTemplate(t *testing.T) {
	form := testsupport.SampleForm()
	results := forms.NewResultSet(
		forms.TextResult{ID: "name", Text: "Ada"},
		forms.IntegerResult{ID: "age", Number: 30},
	)

	s := New(WithTemplate("{% for row in rows %}{{ row.id }}={{ row.value }};{% endfor %}"))
	got, err := s.Render(form, results)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "name=Ada;age=30;" {
		t.Fatalf("receipt = %q", got)
	}
}

func TestTemplateFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"receipt.tpl": &fstest.MapFile{Data: []byte("{{ title }}: {{ rows|length }} answers\n")},
	}
	form := testsupport.SampleForm()

	s := New(WithTemplateFS(fsys, "receipt.tpl"))
	got, err := s.Render(form, sampleResults())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "Signup: 5 answers\n" {
		t.Fatalf("receipt = %q", got)
	}

	// Second render hits the parsed-template cache.
	if again, err := s.Render(form, sampleResults()); err != nil || again != got {
		t.Fatalf("second render = %q, %v", again, err)
	}

	if _, err := New(WithTemplateFS(fsys, "missing.tpl")).Render(form, sampleResults()); err == nil {
		t.Fatal("expected an error for a missing template file")
	}
}

func TestUnknownQuestionFallsBackToID(t *testing.T) {
	form := testsupport.SampleForm()
	results := forms.NewResultSet(forms.TextResult{ID: "ghost", Text: "boo"})

	got, err := New().Render(form, results)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(got, "ghost: boo") {
		t.Fatalf("receipt = %q", got)
	}
}

func TestNilForm(t *testing.T) {
	if _, err := New().Render(nil, forms.NewResultSet()); err == nil {
		t.Fatal("expected an error for a nil form")
	}
}

func TestRegisterFilter(t *testing.T) {
	form := testsupport.SampleForm()

	s := New(WithTemplate("{{ title|shout }}"))
	err := s.RegisterFilter("shout", func(input any, _ any) (any, error) {
		str, _ := input.(string)
		return strings.ToUpper(str), nil
	})
	if err != nil {
		t.Fatalf("RegisterFilter: %v", err)
	}

	got, err := s.Render(form, forms.NewResultSet())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "SIGNUP" {
		t.Fatalf("receipt = %q", got)
	}

	// pongo2's filter table is process wide; a second registration collides.
	if err := s.RegisterFilter("shout", func(input any, _ any) (any, error) {
		return input, nil
	}); err == nil {
		t.Fatal("expected duplicate filter registration to fail")
	}
}

type captureEngine struct {
	template string
	data     any
	out      string
}

func (c *captureEngine) Render(name string, data any, _ ...io.Writer) (string, error) {
	return c.RenderString(name, data)
}

func (c *captureEngine) RenderString(templateContent string, data any, _ ...io.Writer) (string, error) {
	c.template = templateContent
	c.data = data
	return c.out, nil
}

func (c *captureEngine) RegisterFilter(string, func(any, any) (any, error)) error { return nil }

func TestCustomEngine(t *testing.T) {
	engine := &captureEngine{out: "receipt"}
	form := testsupport.SampleForm()

	got, err := New(WithEngine(engine)).Render(form, sampleResults())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "receipt" {
		t.Fatalf("got %q", got)
	}
	if engine.template != DefaultTemplate {
		t.Errorf("engine saw template %q", engine.template)
	}

	data, ok := engine.data.(map[string]any)
	if !ok {
		t.Fatalf("engine data is %T", engine.data)
	}
	if data["title"] != "Signup" {
		t.Errorf("data title = %v", data["title"])
	}
	rows, ok := data["rows"].([]map[string]any)
	if !ok || len(rows) != 5 {
		t.Fatalf("data rows = %#v", data["rows"])
	}
	if rows[4]["value"] != "A, C" {
		t.Errorf("toppings row = %#v", rows[4])
	}
}

func TestPongoEngineRejectsNamedTemplates(t *testing.T) {
	engine := newPongoEngine()
	if _, err := engine.Render("receipt.tpl", nil); err == nil {
		t.Fatal("expected an error for a named template")
	}
	if got, err := engine.Render("{{ x }}", map[string]any{"x": "inline"}); err != nil || got != "inline" {
		t.Fatalf("inline render = %q, %v", got, err)
	}
}

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formwiz/pkg/forms"
	"github.com/goliatone/go-formwiz/pkg/openapi"
	"github.com/goliatone/go-formwiz/pkg/render"
	"github.com/goliatone/go-formwiz/pkg/schema"
	"github.com/goliatone/go-formwiz/pkg/summary"
	"github.com/goliatone/go-formwiz/pkg/wizard"
)

func main() {
	schemaPath := flag.String("schema", "", "form definition path (JSON or YAML)")
	docPath := flag.String("openapi", "", "OpenAPI document path")
	operation := flag.String("operation", "", "operation ID when deriving from OpenAPI")
	renderer := flag.String("renderer", "cli", "renderer to use")
	themeName := flag.String("theme", "", "built-in theme name")
	themeVariant := flag.String("variant", "", "theme variant")
	accent := flag.String("accent", "", "accent color as #rrggbb")
	receipt := flag.Bool("receipt", false, "print a rendered receipt instead of JSON")
	flag.Parse()

	form, err := loadForm(*schemaPath, *docPath, *operation, *accent)
	if err != nil {
		log.Fatalf("Failed to load form: %v", err)
	}

	ctx := context.Background()

	w := wizard.New(wizard.WithThemeSelector(builtinSelector{}))

	results, err := w.Run(ctx, wizard.Request{
		Form:         form,
		Renderer:     *renderer,
		ThemeName:    *themeName,
		ThemeVariant: *themeVariant,
	})
	if err != nil {
		if errors.Is(err, render.ErrAborted) {
			fmt.Fprintln(os.Stderr, "canceled")
			os.Exit(130)
		}
		log.Fatalf("Failed to run form: %v", err)
	}

	if *receipt {
		text, err := summary.New().Render(form, results)
		if err != nil {
			log.Fatalf("Failed to render receipt: %v", err)
		}
		fmt.Print(text)
		return
	}
	if err := printJSON(results); err != nil {
		log.Fatalf("Failed to encode results: %v", err)
	}
}

func loadForm(schemaPath, docPath, operation, accent string) (*forms.Form, error) {
	var opts []forms.Option
	if accent != "" {
		opts = append(opts, forms.WithAccent(accent))
	}

	switch {
	case schemaPath != "":
		def, err := schema.Load(schemaPath)
		if err != nil {
			return nil, err
		}
		return def.Form(opts...), nil
	case docPath != "":
		if operation == "" {
			return nil, errors.New("-operation is required with -openapi")
		}
		doc, err := openapi.LoadFile(docPath)
		if err != nil {
			return nil, err
		}
		form, report, err := openapi.Build(doc, operation, opts...)
		if err != nil {
			return nil, err
		}
		for _, skipped := range report.Skipped {
			log.Printf("skipping %s: %s", skipped.Name, skipped.Reason)
		}
		return form, nil
	default:
		return nil, errors.New("one of -schema or -openapi is required")
	}
}

func printJSON(results forms.ResultSet) error {
	values := make(map[string]any, results.Len())
	for _, res := range results.Results() {
		values[res.QuestionID()] = res.Value()
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(values)
}

// builtinThemes holds the manifests -theme can name.
var builtinThemes = map[string]*theme.Manifest{
	"midnight": {
		Name:    "midnight",
		Version: "1.0.0",
		Tokens: map[string]string{
			"accent": "#7aa2f7",
			"muted":  "#565f89",
		},
		Variants: map[string]theme.Variant{
			"light": {
				Tokens: map[string]string{
					"accent": "#2e5cb8",
					"muted":  "#8a8f98",
				},
			},
		},
	},
	"ember": {
		Name:    "ember",
		Version: "1.0.0",
		Tokens: map[string]string{
			"accent": "#e0603f",
			"muted":  "#6e5a52",
		},
	},
}

type builtinSelector struct{}

func (builtinSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	manifest, ok := builtinThemes[name]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q", name)
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

package prompt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwiz/pkg/forms"
	"github.com/goliatone/go-formwiz/pkg/render"
	"github.com/goliatone/go-formwiz/pkg/testsupport"
)

type stubDriver struct {
	inputs   []string
	confirms []bool
	selects  []int
	multis   [][]int
	err      error // when set, every prompt fails with it

	inputCfgs   []InputConfig
	confirmCfgs []ConfirmConfig
	selectCfgs  []SelectConfig
	multiCfgs   []SelectConfig
	infos       []string

	inputPos, confirmPos, selectPos, multiPos int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.inputCfgs = append(s.inputCfgs, cfg)
	if s.err != nil {
		return "", s.err
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.confirmCfgs = append(s.confirmCfgs, cfg)
	if s.err != nil {
		return false, s.err
	}
	if s.confirmPos >= len(s.confirms) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirms[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selectCfgs = append(s.selectCfgs, cfg)
	if s.err != nil {
		return 0, s.err
	}
	if s.selectPos >= len(s.selects) {
		return -1, errors.New("no select scripted")
	}
	val := s.selects[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, cfg SelectConfig) ([]int, error) {
	s.multiCfgs = append(s.multiCfgs, cfg)
	if s.err != nil {
		return nil, s.err
	}
	if s.multiPos >= len(s.multis) {
		return nil, errors.New("no multiselect scripted")
	}
	val := s.multis[s.multiPos]
	s.multiPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infos = append(s.infos, msg)
	return nil
}

func TestRendererName(t *testing.T) {
	if got := New().Name(); got != "prompt" {
		t.Fatalf("name = %q, want %q", got, "prompt")
	}
}

func TestRenderNilForm(t *testing.T) {
	_, err := New().Render(context.Background(), nil, render.Options{})
	if !errors.Is(err, render.ErrNilForm) {
		t.Fatalf("err = %v, want ErrNilForm", err)
	}
}

func TestRenderAllVariants(t *testing.T) {
	driver := &stubDriver{
		inputs:   []string{"Ada", "30"},
		confirms: []bool{false},
		selects:  []int{2},
		multis:   [][]int{{0, 2}},
	}
	form := testsupport.SampleForm()

	results, err := New(WithPromptDriver(driver)).Render(context.Background(), form, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if results.Len() != 5 {
		t.Fatalf("results.Len() = %d, want 5", results.Len())
	}
	if v, _ := results.Value("name"); v != "Ada" {
		t.Fatalf("name = %v", v)
	}
	if v, _ := results.Value("age"); v != int64(30) {
		t.Fatalf("age = %v", v)
	}
	if v, _ := results.Value("subscribe"); v != false {
		t.Fatalf("subscribe = %v", v)
	}
	if v, _ := results.Value("color"); v != "Blue" {
		t.Fatalf("color = %v", v)
	}
	v, _ := results.Value("toppings")
	if diff := cmp.Diff([]string{"A", "C"}, v); diff != "" {
		t.Fatalf("toppings mismatch (-want +got):\n%s", diff)
	}

	if len(driver.infos) == 0 || driver.infos[0] != "=== Signup ===" {
		t.Fatalf("intro not announced, infos = %v", driver.infos)
	}
	if driver.inputPos != 2 || driver.confirmPos != 1 || driver.selectPos != 1 || driver.multiPos != 1 {
		t.Fatal("prompts not consumed as expected")
	}
}

func TestTextPromptShape(t *testing.T) {
	driver := &stubDriver{inputs: []string{"ok"}}
	form := forms.New("F", "", []forms.Question{
		forms.NewText("name", "Name", "Your name.", forms.WithCharacterLimit(4)),
	})

	options := render.Options{Values: map[string]any{"name": "seed"}}
	if _, err := New(WithPromptDriver(driver)).Render(context.Background(), form, options); err != nil {
		t.Fatalf("render: %v", err)
	}

	cfg := driver.inputCfgs[0]
	if cfg.Message != "Name" || cfg.Help != "Your name." {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Default != "seed" {
		t.Fatalf("default = %q, want the seeded input", cfg.Default)
	}
	if err := cfg.Validator(""); err == nil {
		t.Fatal("blank input must fail validation")
	}
	if err := cfg.Validator("   "); err == nil {
		t.Fatal("whitespace input must fail validation")
	}
	if err := cfg.Validator("12345"); err == nil {
		t.Fatal("over-limit input must fail validation")
	}
	if err := cfg.Validator("ok"); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
}

func TestIntegerPromptShape(t *testing.T) {
	driver := &stubDriver{inputs: []string{"30"}}
	form := forms.New("F", "", []forms.Question{
		forms.NewInteger("age", "Age", "Years.", forms.WithRange(0, 120)),
	})

	if _, err := New(WithPromptDriver(driver)).Render(context.Background(), form, render.Options{}); err != nil {
		t.Fatalf("render: %v", err)
	}

	cfg := driver.inputCfgs[0]
	if !strings.Contains(cfg.Help, "from 0 to 120") {
		t.Fatalf("help = %q, want the bounds hint", cfg.Help)
	}
	if err := cfg.Validator("abc"); err == nil {
		t.Fatal("non-numeric input must fail validation")
	}
	if err := cfg.Validator("999"); err == nil {
		t.Fatal("out-of-bounds input must fail validation")
	}
	if err := cfg.Validator(" 42 "); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
}

func TestAbortPropagates(t *testing.T) {
	driver := &stubDriver{err: render.ErrAborted}
	form := forms.New("F", "", []forms.Question{forms.NewText("name", "Name", "")})

	_, err := New(WithPromptDriver(driver)).Render(context.Background(), form, render.Options{})
	if !errors.Is(err, render.ErrAborted) {
		t.Fatalf("err = %v, want ErrAborted", err)
	}
	if !strings.Contains(err.Error(), `question "name"`) {
		t.Fatalf("err = %v, want the position in the message", err)
	}
}

func TestRequirementSkip(t *testing.T) {
	color := forms.NewChoice("color", "Color", "", "Red", "Blue")
	reason := forms.NewText("reason", "Reason", "")
	reason.Require("color", "Red")
	form := forms.New("F", "", []forms.Question{color, reason})

	driver := &stubDriver{selects: []int{1}} // Blue
	results, err := New(WithPromptDriver(driver)).Render(context.Background(), form, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if results.Len() != 1 {
		t.Fatalf("results.Len() = %d, want 1", results.Len())
	}
	if len(driver.inputCfgs) != 0 {
		t.Fatal("skipped question still prompted")
	}
}

func TestCheckboxSeedBecomesDefaults(t *testing.T) {
	form := forms.New("F", "", []forms.Question{
		forms.NewCheckboxes("toppings", "Toppings", "", "A", "B", "C"),
	})
	driver := &stubDriver{multis: [][]int{{1}}}

	options := render.Options{Values: map[string]any{"toppings": []string{"A"}}}
	results, err := New(WithPromptDriver(driver)).Render(context.Background(), form, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if diff := cmp.Diff([]int{0}, driver.multiCfgs[0].Defaults); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}

	// The driver's final selection replaces the seeded one.
	v, _ := results.Value("toppings")
	if diff := cmp.Diff([]string{"B"}, v); diff != "" {
		t.Fatalf("toppings mismatch (-want +got):\n%s", diff)
	}
}

func TestChoiceRejectsUnknownIndex(t *testing.T) {
	form := forms.New("F", "", []forms.Question{
		forms.NewChoice("color", "Color", "", "Red", "Blue"),
	})
	driver := &stubDriver{selects: []int{7}}

	if _, err := New(WithPromptDriver(driver)).Render(context.Background(), form, render.Options{}); err == nil {
		t.Fatal("expected an error for an out-of-range option index")
	}
}

func TestPageSizeReachesSelects(t *testing.T) {
	form := forms.New("F", "", []forms.Question{
		forms.NewChoice("color", "Color", "", "Red", "Blue"),
	})
	driver := &stubDriver{selects: []int{0}}

	if _, err := New(WithPromptDriver(driver), WithPageSize(7)).Render(context.Background(), form, render.Options{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if driver.selectCfgs[0].PageSize != 7 {
		t.Fatalf("page size = %d, want 7", driver.selectCfgs[0].PageSize)
	}
}

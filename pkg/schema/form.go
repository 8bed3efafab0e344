package schema

import (
	"math"

	"github.com/goliatone/go-formwiz/pkg/forms"
)

// Form materializes the definition as a forms.Form. The definition's accent
// is applied first so caller options can still override it. Questions whose
// title is empty fall back to their id.
func (d *Definition) Form(opts ...forms.Option) *forms.Form {
	questions := make([]forms.Question, 0, len(d.Questions))
	for _, spec := range d.Questions {
		questions = append(questions, buildQuestion(spec))
	}

	all := append([]forms.Option{forms.WithAccent(d.Accent)}, opts...)
	return forms.New(d.Title, d.Description, questions, all...)
}

func buildQuestion(spec QuestionSpec) forms.Question {
	title := spec.Title
	if title == "" {
		title = spec.ID
	}

	var q forms.Question
	switch forms.Kind(spec.Kind) {
	case forms.KindText:
		var topts []forms.TextOption
		if spec.Limit > 0 {
			topts = append(topts, forms.WithCharacterLimit(spec.Limit))
		}
		q = forms.NewText(spec.ID, title, spec.Description, topts...)
	case forms.KindInteger:
		var iopts []forms.IntegerOption
		if spec.Min != nil || spec.Max != nil {
			lo, hi := int64(math.MinInt64), int64(math.MaxInt64)
			if spec.Min != nil {
				lo = *spec.Min
			}
			if spec.Max != nil {
				hi = *spec.Max
			}
			iopts = append(iopts, forms.WithRange(lo, hi))
		}
		q = forms.NewInteger(spec.ID, title, spec.Description, iopts...)
	case forms.KindBoolean:
		q = forms.NewBoolean(spec.ID, title, spec.Description, spec.Default)
	case forms.KindChoice:
		q = forms.NewChoice(spec.ID, title, spec.Description, spec.Choices...)
	case forms.KindCheckboxes:
		q = forms.NewCheckboxes(spec.ID, title, spec.Description, spec.Choices...)
	default:
		// Validate rejects unknown kinds before Form is reachable.
		q = forms.NewText(spec.ID, title, spec.Description)
	}

	if spec.Requires != nil {
		q.Require(spec.Requires.Question, spec.Requires.Equals)
	}
	return q
}

package schema

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formwiz/pkg/forms"
)

// ErrInvalidDefinition is wrapped by every Validate failure so callers can
// branch on the class without matching messages.
var ErrInvalidDefinition = errors.New("schema: invalid definition")

// Validate checks the definition for structural problems: a missing title,
// duplicate or empty question ids, unknown kinds, missing choices, inverted
// integer bounds, negative character limits, and requirements that do not
// reference a question declared earlier in the document.
func (d *Definition) Validate() error {
	if d.Title == "" {
		return fmt.Errorf("%w: definition title is required", ErrInvalidDefinition)
	}

	seen := make(map[string]bool, len(d.Questions))
	for i, q := range d.Questions {
		if q.ID == "" {
			return fmt.Errorf("%w: question at index %d has an empty id", ErrInvalidDefinition, i)
		}
		if seen[q.ID] {
			return fmt.Errorf("%w: duplicate question id %q", ErrInvalidDefinition, q.ID)
		}

		kind := forms.Kind(q.Kind)
		if !kind.Valid() {
			return fmt.Errorf("%w: question %q has unknown kind %q", ErrInvalidDefinition, q.ID, q.Kind)
		}

		switch kind {
		case forms.KindText:
			if q.Limit < 0 {
				return fmt.Errorf("%w: question %q has a negative character limit", ErrInvalidDefinition, q.ID)
			}
		case forms.KindInteger:
			if q.Min != nil && q.Max != nil && *q.Min > *q.Max {
				return fmt.Errorf("%w: question %q has min %d greater than max %d", ErrInvalidDefinition, q.ID, *q.Min, *q.Max)
			}
		case forms.KindChoice, forms.KindCheckboxes:
			if len(q.Choices) == 0 {
				return fmt.Errorf("%w: question %q needs at least one choice", ErrInvalidDefinition, q.ID)
			}
		}

		if q.Requires != nil {
			if q.Requires.Question == "" {
				return fmt.Errorf("%w: question %q has a requirement without a question id", ErrInvalidDefinition, q.ID)
			}
			if !seen[q.Requires.Question] {
				return fmt.Errorf("%w: question %q requires %q which is not declared before it", ErrInvalidDefinition, q.ID, q.Requires.Question)
			}
		}

		seen[q.ID] = true
	}

	return nil
}

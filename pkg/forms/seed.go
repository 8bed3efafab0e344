package forms

// Seed applies a value in a question's native shape to its input state:
// string for Text and Choice, integer for Integer, bool for Boolean, and a
// string slice for Checkboxes. Seeding pre-populates input only; the
// question still renders and is submitted by the user. Values of the wrong
// shape, or outside a question's bounds, fail with a *QuestionError.
func Seed(q Question, value any) error {
	switch q := q.(type) {
	case *Text:
		s, ok := value.(string)
		if !ok {
			return questionErrf(KindText, "seed", "want string, got %T", value)
		}
		return q.SetInput(s)
	case *Integer:
		n, ok := toInt64(value)
		if !ok {
			return questionErrf(KindInteger, "seed", "want integer, got %T", value)
		}
		return q.SetInput(n)
	case *Boolean:
		b, ok := value.(bool)
		if !ok {
			return questionErrf(KindBoolean, "seed", "want bool, got %T", value)
		}
		return q.SetChoice(b)
	case *Choice:
		s, ok := value.(string)
		if !ok {
			return questionErrf(KindChoice, "seed", "want string, got %T", value)
		}
		return q.Select(s)
	case *Checkboxes:
		labels, ok := toStringSlice(value)
		if !ok {
			return questionErrf(KindCheckboxes, "seed", "want string slice, got %T", value)
		}
		for _, label := range labels {
			if q.Checked(label) {
				continue
			}
			if err := q.Toggle(label); err != nil {
				return err
			}
		}
		return nil
	}
	return questionErrf(q.Kind(), "seed", "unsupported question type %T", q)
}

// toStringSlice accepts []string directly and []any element-wise, the shape
// YAML and JSON decoders produce.
func toStringSlice(v any) ([]string, bool) {
	switch vs := v.(type) {
	case []string:
		return vs, true
	case []any:
		out := make([]string, 0, len(vs))
		for _, item := range vs {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

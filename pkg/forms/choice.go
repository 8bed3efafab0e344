package forms

// Choice asks the user to pick exactly one label from an ordered list. The
// cursor clamps at both ends; there is no wraparound.
type Choice struct {
	base
	choices      []string
	cursor       int
	selected     string
	hasSelection bool
}

// NewChoice builds a multiple-choice question over the given labels.
func NewChoice(id, title, description string, choices ...string) *Choice {
	return &Choice{
		base:    base{id: id, title: title, description: description},
		choices: append([]string(nil), choices...),
	}
}

var _ Question = (*Choice)(nil)

func (q *Choice) Kind() Kind { return KindChoice }

// Choices returns the labels in configuration order.
func (q *Choice) Choices() []string { return append([]string(nil), q.choices...) }

// Cursor returns the highlighted index.
func (q *Choice) Cursor() int { return q.cursor }

// Up moves the cursor toward the first label, clamped at 0.
func (q *Choice) Up() {
	if q.submitted {
		return
	}
	if q.cursor > 0 {
		q.cursor--
	}
}

// Down moves the cursor toward the last label, clamped at the end.
func (q *Choice) Down() {
	if q.submitted {
		return
	}
	if q.cursor < len(q.choices)-1 {
		q.cursor++
	}
}

// Select picks a label and moves the cursor onto it.
func (q *Choice) Select(label string) error {
	if q.submitted {
		return questionErr(KindChoice, "select", "already submitted")
	}
	for i, c := range q.choices {
		if c == label {
			q.cursor = i
			q.selected = label
			q.hasSelection = true
			return nil
		}
	}
	return questionErrf(KindChoice, "select", "unknown choice %q", label)
}

// Selected returns the picked label, if any.
func (q *Choice) Selected() (string, bool) { return q.selected, q.hasSelection }

func (q *Choice) Input() any { return q.selected }

func (q *Choice) Reset() {
	if q.submitted {
		return
	}
	q.cursor = 0
	q.selected = ""
	q.hasSelection = false
}

func (q *Choice) Submit() error {
	if q.submitted {
		return questionErr(KindChoice, "submit", "already submitted")
	}
	if !q.hasSelection {
		return questionErr(KindChoice, "submit", "no choice selected")
	}
	q.submitted = true
	return nil
}

func (q *Choice) Result() (Result, error) {
	if !q.submitted {
		return nil, questionErr(KindChoice, "result", "not submitted")
	}
	return ChoiceResult{ID: q.id, Choice: q.selected}, nil
}

package forms

// Checkboxes asks the user to toggle any subset of an ordered label list.
// Submission has no minimum-selection requirement; the result lists chosen
// labels in configuration order no matter the toggle order.
type Checkboxes struct {
	base
	choices []string
	toggled map[string]bool
	cursor  int
}

// NewCheckboxes builds a checkbox question over the given labels.
func NewCheckboxes(id, title, description string, choices ...string) *Checkboxes {
	q := &Checkboxes{
		base:    base{id: id, title: title, description: description},
		choices: append([]string(nil), choices...),
		toggled: make(map[string]bool, len(choices)),
	}
	for _, c := range q.choices {
		q.toggled[c] = false
	}
	return q
}

var _ Question = (*Checkboxes)(nil)

func (q *Checkboxes) Kind() Kind { return KindCheckboxes }

// Choices returns the labels in configuration order.
func (q *Checkboxes) Choices() []string { return append([]string(nil), q.choices...) }

// Cursor returns the highlighted index.
func (q *Checkboxes) Cursor() int { return q.cursor }

// Up moves the cursor toward the first label, clamped at 0.
func (q *Checkboxes) Up() {
	if q.submitted {
		return
	}
	if q.cursor > 0 {
		q.cursor--
	}
}

// Down moves the cursor toward the last label, clamped at the end.
func (q *Checkboxes) Down() {
	if q.submitted {
		return
	}
	if q.cursor < len(q.choices)-1 {
		q.cursor++
	}
}

// Toggle flips one label's checked state.
func (q *Checkboxes) Toggle(label string) error {
	if q.submitted {
		return questionErr(KindCheckboxes, "toggle", "already submitted")
	}
	v, ok := q.toggled[label]
	if !ok {
		return questionErrf(KindCheckboxes, "toggle", "unknown choice %q", label)
	}
	q.toggled[label] = !v
	return nil
}

// Checked reports one label's toggle state.
func (q *Checkboxes) Checked(label string) bool { return q.toggled[label] }

// Chosen returns the labels currently toggled on, in configuration order.
func (q *Checkboxes) Chosen() []string {
	var out []string
	for _, c := range q.choices {
		if q.toggled[c] {
			out = append(out, c)
		}
	}
	return out
}

func (q *Checkboxes) Input() any { return q.Chosen() }

func (q *Checkboxes) Reset() {
	if q.submitted {
		return
	}
	for c := range q.toggled {
		q.toggled[c] = false
	}
	q.cursor = 0
}

func (q *Checkboxes) Submit() error {
	if q.submitted {
		return questionErr(KindCheckboxes, "submit", "already submitted")
	}
	q.submitted = true
	return nil
}

func (q *Checkboxes) Result() (Result, error) {
	if !q.submitted {
		return nil, questionErr(KindCheckboxes, "result", "not submitted")
	}
	return CheckboxesResult{ID: q.id, Chosen: q.Chosen()}, nil
}

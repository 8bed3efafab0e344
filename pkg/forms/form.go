package forms

import "math"

// IntroPage is the page index before the first question.
const IntroPage = -1

// Form owns an ordered question sequence and the page cursor that walks it.
// The cursor starts at IntroPage, moves only forward, and stops at the
// question count; reaching the end marks the form submitted and fires the
// completion callback exactly once. Forms are single-owner values with no
// internal locking.
type Form struct {
	title       string
	description string
	accent      string
	questions   []Question
	page        int
	submitted   bool
	callback    func(ResultSet)
}

// Option configures a Form.
type Option func(*Form)

// WithCallback registers the completion callback. It runs synchronously on
// the goroutine that drives the final submission.
func WithCallback(fn func(ResultSet)) Option {
	return func(f *Form) { f.callback = fn }
}

// WithAccent sets the accent color as "#rrggbb". Renderers fall back to
// their theme, then to plain white, when unset.
func WithAccent(hex string) Option {
	return func(f *Form) { f.accent = hex }
}

// New builds a form over the given questions.
func New(title, description string, questions []Question, opts ...Option) *Form {
	f := &Form{
		title:       title,
		description: description,
		questions:   append([]Question(nil), questions...),
		page:        IntroPage,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// AddQuestion appends a question after construction. Permitted but
// unsynchronized; do not call while a renderer drives the form.
func (f *Form) AddQuestion(q Question) {
	f.questions = append(f.questions, q)
}

// Title returns the form title.
func (f *Form) Title() string { return f.title }

// Description returns the form description.
func (f *Form) Description() string { return f.description }

// Accent returns the configured accent color, or "" when unset.
func (f *Form) Accent() string { return f.accent }

// Questions returns the question sequence in configuration order.
func (f *Form) Questions() []Question { return append([]Question(nil), f.questions...) }

// Len returns the number of questions.
func (f *Form) Len() int { return len(f.questions) }

// Page returns the cursor: IntroPage, a question index, or Len() once done.
func (f *Form) Page() int { return f.page }

// Submitted reports whether the cursor has reached the end.
func (f *Form) Submitted() bool { return f.submitted }

// Advance moves the cursor one page forward. When it reaches the question
// count the form is marked submitted and the completion callback fires with
// the aggregate result; the guard keeps the callback to a single firing and
// the cursor from growing past the end.
func (f *Form) Advance() {
	if f.page+1 >= len(f.questions) {
		if !f.submitted {
			f.submitted = true
			if f.callback != nil {
				f.callback(f.Results())
			}
		}
		if f.page < len(f.questions) {
			f.page++
		}
		return
	}
	f.page++
}

// Current returns the question under the cursor. At the intro page or past
// the last question it fails with a *FormError.
func (f *Form) Current() (Question, error) {
	if f.page == IntroPage {
		return nil, &FormError{Op: "current", Page: f.page, Reason: "form is at the intro page"}
	}
	if f.page >= len(f.questions) {
		return nil, &FormError{Op: "current", Page: f.page, Reason: "form is past the last question"}
	}
	return f.questions[f.page], nil
}

// Question looks a question up by identifier.
func (f *Form) Question(id string) (Question, bool) {
	for _, q := range f.questions {
		if q.ID() == id {
			return q, true
		}
	}
	return nil, false
}

// MeetsRequirement evaluates q's requirement against the referenced
// question's produced answer. A question with no requirement always passes.
// The requirement is met only when the referenced question exists, is
// submitted, and its answer value equals the expected value. Renderers skip
// questions whose requirement is unmet.
func (f *Form) MeetsRequirement(q Question) bool {
	id, want, ok := q.Requirement()
	if !ok {
		return true
	}
	ref, found := f.Question(id)
	if !found || !ref.Submitted() {
		return false
	}
	res, err := ref.Result()
	if err != nil {
		return false
	}
	return valueEqual(res.Value(), want)
}

// Results aggregates every submitted question's record in configuration
// order. Unsubmitted and skipped questions are absent.
func (f *Form) Results() ResultSet {
	var out []Result
	for _, q := range f.questions {
		if !q.Submitted() {
			continue
		}
		res, err := q.Result()
		if err != nil {
			continue
		}
		out = append(out, res)
	}
	return ResultSet{results: out}
}

// valueEqual compares an answer value against an expected value by value,
// normalizing the integer family so schema-sourced expectations (int,
// float64 from YAML/JSON) match int64 answers.
func valueEqual(got, want any) bool {
	if g, ok := toInt64(got); ok {
		w, wok := toInt64(want)
		return wok && g == w
	}
	switch g := got.(type) {
	case string:
		w, ok := want.(string)
		return ok && g == w
	case bool:
		w, ok := want.(bool)
		return ok && g == w
	case []string:
		return stringSliceEqual(g, want)
	}
	return false
}

// stringSliceEqual also accepts a []any expectation, the shape YAML and
// JSON decoders produce for lists.
func stringSliceEqual(got []string, want any) bool {
	switch w := want.(type) {
	case []string:
		if len(w) != len(got) {
			return false
		}
		for i := range got {
			if got[i] != w[i] {
				return false
			}
		}
		return true
	case []any:
		if len(w) != len(got) {
			return false
		}
		for i := range got {
			s, ok := w[i].(string)
			if !ok || got[i] != s {
				return false
			}
		}
		return true
	}
	return false
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case float64:
		if n == math.Trunc(n) && n >= math.MinInt64 && n <= math.MaxInt64 {
			return int64(n), true
		}
	}
	return 0, false
}

package forms

// Result is the immutable answer record a submitted question produces. The
// set of implementations is closed: one record type per question variant.
type Result interface {
	QuestionID() string
	Kind() Kind
	Value() any
}

// TextResult is the answer to a Text question.
type TextResult struct {
	ID   string
	Text string
}

func (r TextResult) QuestionID() string { return r.ID }
func (r TextResult) Kind() Kind         { return KindText }
func (r TextResult) Value() any         { return r.Text }

// IntegerResult is the answer to an Integer question.
type IntegerResult struct {
	ID     string
	Number int64
}

func (r IntegerResult) QuestionID() string { return r.ID }
func (r IntegerResult) Kind() Kind         { return KindInteger }
func (r IntegerResult) Value() any         { return r.Number }

// BooleanResult is the answer to a Boolean question.
type BooleanResult struct {
	ID   string
	Flag bool
}

func (r BooleanResult) QuestionID() string { return r.ID }
func (r BooleanResult) Kind() Kind         { return KindBoolean }
func (r BooleanResult) Value() any         { return r.Flag }

// ChoiceResult is the answer to a Choice question.
type ChoiceResult struct {
	ID     string
	Choice string
}

func (r ChoiceResult) QuestionID() string { return r.ID }
func (r ChoiceResult) Kind() Kind         { return KindChoice }
func (r ChoiceResult) Value() any         { return r.Choice }

// CheckboxesResult is the answer to a Checkboxes question. Chosen preserves
// configuration order.
type CheckboxesResult struct {
	ID     string
	Chosen []string
}

func (r CheckboxesResult) QuestionID() string { return r.ID }
func (r CheckboxesResult) Kind() Kind         { return KindCheckboxes }
func (r CheckboxesResult) Value() any         { return append([]string(nil), r.Chosen...) }

// ResultSet is the ordered aggregate of a completed form run. Only submitted
// questions contribute; skipped questions never appear.
type ResultSet struct {
	results []Result
}

// NewResultSet builds an aggregate from explicit records, preserving order.
func NewResultSet(results ...Result) ResultSet {
	return ResultSet{results: append([]Result(nil), results...)}
}

// Results returns the records in configuration order.
func (s ResultSet) Results() []Result { return append([]Result(nil), s.results...) }

// Len returns the number of records.
func (s ResultSet) Len() int { return len(s.results) }

// Get looks a record up by question identifier.
func (s ResultSet) Get(id string) (Result, bool) {
	for _, r := range s.results {
		if r.QuestionID() == id {
			return r, true
		}
	}
	return nil, false
}

// Value looks an answer value up by question identifier.
func (s ResultSet) Value(id string) (any, bool) {
	r, ok := s.Get(id)
	if !ok {
		return nil, false
	}
	return r.Value(), true
}

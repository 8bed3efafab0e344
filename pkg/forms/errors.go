package forms

import "fmt"

// QuestionError reports a contract violation local to one question: double
// submission, submission with invalid or unset input, or a programmatic set
// that violates the question's bounds. It is returned synchronously by the
// mutating operation, never swallowed by a render loop.
type QuestionError struct {
	Kind   Kind
	Op     string
	Reason string
}

func (e *QuestionError) Error() string {
	return fmt.Sprintf("forms: %s question %s: %s", e.Kind, e.Op, e.Reason)
}

func questionErr(kind Kind, op, reason string) *QuestionError {
	return &QuestionError{Kind: kind, Op: op, Reason: reason}
}

func questionErrf(kind Kind, op, format string, args ...any) *QuestionError {
	return &QuestionError{Kind: kind, Op: op, Reason: fmt.Sprintf(format, args...)}
}

// FormError reports a sequencing violation on the form itself, such as asking
// for the current question while the form sits on the intro page or past the
// last question.
type FormError struct {
	Op     string
	Page   int
	Reason string
}

func (e *FormError) Error() string {
	return fmt.Sprintf("forms: %s at page %d: %s", e.Op, e.Page, e.Reason)
}

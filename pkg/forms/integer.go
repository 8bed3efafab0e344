package forms

import "math"

// Integer asks for a whole number. Input accumulates as a decimal magnitude
// plus a sign flag, so a minus can be typed before any digit and a backspace
// at zero clears the sign. The minimum representable value is
// -math.MaxInt64; see SetInput.
type Integer struct {
	base
	min       int64
	max       int64
	magnitude int64
	negative  bool
}

// IntegerOption configures an Integer question.
type IntegerOption func(*Integer)

// WithRange bounds accepted values to [min, max] inclusive.
func WithRange(min, max int64) IntegerOption {
	return func(q *Integer) {
		q.min = min
		q.max = max
	}
}

// NewInteger builds an integer question. Without WithRange the full int64
// range is accepted.
func NewInteger(id, title, description string, opts ...IntegerOption) *Integer {
	q := &Integer{
		base: base{id: id, title: title, description: description},
		min:  math.MinInt64,
		max:  math.MaxInt64,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

var _ Question = (*Integer)(nil)

func (q *Integer) Kind() Kind { return KindInteger }

// Min returns the inclusive lower bound.
func (q *Integer) Min() int64 { return q.min }

// Max returns the inclusive upper bound.
func (q *Integer) Max() int64 { return q.max }

// Value returns the signed value of the accumulated input.
func (q *Integer) Value() int64 {
	if q.negative {
		return -q.magnitude
	}
	return q.magnitude
}

// Negative reports whether the sign flag is set. Renderers use it to show a
// bare minus before the first digit arrives.
func (q *Integer) Negative() bool { return q.negative }

// InBounds reports whether the current value sits inside [min, max].
func (q *Integer) InBounds() bool {
	v := q.Value()
	return v >= q.min && v <= q.max
}

func (q *Integer) Input() any { return q.Value() }

// Digit appends one decimal digit to the magnitude, clamping at the maximum
// int64 on overflow. Values outside 0..9 are ignored.
func (q *Integer) Digit(d int) {
	if q.submitted || d < 0 || d > 9 {
		return
	}
	if q.magnitude > (math.MaxInt64-int64(d))/10 {
		q.magnitude = math.MaxInt64
		return
	}
	q.magnitude = q.magnitude*10 + int64(d)
}

// Minus sets the sign flag. Only honored while the magnitude is zero.
func (q *Integer) Minus() {
	if q.submitted || q.magnitude != 0 {
		return
	}
	q.negative = true
}

// Backspace clears the sign when the magnitude is zero, otherwise removes
// the trailing digit.
func (q *Integer) Backspace() {
	if q.submitted {
		return
	}
	if q.magnitude == 0 {
		q.negative = false
		return
	}
	q.magnitude /= 10
}

// SetInput replaces the accumulated value. math.MinInt64 is rejected: the
// sign-and-magnitude accumulator cannot represent it, same as interactive
// input never reaches it.
func (q *Integer) SetInput(v int64) error {
	if q.submitted {
		return questionErr(KindInteger, "set input", "already submitted")
	}
	if v == math.MinInt64 {
		return questionErr(KindInteger, "set input", "value underflows the representable magnitude")
	}
	if v < q.min || v > q.max {
		return questionErrf(KindInteger, "set input", "%d is outside [%d, %d]", v, q.min, q.max)
	}
	if v < 0 {
		q.negative = true
		q.magnitude = -v
	} else {
		q.negative = false
		q.magnitude = v
	}
	return nil
}

func (q *Integer) Reset() {
	if q.submitted {
		return
	}
	q.magnitude = 0
	q.negative = false
}

func (q *Integer) Submit() error {
	if q.submitted {
		return questionErr(KindInteger, "submit", "already submitted")
	}
	if v := q.Value(); v < q.min || v > q.max {
		return questionErrf(KindInteger, "submit", "%d is outside [%d, %d]", v, q.min, q.max)
	}
	q.submitted = true
	return nil
}

func (q *Integer) Result() (Result, error) {
	if !q.submitted {
		return nil, questionErr(KindInteger, "result", "not submitted")
	}
	return IntegerResult{ID: q.id, Number: q.Value()}, nil
}

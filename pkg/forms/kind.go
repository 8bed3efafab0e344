package forms

// Kind identifies a question variant.
type Kind string

const (
	KindText       Kind = "text"
	KindInteger    Kind = "integer"
	KindBoolean    Kind = "boolean"
	KindChoice     Kind = "choice"
	KindCheckboxes Kind = "checkboxes"
)

// Valid reports whether k names one of the five question variants.
func (k Kind) Valid() bool {
	switch k {
	case KindText, KindInteger, KindBoolean, KindChoice, KindCheckboxes:
		return true
	}
	return false
}

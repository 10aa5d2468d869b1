// Package validation implements the checkout field rules. Validation is
// a pure function of the current value snapshot: the same inputs always
// produce the same per-field error lists.
package validation

// Field names as they appear in error maps and API responses.
const (
	FieldEmail      = "email"
	FieldCardNumber = "card_number"
	FieldCardExpire = "card_expire"
	FieldCVV        = "cvv"
)

// FieldErrors maps a field name to its error messages in rule order.
type FieldErrors map[string][]string

// Validator collects field errors across rules.
type Validator struct {
	Errors FieldErrors
}

// New creates a validator with no errors.
func New() *Validator {
	return &Validator{Errors: make(FieldErrors)}
}

// Valid reports whether no rule has failed.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError appends an error message to a field's list.
func (v *Validator) AddError(field, message string) {
	v.Errors[field] = append(v.Errors[field], message)
}

// Check adds an error if the condition is false.
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

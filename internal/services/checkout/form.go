package checkout

import (
	"context"
	"sync"

	"checkout/internal/format"
	"checkout/internal/models"
	"checkout/internal/validation"
)

// Form is the stateful checkout component. Setters run the matching
// formatter and revalidate the whole value set before returning, so the
// submit gate always reflects the latest snapshot. All methods are safe
// for concurrent use, though a form is normally driven by one event
// loop.
type Form struct {
	mu      sync.Mutex
	svc     *Service
	values  models.CheckoutValues
	errors  validation.FieldErrors
	loading bool
}

// NewForm creates an empty form bound to a service. All fields start
// untouched, which keeps the submit control disabled.
func NewForm(svc *Service) *Form {
	return &Form{svc: svc, errors: make(validation.FieldErrors)}
}

// SetEmail stores a raw email value and returns it as stored.
func (f *Form) SetEmail(raw string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values.Email = &raw
	f.revalidate()
	return raw
}

// SetCardNumber formats raw card input into spaced groups of four and
// stores the result.
func (f *Form) SetCardNumber(raw string) string {
	formatted := format.CardNumber(raw)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values.CardNumber = &formatted
	f.revalidate()
	return formatted
}

// SetCardExpire formats raw expiry input into "MM / YY" and stores the
// result.
func (f *Form) SetCardExpire(raw string) string {
	formatted := format.CardExpiry(raw)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values.CardExpire = &formatted
	f.revalidate()
	return formatted
}

// SetCVV stores a raw CVV value and returns it as stored. The value is
// kept verbatim so the "Numbers only" rule can report stray characters.
func (f *Form) SetCVV(raw string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values.CVV = &raw
	f.revalidate()
	return raw
}

// revalidate recomputes field errors from the current values. Callers
// hold f.mu.
func (f *Form) revalidate() {
	f.errors = f.svc.Validate(f.values).Errors
}

// Values returns a copy of the current value snapshot.
func (f *Form) Values() models.CheckoutValues {
	f.mu.Lock()
	defer f.mu.Unlock()
	return cloneValues(f.values)
}

// FieldErrors returns the error messages for one field, in rule order.
func (f *Form) FieldErrors(field string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	msgs := f.errors[field]
	out := make([]string, len(msgs))
	copy(out, msgs)
	return out
}

// CardType reports the scheme derived from the current card number,
// used for icon highlighting.
func (f *Form) CardType() models.CardType {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.values.CardNumber == nil {
		return models.CardTypeUnknown
	}
	return validation.DetectCardType(*f.values.CardNumber)
}

// AutoInvalid reports whether any field has errors or is untouched.
func (f *Form) AutoInvalid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.autoInvalid()
}

func (f *Form) autoInvalid() bool {
	return !f.values.Touched() || len(f.errors) > 0
}

// SetLoading sets the external loading flag that disables the submit
// control while a submission is in flight elsewhere.
func (f *Form) SetLoading(loading bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = loading
}

// CanSubmit reports whether the submit control is enabled.
func (f *Form) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.autoInvalid() && !f.loading
}

// State returns a rendering snapshot of the whole form.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	errs := make(map[string][]string, len(f.errors))
	for field, msgs := range f.errors {
		out := make([]string, len(msgs))
		copy(out, msgs)
		errs[field] = out
	}

	cardType := models.CardTypeUnknown
	if f.values.CardNumber != nil {
		cardType = validation.DetectCardType(*f.values.CardNumber)
	}

	return State{
		Values:      cloneValues(f.values),
		Errors:      errs,
		CardType:    cardType,
		AutoInvalid: f.autoInvalid(),
		Loading:     f.loading,
		CanSubmit:   !f.autoInvalid() && !f.loading,
		SubmitLabel: f.svc.SubmitLabel(),
	}
}

// Submit validates the current snapshot and delegates it to the success
// callback. The loading flag is held for the duration of the callback;
// a concurrent Submit fails with ErrLoading. Values are cleared after a
// successful submit.
func (f *Form) Submit(ctx context.Context) (models.CheckoutAttempt, error) {
	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return models.CheckoutAttempt{}, ErrLoading
	}
	if f.autoInvalid() {
		err := &ValidationError{Fields: f.errors}
		f.mu.Unlock()
		return models.CheckoutAttempt{}, err
	}
	snapshot := cloneValues(f.values)
	f.loading = true
	f.mu.Unlock()

	attempt, err := f.svc.Submit(ctx, snapshot)

	f.mu.Lock()
	f.loading = false
	if err == nil {
		f.reset()
	}
	f.mu.Unlock()
	return attempt, err
}

// Reset discards all values and errors, returning the form to its
// initial untouched state.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

func (f *Form) reset() {
	f.values = models.CheckoutValues{}
	f.errors = make(validation.FieldErrors)
}

func cloneValues(v models.CheckoutValues) models.CheckoutValues {
	out := models.CheckoutValues{}
	if v.Email != nil {
		s := *v.Email
		out.Email = &s
	}
	if v.CardNumber != nil {
		s := *v.CardNumber
		out.CardNumber = &s
	}
	if v.CardExpire != nil {
		s := *v.CardExpire
		out.CardExpire = &s
	}
	if v.CVV != nil {
		s := *v.CVV
		out.CVV = &s
	}
	return out
}

package checkout

import (
	"context"
	"time"

	"checkout/internal/models"
)

// DefaultSubmitLabel labels the submit control when none is configured.
const DefaultSubmitLabel = "Pay"

// SubmitFunc receives the validated snapshot of a successful submit.
type SubmitFunc func(ctx context.Context, attempt models.CheckoutAttempt) error

// Config controls a checkout service.
type Config struct {
	// OnSuccess is invoked once per successful submit. Required.
	OnSuccess SubmitFunc
	// SubmitLabel overrides the submit control label.
	SubmitLabel string
	// Clock supplies the current time for expiry checks. Defaults to
	// time.Now; tests pin it.
	Clock func() time.Time
}

// State is a read-only view of a form for rendering: the current values,
// their errors and the submit gate.
type State struct {
	Values      models.CheckoutValues `json:"values"`
	Errors      map[string][]string   `json:"errors"`
	CardType    models.CardType       `json:"card_type"`
	AutoInvalid bool                  `json:"auto_invalid"`
	Loading     bool                  `json:"loading"`
	CanSubmit   bool                  `json:"can_submit"`
	SubmitLabel string                `json:"submit_label"`
}

/*
Package checkout implements the checkout form component.

The package has two layers:

  - Service: stateless validation and submission. Validate is a pure
    function of a value snapshot; Submit validates, builds a
    CheckoutAttempt and delegates it to the configured success callback.
  - Form: the stateful component. It holds the current values, runs the
    formatters on every keystroke, revalidates synchronously after each
    change and gates the submit control.

Usage:

	svc, err := checkout.NewService(checkout.Config{
	    OnSuccess: func(ctx context.Context, attempt models.CheckoutAttempt) error {
	        // hand the validated values to the payment flow
	        return nil
	    },
	})

	form := checkout.NewForm(svc)
	form.SetEmail("jane@example.com")
	form.SetCardNumber("4242424242424242") // stored as "4242 4242 4242 4242"
	form.SetCardExpire("1230")             // stored as "12 / 30"
	form.SetCVV("123")

	if form.CanSubmit() {
	    attempt, err := form.Submit(ctx)
	    ...
	}

The component never performs network I/O itself: whatever happens to the
validated data is entirely the callback's business.
*/
package checkout

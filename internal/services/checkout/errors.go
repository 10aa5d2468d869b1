package checkout

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"checkout/internal/validation"
)

// Service errors
var (
	ErrNoCallback = errors.New("success callback is required")
	ErrLoading    = errors.New("a submission is already in progress")
)

// ValidationError carries the per-field messages of a rejected submit.
type ValidationError struct {
	Fields validation.FieldErrors
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "checkout is incomplete"
	}
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("invalid checkout fields: %s", strings.Join(fields, ", "))
}

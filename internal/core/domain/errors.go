// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// Error classes. Concrete errors wrap one of these so callers can route on
// class with errors.Is without matching message text.
var (
	// ErrCatalogUnavailable covers transport and decoding failures talking
	// to the remote catalog.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrServerRejected means the remote responded but signaled logical
	// failure (unknown product, rejected submission).
	ErrServerRejected = errors.New("server rejected request")

	// ErrValidation covers local precondition violations raised before any
	// mutation or network call.
	ErrValidation = errors.New("validation failed")

	// ErrPersistence covers local store failures. Surfaced only when the
	// store runs in strict mode; fail-open stores absorb it.
	ErrPersistence = errors.New("local persistence failed")
)

var (
	ErrNoProductSelected  = fmt.Errorf("%w: no product selected", ErrValidation)
	ErrNoDepotSelected    = fmt.Errorf("%w: no depot selected", ErrValidation)
	ErrInvalidQuantity    = fmt.Errorf("%w: quantity must be a positive number", ErrValidation)
	ErrInvalidBarcode     = fmt.Errorf("%w: barcode is empty", ErrValidation)
	ErrEmptySubmission    = fmt.Errorf("%w: count list is empty", ErrValidation)
	ErrSubmissionInFlight = fmt.Errorf("%w: a submission is already in progress", ErrValidation)

	ErrProductNotFound = fmt.Errorf("%w: product not found", ErrServerRejected)
)

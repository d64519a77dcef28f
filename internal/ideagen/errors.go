package ideagen

import (
	"errors"
	"fmt"
)

// ErrEmptyCompletion reports that the completion service answered 2xx but
// carried no usable text content.
var ErrEmptyCompletion = errors.New("completion service returned empty content")

// UpstreamError is a non-2xx answer from the completion service. Unlike trend
// fetch failures it is surfaced to the caller, status and body included.
type UpstreamError struct {
	Status  int
	Details string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion request failed: status %d: %s", e.Status, e.Details)
}

// ParseError reports model output that survived neither a strict JSON parse
// nor balanced-object extraction. Raw keeps the full text for diagnostics.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("model response is not recoverable JSON (%d chars)", len(e.Raw))
}
